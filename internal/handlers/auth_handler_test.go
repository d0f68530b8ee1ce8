package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"ecomauth/internal/models"
	"ecomauth/internal/services"
)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, req *models.RegisterRequest) (*services.RegisterResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.RegisterResult), args.Error(1)
}

func (m *MockUserService) Confirm(ctx context.Context, token string) (services.ConfirmOutcome, error) {
	args := m.Called(ctx, token)
	return args.Get(0).(services.ConfirmOutcome), args.Error(1)
}

func (m *MockUserService) Authenticate(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LoginResponse), args.Error(1)
}

func (m *MockUserService) ResendVerification(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func setupRouter(svc services.UserService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	authHandler := NewAuthHandler(svc)
	mailHandler := NewMailHandler(svc)
	r.POST("/authenticate/register", authHandler.Register)
	r.POST("/authenticate/login", authHandler.Login)
	r.POST("/authenticate/resend", authHandler.Resend)
	r.GET("/mail/confirm", mailHandler.Confirm)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Register", mock.Anything, mock.Anything).Return(&services.RegisterResult{
			User:      &models.User{ID: 1, Email: "a@x.com"},
			EmailSent: true,
		}, nil)

		w := doJSON(setupRouter(svc), http.MethodPost, "/authenticate/register",
			`{"email":"a@x.com","password":"password123","name":"Alice"}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "User registered successfully")
	})

	t.Run("duplicate email answers 302", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Register", mock.Anything, mock.Anything).Return(nil, services.ErrDuplicateEmail)

		w := doJSON(setupRouter(svc), http.MethodPost, "/authenticate/register",
			`{"email":"a@x.com","password":"password123","name":"Alice"}`)

		require.Equal(t, http.StatusFound, w.Code)
		require.Contains(t, w.Body.String(), "already exists")
	})

	t.Run("validation failure answers 400", func(t *testing.T) {
		svc := new(MockUserService)

		w := doJSON(setupRouter(svc), http.MethodPost, "/authenticate/register",
			`{"email":"not-an-email","password":"p","name":""}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
	})
}

func TestLoginHandler(t *testing.T) {
	t.Run("success returns identity bundle", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Authenticate", mock.Anything, "a@x.com", "password123").Return(&models.LoginResponse{
			AccessToken: "tok",
			TokenType:   "Bearer",
			Role:        "USER",
			ID:          1,
			Email:       "a@x.com",
			ExpiresIn:   1800,
		}, nil)

		w := doJSON(setupRouter(svc), http.MethodPost, "/authenticate/login",
			`{"username":"a@x.com","password":"password123"}`)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), `"access_token":"tok"`)
		require.Contains(t, w.Body.String(), `"token_type":"Bearer"`)
	})

	t.Run("bad credentials answer 401", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Authenticate", mock.Anything, "a@x.com", "wrong").Return(nil, services.ErrInvalidCredentials)

		w := doJSON(setupRouter(svc), http.MethodPost, "/authenticate/login",
			`{"username":"a@x.com","password":"wrong"}`)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "Invalid credentials")
	})

	t.Run("not activated answers 403", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Authenticate", mock.Anything, "a@x.com", "password123").Return(nil, services.ErrNotActivated)

		w := doJSON(setupRouter(svc), http.MethodPost, "/authenticate/login",
			`{"username":"a@x.com","password":"password123"}`)

		require.Equal(t, http.StatusForbidden, w.Code)
		require.Contains(t, w.Body.String(), "Account is not activated")
	})
}

func TestConfirmHandler(t *testing.T) {
	t.Run("activated serves the original text", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Confirm", mock.Anything, "tok").Return(services.ConfirmActivated, nil)

		req := httptest.NewRequest(http.MethodGet, "/mail/confirm?token=tok", nil)
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "Tài khoản của bạn đã được kích hoạt.", w.Body.String())
	})

	t.Run("expired answers 410", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Confirm", mock.Anything, "tok").Return(services.ConfirmTokenExpired, nil)

		req := httptest.NewRequest(http.MethodGet, "/mail/confirm?token=tok", nil)
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusGone, w.Code)
	})

	t.Run("unknown answers 400", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Confirm", mock.Anything, "tok").Return(services.ConfirmTokenNotFound, nil)

		req := httptest.NewRequest(http.MethodGet, "/mail/confirm?token=tok", nil)
		w := httptest.NewRecorder()
		setupRouter(svc).ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestResendHandler(t *testing.T) {
	t.Run("unknown email answers 404", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("ResendVerification", mock.Anything, "ghost@x.com").Return(services.ErrUserNotFound)

		w := doJSON(setupRouter(svc), http.MethodPost, "/authenticate/resend", `{"email":"ghost@x.com"}`)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("already activated answers 409", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("ResendVerification", mock.Anything, "a@x.com").Return(services.ErrAlreadyActivated)

		w := doJSON(setupRouter(svc), http.MethodPost, "/authenticate/resend", `{"email":"a@x.com"}`)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("ResendVerification", mock.Anything, "a@x.com").Return(nil)

		w := doJSON(setupRouter(svc), http.MethodPost, "/authenticate/resend", `{"email":"a@x.com"}`)
		require.Equal(t, http.StatusOK, w.Code)
	})
}
