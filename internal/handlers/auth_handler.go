package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"ecomauth/internal/models"
	"ecomauth/internal/services"
)

type AuthHandler struct {
	userService services.UserService
}

func NewAuthHandler(userService services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// @Summary      Register a new account
// @Description  Creates a disabled account and emails a verification link
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        user  body      models.RegisterRequest  true  "Registration payload"
// @Success      200   {object}  map[string]interface{}
// @Failure      302   {object}  models.MessageResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /authenticate/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][register] bad request: bind json failed: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateEmail) {
			c.JSON(http.StatusFound, models.MessageResponse{Message: "An account with this email already exists."})
			return
		}
		log.Printf("[auth][register] failed for email=%q: err=%v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "User registered successfully. Please check your email to verify your account.",
		"email_sent": res.EmailSent,
	})
}

// @Summary      Log in
// @Description  Authenticates credentials and returns the identity bundle with a bearer token
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        login  body      models.LoginRequest  true  "Credentials"
// @Success      200    {object}  models.LoginResponse
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  models.MessageResponse
// @Failure      403    {object}  models.MessageResponse
// @Failure      500    {object}  map[string]string
// @Router       /authenticate/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[auth][login] bad request: bind json failed: err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := h.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, models.MessageResponse{Message: "Invalid credentials"})
		case errors.Is(err, services.ErrNotActivated):
			c.JSON(http.StatusForbidden, models.MessageResponse{Message: "Account is not activated"})
		default:
			log.Printf("[auth][login] failed for username=%q: err=%v", req.Username, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary      Resend verification email
// @Description  Issues a fresh verification token for a not-yet-activated account
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        body  body      object{email=string}  true  "Account email"
// @Success      200   {object}  models.MessageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  models.MessageResponse
// @Failure      409   {object}  models.MessageResponse
// @Failure      500   {object}  map[string]string
// @Router       /authenticate/resend [post]
func (h *AuthHandler) Resend(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.userService.ResendVerification(c.Request.Context(), req.Email); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			c.JSON(http.StatusNotFound, models.MessageResponse{Message: "No account with this email"})
		case errors.Is(err, services.ErrAlreadyActivated):
			c.JSON(http.StatusConflict, models.MessageResponse{Message: "Account is already activated"})
		default:
			log.Printf("[auth][resend] failed for email=%q: err=%v", req.Email, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resend verification email"})
		}
		return
	}

	c.JSON(http.StatusOK, models.MessageResponse{Message: "Verification email sent. Please check your inbox."})
}
