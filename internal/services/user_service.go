package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"ecomauth/internal/authz"
	"ecomauth/internal/models"
	"ecomauth/internal/repositories"
	"ecomauth/internal/utils"
)

var (
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotActivated       = errors.New("account is not activated")
	ErrAlreadyActivated   = errors.New("account is already activated")
	ErrUserNotFound       = errors.New("user not found")
)

// ConfirmOutcome distinguishes what happened to a presented token.
type ConfirmOutcome int

const (
	ConfirmActivated ConfirmOutcome = iota
	ConfirmTokenNotFound
	ConfirmTokenExpired
)

// RegisterResult reports the created user and whether the verification
// email actually went out. Registration succeeds either way; EmailSent
// makes a lost delivery visible to the caller.
type RegisterResult struct {
	User      *models.User
	EmailSent bool
}

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*RegisterResult, error)
	Confirm(ctx context.Context, token string) (ConfirmOutcome, error)
	Authenticate(ctx context.Context, username, password string) (*models.LoginResponse, error)
	ResendVerification(ctx context.Context, email string) error
}

type userService struct {
	users           repositories.UserRepository
	tokens          repositories.VerificationTokenRepository
	emailService    EmailService
	authService     AuthService
	verificationTTL time.Duration
}

func NewUserService(
	users repositories.UserRepository,
	tokens repositories.VerificationTokenRepository,
	emailService EmailService,
	authService AuthService,
	verificationTTL time.Duration,
) UserService {
	return &userService{
		users:           users,
		tokens:          tokens,
		emailService:    emailService,
		authService:     authService,
		verificationTTL: verificationTTL,
	}
}

// Register creates the account disabled, mints a verification token and
// dispatches the confirmation email. A failed dispatch is logged, not
// fatal; the result carries EmailSent=false so the caller can surface it.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*RegisterResult, error) {
	hash, err := s.authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        strings.TrimSpace(req.Email),
		Name:         req.Name,
		Phone:        req.Phone,
		Address:      req.Address,
		Avatar:       req.Avatar,
		PasswordHash: hash,
		Role:         authz.RoleUser,
		Enabled:      false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrEmailTaken) {
			return nil, ErrDuplicateEmail
		}
		return nil, err
	}

	token, err := s.issueToken(ctx, user.Email)
	if err != nil {
		return nil, err
	}

	emailSent := true
	if err := s.emailService.SendVerificationEmail(user.Email, token); err != nil {
		log.Printf("[auth][register] warning: failed to send verification email to %s: %v", user.Email, err)
		emailSent = false
	}

	log.Printf("[auth][register] user created id=%d email=%q email_sent=%v", user.ID, user.Email, emailSent)
	return &RegisterResult{User: user, EmailSent: emailSent}, nil
}

// Confirm exchanges a verification token for account activation. The
// token is consumed atomically; a concurrent confirmation of the same
// token leaves exactly one winner, everyone else sees not-found. Expired
// tokens are left in place.
func (s *userService) Confirm(ctx context.Context, token string) (ConfirmOutcome, error) {
	vt, err := s.tokens.GetByToken(ctx, token)
	if err != nil {
		return 0, err
	}
	if vt == nil {
		return ConfirmTokenNotFound, nil
	}
	if vt.Expired(time.Now()) {
		log.Printf("[auth][confirm] expired token for email=%q expiry=%s", vt.Email, vt.ExpiryDate.Format(time.RFC3339))
		return ConfirmTokenExpired, nil
	}

	consumed, err := s.tokens.Delete(ctx, vt.Token)
	if err != nil {
		return 0, err
	}
	if !consumed {
		// lost the consume race to a concurrent request
		return ConfirmTokenNotFound, nil
	}
	if err := s.users.Enable(ctx, vt.Email); err != nil {
		return 0, fmt.Errorf("enable user %q: %w", vt.Email, err)
	}

	log.Printf("[auth][confirm] account activated email=%q", vt.Email)
	return ConfirmActivated, nil
}

// Authenticate checks credentials and the enabled gate, then mints the
// bearer token. Unknown email and wrong password are indistinguishable
// to the caller.
func (s *userService) Authenticate(ctx context.Context, username, password string) (*models.LoginResponse, error) {
	email := strings.TrimSpace(username)
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := s.authService.CheckPassword(password, user.PasswordHash); err != nil {
		log.Printf("[auth][login] password mismatch for email=%q", email)
		return nil, ErrInvalidCredentials
	}
	if !user.Enabled {
		log.Printf("[auth][login] account not activated email=%q", email)
		return nil, ErrNotActivated
	}

	token, expiresIn, err := s.authService.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}

	log.Printf("[auth][login] success userID=%d role=%q", user.ID, user.Role)
	return &models.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		Name:        user.Name,
		ExpiresIn:   expiresIn,
		Avatar:      user.Avatar,
		Phone:       user.Phone,
		Role:        user.Role,
		ID:          user.ID,
		Address:     user.Address,
		Email:       user.Email,
	}, nil
}

// ResendVerification re-issues a token for a not-yet-activated account.
// Unlike Register, a failed delivery fails the call; sending is the whole
// point of a resend.
func (s *userService) ResendVerification(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.Enabled {
		return ErrAlreadyActivated
	}

	token, err := s.issueToken(ctx, user.Email)
	if err != nil {
		return err
	}
	if err := s.emailService.SendVerificationEmail(user.Email, token); err != nil {
		return err
	}
	log.Printf("[auth][resend] verification email re-sent to %q", user.Email)
	return nil
}

func (s *userService) issueToken(ctx context.Context, email string) (string, error) {
	vt := &models.VerificationToken{
		Token:      utils.NewVerificationToken(),
		Email:      email,
		ExpiryDate: time.Now().Add(s.verificationTTL),
	}
	if _, err := s.tokens.Create(ctx, vt); err != nil {
		return "", err
	}
	return vt.Token, nil
}
