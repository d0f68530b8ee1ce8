package models

type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Avatar       string `json:"avatar"`
	PasswordHash string `json:"-"` // never serialized
	Role         string `json:"role"` // comma-separated role list, e.g. "USER" or "USER,ADMIN"
	Enabled      bool   `json:"enabled"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Avatar   string `json:"avatar"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the identity bundle returned on a successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Name        string `json:"name"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
	Avatar      string `json:"avatar"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
	ID          int64  `json:"id"`
	Address     string `json:"address"`
	Email       string `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
