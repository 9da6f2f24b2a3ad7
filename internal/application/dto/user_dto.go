package dto

import "time"

// RegisterRequest entrada para registro. Si IsEmployer es false la cuenta queda como candidato.
type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	IsEmployer  bool   `json:"is_employer"`
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
}

// LoginRequest Username acepta el nombre de usuario o el email.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest campos editables del perfil; nil = sin cambios.
type UpdateProfileRequest struct {
	Email       *string `json:"email"`
	CompanyName *string `json:"company_name"`
	Phone       *string `json:"phone"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	IsEmployer  bool      `json:"is_employer"`
	IsSeeker    bool      `json:"is_seeker"`
	CompanyName string    `json:"company_name,omitempty"`
	Phone       string    `json:"phone,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LoginResponse salida con token JWT.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
