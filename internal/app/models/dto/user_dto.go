package dto

// RegisterRequest represents a teacher registration request
type RegisterRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents user information returned to clients. The password
// hash never appears here.
type UserResponse struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

// AuthResponse represents a successful register or login result
type AuthResponse struct {
	User        UserResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
	ExpiresIn   int          `json:"expiresIn,omitempty"`
}

// AdminStatusResponse reports the admin flag after a toggle
type AdminStatusResponse struct {
	Admin bool `json:"admin"`
}
