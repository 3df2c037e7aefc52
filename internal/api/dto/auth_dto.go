package dto

import "time"

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Role        string `json:"role"`
	Phone       string `json:"phone"`
	CompanyName string `json:"companyName"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest carries a partial profile update. Pointer fields
// distinguish absent from explicitly empty.
type UpdateProfileRequest struct {
	Name           *string `json:"name"`
	Phone          *string `json:"phone"`
	Bio            *string `json:"bio"`
	Skills         *string `json:"skills"`
	Education      *string `json:"education"`
	Experience     *string `json:"experience"`
	ResumeURL      *string `json:"resumeUrl"`
	CompanyName    *string `json:"companyName"`
	CompanyWebsite *string `json:"companyWebsite"`
}

// ChangePasswordRequest payload for password change.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}
