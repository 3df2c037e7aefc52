package domain

import "time"

// Role is the closed set of platform roles.
type Role string

const (
	RoleCandidate Role = "candidate"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

// ParseRole validates a raw role value.
func ParseRole(raw string) (Role, bool) {
	switch Role(raw) {
	case RoleCandidate, RoleEmployer, RoleAdmin:
		return Role(raw), true
	}
	return "", false
}

// User is the domain model for any platform actor: candidates browsing jobs,
// employers posting them, and admins overseeing both.
type User struct {
	ID             int64
	Name           string
	Email          string
	PasswordHash   string
	Role           Role
	Phone          string
	Avatar         string
	Bio            string
	Skills         string
	Education      string
	Experience     string
	ResumeURL      string
	CompanyName    string
	CompanyWebsite string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PublicView is the user representation safe to return to clients.
// The password hash never appears here.
type PublicView struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	Phone          string    `json:"phone,omitempty"`
	Avatar         string    `json:"avatar,omitempty"`
	Bio            string    `json:"bio,omitempty"`
	Skills         string    `json:"skills,omitempty"`
	Education      string    `json:"education,omitempty"`
	Experience     string    `json:"experience,omitempty"`
	ResumeURL      string    `json:"resumeUrl,omitempty"`
	CompanyName    string    `json:"companyName,omitempty"`
	CompanyWebsite string    `json:"companyWebsite,omitempty"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Public strips credentials from the user record.
func (u *User) Public() PublicView {
	return PublicView{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           u.Role,
		Phone:          u.Phone,
		Avatar:         u.Avatar,
		Bio:            u.Bio,
		Skills:         u.Skills,
		Education:      u.Education,
		Experience:     u.Experience,
		ResumeURL:      u.ResumeURL,
		CompanyName:    u.CompanyName,
		CompanyWebsite: u.CompanyWebsite,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt,
	}
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanActFor reports whether the user may act on the target user's resources:
// either it is their own account or they are an admin.
func (u *User) CanActFor(targetID int64) bool {
	return u.ID == targetID || u.IsAdmin()
}
