package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{JWTSecret: "test-secret", TokenTTLHours: 1, BcryptCost: 4}
}

func assertDomainError(t *testing.T, err error, code string, status int) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %T: %v", err, err)
	}
	if domainErr.Code != code {
		t.Fatalf("error code = %q, want %q", domainErr.Code, code)
	}
	if domainErr.HTTPStatus != status {
		t.Fatalf("error status = %d, want %d", domainErr.HTTPStatus, status)
	}
}

func TestRegisterDefaultsToCandidate(t *testing.T) {
	users := newMockUserRepo()
	svc := NewAuthService(testAuthConfig(), users)

	user, token, _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret123",
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleCandidate {
		t.Fatalf("role = %q, want candidate", user.Role)
	}
	if !user.IsActive {
		t.Fatal("new account should be active")
	}
	if user.PasswordHash == "secret123" || user.PasswordHash == "" {
		t.Fatal("password was not hashed")
	}
	if token == "" {
		t.Fatal("no token issued on registration")
	}

	claims, err := svc.TokenManager().Verify(token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if claims.UserID != user.ID {
		t.Fatalf("token user id = %d, want %d", claims.UserID, user.ID)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newMockUserRepo())

	cases := []struct {
		name  string
		input RegisterInput
	}{
		{"missing name", RegisterInput{Email: "a@b.c", Password: "secret123"}},
		{"missing email", RegisterInput{Name: "A", Password: "secret123"}},
		{"missing password", RegisterInput{Name: "A", Email: "a@b.c"}},
		{"short password", RegisterInput{Name: "A", Email: "a@b.c", Password: "12345"}},
		{"unknown role", RegisterInput{Name: "A", Email: "a@b.c", Password: "secret123", Role: "superuser"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, _, err := svc.Register(context.Background(), tc.input)
			assertDomainError(t, err, "VALIDATION_FAILED", http.StatusBadRequest)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := newMockUserRepo()
	users.add(&domain.User{Email: "taken@example.com", IsActive: true})
	svc := NewAuthService(testAuthConfig(), users)

	_, _, _, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Bob",
		Email:    "taken@example.com",
		Password: "secret123",
	})
	assertDomainError(t, err, "CONFLICT", http.StatusBadRequest)
}

func TestRegisterCompanyNameOnlyForEmployers(t *testing.T) {
	users := newMockUserRepo()
	svc := NewAuthService(testAuthConfig(), users)

	candidate, _, _, err := svc.Register(context.Background(), RegisterInput{
		Name:        "Carol",
		Email:       "carol@example.com",
		Password:    "secret123",
		Role:        "candidate",
		CompanyName: "ShouldBeDropped Inc",
	})
	if err != nil {
		t.Fatalf("Register candidate: %v", err)
	}
	if candidate.CompanyName != "" {
		t.Fatalf("candidate company name = %q, want empty", candidate.CompanyName)
	}

	employer, _, _, err := svc.Register(context.Background(), RegisterInput{
		Name:        "Dave",
		Email:       "dave@example.com",
		Password:    "secret123",
		Role:        "employer",
		CompanyName: "Acme Corp",
	})
	if err != nil {
		t.Fatalf("Register employer: %v", err)
	}
	if employer.CompanyName != "Acme Corp" {
		t.Fatalf("employer company name = %q, want Acme Corp", employer.CompanyName)
	}
}

func seedCredentialedUser(t *testing.T, users *mockUserRepo, email, password string, active bool) *domain.User {
	t.Helper()
	hash, err := auth.HashPassword(password, 4)
	if err != nil {
		t.Fatalf("hashing password: %v", err)
	}
	return users.add(&domain.User{
		Name:         "Seeded",
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleCandidate,
		IsActive:     active,
	})
}

func TestLoginSuccess(t *testing.T) {
	users := newMockUserRepo()
	seedCredentialedUser(t, users, "alice@example.com", "secret123", true)
	svc := NewAuthService(testAuthConfig(), users)

	user, token, _, err := svc.Login(context.Background(), "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if user.Email != "alice@example.com" {
		t.Fatalf("email = %q", user.Email)
	}
	if token == "" {
		t.Fatal("no token issued on login")
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newMockUserRepo())

	_, _, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever1")
	assertDomainError(t, err, "INVALID_CREDENTIALS", http.StatusUnauthorized)
}

func TestLoginWrongPassword(t *testing.T) {
	users := newMockUserRepo()
	seedCredentialedUser(t, users, "alice@example.com", "secret123", true)
	svc := NewAuthService(testAuthConfig(), users)

	_, _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong-pass")
	assertDomainError(t, err, "INVALID_CREDENTIALS", http.StatusUnauthorized)
}

func TestLoginInactiveBeforePasswordCheck(t *testing.T) {
	users := newMockUserRepo()
	seedCredentialedUser(t, users, "gone@example.com", "secret123", false)
	svc := NewAuthService(testAuthConfig(), users)

	// Even with the wrong password, a deactivated account answers 403 so the
	// caller learns the account state rather than a credentials failure.
	_, _, _, err := svc.Login(context.Background(), "gone@example.com", "wrong-pass")
	assertDomainError(t, err, "ACCOUNT_INACTIVE", http.StatusForbidden)
}

func TestRefreshIssuesIndependentTokens(t *testing.T) {
	users := newMockUserRepo()
	user := seedCredentialedUser(t, users, "alice@example.com", "secret123", true)
	svc := NewAuthService(testAuthConfig(), users)

	first, _, err := svc.Refresh(user)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	second, _, err := svc.Refresh(user)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	for _, token := range []string{first, second} {
		claims, err := svc.TokenManager().Verify(token)
		if err != nil {
			t.Fatalf("refreshed token did not verify: %v", err)
		}
		if claims.UserID != user.ID {
			t.Fatalf("token user id = %d, want %d", claims.UserID, user.ID)
		}
	}
}

func strPtr(s string) *string { return &s }

func TestUpdateProfilePartialRules(t *testing.T) {
	users := newMockUserRepo()
	user := users.add(&domain.User{
		Name:     "Original Name",
		Email:    "alice@example.com",
		Phone:    "111",
		Bio:      "old bio",
		Skills:   "go,sql",
		IsActive: true,
	})
	svc := NewAuthService(testAuthConfig(), users)

	updated, err := svc.UpdateProfile(context.Background(), user, user.ID, UpdateProfileInput{
		Name:  strPtr(""), // empty name keeps stored value
		Phone: strPtr(""), // empty phone keeps stored value
		Bio:   strPtr(""), // empty bio clears it
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Name != "Original Name" {
		t.Fatalf("name = %q, empty update must not clear it", updated.Name)
	}
	if updated.Phone != "111" {
		t.Fatalf("phone = %q, empty update must not clear it", updated.Phone)
	}
	if updated.Bio != "" {
		t.Fatalf("bio = %q, empty update should clear it", updated.Bio)
	}
	if updated.Skills != "go,sql" {
		t.Fatalf("skills = %q, absent field must keep stored value", updated.Skills)
	}

	updated, err = svc.UpdateProfile(context.Background(), user, user.ID, UpdateProfileInput{
		Name:  strPtr("New Name"),
		Phone: strPtr("222"),
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Name != "New Name" || updated.Phone != "222" {
		t.Fatalf("name/phone = %q/%q, want New Name/222", updated.Name, updated.Phone)
	}
}

func TestUpdateProfileForbiddenForOtherUsers(t *testing.T) {
	users := newMockUserRepo()
	owner := users.add(&domain.User{Email: "owner@example.com", IsActive: true})
	other := users.add(&domain.User{Email: "other@example.com", Role: domain.RoleCandidate, IsActive: true})
	svc := NewAuthService(testAuthConfig(), users)

	_, err := svc.UpdateProfile(context.Background(), other, owner.ID, UpdateProfileInput{Name: strPtr("Hijack")})
	assertDomainError(t, err, "FORBIDDEN", http.StatusForbidden)
}

func TestUpdateProfileAdminMayEditAnyone(t *testing.T) {
	users := newMockUserRepo()
	owner := users.add(&domain.User{Name: "Owner", Email: "owner@example.com", IsActive: true})
	admin := users.add(&domain.User{Email: "admin@example.com", Role: domain.RoleAdmin, IsActive: true})
	svc := NewAuthService(testAuthConfig(), users)

	updated, err := svc.UpdateProfile(context.Background(), admin, owner.ID, UpdateProfileInput{Bio: strPtr("moderated")})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if updated.Bio != "moderated" {
		t.Fatalf("bio = %q, want moderated", updated.Bio)
	}
}

func TestChangePassword(t *testing.T) {
	users := newMockUserRepo()
	user := seedCredentialedUser(t, users, "alice@example.com", "oldpass123", true)
	svc := NewAuthService(testAuthConfig(), users)

	if err := svc.ChangePassword(context.Background(), user.ID, "wrong-pass", "newpass123"); err == nil {
		t.Fatal("ChangePassword accepted wrong current password")
	} else {
		assertDomainError(t, err, "INVALID_CREDENTIALS", http.StatusUnauthorized)
	}

	if err := svc.ChangePassword(context.Background(), user.ID, "oldpass123", "short"); err == nil {
		t.Fatal("ChangePassword accepted too-short new password")
	}

	if err := svc.ChangePassword(context.Background(), user.ID, "oldpass123", "newpass123"); err != nil {
		t.Fatalf("ChangePassword returned error: %v", err)
	}

	if _, _, _, err := svc.Login(context.Background(), "alice@example.com", "newpass123"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
	if _, _, _, err := svc.Login(context.Background(), "alice@example.com", "oldpass123"); err == nil {
		t.Fatal("login with old password still works")
	}
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewAuthService(testAuthConfig(), newMockUserRepo())

	_, err := svc.GetProfile(context.Background(), 9999)
	assertDomainError(t, err, "NOT_FOUND", http.StatusNotFound)
}
