package domain

import "testing"

func TestParseRole(t *testing.T) {
	for _, raw := range []string{"candidate", "employer", "admin"} {
		if _, ok := ParseRole(raw); !ok {
			t.Fatalf("ParseRole(%q) rejected a valid role", raw)
		}
	}
	for _, raw := range []string{"", "Candidate", "superuser", "seeker"} {
		if _, ok := ParseRole(raw); ok {
			t.Fatalf("ParseRole(%q) accepted an invalid role", raw)
		}
	}
}

func TestParseJobType(t *testing.T) {
	if jt, ok := ParseJobType("Remote"); !ok || jt != JobTypeRemote {
		t.Fatalf("ParseJobType(Remote) = (%q, %v)", jt, ok)
	}
	for _, raw := range []string{"remote", "gig", ""} {
		if _, ok := ParseJobType(raw); ok {
			t.Fatalf("ParseJobType(%q) accepted an invalid type", raw)
		}
	}
}

func TestParseApplicationStatus(t *testing.T) {
	if st, ok := ParseApplicationStatus("Interview Scheduled"); !ok || st != ApplicationInterview {
		t.Fatalf("ParseApplicationStatus = (%q, %v)", st, ok)
	}
	for _, raw := range []string{"pending", "Promoted", ""} {
		if _, ok := ParseApplicationStatus(raw); ok {
			t.Fatalf("ParseApplicationStatus(%q) accepted an invalid status", raw)
		}
	}
}

func TestCanActFor(t *testing.T) {
	owner := &User{ID: 3, Role: RoleCandidate}
	if !owner.CanActFor(3) {
		t.Fatal("user cannot act for themself")
	}
	if owner.CanActFor(4) {
		t.Fatal("non-admin may act for another user")
	}

	admin := &User{ID: 100, Role: RoleAdmin}
	if !admin.CanActFor(4) {
		t.Fatal("admin may act for any user")
	}
}

func TestPublicViewOmitsPassword(t *testing.T) {
	u := &User{
		ID:           3,
		Name:         "Alice",
		Email:        "alice@example.com",
		PasswordHash: "$2a$10$something",
		Role:         RoleCandidate,
	}
	view := u.Public()
	if view.ID != 3 || view.Name != "Alice" || view.Email != "alice@example.com" {
		t.Fatalf("public view = %+v", view)
	}
}
