package service

import (
	"context"
	"net/http"
	"testing"

	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
)

func newJobServiceForTest(jobs *mockJobRepo) (*JobService, *recordingDispatcher) {
	dispatcher := &recordingDispatcher{}
	return NewJobService(jobs, nil, dispatcher, zap.NewNop()), dispatcher
}

func employerUser(id int64) *domain.User {
	return &domain.User{ID: id, Role: domain.RoleEmployer, IsActive: true}
}

func activeJob(id, createdBy int64) *domain.Job {
	return &domain.Job{
		ID:          id,
		Title:       "Backend Engineer",
		Description: "Build services",
		Company:     "Acme",
		Location:    "Remote",
		JobType:     domain.JobTypeFullTime,
		IsActive:    true,
		CreatedBy:   createdBy,
	}
}

func TestCreateJobPublishesEvent(t *testing.T) {
	jobs := newMockJobRepo()
	svc, dispatcher := newJobServiceForTest(jobs)

	job, err := svc.CreateJob(context.Background(), employerUser(7), JobInput{
		Title:       "Backend Engineer",
		Description: "Build services",
		Company:     "Acme",
		Location:    "Remote",
	})
	if err != nil {
		t.Fatalf("CreateJob returned error: %v", err)
	}
	if job.CreatedBy != 7 {
		t.Fatalf("CreatedBy = %d, want 7", job.CreatedBy)
	}
	if !job.IsActive {
		t.Fatal("new job should be active")
	}
	if job.JobType != domain.JobTypeFullTime {
		t.Fatalf("job type = %q, want default full-time", job.JobType)
	}

	published := dispatcher.published()
	if len(published) != 1 || published[0].Type != events.EventJobPosted {
		t.Fatalf("published = %+v, want one job_posted event", published)
	}
	if published[0].ID == "" {
		t.Fatal("event id not assigned")
	}
}

func TestCreateJobValidation(t *testing.T) {
	svc, _ := newJobServiceForTest(newMockJobRepo())

	cases := []struct {
		name  string
		input JobInput
	}{
		{"missing title", JobInput{Description: "d", Company: "c", Location: "l"}},
		{"blank title", JobInput{Title: "   ", Description: "d", Company: "c", Location: "l"}},
		{"missing company", JobInput{Title: "t", Description: "d", Location: "l"}},
		{"bad job type", JobInput{Title: "t", Description: "d", Company: "c", Location: "l", JobType: "gig"}},
		{"bad experience level", JobInput{Title: "t", Description: "d", Company: "c", Location: "l", ExperienceLevel: "guru"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateJob(context.Background(), employerUser(1), tc.input)
			assertDomainError(t, err, "VALIDATION_FAILED", http.StatusBadRequest)
		})
	}
}

func TestUpdateJobMissingAnswersNotFoundBeforeOwnership(t *testing.T) {
	svc, _ := newJobServiceForTest(newMockJobRepo())

	// A stranger probing a nonexistent id learns 404, never 403.
	_, err := svc.UpdateJob(context.Background(), employerUser(99), 12345, JobInput{
		Title: "t", Description: "d", Company: "c", Location: "l",
	})
	assertDomainError(t, err, "NOT_FOUND", http.StatusNotFound)
}

func TestUpdateJobForbiddenForNonOwner(t *testing.T) {
	jobs := newMockJobRepo()
	jobs.add(activeJob(1, 7))
	svc, _ := newJobServiceForTest(jobs)

	_, err := svc.UpdateJob(context.Background(), employerUser(8), 1, JobInput{
		Title: "t", Description: "d", Company: "c", Location: "l",
	})
	assertDomainError(t, err, "FORBIDDEN", http.StatusForbidden)
}

func TestUpdateJobPreservesOwnershipAndCounters(t *testing.T) {
	jobs := newMockJobRepo()
	existing := activeJob(1, 7)
	existing.Views = 12
	jobs.add(existing)
	svc, _ := newJobServiceForTest(jobs)

	updated, err := svc.UpdateJob(context.Background(), employerUser(7), 1, JobInput{
		Title: "Staff Engineer", Description: "d", Company: "c", Location: "l",
	})
	if err != nil {
		t.Fatalf("UpdateJob returned error: %v", err)
	}
	if updated.Title != "Staff Engineer" {
		t.Fatalf("title = %q", updated.Title)
	}
	if updated.CreatedBy != 7 || updated.Views != 12 {
		t.Fatalf("CreatedBy/Views = %d/%d, want 7/12", updated.CreatedBy, updated.Views)
	}
}

func TestUpdateJobAdminMayEdit(t *testing.T) {
	jobs := newMockJobRepo()
	jobs.add(activeJob(1, 7))
	svc, _ := newJobServiceForTest(jobs)

	admin := &domain.User{ID: 100, Role: domain.RoleAdmin, IsActive: true}
	if _, err := svc.UpdateJob(context.Background(), admin, 1, JobInput{
		Title: "t", Description: "d", Company: "c", Location: "l",
	}); err != nil {
		t.Fatalf("admin update failed: %v", err)
	}
}

func TestDeleteJobForbiddenForNonOwner(t *testing.T) {
	jobs := newMockJobRepo()
	jobs.add(activeJob(1, 7))
	svc, _ := newJobServiceForTest(jobs)

	err := svc.DeleteJob(context.Background(), employerUser(8), 1)
	assertDomainError(t, err, "FORBIDDEN", http.StatusForbidden)

	if err := svc.DeleteJob(context.Background(), employerUser(7), 1); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if _, err := jobs.GetByID(context.Background(), 1); err == nil {
		t.Fatal("job still present after delete")
	}
}

func TestToggleActiveFlips(t *testing.T) {
	jobs := newMockJobRepo()
	jobs.add(activeJob(1, 7))
	svc, _ := newJobServiceForTest(jobs)

	job, err := svc.ToggleActive(context.Background(), employerUser(7), 1)
	if err != nil {
		t.Fatalf("ToggleActive returned error: %v", err)
	}
	if job.IsActive {
		t.Fatal("job should be inactive after toggle")
	}

	job, err = svc.ToggleActive(context.Background(), employerUser(7), 1)
	if err != nil {
		t.Fatalf("ToggleActive returned error: %v", err)
	}
	if !job.IsActive {
		t.Fatal("job should be active after second toggle")
	}
}

func TestListJobsOnlyActive(t *testing.T) {
	jobs := newMockJobRepo()
	jobs.add(activeJob(1, 7))
	inactive := activeJob(2, 7)
	inactive.IsActive = false
	jobs.add(inactive)
	svc, _ := newJobServiceForTest(jobs)

	listed, total, err := svc.ListJobs(context.Background(), repository.JobFilter{})
	if err != nil {
		t.Fatalf("ListJobs returned error: %v", err)
	}
	if total != 1 || len(listed) != 1 || listed[0].ID != 1 {
		t.Fatalf("listed = %+v (total %d), want only job 1", listed, total)
	}
}

func TestGetJobCountsView(t *testing.T) {
	jobs := newMockJobRepo()
	jobs.add(activeJob(1, 7))
	svc, _ := newJobServiceForTest(jobs)

	job, err := svc.GetJob(context.Background(), 1, "viewer-a")
	if err != nil {
		t.Fatalf("GetJob returned error: %v", err)
	}
	if job.Views != 1 {
		t.Fatalf("views = %d, want 1", job.Views)
	}

	_, err = svc.GetJob(context.Background(), 404, "viewer-a")
	assertDomainError(t, err, "NOT_FOUND", http.StatusNotFound)
}
