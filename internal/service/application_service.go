package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// ApplicationService coordinates the application pipeline.
type ApplicationService struct {
	applications repository.ApplicationRepository
	jobs         repository.JobRepository
	dispatcher   events.Dispatcher
}

// NewApplicationService constructs the service.
func NewApplicationService(applications repository.ApplicationRepository, jobs repository.JobRepository, dispatcher events.Dispatcher) *ApplicationService {
	return &ApplicationService{applications: applications, jobs: jobs, dispatcher: dispatcher}
}

// ApplicationInput describes an application submission.
type ApplicationInput struct {
	JobID       int64
	FullName    string
	Email       string
	Phone       string
	Education   string
	Experience  string
	Skills      string
	ResumeURL   string
	CoverLetter string
}

// Submit files an application for the acting candidate. A candidate applies
// to a given job at most once.
func (s *ApplicationService) Submit(ctx context.Context, actor *domain.User, input ApplicationInput) (*domain.Application, error) {
	if input.FullName == "" || input.Email == "" || input.Phone == "" {
		return nil, apperrors.NewValidationError("full name, email, and phone are required", nil)
	}

	job, err := s.jobs.GetByID(ctx, input.JobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if !job.IsActive {
		return nil, apperrors.NewValidationError("job is no longer accepting applications", nil)
	}

	if _, err := s.applications.FindByJobAndApplicant(ctx, input.JobID, actor.ID); err == nil {
		return nil, apperrors.NewConflict("you have already applied for this job", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	app := &domain.Application{
		JobID:       input.JobID,
		ApplicantID: actor.ID,
		FullName:    input.FullName,
		Email:       input.Email,
		Phone:       input.Phone,
		Education:   input.Education,
		Experience:  input.Experience,
		Skills:      input.Skills,
		ResumeURL:   input.ResumeURL,
		CoverLetter: input.CoverLetter,
		Status:      domain.ApplicationPending,
	}
	if err := s.applications.Create(ctx, app); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventApplicationSubmitted,
		ActorID: actor.ID,
		Payload: events.ApplicationSubmittedPayload{
			ApplicationID: app.ID,
			JobID:         job.ID,
			ApplicantID:   actor.ID,
			JobOwnerID:    job.CreatedBy,
		},
	})
	return app, nil
}

// ListForJob returns a job's applications for its owner or an admin.
// Existence is checked before ownership.
func (s *ApplicationService) ListForJob(ctx context.Context, actor *domain.User, jobID int64, status *domain.ApplicationStatus) ([]domain.Application, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if job.CreatedBy != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("you can only view applications for your own jobs")
	}

	apps, err := s.applications.ListByJob(ctx, jobID, status)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return apps, nil
}

// ListForUser returns a user's own applications; admins may view anyone's.
func (s *ApplicationService) ListForUser(ctx context.Context, actor *domain.User, userID int64) ([]domain.Application, error) {
	if !actor.CanActFor(userID) {
		return nil, apperrors.NewForbidden("you can only view your own applications")
	}
	apps, err := s.applications.ListByApplicant(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return apps, nil
}

// Get fetches one application, visible to the applicant, the job owner, or
// an admin.
func (s *ApplicationService) Get(ctx context.Context, actor *domain.User, appID int64) (*domain.Application, error) {
	app, job, err := s.applicationWithJob(ctx, appID)
	if err != nil {
		return nil, err
	}
	if app.ApplicantID != actor.ID && job.CreatedBy != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("access denied")
	}
	app.Job = job
	return app, nil
}

// UpdateStatus moves an application through the pipeline. Only the owner of
// the job it targets, or an admin, may change status.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actor *domain.User, appID int64, rawStatus string) (*domain.Application, error) {
	status, ok := domain.ParseApplicationStatus(rawStatus)
	if !ok {
		return nil, apperrors.NewValidationError("invalid application status", map[string]any{"status": rawStatus})
	}

	app, job, err := s.applicationWithJob(ctx, appID)
	if err != nil {
		return nil, err
	}
	if job.CreatedBy != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("you can only manage applications for your own jobs")
	}

	oldStatus := app.Status
	if err := s.applications.UpdateStatus(ctx, appID, status); err != nil {
		return nil, apperrors.MapError(err)
	}
	app.Status = status

	s.publish(ctx, events.Event{
		Type:    events.EventApplicationStatusChanged,
		ActorID: actor.ID,
		Payload: events.ApplicationStatusChangedPayload{
			ApplicationID: app.ID,
			JobID:         app.JobID,
			ApplicantID:   app.ApplicantID,
			OldStatus:     oldStatus,
			NewStatus:     status,
		},
	})
	return app, nil
}

// Delete withdraws an application. Only the applicant or an admin may do so.
func (s *ApplicationService) Delete(ctx context.Context, actor *domain.User, appID int64) error {
	app, err := s.applications.GetByID(ctx, appID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("application", nil)
		}
		return apperrors.MapError(err)
	}
	if app.ApplicantID != actor.ID && !actor.IsAdmin() {
		return apperrors.NewForbidden("you can only withdraw your own applications")
	}
	if err := s.applications.Delete(ctx, appID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// StatsForEmployer aggregates application counts across an employer's jobs.
// Employers see their own numbers; admins see anyone's.
func (s *ApplicationService) StatsForEmployer(ctx context.Context, actor *domain.User, employerID int64) (*domain.ApplicationStats, error) {
	if !actor.CanActFor(employerID) {
		return nil, apperrors.NewForbidden("you can only view your own statistics")
	}
	stats, err := s.applications.StatsForCreator(ctx, employerID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return stats, nil
}

func (s *ApplicationService) applicationWithJob(ctx context.Context, appID int64) (*domain.Application, *domain.Job, error) {
	app, err := s.applications.GetByID(ctx, appID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound("application", nil)
		}
		return nil, nil, apperrors.MapError(err)
	}
	job, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		return nil, nil, apperrors.MapError(err)
	}
	return app, job, nil
}

func (s *ApplicationService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}
