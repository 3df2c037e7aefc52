package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/cache"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// JobService coordinates job posting workflows.
type JobService struct {
	jobs       repository.JobRepository
	views      *cache.ViewTracker
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewJobService constructs the service.
func NewJobService(jobs repository.JobRepository, views *cache.ViewTracker, dispatcher events.Dispatcher, logger *zap.Logger) *JobService {
	return &JobService{jobs: jobs, views: views, dispatcher: dispatcher, logger: logger}
}

// JobInput describes a job create/update payload.
type JobInput struct {
	Title            string
	Description      string
	Requirements     string
	Responsibilities string
	Company          string
	CompanyLogo      string
	Location         string
	Salary           string
	SalaryMin        *int
	SalaryMax        *int
	JobType          string
	Industry         string
	ExperienceLevel  string
	Deadline         *time.Time
	IsFeatured       bool
}

// ListJobs returns active postings matching the public filter.
func (s *JobService) ListJobs(ctx context.Context, filter repository.JobFilter) ([]domain.Job, int64, error) {
	filter.ActiveOnly = true
	jobs, total, err := s.jobs.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.MapError(err)
	}
	return jobs, total, nil
}

// GetJob fetches a posting and counts the view, de-duplicated per viewer.
func (s *JobService) GetJob(ctx context.Context, jobID int64, viewerKey string) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", nil)
		}
		return nil, apperrors.MapError(err)
	}

	count, err := s.views.ShouldCount(ctx, jobID, viewerKey)
	if err != nil {
		// Counting views is best effort; the read must not fail on it.
		s.logger.Warn("view tracking unavailable", zap.Error(err))
		count = true
	}
	if count {
		if err := s.jobs.IncrementViews(ctx, jobID); err != nil {
			s.logger.Warn("increment views failed", zap.Int64("job_id", jobID), zap.Error(err))
		} else {
			job.Views++
		}
	}
	return job, nil
}

// CreateJob creates a posting owned by the acting user.
func (s *JobService) CreateJob(ctx context.Context, actor *domain.User, input JobInput) (*domain.Job, error) {
	job, err := jobFromInput(input)
	if err != nil {
		return nil, err
	}
	job.IsActive = true
	job.CreatedBy = actor.ID

	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.Event{
		Type:    events.EventJobPosted,
		ActorID: actor.ID,
		Payload: events.JobPostedPayload{
			JobID:    job.ID,
			Title:    job.Title,
			Company:  job.Company,
			Location: job.Location,
		},
	})
	return job, nil
}

// UpdateJob replaces a posting's fields. Existence is checked before
// ownership; only the creator or an admin may update.
func (s *JobService) UpdateJob(ctx context.Context, actor *domain.User, jobID int64, input JobInput) (*domain.Job, error) {
	job, err := s.ownedJob(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}

	updated, err := jobFromInput(input)
	if err != nil {
		return nil, err
	}
	updated.ID = job.ID
	updated.CreatedBy = job.CreatedBy
	updated.IsActive = job.IsActive
	updated.Views = job.Views
	updated.PostedAt = job.PostedAt
	updated.Creator = job.Creator

	if err := s.jobs.Update(ctx, updated); err != nil {
		return nil, apperrors.MapError(err)
	}
	return updated, nil
}

// DeleteJob removes a posting. Existence before ownership.
func (s *JobService) DeleteJob(ctx context.Context, actor *domain.User, jobID int64) error {
	if _, err := s.ownedJob(ctx, actor, jobID); err != nil {
		return err
	}
	if err := s.jobs.Delete(ctx, jobID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// ToggleActive flips a posting's visibility. Existence before ownership.
func (s *JobService) ToggleActive(ctx context.Context, actor *domain.User, jobID int64) (*domain.Job, error) {
	job, err := s.ownedJob(ctx, actor, jobID)
	if err != nil {
		return nil, err
	}
	job.IsActive = !job.IsActive
	if err := s.jobs.Update(ctx, job); err != nil {
		return nil, apperrors.MapError(err)
	}
	return job, nil
}

// ListByEmployer returns every posting created by the given employer.
func (s *JobService) ListByEmployer(ctx context.Context, employerID int64) ([]domain.Job, error) {
	jobs, err := s.jobs.ListByCreator(ctx, employerID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return jobs, nil
}

func (s *JobService) ownedJob(ctx context.Context, actor *domain.User, jobID int64) (*domain.Job, error) {
	job, err := s.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", nil)
		}
		return nil, apperrors.MapError(err)
	}
	if job.CreatedBy != actor.ID && !actor.IsAdmin() {
		return nil, apperrors.NewForbidden("you can only manage your own jobs")
	}
	return job, nil
}

func (s *JobService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = time.Now()
	_ = s.dispatcher.Publish(ctx, event)
}

func jobFromInput(input JobInput) (*domain.Job, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" || input.Company == "" || input.Location == "" {
		return nil, apperrors.NewValidationError("title, description, company, and location are required", nil)
	}

	jobType := domain.JobTypeFullTime
	if input.JobType != "" {
		parsed, ok := domain.ParseJobType(input.JobType)
		if !ok {
			return nil, apperrors.NewValidationError("invalid job type", map[string]any{"jobType": input.JobType})
		}
		jobType = parsed
	}

	level := domain.ExperienceEntry
	if input.ExperienceLevel != "" {
		parsed, ok := domain.ParseExperienceLevel(input.ExperienceLevel)
		if !ok {
			return nil, apperrors.NewValidationError("invalid experience level", map[string]any{"experienceLevel": input.ExperienceLevel})
		}
		level = parsed
	}

	return &domain.Job{
		Title:            title,
		Description:      description,
		Requirements:     input.Requirements,
		Responsibilities: input.Responsibilities,
		Company:          input.Company,
		CompanyLogo:      input.CompanyLogo,
		Location:         input.Location,
		Salary:           input.Salary,
		SalaryMin:        input.SalaryMin,
		SalaryMax:        input.SalaryMax,
		JobType:          jobType,
		Industry:         input.Industry,
		ExperienceLevel:  level,
		Deadline:         input.Deadline,
		IsFeatured:       input.IsFeatured,
	}, nil
}
