package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util"
)

// SavedJobService manages job bookmarks.
type SavedJobService struct {
	saved repository.SavedJobRepository
	jobs  repository.JobRepository
}

// NewSavedJobService constructs the service.
func NewSavedJobService(saved repository.SavedJobRepository, jobs repository.JobRepository) *SavedJobService {
	return &SavedJobService{saved: saved, jobs: jobs}
}

// Save bookmarks a job for the acting user. Saving twice is a conflict.
func (s *SavedJobService) Save(ctx context.Context, actor *domain.User, jobID int64) (*domain.SavedJob, error) {
	if _, err := s.jobs.GetByID(ctx, jobID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("job", nil)
		}
		return nil, apperrors.MapError(err)
	}

	if _, err := s.saved.FindByUserAndJob(ctx, actor.ID, jobID); err == nil {
		return nil, apperrors.NewConflict("job already saved", nil)
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.MapError(err)
	}

	saved := &domain.SavedJob{UserID: actor.ID, JobID: jobID}
	if err := s.saved.Create(ctx, saved); err != nil {
		return nil, apperrors.MapError(err)
	}
	return saved, nil
}

// ListForUser returns a user's bookmarks; admins may view anyone's.
func (s *SavedJobService) ListForUser(ctx context.Context, actor *domain.User, userID int64) ([]domain.SavedJob, error) {
	if !actor.CanActFor(userID) {
		return nil, apperrors.NewForbidden("you can only view your own saved jobs")
	}
	saved, err := s.saved.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return saved, nil
}

// Remove deletes a bookmark. Existence before ownership.
func (s *SavedJobService) Remove(ctx context.Context, actor *domain.User, savedID int64) error {
	saved, err := s.saved.GetByID(ctx, savedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("saved job", nil)
		}
		return apperrors.MapError(err)
	}
	if saved.UserID != actor.ID && !actor.IsAdmin() {
		return apperrors.NewForbidden("you can only remove your own saved jobs")
	}
	if err := s.saved.Delete(ctx, savedID); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// Check reports whether the acting user has saved the given job.
func (s *SavedJobService) Check(ctx context.Context, actor *domain.User, jobID int64) (bool, int64, error) {
	saved, err := s.saved.FindByUserAndJob(ctx, actor.ID, jobID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, 0, nil
		}
		return false, 0, apperrors.MapError(err)
	}
	return true, saved.ID, nil
}
