package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// SavedJobRepository encapsulates saved-job bookmark persistence.
type SavedJobRepository interface {
	Create(ctx context.Context, saved *domain.SavedJob) error
	GetByID(ctx context.Context, id int64) (*domain.SavedJob, error)
	FindByUserAndJob(ctx context.Context, userID, jobID int64) (*domain.SavedJob, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.SavedJob, error)
	Delete(ctx context.Context, id int64) error
}

type savedJobRepository struct {
	pool *pgxpool.Pool
}

// NewSavedJobRepository instantiates repository.
func NewSavedJobRepository(pool *pgxpool.Pool) SavedJobRepository {
	return &savedJobRepository{pool: pool}
}

func (r *savedJobRepository) Create(ctx context.Context, saved *domain.SavedJob) error {
	const query = `
        INSERT INTO saved_jobs (user_id, job_id)
        VALUES ($1, $2)
        RETURNING id, saved_at`
	return r.pool.QueryRow(ctx, query, saved.UserID, saved.JobID).
		Scan(&saved.ID, &saved.SavedAt)
}

func (r *savedJobRepository) GetByID(ctx context.Context, id int64) (*domain.SavedJob, error) {
	const query = `SELECT id, user_id, job_id, saved_at FROM saved_jobs WHERE id=$1`
	var saved domain.SavedJob
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&saved.ID, &saved.UserID, &saved.JobID, &saved.SavedAt,
	); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *savedJobRepository) FindByUserAndJob(ctx context.Context, userID, jobID int64) (*domain.SavedJob, error) {
	const query = `SELECT id, user_id, job_id, saved_at FROM saved_jobs WHERE user_id=$1 AND job_id=$2`
	var saved domain.SavedJob
	if err := r.pool.QueryRow(ctx, query, userID, jobID).Scan(
		&saved.ID, &saved.UserID, &saved.JobID, &saved.SavedAt,
	); err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *savedJobRepository) ListByUser(ctx context.Context, userID int64) ([]domain.SavedJob, error) {
	const query = `
        SELECT s.id, s.user_id, s.job_id, s.saved_at, ` + jobColumns + `
        FROM saved_jobs s
        JOIN jobs j ON j.id = s.job_id
        JOIN users u ON u.id = j.created_by
        WHERE s.user_id=$1
        ORDER BY s.saved_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.SavedJob
	for rows.Next() {
		var saved domain.SavedJob
		var job domain.Job
		var creator domain.CreatorSummary
		if err := rows.Scan(
			&saved.ID,
			&saved.UserID,
			&saved.JobID,
			&saved.SavedAt,
			&job.ID,
			&job.Title,
			&job.Description,
			&job.Requirements,
			&job.Responsibilities,
			&job.Company,
			&job.CompanyLogo,
			&job.Location,
			&job.Salary,
			&job.SalaryMin,
			&job.SalaryMax,
			&job.JobType,
			&job.Industry,
			&job.ExperienceLevel,
			&job.Deadline,
			&job.IsActive,
			&job.IsFeatured,
			&job.Views,
			&job.CreatedBy,
			&job.PostedAt,
			&job.UpdatedAt,
			&creator.ID,
			&creator.Name,
			&creator.Email,
			&creator.CompanyName,
			&creator.CompanyWebsite,
		); err != nil {
			return nil, err
		}
		job.Creator = &creator
		saved.Job = &job
		result = append(result, saved)
	}
	return result, rows.Err()
}

func (r *savedJobRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM saved_jobs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
