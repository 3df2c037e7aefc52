package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// ApplicationRepository encapsulates application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	FindByJobAndApplicant(ctx context.Context, jobID, applicantID int64) (*domain.Application, error)
	ListByJob(ctx context.Context, jobID int64, status *domain.ApplicationStatus) ([]domain.Application, error)
	ListByApplicant(ctx context.Context, applicantID int64) ([]domain.Application, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error
	Delete(ctx context.Context, id int64) error
	StatsForCreator(ctx context.Context, creatorID int64) (*domain.ApplicationStats, error)
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository instantiates repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

const applicationColumns = `a.id, a.job_id, a.applicant_id, a.full_name, a.email, a.phone,
               a.education, a.experience, a.skills, a.resume_url, a.cover_letter,
               a.status, a.applied_at, a.updated_at`

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	const query = `
        INSERT INTO applications (job_id, applicant_id, full_name, email, phone,
            education, experience, skills, resume_url, cover_letter, status)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, applied_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		app.JobID,
		app.ApplicantID,
		app.FullName,
		app.Email,
		app.Phone,
		app.Education,
		app.Experience,
		app.Skills,
		app.ResumeURL,
		app.CoverLetter,
		app.Status,
	).Scan(&app.ID, &app.AppliedAt, &app.UpdatedAt)
}

func (r *applicationRepository) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	const query = `SELECT ` + applicationColumns + ` FROM applications a WHERE a.id=$1`
	var app domain.Application
	if err := scanApplication(r.pool.QueryRow(ctx, query, id), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) FindByJobAndApplicant(ctx context.Context, jobID, applicantID int64) (*domain.Application, error) {
	const query = `SELECT ` + applicationColumns + `
        FROM applications a WHERE a.job_id=$1 AND a.applicant_id=$2`
	var app domain.Application
	if err := scanApplication(r.pool.QueryRow(ctx, query, jobID, applicantID), &app); err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID int64, status *domain.ApplicationStatus) ([]domain.Application, error) {
	clauses := []string{"a.job_id=$1"}
	args := []any{jobID}
	if status != nil {
		args = append(args, *status)
		clauses = append(clauses, fmt.Sprintf("a.status=$%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT `+applicationColumns+`
        FROM applications a WHERE %s ORDER BY a.applied_at DESC`,
		strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, applicantID int64) ([]domain.Application, error) {
	const query = `SELECT ` + applicationColumns + `
        FROM applications a WHERE a.applicant_id=$1 ORDER BY a.applied_at DESC`
	rows, err := r.pool.Query(ctx, query, applicantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	cmd, err := r.pool.Exec(ctx,
		`UPDATE applications SET status=$1, updated_at=NOW() WHERE id=$2`, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM applications WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *applicationRepository) StatsForCreator(ctx context.Context, creatorID int64) (*domain.ApplicationStats, error) {
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE a.status='Pending'),
               COUNT(*) FILTER (WHERE a.status='Under Review'),
               COUNT(*) FILTER (WHERE a.status='Shortlisted'),
               COUNT(*) FILTER (WHERE a.status='Interview Scheduled')
        FROM applications a
        JOIN jobs j ON j.id = a.job_id
        WHERE j.created_by=$1`

	var stats domain.ApplicationStats
	if err := r.pool.QueryRow(ctx, query, creatorID).Scan(
		&stats.Total,
		&stats.Pending,
		&stats.UnderReview,
		&stats.Shortlisted,
		&stats.Interviewed,
	); err != nil {
		return nil, err
	}
	return &stats, nil
}

func scanApplication(row pgx.Row, app *domain.Application) error {
	return row.Scan(
		&app.ID,
		&app.JobID,
		&app.ApplicantID,
		&app.FullName,
		&app.Email,
		&app.Phone,
		&app.Education,
		&app.Experience,
		&app.Skills,
		&app.ResumeURL,
		&app.CoverLetter,
		&app.Status,
		&app.AppliedAt,
		&app.UpdatedAt,
	)
}

func scanApplications(rows pgx.Rows) ([]domain.Application, error) {
	var result []domain.Application
	for rows.Next() {
		var app domain.Application
		if err := scanApplication(rows, &app); err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}
