package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// JobFilter captures public job search parameters.
type JobFilter struct {
	Search          *string
	Location        *string
	JobType         *domain.JobType
	Industry        *string
	ExperienceLevel *domain.ExperienceLevel
	SalaryMin       *int
	SalaryMax       *int
	FeaturedOnly    bool
	ActiveOnly      bool
	Limit           int
	Offset          int
}

// JobRepository encapsulates job posting persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	Update(ctx context.Context, job *domain.Job) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	ListWithFilter(ctx context.Context, filter JobFilter) ([]domain.Job, int64, error)
	ListByCreator(ctx context.Context, creatorID int64) ([]domain.Job, error)
	IncrementViews(ctx context.Context, id int64) error
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

const jobColumns = `j.id, j.title, j.description, j.requirements, j.responsibilities,
               j.company, j.company_logo, j.location, j.salary, j.salary_min, j.salary_max,
               j.job_type, j.industry, j.experience_level, j.deadline, j.is_active,
               j.is_featured, j.views, j.created_by, j.posted_at, j.updated_at,
               u.id, u.name, u.email, u.company_name, u.company_website`

const jobSelect = `SELECT ` + jobColumns + ` FROM jobs j JOIN users u ON u.id = j.created_by`

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (title, description, requirements, responsibilities, company,
            company_logo, location, salary, salary_min, salary_max, job_type, industry,
            experience_level, deadline, is_active, is_featured, created_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
        RETURNING id, views, posted_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		job.Title,
		job.Description,
		job.Requirements,
		job.Responsibilities,
		job.Company,
		job.CompanyLogo,
		job.Location,
		job.Salary,
		job.SalaryMin,
		job.SalaryMax,
		job.JobType,
		job.Industry,
		job.ExperienceLevel,
		job.Deadline,
		job.IsActive,
		job.IsFeatured,
		job.CreatedBy,
	).Scan(&job.ID, &job.Views, &job.PostedAt, &job.UpdatedAt)
}

func (r *jobRepository) Update(ctx context.Context, job *domain.Job) error {
	const query = `
        UPDATE jobs SET title=$1, description=$2, requirements=$3, responsibilities=$4,
            company=$5, company_logo=$6, location=$7, salary=$8, salary_min=$9,
            salary_max=$10, job_type=$11, industry=$12, experience_level=$13,
            deadline=$14, is_active=$15, is_featured=$16, updated_at=NOW()
        WHERE id=$17`

	cmd, err := r.pool.Exec(ctx, query,
		job.Title,
		job.Description,
		job.Requirements,
		job.Responsibilities,
		job.Company,
		job.CompanyLogo,
		job.Location,
		job.Salary,
		job.SalaryMin,
		job.SalaryMax,
		job.JobType,
		job.Industry,
		job.ExperienceLevel,
		job.Deadline,
		job.IsActive,
		job.IsFeatured,
		job.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM jobs WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *jobRepository) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	query := jobSelect + ` WHERE j.id=$1`
	var job domain.Job
	if err := scanJob(r.pool.QueryRow(ctx, query, id), &job); err != nil {
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) ListWithFilter(ctx context.Context, filter JobFilter) ([]domain.Job, int64, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.ActiveOnly {
		clauses = append(clauses, "j.is_active = TRUE")
	}
	if filter.Search != nil && strings.TrimSpace(*filter.Search) != "" {
		search := "%" + strings.ToLower(strings.TrimSpace(*filter.Search)) + "%"
		args = append(args, search)
		placeholder := fmt.Sprintf("$%d", len(args))
		clauses = append(clauses, fmt.Sprintf(
			"(LOWER(j.title) LIKE %s OR LOWER(j.description) LIKE %s OR LOWER(j.company) LIKE %s)",
			placeholder, placeholder, placeholder))
	}
	if filter.Location != nil && *filter.Location != "" {
		args = append(args, "%"+strings.ToLower(*filter.Location)+"%")
		clauses = append(clauses, fmt.Sprintf("LOWER(j.location) LIKE $%d", len(args)))
	}
	if filter.JobType != nil {
		args = append(args, *filter.JobType)
		clauses = append(clauses, fmt.Sprintf("j.job_type=$%d", len(args)))
	}
	if filter.Industry != nil && *filter.Industry != "" {
		args = append(args, "%"+strings.ToLower(*filter.Industry)+"%")
		clauses = append(clauses, fmt.Sprintf("LOWER(j.industry) LIKE $%d", len(args)))
	}
	if filter.ExperienceLevel != nil {
		args = append(args, *filter.ExperienceLevel)
		clauses = append(clauses, fmt.Sprintf("j.experience_level=$%d", len(args)))
	}
	if filter.SalaryMin != nil {
		args = append(args, *filter.SalaryMin)
		clauses = append(clauses, fmt.Sprintf("j.salary_min >= $%d", len(args)))
	}
	if filter.SalaryMax != nil {
		args = append(args, *filter.SalaryMax)
		clauses = append(clauses, fmt.Sprintf("j.salary_max <= $%d", len(args)))
	}
	if filter.FeaturedOnly {
		clauses = append(clauses, "j.is_featured = TRUE")
	}

	where := strings.Join(clauses, " AND ")

	var total int64
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM jobs j WHERE %s`, where)
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY j.posted_at DESC LIMIT %d OFFSET %d`,
		jobSelect, where, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	jobs, err := scanJobs(rows)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func (r *jobRepository) ListByCreator(ctx context.Context, creatorID int64) ([]domain.Job, error) {
	query := jobSelect + ` WHERE j.created_by=$1 ORDER BY j.posted_at DESC`
	rows, err := r.pool.Query(ctx, query, creatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func (r *jobRepository) IncrementViews(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE jobs SET views = views + 1 WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanJob(row pgx.Row, job *domain.Job) error {
	var creator domain.CreatorSummary
	if err := row.Scan(
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
		return err
	}
	job.Creator = &creator
	return nil
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	var result []domain.Job
	for rows.Next() {
		var job domain.Job
		if err := scanJob(rows, &job); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}
