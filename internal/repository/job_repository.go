package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/ids"
)

// JobRepository encapsulates job persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	GetByID(ctx context.Context, id string) (*domain.Job, error)
	List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error)
}

const jobColumns = `id, title, location, job_type, field, application_deadline,
        salary_min, salary_max, salary_currency, description, company, company_logo,
        requirements, responsibilities, status, hr_name, hr_email, application_count`

type jobRepository struct {
	pool  *pgxpool.Pool
	table string
}

// NewJobRepository returns a Postgres-backed implementation.
func NewJobRepository(pool *pgxpool.Pool, tables Tables) JobRepository {
	return &jobRepository{pool: pool, table: quoteIdent(tables.withDefaults().Jobs)}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	if job.ID == "" {
		job.ID = ids.New()
	}
	query := fmt.Sprintf(`
        INSERT INTO %s (%s)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`, r.table, jobColumns)
	_, err := r.pool.Exec(ctx, query,
		job.ID,
		job.Title,
		job.Location,
		job.Type,
		job.Field,
		job.ApplicationDeadline,
		job.SalaryRange.Min,
		job.SalaryRange.Max,
		job.SalaryRange.Currency,
		job.Description,
		job.Company,
		job.CompanyLogo,
		nonNil(job.Requirements),
		nonNil(job.Responsibilities),
		job.Status,
		job.HRName,
		job.HREmail,
		job.ApplicationCount,
	)
	return storeErr("insert job", err)
}

func (r *jobRepository) GetByID(ctx context.Context, id string) (*domain.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id=$1`, jobColumns, r.table)
	job, err := scanJob(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, storeErr("get job", err)
	}
	return job, nil
}

func (r *jobRepository) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	query, args := buildJobListQuery(r.table, filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, storeErr("list jobs", err)
	}
	defer rows.Close()

	result := []domain.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, storeErr("scan job", err)
		}
		result = append(result, *job)
	}
	return result, storeErr("list jobs", rows.Err())
}

func buildJobListQuery(table string, filter domain.JobFilter) (string, []any) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.HREmail != nil {
		args = append(args, strings.TrimSpace(*filter.HREmail))
		clauses = append(clauses, fmt.Sprintf("lower(hr_email)=lower($%d)", len(args)))
	}
	if search := strings.TrimSpace(filter.LocationSearch); search != "" {
		args = append(args, "%"+escapeLike(search)+"%")
		clauses = append(clauses, fmt.Sprintf("location ILIKE $%d", len(args)))
	}
	if filter.MinSalary != nil {
		args = append(args, *filter.MinSalary)
		clauses = append(clauses, fmt.Sprintf("salary_min >= $%d", len(args)))
	}
	if filter.MaxSalary != nil {
		args = append(args, *filter.MaxSalary)
		clauses = append(clauses, fmt.Sprintf("salary_max <= $%d", len(args)))
	}

	order := "id ASC"
	if filter.SortBySalaryDesc {
		order = "salary_min DESC, id ASC"
	}

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ORDER BY %s`,
		jobColumns, table, strings.Join(clauses, " AND "), order)
	return query, args
}

func scanJob(row pgx.Row) (*domain.Job, error) {
	var job domain.Job
	if err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Location,
		&job.Type,
		&job.Field,
		&job.ApplicationDeadline,
		&job.SalaryRange.Min,
		&job.SalaryRange.Max,
		&job.SalaryRange.Currency,
		&job.Description,
		&job.Company,
		&job.CompanyLogo,
		&job.Requirements,
		&job.Responsibilities,
		&job.Status,
		&job.HRName,
		&job.HREmail,
		&job.ApplicationCount,
	); err != nil {
		return nil, err
	}
	return &job, nil
}
