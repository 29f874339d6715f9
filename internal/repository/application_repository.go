package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/ids"
)

// ApplicationRepository encapsulates job application persistence.
type ApplicationRepository interface {
	// Create inserts the application and increments the parent job's
	// applicationCount as a single atomic operation. It fails with
	// domain.ErrNotFound when the job does not exist and domain.ErrDuplicate
	// when the applicant already applied.
	Create(ctx context.Context, app *domain.JobApplication) error
	GetByID(ctx context.Context, id string) (*domain.JobApplication, error)
	ListByApplicant(ctx context.Context, email string) ([]domain.JobApplication, error)
	ListByJob(ctx context.Context, jobID string) ([]domain.JobApplication, error)
	// UpdateStatus moves the application from one status to another only if it
	// still holds from.
	UpdateStatus(ctx context.Context, id string, from, to domain.ApplicationStatus) (domain.UpdateResult, error)
}

const applicationColumns = `id, job_id, applicant_email, linkedin, github, resume, status, created_at, updated_at`

type applicationRepository struct {
	pool      *pgxpool.Pool
	table     string
	jobsTable string
}

// NewApplicationRepository returns a Postgres-backed implementation.
func NewApplicationRepository(pool *pgxpool.Pool, tables Tables) ApplicationRepository {
	tables = tables.withDefaults()
	return &applicationRepository{
		pool:      pool,
		table:     quoteIdent(tables.Applications),
		jobsTable: quoteIdent(tables.Jobs),
	}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.JobApplication) error {
	if app.ID == "" {
		app.ID = ids.New()
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	now := time.Now().UTC()
	app.CreatedAt, app.UpdatedAt = now, now

	insert := fmt.Sprintf(`
        INSERT INTO %s (%s)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`, r.table, applicationColumns)
	increment := fmt.Sprintf(`UPDATE %s SET application_count = application_count + 1 WHERE id=$1`, r.jobsTable)

	err := pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insert,
			app.ID,
			app.JobID,
			app.ApplicantEmail,
			app.LinkedIn,
			app.GitHub,
			app.Resume,
			app.Status,
			app.CreatedAt,
			app.UpdatedAt,
		); err != nil {
			return err
		}
		cmd, err := tx.Exec(ctx, increment, app.JobID)
		if err != nil {
			return err
		}
		if cmd.RowsAffected() == 0 {
			return pgx.ErrNoRows
		}
		return nil
	})
	return storeErr("insert application", err)
}

func (r *applicationRepository) GetByID(ctx context.Context, id string) (*domain.JobApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE id=$1`, applicationColumns, r.table)
	app, err := scanApplication(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, storeErr("get application", err)
	}
	return app, nil
}

func (r *applicationRepository) ListByApplicant(ctx context.Context, email string) ([]domain.JobApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE lower(applicant_email)=lower($1) ORDER BY id`, applicationColumns, r.table)
	return r.list(ctx, query, email)
}

func (r *applicationRepository) ListByJob(ctx context.Context, jobID string) ([]domain.JobApplication, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE job_id=$1 ORDER BY id`, applicationColumns, r.table)
	return r.list(ctx, query, jobID)
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, id string, from, to domain.ApplicationStatus) (domain.UpdateResult, error) {
	query := fmt.Sprintf(`UPDATE %s SET status=$2, updated_at=NOW() WHERE id=$1 AND status=$3`, r.table)
	cmd, err := r.pool.Exec(ctx, query, id, to, from)
	if err != nil {
		return domain.UpdateResult{}, storeErr("update application status", err)
	}
	n := cmd.RowsAffected()
	return domain.UpdateResult{MatchedCount: n, ModifiedCount: n}, nil
}

func (r *applicationRepository) list(ctx context.Context, query string, arg any) ([]domain.JobApplication, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, storeErr("list applications", err)
	}
	defer rows.Close()

	result := []domain.JobApplication{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, storeErr("scan application", err)
		}
		result = append(result, *app)
	}
	return result, storeErr("list applications", rows.Err())
}

func scanApplication(row pgx.Row) (*domain.JobApplication, error) {
	var app domain.JobApplication
	if err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.ApplicantEmail,
		&app.LinkedIn,
		&app.GitHub,
		&app.Resume,
		&app.Status,
		&app.CreatedAt,
		&app.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &app, nil
}
