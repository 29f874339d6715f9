package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/job-portal/internal/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// Tables names the collections backing jobs and applications.
type Tables struct {
	Jobs         string
	Applications string
}

// DefaultTables returns the table names used when none are configured.
func DefaultTables() Tables {
	return Tables{Jobs: "jobs", Applications: "job_applications"}
}

func (t Tables) withDefaults() Tables {
	def := DefaultTables()
	if strings.TrimSpace(t.Jobs) == "" {
		t.Jobs = def.Jobs
	}
	if strings.TrimSpace(t.Applications) == "" {
		t.Applications = def.Applications
	}
	return t
}

// MigrationData exposes sanitized identifiers for SQL migration templates.
func (t Tables) MigrationData() map[string]string {
	t = t.withDefaults()
	return map[string]string{
		"Jobs":                    quoteIdent(t.Jobs),
		"Applications":            quoteIdent(t.Applications),
		"JobsHREmailIndex":        quoteIdent(t.Jobs + "_hr_email_idx"),
		"JobsSalaryIndex":         quoteIdent(t.Jobs + "_salary_min_idx"),
		"ApplicationsJobIndex":    quoteIdent(t.Applications + "_job_id_idx"),
		"ApplicationsUniqueIndex": quoteIdent(t.Applications + "_job_applicant_key"),
	}
}

func quoteIdent(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// storeErr translates driver errors into domain sentinels.
func storeErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
		case pgForeignKeyViolation:
			return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
		}
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.Timeout(err) {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
