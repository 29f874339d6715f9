package repository

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-portal/internal/domain"
)

func TestBuildJobListQuery(t *testing.T) {
	email := "hr@a.com"
	minSalary, maxSalary := int64(1000), int64(5000)

	query, args := buildJobListQuery(`"jobs"`, domain.JobFilter{
		HREmail:          &email,
		LocationSearch:   "100%_remote",
		MinSalary:        &minSalary,
		MaxSalary:        &maxSalary,
		SortBySalaryDesc: true,
	})

	require.Contains(t, query, `FROM "jobs"`)
	require.Contains(t, query, "lower(hr_email)=lower($1)")
	require.Contains(t, query, "location ILIKE $2")
	require.Contains(t, query, "salary_min >= $3")
	require.Contains(t, query, "salary_max <= $4")
	require.True(t, strings.HasSuffix(query, "ORDER BY salary_min DESC, id ASC"))
	require.Equal(t, []any{"hr@a.com", `%100\%\_remote%`, int64(1000), int64(5000)}, args)
}

func TestBuildJobListQueryNoFilters(t *testing.T) {
	query, args := buildJobListQuery(`"jobs"`, domain.JobFilter{})
	require.Contains(t, query, "WHERE 1=1 ORDER BY id ASC")
	require.Empty(t, args)
}

func TestTablesMigrationDataQuotesIdentifiers(t *testing.T) {
	data := Tables{Jobs: `my"jobs`}.MigrationData()
	require.Equal(t, `"my""jobs"`, data["Jobs"])
	require.Equal(t, `"job_applications"`, data["Applications"])
}
