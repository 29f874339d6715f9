package repository_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/repository"
)

func seedJob(t *testing.T, jobs repository.JobRepository, job domain.Job) domain.Job {
	t.Helper()
	require.NoError(t, jobs.Create(context.Background(), &job))
	return job
}

func int64Ptr(v int64) *int64 { return &v }

func strPtr(v string) *string { return &v }

func TestMemoryJobsListFilters(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	jobs := store.Jobs()

	dhaka := seedJob(t, jobs, domain.Job{Title: "Go dev", Location: "Dhaka, Bangladesh", HREmail: "hr@a.com",
		SalaryRange: domain.SalaryRange{Min: 40000, Max: 60000, Currency: "bdt"}})
	remote := seedJob(t, jobs, domain.Job{Title: "SRE", Location: "Remote", HREmail: "hr@b.com",
		SalaryRange: domain.SalaryRange{Min: 80000, Max: 120000, Currency: "bdt"}})
	ctg := seedJob(t, jobs, domain.Job{Title: "QA", Location: "Chattogram", HREmail: "HR@a.com",
		SalaryRange: domain.SalaryRange{Min: 20000, Max: 30000, Currency: "bdt"}})

	all, err := jobs.List(ctx, domain.JobFilter{})
	require.NoError(t, err)
	require.Equal(t, []string{dhaka.ID, remote.ID, ctg.ID}, jobIDs(all))

	byOwner, err := jobs.List(ctx, domain.JobFilter{HREmail: strPtr("hr@a.com")})
	require.NoError(t, err)
	require.Equal(t, []string{dhaka.ID, ctg.ID}, jobIDs(byOwner))

	bySearch, err := jobs.List(ctx, domain.JobFilter{LocationSearch: "dHAKA"})
	require.NoError(t, err)
	require.Equal(t, []string{dhaka.ID}, jobIDs(bySearch))

	bySalary, err := jobs.List(ctx, domain.JobFilter{MinSalary: int64Ptr(30000), MaxSalary: int64Ptr(100000)})
	require.NoError(t, err)
	require.Equal(t, []string{dhaka.ID}, jobIDs(bySalary))

	sorted, err := jobs.List(ctx, domain.JobFilter{SortBySalaryDesc: true})
	require.NoError(t, err)
	require.Equal(t, []string{remote.ID, dhaka.ID, ctg.ID}, jobIDs(sorted))
}

func TestMemoryJobsGetMissing(t *testing.T) {
	store := repository.NewMemoryStore()
	_, err := store.Jobs().GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryApplicationCreateIncrementsCount(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	job := seedJob(t, store.Jobs(), domain.Job{Title: "Go dev", HREmail: "hr@a.com"})

	app := domain.JobApplication{JobID: job.ID, ApplicantEmail: "a@x.com"}
	require.NoError(t, store.Applications().Create(ctx, &app))
	require.Equal(t, domain.ApplicationStatusPending, app.Status)

	got, err := store.Jobs().GetByID(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ApplicationCount)

	dup := domain.JobApplication{JobID: job.ID, ApplicantEmail: "A@x.com"}
	require.ErrorIs(t, store.Applications().Create(ctx, &dup), domain.ErrDuplicate)

	orphan := domain.JobApplication{JobID: "missing", ApplicantEmail: "a@x.com"}
	require.ErrorIs(t, store.Applications().Create(ctx, &orphan), domain.ErrNotFound)

	got, err = store.Jobs().GetByID(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), got.ApplicationCount)
}

func TestMemoryApplicationConcurrentCreatesCountExactly(t *testing.T) {
	const n = 64
	ctx := context.Background()
	store := repository.NewMemoryStore()
	job := seedJob(t, store.Jobs(), domain.Job{Title: "Go dev", HREmail: "hr@a.com"})

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			app := domain.JobApplication{JobID: job.ID, ApplicantEmail: fmt.Sprintf("user%d@x.com", i)}
			errs <- store.Applications().Create(ctx, &app)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := store.Jobs().GetByID(ctx, job.ID)
	require.NoError(t, err)
	require.Equal(t, int64(n), got.ApplicationCount)

	apps, err := store.Applications().ListByJob(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, apps, n)
}

func TestMemoryApplicationUpdateStatusCompareAndSet(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	job := seedJob(t, store.Jobs(), domain.Job{Title: "Go dev", HREmail: "hr@a.com"})
	app := domain.JobApplication{JobID: job.ID, ApplicantEmail: "a@x.com"}
	require.NoError(t, store.Applications().Create(ctx, &app))

	res, err := store.Applications().UpdateStatus(ctx, app.ID, domain.ApplicationStatusPending, domain.ApplicationStatusAccepted)
	require.NoError(t, err)
	require.Equal(t, domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, res)

	res, err = store.Applications().UpdateStatus(ctx, app.ID, domain.ApplicationStatusPending, domain.ApplicationStatusRejected)
	require.NoError(t, err)
	require.Equal(t, domain.UpdateResult{}, res)

	got, err := store.Applications().GetByID(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, domain.ApplicationStatusAccepted, got.Status)
}

func TestMemoryApplicationsListByApplicant(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	first := seedJob(t, store.Jobs(), domain.Job{Title: "one", HREmail: "hr@a.com"})
	second := seedJob(t, store.Jobs(), domain.Job{Title: "two", HREmail: "hr@a.com"})

	for _, app := range []domain.JobApplication{
		{JobID: first.ID, ApplicantEmail: "a@x.com"},
		{JobID: second.ID, ApplicantEmail: "a@x.com"},
		{JobID: second.ID, ApplicantEmail: "b@x.com"},
	} {
		app := app
		require.NoError(t, store.Applications().Create(ctx, &app))
	}

	apps, err := store.Applications().ListByApplicant(ctx, "A@X.com")
	require.NoError(t, err)
	require.Len(t, apps, 2)
	require.Equal(t, first.ID, apps[0].JobID)
	require.Equal(t, second.ID, apps[1].JobID)
}

func jobIDs(jobs []domain.Job) []string {
	out := make([]string, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.ID)
	}
	return out
}
