package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/ids"
)

// MemoryStore keeps jobs and applications in process memory. It backs tests
// and database-less local runs. A single lock guards both collections so the
// application insert and the job counter increment are one atomic step.
type MemoryStore struct {
	mu   sync.RWMutex
	jobs map[string]domain.Job
	apps map[string]domain.JobApplication
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		jobs: make(map[string]domain.Job),
		apps: make(map[string]domain.JobApplication),
	}
}

// Jobs returns the job repository view of the store.
func (s *MemoryStore) Jobs() JobRepository {
	return memoryJobs{s}
}

// Applications returns the application repository view of the store.
func (s *MemoryStore) Applications() ApplicationRepository {
	return memoryApplications{s}
}

type memoryJobs struct{ s *MemoryStore }

func (m memoryJobs) Create(_ context.Context, job *domain.Job) error {
	if job.ID == "" {
		job.ID = ids.New()
	}
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	if _, exists := m.s.jobs[job.ID]; exists {
		return domain.ErrDuplicate
	}
	m.s.jobs[job.ID] = cloneJob(*job)
	return nil
}

func (m memoryJobs) GetByID(_ context.Context, id string) (*domain.Job, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	job, ok := m.s.jobs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := cloneJob(job)
	return &out, nil
}

func (m memoryJobs) List(_ context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	search := strings.ToLower(strings.TrimSpace(filter.LocationSearch))

	m.s.mu.RLock()
	result := make([]domain.Job, 0, len(m.s.jobs))
	for _, job := range m.s.jobs {
		if filter.HREmail != nil && !strings.EqualFold(job.HREmail, strings.TrimSpace(*filter.HREmail)) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(job.Location), search) {
			continue
		}
		if filter.MinSalary != nil && job.SalaryRange.Min < *filter.MinSalary {
			continue
		}
		if filter.MaxSalary != nil && job.SalaryRange.Max > *filter.MaxSalary {
			continue
		}
		result = append(result, cloneJob(job))
	}
	m.s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		if filter.SortBySalaryDesc && result[i].SalaryRange.Min != result[j].SalaryRange.Min {
			return result[i].SalaryRange.Min > result[j].SalaryRange.Min
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

type memoryApplications struct{ s *MemoryStore }

func (m memoryApplications) Create(_ context.Context, app *domain.JobApplication) error {
	if app.ID == "" {
		app.ID = ids.New()
	}
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	now := time.Now().UTC()
	app.CreatedAt, app.UpdatedAt = now, now

	m.s.mu.Lock()
	defer m.s.mu.Unlock()

	job, ok := m.s.jobs[app.JobID]
	if !ok {
		return domain.ErrNotFound
	}
	for _, existing := range m.s.apps {
		if existing.ID == app.ID ||
			(existing.JobID == app.JobID && strings.EqualFold(existing.ApplicantEmail, app.ApplicantEmail)) {
			return domain.ErrDuplicate
		}
	}
	m.s.apps[app.ID] = *app
	job.ApplicationCount++
	m.s.jobs[job.ID] = job
	return nil
}

func (m memoryApplications) GetByID(_ context.Context, id string) (*domain.JobApplication, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	app, ok := m.s.apps[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &app, nil
}

func (m memoryApplications) ListByApplicant(_ context.Context, email string) ([]domain.JobApplication, error) {
	email = strings.TrimSpace(email)
	return m.list(func(app domain.JobApplication) bool {
		return strings.EqualFold(app.ApplicantEmail, email)
	}), nil
}

func (m memoryApplications) ListByJob(_ context.Context, jobID string) ([]domain.JobApplication, error) {
	return m.list(func(app domain.JobApplication) bool {
		return app.JobID == jobID
	}), nil
}

func (m memoryApplications) UpdateStatus(_ context.Context, id string, from, to domain.ApplicationStatus) (domain.UpdateResult, error) {
	m.s.mu.Lock()
	defer m.s.mu.Unlock()
	app, ok := m.s.apps[id]
	if !ok || app.Status != from {
		return domain.UpdateResult{}, nil
	}
	app.Status = to
	app.UpdatedAt = time.Now().UTC()
	m.s.apps[id] = app
	return domain.UpdateResult{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (m memoryApplications) list(keep func(domain.JobApplication) bool) []domain.JobApplication {
	m.s.mu.RLock()
	result := []domain.JobApplication{}
	for _, app := range m.s.apps {
		if keep(app) {
			result = append(result, app)
		}
	}
	m.s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

func cloneJob(job domain.Job) domain.Job {
	job.Requirements = append([]string{}, job.Requirements...)
	job.Responsibilities = append([]string{}, job.Responsibilities...)
	return job
}
