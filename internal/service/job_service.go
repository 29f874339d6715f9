package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/events"
	"github.com/spec-kit/job-portal/internal/ids"
	"github.com/spec-kit/job-portal/internal/repository"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// JobService coordinates job postings.
type JobService struct {
	jobs       repository.JobRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// JobCreateInput describes a new posting.
type JobCreateInput struct {
	Title               string
	Location            string
	Type                string
	Field               string
	ApplicationDeadline string
	SalaryRange         domain.SalaryRange
	Description         string
	Company             string
	CompanyLogo         string
	Requirements        []string
	Responsibilities    []string
	Status              string
	HRName              string
	HREmail             string
}

// NewJobService constructs the service.
func NewJobService(jobs repository.JobRepository, dispatcher events.Dispatcher, logger *zap.Logger) *JobService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobService{jobs: jobs, dispatcher: dispatcher, logger: logger}
}

// CreateJob stores a posting. The application counter always starts at zero.
func (s *JobService) CreateJob(ctx context.Context, input JobCreateInput) (*domain.Job, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.NewValidationError("title is required", map[string]any{"field": "title"})
	}
	salary := input.SalaryRange
	if salary.Min < 0 || salary.Max < 0 || (salary.Max > 0 && salary.Min > salary.Max) {
		return nil, apperrors.NewValidationError("invalid salary range", map[string]any{"field": "salaryRange"})
	}

	job := &domain.Job{
		Title:               title,
		Location:            strings.TrimSpace(input.Location),
		Type:                input.Type,
		Field:               input.Field,
		ApplicationDeadline: input.ApplicationDeadline,
		SalaryRange:         salary,
		Description:         input.Description,
		Company:             input.Company,
		CompanyLogo:         input.CompanyLogo,
		Requirements:        input.Requirements,
		Responsibilities:    input.Responsibilities,
		Status:              input.Status,
		HRName:              input.HRName,
		HREmail:             strings.TrimSpace(input.HREmail),
	}
	if job.Status == "" {
		job.Status = "active"
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		return nil, err
	}

	publish(ctx, s.dispatcher, s.logger, events.New(events.EventJobCreated, job.ID, job.HREmail, events.JobCreatedPayload{
		Title:   job.Title,
		Company: job.Company,
		HREmail: job.HREmail,
	}))
	return job, nil
}

// GetJob returns a posting by id. A missing posting is domain.ErrNotFound.
func (s *JobService) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	if err := validateID("id", id); err != nil {
		return nil, err
	}
	return s.jobs.GetByID(ctx, id)
}

// ListJobs returns postings matching the filter.
func (s *JobService) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	return s.jobs.List(ctx, filter)
}

// ListPostedBy returns postings owned by the recruiter.
func (s *JobService) ListPostedBy(ctx context.Context, hrEmail string) ([]domain.Job, error) {
	return s.jobs.List(ctx, domain.JobFilter{HREmail: &hrEmail})
}

func validateID(field, id string) error {
	if err := ids.Validate(id); err != nil {
		return apperrors.NewInvalidArgument("malformed identifier", map[string]any{field: id})
	}
	return nil
}

func publish(ctx context.Context, dispatcher events.Dispatcher, logger *zap.Logger, event events.Event) {
	if dispatcher == nil {
		return
	}
	if err := dispatcher.Publish(ctx, event); err != nil {
		logger.Warn("event handlers failed", zap.String("event_type", string(event.Type)), zap.Error(err))
	}
}
