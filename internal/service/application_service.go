package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/job-portal/internal/auth"
	"github.com/spec-kit/job-portal/internal/domain"
	"github.com/spec-kit/job-portal/internal/events"
	"github.com/spec-kit/job-portal/internal/repository"
	apperrors "github.com/spec-kit/job-portal/pkg/util"
)

// ApplicationService coordinates job applications and their review.
type ApplicationService struct {
	apps       repository.ApplicationRepository
	jobs       repository.JobRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ApplicationDependencies bundles repositories for the application service.
type ApplicationDependencies struct {
	ApplicationRepo repository.ApplicationRepository
	JobRepo         repository.JobRepository
	Dispatcher      events.Dispatcher
	Logger          *zap.Logger
}

// ApplicationCreateInput describes a submission.
type ApplicationCreateInput struct {
	JobID          string
	ApplicantEmail string
	LinkedIn       string
	GitHub         string
	Resume         string
}

// ApplicationWithJob pairs an application with its posting. Job is nil when
// the posting no longer exists.
type ApplicationWithJob struct {
	Application domain.JobApplication
	Job         *domain.Job
}

// NewApplicationService constructs the service.
func NewApplicationService(deps ApplicationDependencies) *ApplicationService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ApplicationService{
		apps:       deps.ApplicationRepo,
		jobs:       deps.JobRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// Apply records a pending application and bumps the posting's counter in the
// same store operation.
func (s *ApplicationService) Apply(ctx context.Context, input ApplicationCreateInput) (*domain.JobApplication, error) {
	if err := validateID("job_id", input.JobID); err != nil {
		return nil, err
	}
	email := strings.TrimSpace(input.ApplicantEmail)
	if email == "" {
		return nil, apperrors.NewValidationError("applicant_email is required", map[string]any{"field": "applicant_email"})
	}

	app := &domain.JobApplication{
		JobID:          input.JobID,
		ApplicantEmail: email,
		LinkedIn:       input.LinkedIn,
		GitHub:         input.GitHub,
		Resume:         input.Resume,
		Status:         domain.ApplicationStatusPending,
	}
	if err := s.apps.Create(ctx, app); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, apperrors.NewNotFound("job", map[string]any{"job_id": input.JobID})
		case errors.Is(err, domain.ErrDuplicate):
			return nil, apperrors.NewConflict("application already submitted", map[string]any{"job_id": input.JobID})
		}
		return nil, err
	}

	payload := events.ApplicationSubmittedPayload{ApplicantEmail: app.ApplicantEmail}
	if job, err := s.jobs.GetByID(ctx, app.JobID); err == nil {
		payload.HREmail = job.HREmail
		payload.JobTitle = job.Title
		payload.ApplicationCount = job.ApplicationCount
	}
	event := events.New(events.EventApplicationSubmitted, app.JobID, app.ApplicantEmail, payload)
	event.ApplicationID = app.ID
	publish(ctx, s.dispatcher, s.logger, event)
	return app, nil
}

// ListForApplicant returns the applicant's submissions joined with their
// postings.
func (s *ApplicationService) ListForApplicant(ctx context.Context, email string) ([]ApplicationWithJob, error) {
	apps, err := s.apps.ListByApplicant(ctx, email)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationWithJob, 0, len(apps))
	for _, app := range apps {
		item := ApplicationWithJob{Application: app}
		job, err := s.jobs.GetByID(ctx, app.JobID)
		switch {
		case err == nil:
			item.Job = job
		case errors.Is(err, domain.ErrNotFound):
		default:
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

// ListForJob returns every submission for a posting.
func (s *ApplicationService) ListForJob(ctx context.Context, jobID string) ([]domain.JobApplication, error) {
	if err := validateID("job_id", jobID); err != nil {
		return nil, err
	}
	return s.apps.ListByJob(ctx, jobID)
}

// UpdateStatus moves an application along pending -> accepted|rejected on
// behalf of the recruiter owning the parent posting.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actorEmail, id string, status domain.ApplicationStatus) (domain.UpdateResult, error) {
	if err := validateID("id", id); err != nil {
		return domain.UpdateResult{}, err
	}
	if !status.Valid() {
		return domain.UpdateResult{}, apperrors.NewValidationError("unknown status", map[string]any{"status": string(status)})
	}

	app, err := s.apps.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.UpdateResult{}, apperrors.NewNotFound("application", map[string]any{"id": id})
		}
		return domain.UpdateResult{}, err
	}
	job, err := s.jobs.GetByID(ctx, app.JobID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.UpdateResult{}, apperrors.NewNotFound("job", map[string]any{"job_id": app.JobID})
		}
		return domain.UpdateResult{}, err
	}
	if !auth.SameEmail(actorEmail, job.HREmail) {
		return domain.UpdateResult{}, apperrors.NewForbidden("forbidden access")
	}

	current := app.Status
	if current == "" {
		current = domain.ApplicationStatusPending
	}
	if current == status {
		return domain.UpdateResult{MatchedCount: 1}, nil
	}
	if !current.CanTransition(status) {
		return domain.UpdateResult{}, apperrors.NewConflict("status transition not allowed", map[string]any{
			"from": string(current),
			"to":   string(status),
		})
	}

	result, err := s.apps.UpdateStatus(ctx, id, app.Status, status)
	if err != nil {
		return domain.UpdateResult{}, err
	}
	if result.MatchedCount == 0 {
		return domain.UpdateResult{}, apperrors.NewConflict("application was modified concurrently", map[string]any{"id": id})
	}

	event := events.New(events.EventApplicationStatusChanged, job.ID, actorEmail, events.ApplicationStatusChangedPayload{
		ApplicantEmail: app.ApplicantEmail,
		OldStatus:      current,
		NewStatus:      status,
	})
	event.ApplicationID = app.ID
	publish(ctx, s.dispatcher, s.logger, event)
	return result, nil
}
