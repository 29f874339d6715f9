package dto

import (
	"github.com/spec-kit/job-portal/internal/domain"
)

// CreateApplicationRequest payload.
type CreateApplicationRequest struct {
	JobID          string `json:"job_id"`
	ApplicantEmail string `json:"applicant_email"`
	LinkedIn       string `json:"linkedIn"`
	GitHub         string `json:"github"`
	Resume         string `json:"resume"`
}

// UpdateApplicationStatusRequest payload.
type UpdateApplicationStatusRequest struct {
	Status domain.ApplicationStatus `json:"status"`
}

// EnrichedApplication is an application carrying a summary of its posting.
// The posting fields are omitted when the job no longer exists.
type EnrichedApplication struct {
	domain.JobApplication
	Title       string `json:"title,omitempty"`
	Location    string `json:"location,omitempty"`
	Company     string `json:"company,omitempty"`
	CompanyLogo string `json:"company_logo,omitempty"`
}

// NewEnrichedApplication flattens an application and its optional job.
func NewEnrichedApplication(app domain.JobApplication, job *domain.Job) EnrichedApplication {
	out := EnrichedApplication{JobApplication: app}
	if job != nil {
		out.Title = job.Title
		out.Location = job.Location
		out.Company = job.Company
		out.CompanyLogo = job.CompanyLogo
	}
	return out
}
