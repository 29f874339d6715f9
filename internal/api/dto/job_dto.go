package dto

import (
	"github.com/spec-kit/job-portal/internal/domain"
)

// CreateJobRequest payload.
type CreateJobRequest struct {
	Title               string             `json:"title"`
	Location            string             `json:"location"`
	Type                string             `json:"type"`
	Field               string             `json:"field"`
	ApplicationDeadline string             `json:"applicationDeadline"`
	SalaryRange         domain.SalaryRange `json:"salaryRange"`
	Description         string             `json:"description"`
	Company             string             `json:"company"`
	CompanyLogo         string             `json:"company_logo"`
	Requirements        []string           `json:"requirements"`
	Responsibilities    []string           `json:"responsibilities"`
	Status              string             `json:"status"`
	HRName              string             `json:"hr_name"`
	HREmail             string             `json:"hr_email"`
}

// InsertResult mirrors a document store insert acknowledgement.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult mirrors a document store update acknowledgement.
type UpdateResult struct {
	Acknowledged  bool  `json:"acknowledged"`
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// NewUpdateResult converts the store counters.
func NewUpdateResult(res domain.UpdateResult) UpdateResult {
	return UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}
