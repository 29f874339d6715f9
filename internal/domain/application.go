package domain

import "time"

// ApplicationStatus enumerates lifecycle states for a job application.
type ApplicationStatus string

const (
	ApplicationStatusPending  ApplicationStatus = "pending"
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Valid reports whether s is a known status.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Terminal reports whether no further transition is allowed from s.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// CanTransition reports whether an application may move from s to next.
// Re-applying the current status is allowed and treated as a no-op.
func (s ApplicationStatus) CanTransition(next ApplicationStatus) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	if s == "" {
		s = ApplicationStatusPending
	}
	return s == ApplicationStatusPending && next.Terminal()
}

// JobApplication links an applicant to a job.
type JobApplication struct {
	ID             string            `json:"_id"`
	JobID          string            `json:"job_id"`
	ApplicantEmail string            `json:"applicant_email"`
	LinkedIn       string            `json:"linkedIn,omitempty"`
	GitHub         string            `json:"github,omitempty"`
	Resume         string            `json:"resume,omitempty"`
	Status         ApplicationStatus `json:"status"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// UpdateResult mirrors the matched/modified counters of a document update.
type UpdateResult struct {
	MatchedCount  int64
	ModifiedCount int64
}
