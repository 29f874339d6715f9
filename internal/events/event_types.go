package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/job-portal/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventJobCreated               EventType = "job_created"
	EventApplicationSubmitted     EventType = "application_submitted"
	EventApplicationStatusChanged EventType = "application_status_changed"
)

// AllEventTypes lists every event type the service emits.
var AllEventTypes = []EventType{
	EventJobCreated,
	EventApplicationSubmitted,
	EventApplicationStatusChanged,
}

// Event represents a domain event emitted by services.
type Event struct {
	ID            string      `json:"id"`
	Type          EventType   `json:"type"`
	JobID         string      `json:"job_id"`
	ApplicationID string      `json:"application_id,omitempty"`
	Actor         string      `json:"actor"`
	Timestamp     time.Time   `json:"timestamp"`
	Payload       interface{} `json:"payload"`
}

// New stamps an event with an id and the current time.
func New(eventType EventType, jobID, actor string, payload interface{}) Event {
	return Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		JobID:     jobID,
		Actor:     actor,
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}
}

// JobCreatedPayload payload.
type JobCreatedPayload struct {
	Title   string `json:"title"`
	Company string `json:"company,omitempty"`
	HREmail string `json:"hr_email"`
}

// ApplicationSubmittedPayload payload.
type ApplicationSubmittedPayload struct {
	ApplicantEmail   string `json:"applicant_email"`
	HREmail          string `json:"hr_email"`
	JobTitle         string `json:"job_title"`
	ApplicationCount int64  `json:"application_count"`
}

// ApplicationStatusChangedPayload payload.
type ApplicationStatusChangedPayload struct {
	ApplicantEmail string                   `json:"applicant_email"`
	OldStatus      domain.ApplicationStatus `json:"old_status"`
	NewStatus      domain.ApplicationStatus `json:"new_status"`
}
