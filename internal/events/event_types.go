package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountRegistered    EventType = "account_registered"
	EventAccountUnregistered  EventType = "account_unregistered"
	EventCompanyRegistered    EventType = "company_registered"
	EventCompanyUnregistered  EventType = "company_unregistered"
	EventRecruiterAdded       EventType = "recruiter_added"
	EventRecruiterRemoved     EventType = "recruiter_removed"
	EventApplicationSubmitted EventType = "application_submitted"
)

// Event represents a domain event emitted by services. Actor is the
// canonical username of the account that triggered it.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     string      `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountRegisteredPayload payload.
type AccountRegisteredPayload struct {
	AccountID string `json:"account_id"`
	Email     string `json:"email"`
}

// CompanyRegisteredPayload payload.
type CompanyRegisteredPayload struct {
	Handle string `json:"handle"`
	Name   string `json:"name"`
}

// CompanyUnregisteredPayload payload. Cascade counts record how much of
// the best-effort cleanup actually ran.
type CompanyUnregisteredPayload struct {
	Handle               string `json:"handle"`
	RecruitersRemoved    int64  `json:"recruiters_removed"`
	OpportunitiesRemoved int64  `json:"opportunities_removed"`
}

// RecruiterPayload payload for membership changes.
type RecruiterPayload struct {
	Username string `json:"username"`
	Handle   string `json:"handle"`
}

// ApplicationSubmittedPayload payload.
type ApplicationSubmittedPayload struct {
	ApplicationID string `json:"application_id"`
	OpportunityID string `json:"opportunity_id"`
	Handle        string `json:"handle"`
}
