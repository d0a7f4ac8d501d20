package domain

import "time"

// OpportunityKind distinguishes job and internship listings.
type OpportunityKind string

const (
	OpportunityKindJob        OpportunityKind = "JOB"
	OpportunityKindInternship OpportunityKind = "INTERNSHIP"
)

// Opportunity is a listing posted under a company handle. Its descriptive
// fields are owned by the listings collaborator; the identity core only
// cares about the handle for cascades and authorization.
type Opportunity struct {
	ID            string          `bson:"_id"`
	CompanyHandle string          `bson:"company_handle"`
	Kind          OpportunityKind `bson:"kind"`
	Title         string          `bson:"title"`
	Description   string          `bson:"description,omitempty"`
	Location      string          `bson:"location,omitempty"`
	CreatedAt     time.Time       `bson:"created_at"`
	UpdatedAt     time.Time       `bson:"updated_at"`
}

// Application is a candidate's submission against an opportunity, keyed by
// the applicant's email for cascade on unregistration.
type Application struct {
	ID             string    `bson:"_id"`
	OpportunityID  string    `bson:"opportunity_id"`
	CompanyHandle  string    `bson:"company_handle"`
	ApplicantEmail string    `bson:"applicant_email"`
	CoverLetter    string    `bson:"cover_letter,omitempty"`
	SubmittedAt    time.Time `bson:"submitted_at"`
}
