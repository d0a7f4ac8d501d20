package domain

import "time"

// Company is an organizational entity keyed by a globally unique handle.
type Company struct {
	ID           string    `bson:"_id"`
	Handle       string    `bson:"handle"`
	Name         string    `bson:"name"`
	Industry     string    `bson:"industry,omitempty"`
	Founded      int       `bson:"founded,omitempty"`
	Description  string    `bson:"description,omitempty"`
	LogoURL      string    `bson:"logo_url,omitempty"`
	RegisteredAt time.Time `bson:"registered_at"`
}

// Founder is the ownership edge between the creating account and a company.
// At most one exists per company and it is not reassignable.
type Founder struct {
	Username      string    `bson:"username"`
	CompanyHandle string    `bson:"company_handle"`
	CreatedAt     time.Time `bson:"created_at"`
}

// Recruiter is the staff membership edge. An account may recruit for several
// companies; the (username, company_handle) pair is unique.
type Recruiter struct {
	Username      string    `bson:"username"`
	CompanyHandle string    `bson:"company_handle"`
	CreatedAt     time.Time `bson:"created_at"`
}
