package domain

import "time"

// Account is the domain model for a registered identity. Username is the
// canonical identity key; email mirrors the resume's basic-info email and is
// kept as a secondary unique attribute.
type Account struct {
	ID           string    `bson:"_id"`
	Username     string    `bson:"username"`
	Email        string    `bson:"email"`
	PasswordHash string    `bson:"password_hash"`
	Resume       Resume    `bson:"resume"`
	CreatedAt    time.Time `bson:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at"`
}

// Resume is the embedded resume payload. Field-level validation of its
// sections belongs to the resume collaborator, not the identity core; only
// Basic.Email is interpreted here.
type Resume struct {
	Basic        BasicInfo     `bson:"basic" json:"basic"`
	WorkingAt    *CurrentJob   `bson:"working_at,omitempty" json:"working_at,omitempty"`
	Education    []Education   `bson:"education,omitempty" json:"education,omitempty"`
	Skills       []Skill       `bson:"skills,omitempty" json:"skills,omitempty"`
	Languages    []Language    `bson:"languages,omitempty" json:"languages,omitempty"`
	Work         []Experience  `bson:"work,omitempty" json:"work,omitempty"`
	Projects     []Project     `bson:"projects,omitempty" json:"projects,omitempty"`
	Certificates []Certificate `bson:"certificates,omitempty" json:"certificates,omitempty"`
	Summary      string        `bson:"summary,omitempty" json:"summary,omitempty"`
}

// BasicInfo carries the contact block of a resume.
type BasicInfo struct {
	Name     string `bson:"name" json:"name"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	URL      string `bson:"url,omitempty" json:"url,omitempty"`
	Location string `bson:"location,omitempty" json:"location,omitempty"`
	Summary  string `bson:"summary,omitempty" json:"summary,omitempty"`
}

// CurrentJob links a resume to the company its owner works at.
type CurrentJob struct {
	CompanyHandle string `bson:"company_handle" json:"company_handle"`
	Position      string `bson:"position" json:"position"`
}

// Education describes one schooling entry.
type Education struct {
	Institution string     `bson:"institution" json:"institution"`
	Area        string     `bson:"area,omitempty" json:"area,omitempty"`
	StudyType   string     `bson:"study_type,omitempty" json:"study_type,omitempty"`
	StartDate   time.Time  `bson:"start_date" json:"start_date"`
	EndDate     *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Score       float64    `bson:"score,omitempty" json:"score,omitempty"`
}

// Skill describes a skill with an optional proficiency level.
type Skill struct {
	Name     string   `bson:"name" json:"name"`
	Level    float64  `bson:"level,omitempty" json:"level,omitempty"`
	Keywords []string `bson:"keywords,omitempty" json:"keywords,omitempty"`
}

// Language describes a spoken language and fluency.
type Language struct {
	Name    string  `bson:"name" json:"name"`
	Fluency float64 `bson:"fluency,omitempty" json:"fluency,omitempty"`
}

// Experience describes one work entry.
type Experience struct {
	Name      string     `bson:"name" json:"name"`
	Position  string     `bson:"position" json:"position"`
	StartDate time.Time  `bson:"start_date" json:"start_date"`
	EndDate   *time.Time `bson:"end_date,omitempty" json:"end_date,omitempty"`
	Summary   string     `bson:"summary,omitempty" json:"summary,omitempty"`
}

// Project describes one project entry.
type Project struct {
	Name        string   `bson:"name" json:"name"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	URL         string   `bson:"url,omitempty" json:"url,omitempty"`
	Highlights  []string `bson:"highlights,omitempty" json:"highlights,omitempty"`
}

// Certificate describes one certification entry.
type Certificate struct {
	Name   string    `bson:"name" json:"name"`
	Date   time.Time `bson:"date" json:"date"`
	Issuer string    `bson:"issuer,omitempty" json:"issuer,omitempty"`
	URL    string    `bson:"url,omitempty" json:"url,omitempty"`
}
