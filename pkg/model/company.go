package model

import (
	"time"

	"github.com/google/uuid"
)

// Company is created lazily on first reference (get-or-create by slug)
// and never updated by the scraper afterwards.
type Company struct {
	CompanyID uuid.UUID `json:"company_id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// JobRole rows belong to the pre-existing taxonomy and are read-only from
// the scraper's perspective. IDs are opaque strings assigned by the
// taxonomy service, which is why they are not uuid.UUID here.
type JobRole struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	ProfileName string `json:"profile_name"`
}
