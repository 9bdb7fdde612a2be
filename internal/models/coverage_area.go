package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CoverageArea represents a geographic region an organization claims to serve.
// Rows are always created and destroyed as a set belonging to one organization;
// the system never edits a single area in place.
type CoverageArea struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	OrganizationID string    `gorm:"size:36;not null;index" json:"organizationId"`
	State          string    `gorm:"size:50;not null" json:"state"`
	County         *string   `gorm:"size:100" json:"county"`
	City           *string   `gorm:"size:100" json:"city"`
	ZipCode        *string   `gorm:"size:20" json:"zipCode"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TableName specifies the table name for CoverageArea model
func (CoverageArea) TableName() string {
	return "coverage_areas"
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (a *CoverageArea) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
