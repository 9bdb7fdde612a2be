package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Organization types accepted by the API
const (
	TypeClinic         = "CLINIC"
	TypePharmacy       = "PHARMACY"
	TypeHomeHealth     = "HOME_HEALTH"
	TypeNursingHome    = "NURSING_HOME"
	TypeTransportation = "TRANSPORTATION"
	TypeDME            = "DME"
)

// Referral roles an organization may declare
const (
	RoleSender   = "SENDER"
	RoleReceiver = "RECEIVER"
	RoleBoth     = "BOTH"
)

// Contact holds an organization's contact details, stored as
// contact_email / contact_phone columns
type Contact struct {
	Email string `gorm:"size:255;not null" json:"email"`
	Phone string `gorm:"size:50;not null" json:"phone"`
}

// Organization represents a healthcare entity participating in referrals.
// Its role governs which side of a referral it may occupy.
type Organization struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Type      string    `gorm:"size:30;not null" json:"type"`
	Role      string    `gorm:"size:10;not null" json:"role"`
	Contact   Contact   `gorm:"embedded;embeddedPrefix:contact_" json:"contact"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	CoverageAreas     []CoverageArea `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE" json:"coverageAreas,omitempty"`
	SentReferrals     []Referral     `gorm:"foreignKey:SenderOrgID" json:"sentReferrals,omitempty"`
	ReceivedReferrals []Referral     `gorm:"foreignKey:ReceiverOrgID" json:"receivedReferrals,omitempty"`
}

// TableName specifies the table name for Organization model
func (Organization) TableName() string {
	return "organizations"
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (o *Organization) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// ValidOrganizationType reports whether t is one of the enumerated types
func ValidOrganizationType(t string) bool {
	switch t {
	case TypeClinic, TypePharmacy, TypeHomeHealth, TypeNursingHome, TypeTransportation, TypeDME:
		return true
	}
	return false
}

// ValidOrganizationRole reports whether r is one of the enumerated roles
func ValidOrganizationRole(r string) bool {
	switch r {
	case RoleSender, RoleReceiver, RoleBoth:
		return true
	}
	return false
}
