package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Referral statuses
const (
	StatusPending   = "PENDING"
	StatusAccepted  = "ACCEPTED"
	StatusRejected  = "REJECTED"
	StatusCompleted = "COMPLETED"
)

// ReferralStatuses lists the statuses a referral may hold, in lifecycle order
var ReferralStatuses = []string{StatusPending, StatusAccepted, StatusRejected, StatusCompleted}

// ValidReferralStatus reports whether s is one of the enumerated statuses
func ValidReferralStatus(s string) bool {
	for _, v := range ReferralStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Referral represents a request to transfer a patient's care from a sender
// organization to a receiver organization, tracked through a status lifecycle
type Referral struct {
	ID              string    `gorm:"primaryKey;size:36" json:"id"`
	SenderOrgID     string    `gorm:"size:36;not null;index" json:"senderOrgId"`
	ReceiverOrgID   string    `gorm:"size:36;not null;index" json:"receiverOrgId"`
	PatientName     string    `gorm:"size:255;not null" json:"patientName"`
	InsuranceNumber string    `gorm:"size:100;not null" json:"insuranceNumber"`
	Notes           *string   `gorm:"type:text" json:"notes"`
	Status          string    `gorm:"size:20;not null;default:PENDING" json:"status"`
	CreatedAt       time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`

	// Relationships
	SenderOrg   *Organization `gorm:"foreignKey:SenderOrgID" json:"senderOrg,omitempty"`
	ReceiverOrg *Organization `gorm:"foreignKey:ReceiverOrgID" json:"receiverOrg,omitempty"`
}

// TableName specifies the table name for Referral model
func (Referral) TableName() string {
	return "referrals"
}

// BeforeCreate assigns a UUID primary key when none was supplied
func (r *Referral) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
