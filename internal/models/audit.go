package models

import "time"

// AuditLog represents the audit_logs table
// Records organization and referral lifecycle actions
type AuditLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Action    string    `gorm:"size:100;not null;index" json:"action"`
	EntityID  string    `gorm:"size:36;index" json:"entityId"`
	Details   string    `gorm:"type:text" json:"details"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName specifies the table name for AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
