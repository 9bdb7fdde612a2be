package repository

import (
	"referral-coordination-backend/internal/models"

	"gorm.io/gorm"
)

type AuditRepository struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// CreateAuditLog creates a new audit log entry
func (r *AuditRepository) CreateAuditLog(action, entityID, details string) error {
	log := &models.AuditLog{
		Action:   action,
		EntityID: entityID,
		Details:  details,
	}
	return r.db.Create(log).Error
}
