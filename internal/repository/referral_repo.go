package repository

import (
	"errors"

	"referral-coordination-backend/internal/models"
	"referral-coordination-backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ReferralFilter narrows a referral listing; empty fields impose no constraint
type ReferralFilter struct {
	SenderOrgID   string
	ReceiverOrgID string
	Status        string
}

type ReferralRepository struct {
	db *gorm.DB
}

func NewReferralRepo(db *gorm.DB) *ReferralRepository {
	return &ReferralRepository{db: db}
}

// GetAll retrieves referrals matching the filter, newest first, with both
// organizations embedded
func (r *ReferralRepository) GetAll(filter ReferralFilter) ([]models.Referral, error) {
	query := r.db.Preload("SenderOrg").Preload("ReceiverOrg")
	if filter.SenderOrgID != "" {
		query = query.Where("sender_org_id = ?", filter.SenderOrgID)
	}
	if filter.ReceiverOrgID != "" {
		query = query.Where("receiver_org_id = ?", filter.ReceiverOrgID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var referrals []models.Referral
	err := query.Order("created_at DESC").Find(&referrals).Error
	return referrals, err
}

// GetByID retrieves a referral by ID
func (r *ReferralRepository) GetByID(id string) (*models.Referral, error) {
	var referral models.Referral
	err := r.db.Where("id = ?", id).First(&referral).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Referral not found")
		}
		return nil, err
	}
	return &referral, nil
}

// GetByIDWithOrgs retrieves a referral with both organizations preloaded
func (r *ReferralRepository) GetByIDWithOrgs(id string) (*models.Referral, error) {
	var referral models.Referral
	err := r.db.Where("id = ?", id).
		Preload("SenderOrg").
		Preload("ReceiverOrg").
		First(&referral).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Referral not found")
		}
		return nil, err
	}
	return &referral, nil
}

// Create persists a new referral
func (r *ReferralRepository) Create(referral *models.Referral) error {
	return r.db.Create(referral).Error
}

// UpdateStatus sets a referral's status
func (r *ReferralRepository) UpdateStatus(id string, status string) error {
	return r.db.Model(&models.Referral{}).
		Where("id = ?", id).
		Update("status", status).Error
}
