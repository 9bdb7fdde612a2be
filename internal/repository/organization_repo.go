package repository

import (
	"errors"

	"referral-coordination-backend/internal/models"
	"referral-coordination-backend/pkg/apperrors"

	"gorm.io/gorm"
)

type OrganizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepo(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// GetAll retrieves all organizations with coverage areas, newest first
func (r *OrganizationRepository) GetAll() ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.Preload("CoverageAreas").
		Order("created_at DESC").
		Find(&orgs).Error
	return orgs, err
}

// GetPage retrieves one page of organizations plus the total row count.
// The total is computed independent of the page window.
func (r *OrganizationRepository) GetPage(offset, limit int) ([]models.Organization, int64, error) {
	var total int64
	if err := r.db.Model(&models.Organization{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orgs []models.Organization
	err := r.db.Preload("CoverageAreas").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&orgs).Error
	return orgs, total, err
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(id string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.Where("id = ?", id).First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Organization not found")
		}
		return nil, err
	}
	return &org, nil
}

// GetByIDWithCoverage retrieves an organization with its coverage areas preloaded
func (r *OrganizationRepository) GetByIDWithCoverage(id string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.Where("id = ?", id).
		Preload("CoverageAreas").
		First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Organization not found")
		}
		return nil, err
	}
	return &org, nil
}

// GetByIDWithRelations retrieves an organization with coverage areas and both
// referral directions preloaded
func (r *OrganizationRepository) GetByIDWithRelations(id string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.Where("id = ?", id).
		Preload("CoverageAreas").
		Preload("SentReferrals").
		Preload("ReceivedReferrals").
		First(&org).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound("Organization not found")
		}
		return nil, err
	}
	return &org, nil
}

// Create persists a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// UpdateFields applies a partial update to an organization
func (r *OrganizationRepository) UpdateFields(id string, fields map[string]interface{}) error {
	return r.db.Model(&models.Organization{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete removes an organization and its coverage areas in one transaction
func (r *OrganizationRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", id).Delete(&models.CoverageArea{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Organization{}).Error
	})
}

// CountReferrals returns how many referrals reference the organization as
// sender or receiver
func (r *OrganizationRepository) CountReferrals(id string) (int64, error) {
	var sent, received int64
	if err := r.db.Model(&models.Referral{}).Where("sender_org_id = ?", id).Count(&sent).Error; err != nil {
		return 0, err
	}
	if err := r.db.Model(&models.Referral{}).Where("receiver_org_id = ?", id).Count(&received).Error; err != nil {
		return 0, err
	}
	return sent + received, nil
}

// ReplaceCoverageAreas discards the organization's existing coverage set and
// inserts the new one atomically. Callers never observe a partial replacement.
func (r *OrganizationRepository) ReplaceCoverageAreas(orgID string, areas []models.CoverageArea) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("organization_id = ?", orgID).Delete(&models.CoverageArea{}).Error; err != nil {
			return err
		}
		for i := range areas {
			areas[i].OrganizationID = orgID
		}
		return tx.Create(&areas).Error
	})
}
