package service

import (
	"fmt"

	"referral-coordination-backend/internal/models"
	"referral-coordination-backend/internal/repository"
	"referral-coordination-backend/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

var validate = validator.New()

// CreateOrganizationInput carries the attributes for a new organization
type CreateOrganizationInput struct {
	Name    string
	Type    string
	Role    string
	Contact models.Contact
}

// UpdateOrganizationInput carries a partial update; nil fields stay unchanged
type UpdateOrganizationInput struct {
	Name    *string
	Type    *string
	Role    *string
	Contact *models.Contact
}

// Pagination describes one page of a listing
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalCount  int64 `json:"totalCount"`
	Limit       int   `json:"limit"`
}

type OrganizationService struct {
	orgRepo   *repository.OrganizationRepository
	auditRepo *repository.AuditRepository
}

func NewOrganizationService(
	orgRepo *repository.OrganizationRepository,
	auditRepo *repository.AuditRepository,
) *OrganizationService {
	return &OrganizationService{
		orgRepo:   orgRepo,
		auditRepo: auditRepo,
	}
}

// Create validates the attribute contract and persists a new organization
// with no coverage areas
func (s *OrganizationService) Create(input CreateOrganizationInput) (*models.Organization, error) {
	if details := validateOrganizationInput(input); len(details) > 0 {
		return nil, apperrors.NewValidation("Validation failed", details...)
	}

	org := &models.Organization{
		Name:    input.Name,
		Type:    input.Type,
		Role:    input.Role,
		Contact: input.Contact,
	}
	if err := s.orgRepo.Create(org); err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	details := fmt.Sprintf("Created organization: %s (type: %s, role: %s)", org.Name, org.Type, org.Role)
	_ = s.auditRepo.CreateAuditLog("organization_create", org.ID, details)

	return org, nil
}

// List retrieves all organizations with coverage areas, newest first
func (s *OrganizationService) List() ([]models.Organization, error) {
	return s.orgRepo.GetAll()
}

// ListPage retrieves one page of organizations. The offset is page-relative:
// skip = (page-1)*limit.
func (s *OrganizationService) ListPage(page, limit int) ([]models.Organization, *Pagination, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	offset := (page - 1) * limit
	orgs, total, err := s.orgRepo.GetPage(offset, limit)
	if err != nil {
		return nil, nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))
	return orgs, &Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		Limit:       limit,
	}, nil
}

// GetByID retrieves an organization with coverage areas and both referral
// directions attached
func (s *OrganizationService) GetByID(id string) (*models.Organization, error) {
	return s.orgRepo.GetByIDWithRelations(id)
}

// ReplaceCoverageAreas discards the organization's coverage set and installs
// the new one in a single transaction
func (s *OrganizationService) ReplaceCoverageAreas(id string, areas []models.CoverageArea) (*models.Organization, error) {
	if len(areas) == 0 {
		return nil, apperrors.NewValidation("coverageAreas must be a non-empty array")
	}

	var details []apperrors.FieldError
	for i, area := range areas {
		if area.State == "" {
			details = append(details, apperrors.FieldError{
				Field:   fmt.Sprintf("coverageAreas[%d].state", i),
				Message: "state is required",
			})
		}
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidation("Validation failed", details...)
	}

	if _, err := s.orgRepo.GetByID(id); err != nil {
		return nil, err
	}

	if err := s.orgRepo.ReplaceCoverageAreas(id, areas); err != nil {
		return nil, fmt.Errorf("failed to replace coverage areas: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog("coverage_replace", id, fmt.Sprintf("Replaced coverage set with %d areas", len(areas)))

	return s.orgRepo.GetByIDWithCoverage(id)
}

// Update applies a partial update; absent fields are left unchanged
func (s *OrganizationService) Update(id string, input UpdateOrganizationInput) (*models.Organization, error) {
	fields := map[string]interface{}{}
	var details []apperrors.FieldError

	if input.Name != nil {
		if *input.Name == "" {
			details = append(details, apperrors.FieldError{Field: "name", Message: "Name is required"})
		}
		fields["name"] = *input.Name
	}
	if input.Type != nil {
		if !models.ValidOrganizationType(*input.Type) {
			details = append(details, apperrors.FieldError{Field: "type", Message: "Invalid organization type"})
		}
		fields["type"] = *input.Type
	}
	if input.Role != nil {
		if !models.ValidOrganizationRole(*input.Role) {
			details = append(details, apperrors.FieldError{Field: "role", Message: "Invalid organization role"})
		}
		fields["role"] = *input.Role
	}
	if input.Contact != nil {
		details = append(details, validateContact(*input.Contact)...)
		fields["contact_email"] = input.Contact.Email
		fields["contact_phone"] = input.Contact.Phone
	}

	if len(fields) == 0 {
		return nil, apperrors.NewValidation("No fields to update")
	}
	if len(details) > 0 {
		return nil, apperrors.NewValidation("Validation failed", details...)
	}

	if _, err := s.orgRepo.GetByID(id); err != nil {
		return nil, err
	}

	if err := s.orgRepo.UpdateFields(id, fields); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	org, err := s.orgRepo.GetByIDWithCoverage(id)
	if err != nil {
		return nil, err
	}

	_ = s.auditRepo.CreateAuditLog("organization_update", id, fmt.Sprintf("Updated organization: %s", org.Name))

	return org, nil
}

// Delete removes an organization unless any referral still references it
func (s *OrganizationService) Delete(id string) error {
	org, err := s.orgRepo.GetByID(id)
	if err != nil {
		return err
	}

	count, err := s.orgRepo.CountReferrals(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewConflict("Cannot delete organization with %d existing referrals", count)
	}

	if err := s.orgRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog("organization_delete", id, fmt.Sprintf("Deleted organization: %s", org.Name))

	return nil
}

func validateOrganizationInput(input CreateOrganizationInput) []apperrors.FieldError {
	var details []apperrors.FieldError
	if input.Name == "" {
		details = append(details, apperrors.FieldError{Field: "name", Message: "Name is required"})
	}
	if !models.ValidOrganizationType(input.Type) {
		details = append(details, apperrors.FieldError{Field: "type", Message: "Invalid organization type"})
	}
	if !models.ValidOrganizationRole(input.Role) {
		details = append(details, apperrors.FieldError{Field: "role", Message: "Invalid organization role"})
	}
	details = append(details, validateContact(input.Contact)...)
	return details
}

func validateContact(contact models.Contact) []apperrors.FieldError {
	var details []apperrors.FieldError
	if validate.Var(contact.Email, "required,email") != nil {
		details = append(details, apperrors.FieldError{Field: "contact.email", Message: "Invalid email"})
	}
	if len(contact.Phone) < 10 {
		details = append(details, apperrors.FieldError{Field: "contact.phone", Message: "Phone must be at least 10 characters"})
	}
	return details
}
