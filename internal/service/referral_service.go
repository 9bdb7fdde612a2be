package service

import (
	"errors"
	"fmt"
	"strings"

	"referral-coordination-backend/internal/models"
	"referral-coordination-backend/internal/repository"
	"referral-coordination-backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
)

// CreateReferralInput carries the attributes for a new referral
type CreateReferralInput struct {
	SenderOrgID     string
	ReceiverOrgID   string
	PatientName     string
	InsuranceNumber string
	Notes           *string
}

type ReferralService struct {
	referralRepo *repository.ReferralRepository
	orgRepo      *repository.OrganizationRepository
	auditRepo    *repository.AuditRepository
}

func NewReferralService(
	referralRepo *repository.ReferralRepository,
	orgRepo *repository.OrganizationRepository,
	auditRepo *repository.AuditRepository,
) *ReferralService {
	return &ReferralService{
		referralRepo: referralRepo,
		orgRepo:      orgRepo,
		auditRepo:    auditRepo,
	}
}

// Create resolves both organizations, checks role compatibility against their
// current roles, and persists a new referral with status PENDING. Role
// compatibility is only checked here; later role changes do not invalidate
// existing referrals.
func (s *ReferralService) Create(input CreateReferralInput) (*models.Referral, error) {
	if details := missingReferralFields(input); len(details) > 0 {
		return nil, apperrors.NewValidation(
			"senderOrgId, receiverOrgId, patientName, and insuranceNumber are required",
			details...,
		)
	}

	// Both lookups run independently; nothing is written until both succeed.
	var sender, receiver *models.Organization
	g := new(errgroup.Group)
	g.Go(func() error {
		org, err := s.orgRepo.GetByID(input.SenderOrgID)
		if err != nil {
			var notFound *apperrors.NotFoundError
			if errors.As(err, &notFound) {
				return nil
			}
			return err
		}
		sender = org
		return nil
	})
	g.Go(func() error {
		org, err := s.orgRepo.GetByID(input.ReceiverOrgID)
		if err != nil {
			var notFound *apperrors.NotFoundError
			if errors.As(err, &notFound) {
				return nil
			}
			return err
		}
		receiver = org
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if sender == nil {
		return nil, apperrors.NewNotFound("Sender organization not found")
	}
	if receiver == nil {
		return nil, apperrors.NewNotFound("Receiver organization not found")
	}

	if sender.Role == models.RoleReceiver {
		return nil, apperrors.NewConflict("Sender organization cannot send referrals (role is RECEIVER)")
	}
	if receiver.Role == models.RoleSender {
		return nil, apperrors.NewConflict("Receiver organization cannot receive referrals (role is SENDER)")
	}

	referral := &models.Referral{
		SenderOrgID:     input.SenderOrgID,
		ReceiverOrgID:   input.ReceiverOrgID,
		PatientName:     input.PatientName,
		InsuranceNumber: input.InsuranceNumber,
		Notes:           input.Notes,
		Status:          models.StatusPending,
	}
	if err := s.referralRepo.Create(referral); err != nil {
		return nil, fmt.Errorf("failed to create referral: %w", err)
	}

	auditDetails := fmt.Sprintf("Created referral %s -> %s for patient %s", sender.Name, receiver.Name, referral.PatientName)
	_ = s.auditRepo.CreateAuditLog("referral_create", referral.ID, auditDetails)

	return s.referralRepo.GetByIDWithOrgs(referral.ID)
}

// List retrieves referrals matching the filter, newest first, with both
// organizations embedded
func (s *ReferralService) List(filter repository.ReferralFilter) ([]models.Referral, error) {
	return s.referralRepo.GetAll(filter)
}

// UpdateStatus moves a referral to any of the enumerated statuses. No
// transition graph is enforced beyond set membership.
func (s *ReferralService) UpdateStatus(id string, status string) (*models.Referral, error) {
	if status == "" {
		return nil, apperrors.NewValidation("Status is required")
	}
	if !models.ValidReferralStatus(status) {
		return nil, apperrors.NewValidation(
			fmt.Sprintf("Status must be one of: %s", strings.Join(models.ReferralStatuses, ", ")),
		)
	}

	existing, err := s.referralRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.referralRepo.UpdateStatus(id, status); err != nil {
		return nil, fmt.Errorf("failed to update referral status: %w", err)
	}

	auditDetails := fmt.Sprintf("Status changed %s -> %s", existing.Status, status)
	_ = s.auditRepo.CreateAuditLog("referral_status_update", id, auditDetails)

	return s.referralRepo.GetByIDWithOrgs(id)
}

func missingReferralFields(input CreateReferralInput) []apperrors.FieldError {
	var details []apperrors.FieldError
	if input.SenderOrgID == "" {
		details = append(details, apperrors.FieldError{Field: "senderOrgId", Message: "senderOrgId is required"})
	}
	if input.ReceiverOrgID == "" {
		details = append(details, apperrors.FieldError{Field: "receiverOrgId", Message: "receiverOrgId is required"})
	}
	if input.PatientName == "" {
		details = append(details, apperrors.FieldError{Field: "patientName", Message: "patientName is required"})
	}
	if input.InsuranceNumber == "" {
		details = append(details, apperrors.FieldError{Field: "insuranceNumber", Message: "insuranceNumber is required"})
	}
	return details
}
