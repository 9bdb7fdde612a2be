package handler

import (
	"net/http"

	"referral-coordination-backend/internal/repository"
	"referral-coordination-backend/internal/service"
	"referral-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type createReferralRequest struct {
	SenderOrgID     string  `json:"senderOrgId" binding:"required"`
	ReceiverOrgID   string  `json:"receiverOrgId" binding:"required"`
	PatientName     string  `json:"patientName" binding:"required"`
	InsuranceNumber string  `json:"insuranceNumber" binding:"required"`
	Notes           *string `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ReferralHandler struct {
	referralService *service.ReferralService
}

func NewReferralHandler(referralService *service.ReferralService) *ReferralHandler {
	return &ReferralHandler{
		referralService: referralService,
	}
}

// CreateReferral creates a role-validated referral between two organizations
func (h *ReferralHandler) CreateReferral(c *gin.Context) {
	var req createReferralRequest
	if !bindJSON(c, &req) {
		return
	}

	referral, err := h.referralService.Create(service.CreateReferralInput{
		SenderOrgID:     req.SenderOrgID,
		ReceiverOrgID:   req.ReceiverOrgID,
		PatientName:     req.PatientName,
		InsuranceNumber: req.InsuranceNumber,
		Notes:           req.Notes,
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Referral created successfully", referral)
}

// GetReferrals lists referrals narrowed by the optional query filters
func (h *ReferralHandler) GetReferrals(c *gin.Context) {
	filter := repository.ReferralFilter{
		SenderOrgID:   c.Query("senderOrgId"),
		ReceiverOrgID: c.Query("receiverOrgId"),
		Status:        c.Query("status"),
	}

	referrals, err := h.referralService.List(filter)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.ListResponse(c, "Referrals fetched successfully", referrals, len(referrals))
}

// UpdateReferralStatus moves a referral to one of the enumerated statuses
func (h *ReferralHandler) UpdateReferralStatus(c *gin.Context) {
	var req updateStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	referral, err := h.referralService.UpdateStatus(c.Param("id"), req.Status)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Referral status updated successfully", referral)
}
