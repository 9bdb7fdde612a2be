package handler

import (
	"net/http"
	"strconv"

	"referral-coordination-backend/internal/models"
	"referral-coordination-backend/internal/service"
	"referral-coordination-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type contactRequest struct {
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required,min=10"`
}

type createOrganizationRequest struct {
	Name    string         `json:"name" binding:"required"`
	Type    string         `json:"type" binding:"required,oneof=CLINIC PHARMACY HOME_HEALTH NURSING_HOME TRANSPORTATION DME"`
	Role    string         `json:"role" binding:"required,oneof=SENDER RECEIVER BOTH"`
	Contact contactRequest `json:"contact" binding:"required"`
}

type updateOrganizationRequest struct {
	Name    *string         `json:"name"`
	Type    *string         `json:"type" binding:"omitempty,oneof=CLINIC PHARMACY HOME_HEALTH NURSING_HOME TRANSPORTATION DME"`
	Role    *string         `json:"role" binding:"omitempty,oneof=SENDER RECEIVER BOTH"`
	Contact *contactRequest `json:"contact"`
}

type coverageAreaRequest struct {
	State   string  `json:"state" binding:"required"`
	County  *string `json:"county"`
	City    *string `json:"city"`
	ZipCode *string `json:"zipCode"`
}

type updateCoverageRequest struct {
	CoverageAreas []coverageAreaRequest `json:"coverageAreas" binding:"required,min=1,dive"`
}

type OrganizationHandler struct {
	orgService *service.OrganizationService
}

func NewOrganizationHandler(orgService *service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: orgService,
	}
}

// CreateOrganization registers a new organization
func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req createOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	org, err := h.orgService.Create(service.CreateOrganizationInput{
		Name: req.Name,
		Type: req.Type,
		Role: req.Role,
		Contact: models.Contact{
			Email: req.Contact.Email,
			Phone: req.Contact.Phone,
		},
	})
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Organization created successfully", org)
}

// GetOrganizations lists organizations with their coverage areas, newest
// first. When page or limit is supplied the listing is windowed and carries
// pagination metadata.
func (h *OrganizationHandler) GetOrganizations(c *gin.Context) {
	pageStr := c.Query("page")
	limitStr := c.Query("limit")

	if pageStr != "" || limitStr != "" {
		page, _ := strconv.Atoi(pageStr)
		limit, _ := strconv.Atoi(limitStr)

		orgs, pagination, err := h.orgService.ListPage(page, limit)
		if err != nil {
			utils.HandleError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"message":    "Organizations fetched successfully",
			"data":       orgs,
			"count":      len(orgs),
			"pagination": pagination,
		})
		return
	}

	orgs, err := h.orgService.List()
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.ListResponse(c, "Organizations fetched successfully", orgs, len(orgs))
}

// GetOrganization retrieves one organization with coverage areas and both
// referral directions
func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	org, err := h.orgService.GetByID(c.Param("id"))
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Organization fetched successfully", org)
}

// UpdateCoverageAreas atomically replaces the organization's coverage set
func (h *OrganizationHandler) UpdateCoverageAreas(c *gin.Context) {
	var req updateCoverageRequest
	if !bindJSON(c, &req) {
		return
	}

	areas := make([]models.CoverageArea, 0, len(req.CoverageAreas))
	for _, area := range req.CoverageAreas {
		areas = append(areas, models.CoverageArea{
			State:   area.State,
			County:  area.County,
			City:    area.City,
			ZipCode: area.ZipCode,
		})
	}

	org, err := h.orgService.ReplaceCoverageAreas(c.Param("id"), areas)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Coverage updated successfully", org)
}

// UpdateOrganization applies a partial update; absent fields stay unchanged
func (h *OrganizationHandler) UpdateOrganization(c *gin.Context) {
	var req updateOrganizationRequest
	if !bindJSON(c, &req) {
		return
	}

	input := service.UpdateOrganizationInput{
		Name: req.Name,
		Type: req.Type,
		Role: req.Role,
	}
	if req.Contact != nil {
		input.Contact = &models.Contact{
			Email: req.Contact.Email,
			Phone: req.Contact.Phone,
		}
	}

	org, err := h.orgService.Update(c.Param("id"), input)
	if err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Organization updated successfully", org)
}

// DeleteOrganization removes an organization with no attached referrals
func (h *OrganizationHandler) DeleteOrganization(c *gin.Context) {
	if err := h.orgService.Delete(c.Param("id")); err != nil {
		utils.HandleError(c, err)
		return
	}

	utils.MessageResponse(c, "Organization deleted successfully")
}
