package handlers

import (
	"github.com/BobbyWang0120/glint-next/internal/models"
	"github.com/BobbyWang0120/glint-next/internal/services"
	"github.com/BobbyWang0120/glint-next/internal/utils"
	"github.com/gin-gonic/gin"
)

// CompanyHandler serves the employer onboarding form.
type CompanyHandler struct {
	profiles *services.ProfileService
}

type CompanyProfileRequest struct {
	Name          *string           `json:"name"`
	Website       *string           `json:"website"`
	Industry      *string           `json:"industry"`
	Size          *string           `json:"size"`
	Founded       utils.NullableInt `json:"founded"`
	Phone         *string           `json:"phone"`
	Email         *string           `json:"email"`
	Location      *string           `json:"location"`
	Address       *string           `json:"address"`
	Description   *string           `json:"description"`
	Mission       *string           `json:"mission"`
	Culture       *string           `json:"culture"`
	Benefits      *string           `json:"benefits"`
	LinkedIn      *string           `json:"linkedin"`
	Twitter       *string           `json:"twitter"`
	LicenseNumber *string           `json:"licenseNumber"`
}

func NewCompanyHandler(profiles *services.ProfileService) *CompanyHandler {
	return &CompanyHandler{profiles: profiles}
}

func (h *CompanyHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := h.profiles.GetCompany(c.Request.Context(), userID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if profile == nil {
		utils.RespondOK(c, gin.H{})
		return
	}

	utils.RespondOK(c, profile)
}

func (h *CompanyHandler) Upsert(c *gin.Context) {
	var req CompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "invalid request body")
		return
	}

	profile := &models.CompanyProfile{
		UserID:        c.GetString("user_id"),
		Name:          req.Name,
		Website:       req.Website,
		Industry:      req.Industry,
		Size:          req.Size,
		Founded:       req.Founded.Value,
		Phone:         req.Phone,
		Email:         req.Email,
		Location:      req.Location,
		Address:       req.Address,
		Description:   req.Description,
		Mission:       req.Mission,
		Culture:       req.Culture,
		Benefits:      req.Benefits,
		LinkedIn:      req.LinkedIn,
		Twitter:       req.Twitter,
		LicenseNumber: req.LicenseNumber,
	}

	updated, err := h.profiles.UpsertCompany(c.Request.Context(), profile)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, updated)
}
