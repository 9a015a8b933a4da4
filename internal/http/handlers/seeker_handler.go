package handlers

import (
	"github.com/BobbyWang0120/glint-next/internal/models"
	"github.com/BobbyWang0120/glint-next/internal/services"
	"github.com/BobbyWang0120/glint-next/internal/utils"
	"github.com/gin-gonic/gin"
)

// SeekerHandler serves the job-seeker onboarding form.
type SeekerHandler struct {
	profiles *services.ProfileService
}

// SeekerProfileRequest mirrors the onboarding form: every field optional,
// numeric fields accepted as raw form strings.
type SeekerProfileRequest struct {
	FirstName       *string           `json:"firstName"`
	LastName        *string           `json:"lastName"`
	Phone           *string           `json:"phone"`
	Location        *string           `json:"location"`
	Title           *string           `json:"title"`
	YearsExperience utils.NullableInt `json:"yearsExperience"`
	Skills          *string           `json:"skills"`
	Bio             *string           `json:"bio"`
	JobTypes        *string           `json:"jobTypes"`
	Industries      *string           `json:"industries"`
	Salary          utils.NullableInt `json:"salary"`
}

func NewSeekerHandler(profiles *services.ProfileService) *SeekerHandler {
	return &SeekerHandler{profiles: profiles}
}

func (h *SeekerHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := h.profiles.GetSeeker(c.Request.Context(), userID)
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

func (h *SeekerHandler) Upsert(c *gin.Context) {
	var req SeekerProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "invalid request body")
		return
	}

	profile := &models.SeekerProfile{
		UserID:          c.GetString("user_id"),
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Phone:           req.Phone,
		Location:        req.Location,
		Title:           req.Title,
		YearsExperience: req.YearsExperience.Value,
		Skills:          req.Skills,
		Bio:             req.Bio,
		JobTypes:        req.JobTypes,
		Industries:      req.Industries,
		Salary:          req.Salary.Value,
	}

	updated, err := h.profiles.UpsertSeeker(c.Request.Context(), profile)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, updated)
}
