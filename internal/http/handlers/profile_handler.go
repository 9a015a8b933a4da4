package handlers

import (
	"net/http"

	"github.com/BobbyWang0120/glint-next/internal/models"
	"github.com/BobbyWang0120/glint-next/internal/services"
	"github.com/BobbyWang0120/glint-next/internal/utils"
	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the basic account profile: the multipart form with
// display name, phone, bio and an optional avatar image.
type ProfileHandler struct {
	profiles *services.ProfileService
}

func NewProfileHandler(profiles *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(c *gin.Context) {
	userID := c.GetString("user_id")

	profile, err := h.profiles.GetBasic(c.Request.Context(), userID)
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

func (h *ProfileHandler) Update(c *gin.Context) {
	userID := c.GetString("user_id")

	profile := &models.UserProfile{
		UserID: userID,
		Name:   optionalForm(c, "name"),
		Phone:  optionalForm(c, "phone"),
		Bio:    optionalForm(c, "bio"),
	}

	var avatar *services.AvatarUpload
	fileHeader, err := c.FormFile("avatar")
	if err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			utils.RespondError(c, utils.NewAppError(http.StatusInternalServerError, "INTERNAL_ERROR", "failed to read image", nil))
			return
		}
		defer file.Close()

		avatar = &services.AvatarUpload{
			Reader:      file,
			Size:        fileHeader.Size,
			ContentType: fileHeader.Header.Get("Content-Type"),
		}
	}

	updated, err := h.profiles.UpdateBasic(c.Request.Context(), profile, avatar)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, updated)
}

// optionalForm returns nil for missing or empty form values so the upsert
// leaves the stored column untouched.
func optionalForm(c *gin.Context, key string) *string {
	value := c.PostForm(key)
	if value == "" {
		return nil
	}
	return &value
}
