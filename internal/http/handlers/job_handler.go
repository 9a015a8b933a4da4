package handlers

import (
	"strconv"

	"github.com/BobbyWang0120/glint-next/internal/models"
	"github.com/BobbyWang0120/glint-next/internal/repo"
	"github.com/BobbyWang0120/glint-next/internal/services"
	"github.com/BobbyWang0120/glint-next/internal/utils"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{jobs: jobs}
}

func (h *JobHandler) List(c *gin.Context) {
	filters := repo.JobFilters{
		Search:   c.Query("search"),
		Location: c.Query("location"),
		Type:     c.Query("type"),
		Page:     parseIntDefault(c.Query("page"), 1),
		PerPage:  parseIntDefault(c.Query("per_page"), 10),
	}

	jobs, total, err := h.jobs.List(c.Request.Context(), filters)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	if jobs == nil {
		jobs = []models.Job{}
	}

	pagination := utils.NewPagination(filters.Page, filters.PerPage, total)
	utils.RespondOK(c, gin.H{
		"jobs": jobs,
		"meta": pagination,
	})
}

func (h *JobHandler) GetByID(c *gin.Context) {
	job, err := h.jobs.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, job)
}

func parseIntDefault(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
