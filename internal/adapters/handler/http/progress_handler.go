package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/services"
)

type ProgressHandler struct {
	svc *services.ProgressService
}

func NewProgressHandler(svc *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{svc: svc}
}

type toggleRequest struct {
	HabitID   string `json:"habit_id" binding:"required" example:"3f0c..."`
	Completed bool   `json:"completed" example:"true"`
}

type setProgressRequest struct {
	Habits map[string]bool `json:"habits" binding:"required"`
}

func (h *ProgressHandler) RegisterRoutes(router *gin.RouterGroup) {
	progress := router.Group("/progress")
	{
		progress.GET("", h.List)
		progress.GET("/:date", h.Day)
		progress.PUT("/:date", h.Set)
		progress.POST("/:date/toggle", h.Toggle)
	}
}

// List godoc
// @Summary  Every stored day record
// @Tags     progress
// @Produce  json
// @Success  200 {array} domain.DayProgress
// @Router   /progress [get]
func (h *ProgressHandler) List(c *gin.Context) {
	all, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

// Day godoc
// @Summary  One day reconciled against the current habits
// @Tags     progress
// @Produce  json
// @Param    date path string true "YYYY-MM-DD"
// @Success  200 {object} domain.DayView
// @Failure  400 {object} errorResponse
// @Router   /progress/{date} [get]
func (h *ProgressHandler) Day(c *gin.Context) {
	view, err := h.svc.Day(c.Request.Context(), c.Param("date"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Set godoc
// @Summary  Store the completion map of a day
// @Tags     progress
// @Accept   json
// @Produce  json
// @Param    date path string             true "YYYY-MM-DD"
// @Param    body body setProgressRequest true "Habit id to completed"
// @Success  200 {object} domain.DayProgress
// @Failure  400 {object} errorResponse
// @Router   /progress/{date} [put]
func (h *ProgressHandler) Set(c *gin.Context) {
	var req setProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	rec, err := h.svc.Set(c.Request.Context(), c.Param("date"), req.Habits)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Toggle godoc
// @Summary  Mark one habit done or not done on a day
// @Tags     progress
// @Accept   json
// @Produce  json
// @Param    date path string        true "YYYY-MM-DD"
// @Param    body body toggleRequest true "Habit and new state"
// @Success  200 {object} domain.DayView
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /progress/{date}/toggle [post]
func (h *ProgressHandler) Toggle(c *gin.Context) {
	var req toggleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	view, err := h.svc.Toggle(c.Request.Context(), services.ToggleInput{
		Date:      c.Param("date"),
		HabitID:   req.HabitID,
		Completed: req.Completed,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
