package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calendar/internal/core/services"
)

type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler {
	return &HabitHandler{
		svc: svc,
	}
}

type createHabitRequest struct {
	Name  string `json:"name" example:"Drink water"`
	Color string `json:"color" example:"#3b82f6"`
	Icon  string `json:"icon" example:"💧"`
}

type updateHabitRequest struct {
	Name  string `json:"name" example:"Read 20 pages"`
	Color string `json:"color" example:"#8b5cf6"`
	Icon  string `json:"icon" example:"📖"`
}

type setupRequest struct {
	Habits []createHabitRequest `json:"habits" binding:"required"`
}

type reorderRequest struct {
	IDs []string `json:"ids" binding:"required"`
}

type setupStatusResponse struct {
	Complete bool `json:"complete"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.GET("", h.List)
		habits.PUT("", h.Replace)
		habits.POST("", h.Create)
		habits.GET("/setup", h.SetupStatus)
		habits.POST("/setup", h.Setup)
		habits.PUT("/order", h.Reorder)
		habits.GET("/:id", h.Get)
		habits.PUT("/:id", h.Update)
		habits.DELETE("/:id", h.Delete)
	}
}

// List godoc
// @Summary  List habits in display order
// @Tags     habits
// @Produce  json
// @Success  200 {array} domain.Habit
// @Router   /habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Replace godoc
// @Summary  Replace the whole habit list
// @Tags     habits
// @Accept   json
// @Param    habits body []domain.Habit true "Complete list"
// @Success  204
// @Failure  400 {object} errorResponse
// @Router   /habits [put]
func (h *HabitHandler) Replace(c *gin.Context) {
	var habits []domain.Habit
	if err := c.ShouldBindJSON(&habits); err != nil {
		badRequest(c, err)
		return
	}

	if err := h.svc.Replace(c.Request.Context(), habits); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Create godoc
// @Summary  Add a habit at the end of the list
// @Tags     habits
// @Accept   json
// @Produce  json
// @Param    habit body createHabitRequest true "New habit"
// @Success  201 {object} domain.Habit
// @Failure  400 {object} errorResponse
// @Router   /habits [post]
func (h *HabitHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	habit, err := h.svc.Create(c.Request.Context(), services.CreateHabitInput(req))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, habit)
}

// SetupStatus godoc
// @Summary  Whether onboarding has produced at least one habit
// @Tags     habits
// @Produce  json
// @Success  200 {object} setupStatusResponse
// @Router   /habits/setup [get]
func (h *HabitHandler) SetupStatus(c *gin.Context) {
	done, err := h.svc.IsSetupComplete(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, setupStatusResponse{Complete: done})
}

// Setup godoc
// @Summary  First-run onboarding, replaces the list with the named habits
// @Tags     habits
// @Accept   json
// @Produce  json
// @Param    body body setupRequest true "Habits to start with"
// @Success  201 {array} domain.Habit
// @Failure  400 {object} errorResponse
// @Router   /habits/setup [post]
func (h *HabitHandler) Setup(c *gin.Context) {
	var req setupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	inputs := make([]services.CreateHabitInput, 0, len(req.Habits))
	for _, r := range req.Habits {
		inputs = append(inputs, services.CreateHabitInput(r))
	}

	habits, err := h.svc.Setup(c.Request.Context(), inputs)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, habits)
}

// Reorder godoc
// @Summary  Store a new display order
// @Tags     habits
// @Accept   json
// @Produce  json
// @Param    body body reorderRequest true "Every habit id exactly once"
// @Success  200 {array} domain.Habit
// @Failure  400 {object} errorResponse
// @Router   /habits/order [put]
func (h *HabitHandler) Reorder(c *gin.Context) {
	var req reorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	habits, err := h.svc.Reorder(c.Request.Context(), req.IDs)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, habits)
}

// Get godoc
// @Summary  Fetch one habit
// @Tags     habits
// @Produce  json
// @Param    id path string true "Habit id"
// @Success  200 {object} domain.Habit
// @Failure  404 {object} errorResponse
// @Router   /habits/{id} [get]
func (h *HabitHandler) Get(c *gin.Context) {
	habit, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, habit)
}

// Update godoc
// @Summary  Rename or recolor a habit
// @Tags     habits
// @Accept   json
// @Produce  json
// @Param    id   path string             true "Habit id"
// @Param    body body updateHabitRequest true "New values, empty color or icon keep the old ones"
// @Success  200 {object} domain.Habit
// @Failure  400 {object} errorResponse
// @Failure  404 {object} errorResponse
// @Router   /habits/{id} [put]
func (h *HabitHandler) Update(c *gin.Context) {
	var req updateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	habit, err := h.svc.Update(c.Request.Context(), services.UpdateHabitInput{
		ID:    c.Param("id"),
		Name:  req.Name,
		Color: req.Color,
		Icon:  req.Icon,
	})
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, habit)
}

// Delete godoc
// @Summary  Remove a habit, its day records are kept
// @Tags     habits
// @Param    id path string true "Habit id"
// @Success  204
// @Failure  404 {object} errorResponse
// @Router   /habits/{id} [delete]
func (h *HabitHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
