package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calendar/internal/core/services"
)

type NotificationHandler struct {
	svc *services.NotificationService
}

func NewNotificationHandler(svc *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

type permissionResponse struct {
	Granted  bool                        `json:"granted"`
	Settings domain.NotificationSettings `json:"settings"`
}

type messageResponse struct {
	Message string `json:"message" example:"test notification sent"`
}

func (h *NotificationHandler) RegisterRoutes(router *gin.RouterGroup) {
	n := router.Group("/notifications")
	{
		n.GET("", h.Status)
		n.GET("/settings", h.GetSettings)
		n.PUT("/settings", h.SaveSettings)
		n.POST("/permission", h.Enable)
		n.POST("/test", h.SendTest)
	}
}

// Status godoc
// @Summary  Channel support, permission and reminder state
// @Tags     notifications
// @Produce  json
// @Success  200 {object} services.NotificationStatus
// @Router   /notifications [get]
func (h *NotificationHandler) Status(c *gin.Context) {
	status, err := h.svc.Status(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// GetSettings godoc
// @Summary  Stored notification settings, defaults when unset
// @Tags     notifications
// @Produce  json
// @Success  200 {object} domain.NotificationSettings
// @Router   /notifications/settings [get]
func (h *NotificationHandler) GetSettings(c *gin.Context) {
	settings, err := h.svc.Settings(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

// SaveSettings godoc
// @Summary  Persist settings and arm or cancel the daily reminder
// @Tags     notifications
// @Accept   json
// @Produce  json
// @Param    body body domain.NotificationSettings true "Settings"
// @Success  200 {object} domain.NotificationSettings
// @Failure  400 {object} errorResponse
// @Router   /notifications/settings [put]
func (h *NotificationHandler) SaveSettings(c *gin.Context) {
	var req domain.NotificationSettings
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	saved, err := h.svc.SaveSettings(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, saved)
}

// Enable godoc
// @Summary  Request permission and switch notifications on
// @Tags     notifications
// @Produce  json
// @Success  200 {object} permissionResponse
// @Failure  403 {object} errorResponse
// @Router   /notifications/permission [post]
func (h *NotificationHandler) Enable(c *gin.Context) {
	settings, err := h.svc.Enable(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, permissionResponse{Granted: true, Settings: settings})
}

// SendTest godoc
// @Summary  Send the sample notification
// @Tags     notifications
// @Produce  json
// @Success  200 {object} messageResponse
// @Failure  409 {object} errorResponse
// @Router   /notifications/test [post]
func (h *NotificationHandler) SendTest(c *gin.Context) {
	if err := h.svc.SendTest(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "test notification sent"})
}
