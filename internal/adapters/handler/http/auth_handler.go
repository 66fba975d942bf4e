package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/services"
)

type AuthHandler struct {
	service *services.AuthService
}

func NewAuthHandler(service *services.AuthService) *AuthHandler {
	return &AuthHandler{
		service: service,
	}
}

type tokenRequest struct {
	Passphrase string `json:"passphrase" binding:"required"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Token godoc
// @Summary  Exchange the owner passphrase for a bearer token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body tokenRequest true "Passphrase"
// @Success  200 {object} tokenResponse
// @Failure  401 {object} errorResponse
// @Router   /auth/token [post]
func (h *AuthHandler) Token(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Passphrase)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, tokenResponse{Token: token})
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/token", h.Token)
	}
}
