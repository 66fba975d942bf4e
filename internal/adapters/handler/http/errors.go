package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
)

type errorResponse struct {
	Error string `json:"error" example:"habit name cannot be empty"`
}

var badRequestErrors = []error{
	domain.ErrHabitNameEmpty,
	domain.ErrHabitNameTooLong,
	domain.ErrInvalidColor,
	domain.ErrInvalidOrder,
	domain.ErrNoHabits,
	domain.ErrHabitIDRequired,
	domain.ErrDuplicateHabitID,
	domain.ErrInvalidDate,
	domain.ErrInvalidMonth,
	domain.ErrInvalidReminder,
	domain.ErrPassphraseTooShort,
}

// handleError maps service errors to status codes. Unknown errors are logged
// and hidden behind a generic 500.
func handleError(c *gin.Context, err error) {
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			c.JSON(http.StatusBadRequest, errorResponse{Error: target.Error()})
			return
		}
	}

	switch {
	case errors.Is(err, domain.ErrHabitNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Error: domain.ErrHabitNotFound.Error()})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, errorResponse{Error: domain.ErrInvalidCredentials.Error()})
	case errors.Is(err, domain.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, errorResponse{Error: domain.ErrPermissionDenied.Error()})
	case errors.Is(err, domain.ErrNotificationsDisabled):
		c.JSON(http.StatusConflict, errorResponse{Error: domain.ErrNotificationsDisabled.Error()})
	default:
		log.Printf("Internal error on %s %s: %v", c.Request.Method, c.FullPath(), err)
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}
