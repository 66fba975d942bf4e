package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-calendar/internal/core/domain"
	"github.com/comitanigiacomo/kanso-calendar/internal/core/services"
)

type StatsHandler struct {
	svc *services.StatsService
}

func NewStatsHandler(svc *services.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats/monthly", h.Monthly)
	r.GET("/stats/streaks", h.Streaks)
	r.GET("/stats/heatmap", h.Heatmap)
	r.GET("/calendar", h.Calendar)
}

// monthQuery reads ?year=&month=, defaulting each to the current month.
func (h *StatsHandler) monthQuery(c *gin.Context) (int, time.Month, error) {
	year, month := h.svc.CurrentMonth()

	if raw := c.Query("year"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domain.ErrInvalidMonth
		}
		year = v
	}
	if raw := c.Query("month"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, domain.ErrInvalidMonth
		}
		month = time.Month(v)
	}
	return year, month, nil
}

// Monthly godoc
// @Summary  Daily series and summary of a month
// @Tags     stats
// @Produce  json
// @Param    year  query int false "Defaults to the current year"
// @Param    month query int false "1-12, defaults to the current month"
// @Success  200 {object} domain.MonthlyReport
// @Failure  400 {object} errorResponse
// @Router   /stats/monthly [get]
func (h *StatsHandler) Monthly(c *gin.Context) {
	year, month, err := h.monthQuery(c)
	if err != nil {
		handleError(c, err)
		return
	}

	report, err := h.svc.Monthly(c.Request.Context(), year, month)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Streaks godoc
// @Summary  Current streak of every habit
// @Tags     stats
// @Produce  json
// @Success  200 {array} domain.HabitStreak
// @Router   /stats/streaks [get]
func (h *StatsHandler) Streaks(c *gin.Context) {
	streaks, err := h.svc.Streaks(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, streaks)
}

// Heatmap godoc
// @Summary  The last 30 days, oldest first
// @Tags     stats
// @Produce  json
// @Success  200 {array} domain.HeatmapCell
// @Router   /stats/heatmap [get]
func (h *StatsHandler) Heatmap(c *gin.Context) {
	cells, err := h.svc.Heatmap(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cells)
}

// Calendar godoc
// @Summary  Sunday-aligned month grid with stored progress
// @Tags     stats
// @Produce  json
// @Param    year  query int false "Defaults to the current year"
// @Param    month query int false "1-12, defaults to the current month"
// @Success  200 {object} domain.CalendarMonth
// @Failure  400 {object} errorResponse
// @Router   /calendar [get]
func (h *StatsHandler) Calendar(c *gin.Context) {
	year, month, err := h.monthQuery(c)
	if err != nil {
		handleError(c, err)
		return
	}

	cal, err := h.svc.Calendar(c.Request.Context(), year, month)
	if err != nil {
		handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, cal)
}
