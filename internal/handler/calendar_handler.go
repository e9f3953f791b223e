package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mashkanta-digital/admin-api/internal/dto"
	"github.com/mashkanta-digital/admin-api/internal/scheduling"
	appErrors "github.com/mashkanta-digital/admin-api/pkg/errors"
	"github.com/mashkanta-digital/admin-api/pkg/response"
)

type calendarService interface {
	DayView(ctx context.Context, day time.Time) (*dto.CalendarDayView, error)
	WeekView(ctx context.Context, anchor time.Time) (*dto.CalendarWeekView, error)
	MonthView(ctx context.Context, anchor time.Time) (*dto.CalendarMonthView, error)
	ExportDay(ctx context.Context, day time.Time) ([]byte, error)
}

// CalendarHandler exposes the rendered calendar views.
type CalendarHandler struct {
	service calendarService
}

// NewCalendarHandler constructs the handler.
func NewCalendarHandler(svc calendarService) *CalendarHandler {
	return &CalendarHandler{service: svc}
}

// Day godoc
// @Summary Day view with overlap layout
// @Tags Calendar
// @Produce json
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /calendar/day [get]
func (h *CalendarHandler) Day(c *gin.Context) {
	day, err := requireDateQuery(c, "date")
	if err != nil {
		response.Error(c, err)
		return
	}
	view, err := h.service.DayView(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Week godoc
// @Summary Week view anchored on a date
// @Tags Calendar
// @Produce json
// @Param date query string true "Anchor day (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /calendar/week [get]
func (h *CalendarHandler) Week(c *gin.Context) {
	day, err := requireDateQuery(c, "date")
	if err != nil {
		response.Error(c, err)
		return
	}
	view, err := h.service.WeekView(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// Month godoc
// @Summary Month view with per-day counts
// @Tags Calendar
// @Produce json
// @Param date query string true "Anchor day (YYYY-MM-DD)"
// @Success 200 {object} response.Envelope
// @Router /calendar/month [get]
func (h *CalendarHandler) Month(c *gin.Context) {
	day, err := requireDateQuery(c, "date")
	if err != nil {
		response.Error(c, err)
		return
	}
	view, err := h.service.MonthView(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// ExportDay godoc
// @Summary Export a day's schedule as PDF
// @Tags Calendar
// @Produce application/pdf
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {file} binary
// @Router /calendar/day/export [get]
func (h *CalendarHandler) ExportDay(c *gin.Context) {
	day, err := requireDateQuery(c, "date")
	if err != nil {
		response.Error(c, err)
		return
	}
	payload, err := h.service.ExportDay(c.Request.Context(), day)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename=schedule-"+day.Format(scheduling.DateLayout)+".pdf")
	c.Data(http.StatusOK, "application/pdf", payload)
}

func requireDateQuery(c *gin.Context, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, key+" is required (YYYY-MM-DD)")
	}
	parsed, err := time.ParseInLocation(scheduling.DateLayout, raw, time.Local)
	if err != nil {
		return time.Time{}, appErrors.Clone(appErrors.ErrValidation, "invalid "+key+", expected YYYY-MM-DD")
	}
	return parsed, nil
}
