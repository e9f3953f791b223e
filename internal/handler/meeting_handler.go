package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mashkanta-digital/admin-api/internal/models"
	"github.com/mashkanta-digital/admin-api/internal/scheduling"
	"github.com/mashkanta-digital/admin-api/internal/service"
	appErrors "github.com/mashkanta-digital/admin-api/pkg/errors"
	"github.com/mashkanta-digital/admin-api/pkg/response"
)

type meetingService interface {
	Schedule(ctx context.Context, req service.ScheduleMeetingRequest) (*service.ScheduleMeetingResult, error)
	List(ctx context.Context, req service.MeetingListRequest) ([]models.Meeting, *models.Pagination, error)
	Delete(ctx context.Context, id string) error
}

// MeetingHandler exposes the meeting scheduling endpoints.
type MeetingHandler struct {
	service meetingService
}

// NewMeetingHandler constructs the handler.
func NewMeetingHandler(svc meetingService) *MeetingHandler {
	return &MeetingHandler{service: svc}
}

// rejectionError maps a scheduling rejection onto the response
// envelope: 422 with the rejection kind as error code, so clients can
// tell "change your input" apart from retryable infrastructure errors.
func rejectionError(err error) error {
	var rejection *scheduling.Rejection
	if errors.As(err, &rejection) {
		return appErrors.New(string(rejection.Kind), http.StatusUnprocessableEntity, rejection.Reason)
	}
	return err
}

// Schedule godoc
// @Summary Schedule a meeting
// @Tags Meetings
// @Accept json
// @Produce json
// @Param payload body service.ScheduleMeetingRequest true "Candidate meeting"
// @Success 201 {object} response.Envelope
// @Failure 422 {object} response.Envelope
// @Router /meetings [post]
func (h *MeetingHandler) Schedule(c *gin.Context) {
	var req service.ScheduleMeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid meeting payload"))
		return
	}

	result, err := h.service.Schedule(c.Request.Context(), req)
	if err != nil {
		response.Error(c, rejectionError(err))
		return
	}
	var meta map[string]interface{}
	if result.Warning != "" {
		meta = map[string]interface{}{"warning": result.Warning}
	}
	response.JSON(c, http.StatusCreated, result.Meeting, nil, meta)
}

// List godoc
// @Summary List meetings
// @Tags Meetings
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD, exclusive)"
// @Param user_id query string false "Customer id"
// @Success 200 {object} response.Envelope
// @Router /meetings [get]
func (h *MeetingHandler) List(c *gin.Context) {
	req := service.MeetingListRequest{UserID: c.Query("user_id")}
	from, err := parseDateQuery(c, "from")
	if err != nil {
		response.Error(c, err)
		return
	}
	to, err := parseDateQuery(c, "to")
	if err != nil {
		response.Error(c, err)
		return
	}
	req.From = from
	req.To = to
	req.Page = intQuery(c, "page", 1)
	req.PageSize = intQuery(c, "page_size", 50)

	meetings, pagination, err := h.service.List(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, meetings, pagination)
}

// Delete godoc
// @Summary Delete a meeting
// @Tags Meetings
// @Param id path string true "Meeting id"
// @Success 204
// @Router /meetings/{id} [delete]
func (h *MeetingHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

func parseDateQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation(scheduling.DateLayout, raw, time.Local)
	if err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "invalid "+key+", expected YYYY-MM-DD")
	}
	return &parsed, nil
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return fallback
	}
	return value
}
