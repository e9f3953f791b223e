package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mashkanta-digital/admin-api/internal/models"
	"github.com/mashkanta-digital/admin-api/internal/scheduling"
	"github.com/mashkanta-digital/admin-api/internal/service"
	appErrors "github.com/mashkanta-digital/admin-api/pkg/errors"
	"github.com/mashkanta-digital/admin-api/pkg/response"
)

type availabilityService interface {
	Get(ctx context.Context) (*models.SchedulingSettings, error)
	Save(ctx context.Context, req service.UpdateAvailabilityRequest) (*models.SchedulingSettings, error)
	AddException(ctx context.Context, req service.CreateExceptionRequest) (*scheduling.DateException, error)
	DeleteException(ctx context.Context, id string) error
}

// AvailabilityHandler exposes the scheduling configuration endpoints.
type AvailabilityHandler struct {
	service availabilityService
}

// NewAvailabilityHandler constructs the handler.
func NewAvailabilityHandler(svc availabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{service: svc}
}

// Get godoc
// @Summary Get the availability configuration
// @Tags Availability
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /availability [get]
func (h *AvailabilityHandler) Get(c *gin.Context) {
	settings, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings.Document, nil)
}

// Update godoc
// @Summary Replace the weekly availability template
// @Tags Availability
// @Accept json
// @Produce json
// @Param payload body service.UpdateAvailabilityRequest true "New configuration"
// @Success 200 {object} response.Envelope
// @Router /availability [put]
func (h *AvailabilityHandler) Update(c *gin.Context) {
	var req service.UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid availability payload"))
		return
	}
	settings, err := h.service.Save(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings.Document, nil)
}

// CreateException godoc
// @Summary Add a date exception
// @Tags Availability
// @Accept json
// @Produce json
// @Param payload body service.CreateExceptionRequest true "Exception"
// @Success 201 {object} response.Envelope
// @Router /availability/exceptions [post]
func (h *AvailabilityHandler) CreateException(c *gin.Context) {
	var req service.CreateExceptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid exception payload"))
		return
	}
	exception, err := h.service.AddException(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, exception)
}

// DeleteException godoc
// @Summary Remove a date exception
// @Tags Availability
// @Param id path string true "Exception id"
// @Success 204
// @Router /availability/exceptions/{id} [delete]
func (h *AvailabilityHandler) DeleteException(c *gin.Context) {
	if err := h.service.DeleteException(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
