package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mashkanta-digital/admin-api/internal/scheduling"
	"github.com/mashkanta-digital/admin-api/pkg/response"
)

// HolidayHandler serves the built-in holiday table.
type HolidayHandler struct{}

// NewHolidayHandler constructs the handler.
func NewHolidayHandler() *HolidayHandler {
	return &HolidayHandler{}
}

// List godoc
// @Summary List the known holidays
// @Tags Holidays
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /holidays [get]
func (h *HolidayHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, scheduling.Holidays(), nil)
}
