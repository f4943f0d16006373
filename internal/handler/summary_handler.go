package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"makecents/internal/service"
)

// SummaryHandler serves the monthly aggregation and the dashboard.
type SummaryHandler struct {
	summaries service.SummaryService
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(summaries service.SummaryService) *SummaryHandler {
	return &SummaryHandler{summaries: summaries}
}

// GetSummary godoc
// @Summary Current month totals
// @Tags summary
// @Produce json
// @Success 200 {object} model.Summary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /summary [get]
func (h *SummaryHandler) GetSummary(c echo.Context) error {
	summary, err := h.summaries.AggregateCurrentMonth(c.Request().Context(), currentUserID(c))
	if err != nil {
		return failure(err)
	}
	return c.JSON(http.StatusOK, summary)
}

// GetDashboard godoc
// @Summary Current month totals and the latest expenses
// @Tags summary
// @Produce json
// @Success 200 {object} service.Dashboard
// @Failure 401 {object} errors.ErrorResponse
// @Failure 503 {object} errors.ErrorResponse
// @Router /dashboard [get]
func (h *SummaryHandler) GetDashboard(c echo.Context) error {
	dashboard, err := h.summaries.Dashboard(c.Request().Context(), currentUserID(c))
	if err != nil {
		return failure(err)
	}
	return c.JSON(http.StatusOK, dashboard)
}
