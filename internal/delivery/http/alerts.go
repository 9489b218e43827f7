package http

import (
	"net/http"

	"vybevigil/internal/dto"

	"github.com/labstack/echo/v4"
)

func (h *HttpAPIHandler) SetupAlerts(base *echo.Group) {
	v1 := base.Group("/v1/alerts")
	{
		v1.POST("/check", h.CheckAlerts)
	}
}

// CheckAlerts triggers one pass of the price alert watcher outside its
// schedule, handy for ops and smoke tests.
func (h *HttpAPIHandler) CheckAlerts(c echo.Context) error {
	h.service.AlertWatcher.CheckOnce(c.Request().Context())
	return c.JSON(http.StatusOK, dto.NewSuccessResponse("alert check started", nil))
}
