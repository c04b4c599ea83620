package handler

import (
	"net/http"

	"pulse/internal/delivery/http/response"
	"pulse/internal/domain/constants"
	"pulse/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// StatusHandler exposes presence counters for operators.
type StatusHandler struct {
	gateway service.RealtimeGateway
}

// NewStatusHandler is the constructor for StatusHandler
func NewStatusHandler(gateway service.RealtimeGateway) *StatusHandler {
	return &StatusHandler{
		gateway: gateway,
	}
}

// OnlineStats reports the number of recipients currently connected per pool.
func (h *StatusHandler) OnlineStats(c echo.Context) error {
	stats := map[string]int{
		constants.ChannelSession: h.gateway.CountOnline(constants.ChannelSession),
		constants.ChannelDevice:  h.gateway.CountOnline(constants.ChannelDevice),
	}

	return response.Success(c, http.StatusOK, stats, "Online stats retrieved successfully")
}
