// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pulse/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	NotificationHandler *handler.NotificationHandler
	ScheduleHandler     *handler.ScheduleHandler
	StreamHandler       *handler.StreamHandler
	StatusHandler       *handler.StatusHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	notificationHandler *handler.NotificationHandler
	scheduleHandler     *handler.ScheduleHandler
	streamHandler       *handler.StreamHandler
	statusHandler       *handler.StatusHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notificationHandler: params.NotificationHandler,
		scheduleHandler:     params.ScheduleHandler,
		streamHandler:       params.StreamHandler,
		statusHandler:       params.StatusHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Notification routes
	notificationGroup := e.Group("/notifications")
	{
		notificationGroup.POST("", r.notificationHandler.Create)
		notificationGroup.POST("/broadcast", r.notificationHandler.Broadcast)
		notificationGroup.PATCH("/:id/read", r.notificationHandler.MarkRead)
	}

	// Schedule routes
	scheduleGroup := e.Group("/schedules")
	{
		scheduleGroup.POST("", r.scheduleHandler.Create)
		scheduleGroup.GET("/upcoming", r.scheduleHandler.Upcoming)
		scheduleGroup.DELETE("/:id", r.scheduleHandler.Cancel)
	}

	// Realtime handshake routes
	wsGroup := e.Group("/ws")
	{
		wsGroup.GET("/session", r.streamHandler.Session)
		wsGroup.GET("/device", r.streamHandler.Device)
	}

	// Operator stats
	e.GET("/stats/online", r.statusHandler.OnlineStats)
}
