// Package handler contains the HTTP handlers of the notification API.
package handler

import (
	"log/slog"
	"net/http"

	"pulse/internal/delivery/http/response"
	domainerrors "pulse/internal/domain/errors"
	"pulse/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for notification-related handlers
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// BroadcastRequest represents the request body for a broadcast fan-out.
type BroadcastRequest struct {
	usecase.NotificationInput
	Recipients []uuid.UUID `json:"recipients"`
}

// Create handles creating a single notification. The response carries the
// stored record; delivery runs detached and is observable via its flags.
func (h *NotificationHandler) Create(c echo.Context) error {
	var input usecase.NotificationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid notification input")
	}

	notification, err := h.uc.Create(c.Request().Context(), &input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, notification, "Notification created successfully")
}

// Broadcast handles fanning one notification out to an explicit recipient list.
func (h *NotificationHandler) Broadcast(c echo.Context) error {
	var req BroadcastRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid broadcast input")
	}

	result, err := h.uc.Broadcast(c.Request().Context(), &req.NotificationInput, req.Recipients)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Broadcast completed")
}

// MarkRead handles marking a notification as read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid notification ID")
	}

	notification, err := h.uc.MarkRead(c.Request().Context(), id)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notification, "Notification marked as read")
}

// handleAppError handles application errors
func (h *NotificationHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
