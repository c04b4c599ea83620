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

// ScheduleHandler holds dependencies for scheduled-notification handlers
type ScheduleHandler struct {
	uc     usecase.ScheduleUsecase
	logger *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler
func NewScheduleHandler(uc usecase.ScheduleUsecase, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles creating a scheduled notification.
func (h *ScheduleHandler) Create(c echo.Context) error {
	var input usecase.ScheduleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid schedule input")
	}

	schedule, err := h.uc.CreateSchedule(c.Request().Context(), &input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, schedule, "Schedule created successfully")
}

// Cancel handles cancelling a pending schedule.
func (h *ScheduleHandler) Cancel(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "Invalid schedule ID")
	}

	schedule, err := h.uc.CancelSchedule(c.Request().Context(), id)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedule, "Schedule cancelled")
}

// Upcoming handles listing pending schedules due within the next day.
func (h *ScheduleHandler) Upcoming(c echo.Context) error {
	schedules, err := h.uc.UpcomingSchedules(c.Request().Context())
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, schedules, "Upcoming schedules retrieved successfully")
}

// handleAppError handles application errors
func (h *ScheduleHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
