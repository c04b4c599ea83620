package usecase

import (
	"context"

	"pulse/internal/domain/entity"
)

// DeliveryOutcome reports which channel, if any, a dispatch attempt reached.
// Channel is one of the constants.DeliveryChannel values.
type DeliveryOutcome struct {
	Channel   string `json:"channel"`
	Delivered bool   `json:"delivered"`
}

// DispatchUsecase is the delivery router. Channel attempts are strictly
// ordered (session channel, then device channel, then push) and at most one
// terminal channel is reached per invocation. Delivery flags are checked
// before acting, so re-dispatching an already-delivered record never
// re-sends on that channel.
type DispatchUsecase interface {
	Dispatch(ctx context.Context, notification *entity.Notification) (*DeliveryOutcome, error)
}
