package order_status_changed

import (
	"context"

	"logistics/internal/entities"
	"logistics/internal/pkg/factory/notify_handle"
	"logistics/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type OrderService interface {
	GetOrder(ctx context.Context, id int64) (*entities.Order, error)
}

type NotifyFactory interface {
	GetHandler(status entities.OrderStatusType) (notify_handle.ExecuteFn, error)
}
