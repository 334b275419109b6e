//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transfer_accept_post_test
package transfer_accept_post

import (
	"context"

	"logistics/internal/entities"
	"logistics/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Accept(ctx context.Context, transferID int64, newVehicleID *int64) (*entities.OrderTransfer, error)
}
