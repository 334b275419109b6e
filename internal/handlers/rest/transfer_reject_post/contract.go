//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transfer_reject_post_test
package transfer_reject_post

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
	Reject(ctx context.Context, transferID int64, reason string) (*entities.OrderTransfer, error)
}
