//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cod_submit_post_test
package cod_submit_post

import (
	"context"

	"logistics/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Submit(ctx context.Context, driverID int64, idempotencyKey string) (float64, error)
}
