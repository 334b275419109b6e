//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cod_receive_post_test
package cod_receive_post

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
	Receive(ctx context.Context, driverID, receivedBy int64) (*entities.CodSettlement, error)
}
