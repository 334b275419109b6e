//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cod_payout_post_test
package cod_payout_post

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
	Payout(ctx context.Context, codID int64, payoutMethod entities.PaymentMethodType, reference string) (*entities.CodTransaction, error)
}
