//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partnership_post_test
package partnership_post

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
	CreatePartnership(ctx context.Context, partnershipModify entities.CompanyPartnershipModify) (int64, error)
}
