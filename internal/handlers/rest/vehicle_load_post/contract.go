//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_load_post_test
package vehicle_load_post

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
	AddWeight(ctx context.Context, vehicleID int64, weightKg float64) (*entities.Vehicle, error)
}
