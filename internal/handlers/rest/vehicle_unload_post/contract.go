//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_unload_post_test
package vehicle_unload_post

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
	RemoveWeight(ctx context.Context, vehicleID int64, weightKg float64) (*entities.Vehicle, error)
}
