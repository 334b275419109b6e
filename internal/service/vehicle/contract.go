//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=vehicle_test
package vehicle

import (
	"context"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.Vehicle, error)
	// GetByIDForUpdate locks the row until the surrounding transaction ends.
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Vehicle, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]entities.Vehicle, error)
	Update(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (*entities.Vehicle, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
