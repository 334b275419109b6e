//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	GetByTrackingCode(ctx context.Context, trackingCode string) (*entities.Order, error)
	GetByCompanyID(ctx context.Context, companyID int64, status *entities.OrderStatusType) ([]entities.Order, error)
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	// ClearAssignment drops driver, vehicle and route references.
	ClearAssignment(ctx context.Context, orderID int64) error

	AppendHistory(ctx context.Context, history entities.OrderStatusHistory) error
	GetHistory(ctx context.Context, orderID int64) ([]entities.OrderStatusHistory, error)
}

type CodRepository interface {
	Create(ctx context.Context, codModifyEntity entities.CodTransactionModify) (*entities.CodTransaction, error)
}

type DriverService interface {
	GetDriver(ctx context.Context, id int64) (*entities.Driver, error)
}

type VehicleService interface {
	AddWeight(ctx context.Context, vehicleID int64, weightKg float64) (*entities.Vehicle, error)
	RemoveWeight(ctx context.Context, vehicleID int64, weightKg float64) (*entities.Vehicle, error)
}

type EventPublisher interface {
	// PublishStatusChanged must not fail the business operation: publish
	// errors are logged inside the publisher.
	PublishStatusChanged(ctx context.Context, event entities.OrderStatusEvent)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
