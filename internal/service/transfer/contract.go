//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transfer_test
package transfer

import (
	"context"
	"time"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, transferModifyEntity entities.OrderTransferModify) (*entities.OrderTransfer, error)
	GetByID(ctx context.Context, id int64) (*entities.OrderTransfer, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.OrderTransfer, error)
	GetByOrderID(ctx context.Context, orderID int64) ([]entities.OrderTransfer, error)
	Update(ctx context.Context, transferModifyEntity entities.OrderTransferModify) (*entities.OrderTransfer, error)
	// ExpirePending flips every pending transfer whose deadline passed before
	// olderThan to expired and reports how many rows changed.
	ExpirePending(ctx context.Context, olderThan time.Time) (int64, error)
}

type PartnershipRepository interface {
	GetActiveByCompanies(ctx context.Context, companyID, partnerCompanyID int64) (*entities.CompanyPartnership, error)
	IncrementTransferStats(ctx context.Context, partnershipID int64, commission float64) error
}

type OrderRepository interface {
	GetByID(ctx context.Context, id int64) (*entities.Order, error)
	Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error)
	ClearAssignment(ctx context.Context, orderID int64) error
}

type VehicleService interface {
	GetVehicle(ctx context.Context, id int64) (*entities.Vehicle, error)
	AddWeight(ctx context.Context, vehicleID int64, weightKg float64) (*entities.Vehicle, error)
}

// DeadlineFactory decides how long the target company has to answer.
type DeadlineFactory interface {
	CalculateDeadline(level entities.PartnershipLevelType, baseTime time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
