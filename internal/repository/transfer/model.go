package transfer

import "time"

type OrderTransferDB struct {
	ID               int64
	OrderID          int64
	FromCompanyID    int64
	ToCompanyID      int64
	PartnershipID    int64
	CommissionAmount float64
	Status           string
	VehicleID        *int64
	RejectReason     string
	ExpiresAt        time.Time
	DecidedAt        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type OrderTransferModifyDB struct {
	ID               *int64
	OrderID          *int64
	FromCompanyID    *int64
	ToCompanyID      *int64
	PartnershipID    *int64
	CommissionAmount *float64
	Status           *string
	VehicleID        *int64
	RejectReason     *string
	ExpiresAt        *time.Time
	DecidedAt        *time.Time
}
