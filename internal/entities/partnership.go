package entities

import (
	"math"
	"time"
)

// CompanyPartnership is a directed relationship: CompanyID may hand orders
// off to PartnerCompanyID for a commission.
type CompanyPartnership struct {
	ID               int64
	CompanyID        int64
	PartnerCompanyID int64
	Level            PartnershipLevelType
	CommissionRate   float64 // percent of the shipping fee, 0..100
	Priority         int
	IsActive         bool
	TotalTransferred int64
	TotalCommission  float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type PartnershipLevelType string

const (
	PartnershipPreferred PartnershipLevelType = "preferred"
	PartnershipRegular   PartnershipLevelType = "regular"
	PartnershipBackup    PartnershipLevelType = "backup"
)

const DefaultPartnershipLevel = PartnershipRegular

func (t PartnershipLevelType) String() string {
	return string(t)
}

func (t PartnershipLevelType) IsValid() bool {
	switch t {
	case PartnershipPreferred, PartnershipRegular, PartnershipBackup:
		return true
	default:
		return false
	}
}

// Commission is the single commission formula for the whole system:
// shipping fee × rate / 100, rounded half away from zero to 2 decimals.
func (p CompanyPartnership) Commission(shippingFee float64) float64 {
	return math.Round(shippingFee*p.CommissionRate) / 100
}

type CompanyPartnershipModify struct {
	ID               *int64
	CompanyID        *int64
	PartnerCompanyID *int64
	Level            *PartnershipLevelType
	CommissionRate   *float64
	Priority         *int
	IsActive         *bool
}
