package partnership

import "time"

type PartnershipDB struct {
	ID               int64
	CompanyID        int64
	PartnerCompanyID int64
	Level            string
	CommissionRate   float64
	Priority         int
	IsActive         bool
	TotalTransferred int64
	TotalCommission  float64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type PartnershipModifyDB struct {
	ID               *int64
	CompanyID        *int64
	PartnerCompanyID *int64
	Level            *string
	CommissionRate   *float64
	Priority         *int
	IsActive         *bool
}
