package driver

import "time"

type DriverDB struct {
	ID        int64
	CompanyID int64
	Name      string
	Phone     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DriverModifyDB struct {
	ID        *int64
	CompanyID *int64
	Name      *string
	Phone     *string
	Status    *string
}
