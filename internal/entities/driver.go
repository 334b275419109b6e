package entities

import "time"

type Driver struct {
	ID        int64
	CompanyID int64
	Name      string
	Phone     string
	Status    DriverStatusType
	CreatedAt time.Time
	UpdatedAt time.Time
}

type DriverStatusType string

const (
	DriverActive   DriverStatusType = "active"
	DriverInactive DriverStatusType = "inactive"
)

const DefaultDriverStatus = DriverActive

func (t DriverStatusType) String() string {
	return string(t)
}

type DriverModify struct {
	ID        *int64
	CompanyID *int64
	Name      *string
	Phone     *string
	Status    *DriverStatusType
}
