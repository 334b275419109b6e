package vehicle

import "time"

type VehicleDB struct {
	ID                int64
	CompanyID         int64
	PlateNumber       string
	VehicleType       string
	MaxWeightKg       float64
	CurrentWeightKg   float64
	OverloadThreshold float64
	AllowOverload     bool
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type VehicleModifyDB struct {
	ID                *int64
	CompanyID         *int64
	PlateNumber       *string
	VehicleType       *string
	MaxWeightKg       *float64
	CurrentWeightKg   *float64
	OverloadThreshold *float64
	AllowOverload     *bool
	Status            *string
}
