package entities

import "time"

type Vehicle struct {
	ID                int64
	CompanyID         int64
	PlateNumber       string
	VehicleType       VehicleType
	MaxWeightKg       float64
	CurrentWeightKg   float64
	OverloadThreshold float64 // capacity percent above which the vehicle is overloaded
	AllowOverload     bool
	Status            VehicleStatusType
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CapacityPercentage is always recomputed from the weights, never stored
// authoritatively on its own.
func (v Vehicle) CapacityPercentage() float64 {
	if v.MaxWeightKg <= 0 {
		return 0
	}
	return v.CurrentWeightKg / v.MaxWeightKg * 100
}

// DeriveStatus returns the capacity-driven status for the current load.
// Statuses not driven by load (in_transit, maintenance) are left untouched.
func (v Vehicle) DeriveStatus() VehicleStatusType {
	if v.Status == VehicleInTransit || v.Status == VehicleMaintenance {
		return v.Status
	}
	if v.CapacityPercentage() > v.OverloadThreshold && !v.AllowOverload {
		return VehicleOverloaded
	}
	return VehicleAvailable
}

type VehicleType string

const (
	VehicleMotorbike VehicleType = "motorbike"
	VehicleVan       VehicleType = "van"
	VehicleTruck     VehicleType = "truck"
)

const DefaultVehicleType = VehicleVan

func (t VehicleType) String() string {
	return string(t)
}

type VehicleStatusType string

const (
	VehicleAvailable   VehicleStatusType = "available"
	VehicleInTransit   VehicleStatusType = "in_transit"
	VehicleOverloaded  VehicleStatusType = "overloaded"
	VehicleMaintenance VehicleStatusType = "maintenance"
)

func (t VehicleStatusType) String() string {
	return string(t)
}

type VehicleModify struct {
	ID                *int64
	CompanyID         *int64
	PlateNumber       *string
	VehicleType       *VehicleType
	MaxWeightKg       *float64
	CurrentWeightKg   *float64
	OverloadThreshold *float64
	AllowOverload     *bool
	Status            *VehicleStatusType
}
