package vehicle

import (
	"context"
	"fmt"

	"logistics/internal/entities"
)

const defaultOverloadThreshold = 90.0

type Vehicle struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Vehicle {
	return &Vehicle{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Vehicle) CreateVehicle(ctx context.Context, vehicleModify entities.VehicleModify) (int64, error) {
	if vehicleModify.CompanyID == nil ||
		vehicleModify.PlateNumber == nil ||
		vehicleModify.MaxWeightKg == nil {
		return 0, ErrMissingRequiredFields
	}

	if *vehicleModify.CompanyID <= 0 {
		return 0, ErrInvalidCompanyID
	}
	if !isValidPlateNumber(*vehicleModify.PlateNumber) {
		return 0, ErrInvalidPlateNumber
	}
	if *vehicleModify.MaxWeightKg <= 0 {
		return 0, ErrInvalidWeight
	}
	if vehicleModify.VehicleType == nil {
		defaultType := entities.DefaultVehicleType
		vehicleModify.VehicleType = &defaultType
	}
	if !isValidVehicleType(vehicleModify.VehicleType.String()) {
		return 0, ErrInvalidVehicleType
	}
	if vehicleModify.OverloadThreshold == nil {
		threshold := defaultOverloadThreshold
		vehicleModify.OverloadThreshold = &threshold
	}
	if *vehicleModify.OverloadThreshold <= 0 || *vehicleModify.OverloadThreshold > 100 {
		return 0, ErrInvalidThreshold
	}

	startWeight := 0.0
	startStatus := entities.VehicleAvailable
	vehicleModify.CurrentWeightKg = &startWeight
	vehicleModify.Status = &startStatus

	id, err := s.repository.Create(ctx, vehicleModify)
	if err != nil {
		return 0, fmt.Errorf("create vehicle: %w", err)
	}

	return id, nil
}

func (s *Vehicle) GetVehicle(ctx context.Context, id int64) (*entities.Vehicle, error) {
	if id <= 0 {
		return nil, ErrInvalidVehicleID
	}

	vehicle, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}

	return vehicle, nil
}

func (s *Vehicle) GetVehicles(ctx context.Context, companyID int64) ([]entities.Vehicle, error) {
	if companyID <= 0 {
		return nil, ErrInvalidCompanyID
	}

	vehicles, err := s.repository.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicles: %w", err)
	}

	return vehicles, nil
}

// AddWeight loads weightKg onto the vehicle under a row lock. Loads pushing
// the vehicle past 100% of MaxWeightKg are rejected unless AllowOverload is
// set; crossing OverloadThreshold flips the status to overloaded.
func (s *Vehicle) AddWeight(ctx context.Context, vehicleID int64, weightKg float64) (*entities.Vehicle, error) {
	if vehicleID <= 0 {
		return nil, ErrInvalidVehicleID
	}
	if weightKg <= 0 {
		return nil, ErrInvalidWeight
	}

	var updated *entities.Vehicle
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		vehicle, err := s.repository.GetByIDForUpdate(ctx, vehicleID)
		if err != nil {
			return fmt.Errorf("lock vehicle: %w", err)
		}

		next := *vehicle
		next.CurrentWeightKg = vehicle.CurrentWeightKg + weightKg
		if next.CapacityPercentage() > 100 && !next.AllowOverload {
			return ErrCapacityExceeded
		}
		newStatus := next.DeriveStatus()

		vehicleModify := entities.VehicleModify{
			ID:              &vehicle.ID,
			CurrentWeightKg: &next.CurrentWeightKg,
			Status:          &newStatus,
		}

		updated, err = s.repository.Update(ctx, vehicleModify)
		if err != nil {
			return fmt.Errorf("update vehicle load: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// RemoveWeight unloads weightKg; the current weight never drops below zero.
func (s *Vehicle) RemoveWeight(ctx context.Context, vehicleID int64, weightKg float64) (*entities.Vehicle, error) {
	if vehicleID <= 0 {
		return nil, ErrInvalidVehicleID
	}
	if weightKg <= 0 {
		return nil, ErrInvalidWeight
	}

	var updated *entities.Vehicle
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		vehicle, err := s.repository.GetByIDForUpdate(ctx, vehicleID)
		if err != nil {
			return fmt.Errorf("lock vehicle: %w", err)
		}

		next := *vehicle
		next.CurrentWeightKg = vehicle.CurrentWeightKg - weightKg
		if next.CurrentWeightKg < 0 {
			next.CurrentWeightKg = 0
		}
		newStatus := next.DeriveStatus()

		vehicleModify := entities.VehicleModify{
			ID:              &vehicle.ID,
			CurrentWeightKg: &next.CurrentWeightKg,
			Status:          &newStatus,
		}

		updated, err = s.repository.Update(ctx, vehicleModify)
		if err != nil {
			return fmt.Errorf("update vehicle load: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
