package vehicle

import "logistics/internal/entities"

func ToDomain(v *VehicleDB) *entities.Vehicle {
	if v == nil {
		return nil
	}
	return &entities.Vehicle{
		ID:                v.ID,
		CompanyID:         v.CompanyID,
		PlateNumber:       v.PlateNumber,
		VehicleType:       entities.VehicleType(v.VehicleType),
		MaxWeightKg:       v.MaxWeightKg,
		CurrentWeightKg:   v.CurrentWeightKg,
		OverloadThreshold: v.OverloadThreshold,
		AllowOverload:     v.AllowOverload,
		Status:            entities.VehicleStatusType(v.Status),
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}

func ToDomainList(models []VehicleDB) []entities.Vehicle {
	vehicles := make([]entities.Vehicle, 0, len(models))
	for i := range models {
		vehicles = append(vehicles, *ToDomain(&models[i]))
	}
	return vehicles
}

func FromDomainModify(v *entities.VehicleModify) *VehicleModifyDB {
	if v == nil {
		return nil
	}
	vehicleModifyDB := &VehicleModifyDB{}

	if v.ID != nil {
		vehicleModifyDB.ID = v.ID
	}
	if v.CompanyID != nil {
		vehicleModifyDB.CompanyID = v.CompanyID
	}
	if v.PlateNumber != nil {
		vehicleModifyDB.PlateNumber = v.PlateNumber
	}
	if v.VehicleType != nil {
		vehicleType := v.VehicleType.String()
		vehicleModifyDB.VehicleType = &vehicleType
	}
	if v.MaxWeightKg != nil {
		vehicleModifyDB.MaxWeightKg = v.MaxWeightKg
	}
	if v.CurrentWeightKg != nil {
		vehicleModifyDB.CurrentWeightKg = v.CurrentWeightKg
	}
	if v.OverloadThreshold != nil {
		vehicleModifyDB.OverloadThreshold = v.OverloadThreshold
	}
	if v.AllowOverload != nil {
		vehicleModifyDB.AllowOverload = v.AllowOverload
	}
	if v.Status != nil {
		status := v.Status.String()
		vehicleModifyDB.Status = &status
	}

	return vehicleModifyDB
}
