package driver

import "logistics/internal/entities"

func ToDomain(d *DriverDB) *entities.Driver {
	if d == nil {
		return nil
	}
	return &entities.Driver{
		ID:        d.ID,
		CompanyID: d.CompanyID,
		Name:      d.Name,
		Phone:     d.Phone,
		Status:    entities.DriverStatusType(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func ToDomainList(models []DriverDB) []entities.Driver {
	drivers := make([]entities.Driver, 0, len(models))
	for i := range models {
		drivers = append(drivers, *ToDomain(&models[i]))
	}
	return drivers
}

func FromDomainModify(d *entities.DriverModify) *DriverModifyDB {
	if d == nil {
		return nil
	}
	driverModifyDB := &DriverModifyDB{}

	if d.ID != nil {
		driverModifyDB.ID = d.ID
	}
	if d.CompanyID != nil {
		driverModifyDB.CompanyID = d.CompanyID
	}
	if d.Name != nil {
		driverModifyDB.Name = d.Name
	}
	if d.Phone != nil {
		driverModifyDB.Phone = d.Phone
	}
	if d.Status != nil {
		status := d.Status.String()
		driverModifyDB.Status = &status
	}

	return driverModifyDB
}
