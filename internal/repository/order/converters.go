package order

import "logistics/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:              o.ID,
		TrackingCode:    o.TrackingCode,
		CompanyID:       o.CompanyID,
		SenderName:      o.SenderName,
		SenderPhone:     o.SenderPhone,
		SenderAddress:   o.SenderAddress,
		SenderEmail:     o.SenderEmail,
		ReceiverName:    o.ReceiverName,
		ReceiverPhone:   o.ReceiverPhone,
		ReceiverAddress: o.ReceiverAddress,
		ParcelType:      entities.ParcelType(o.ParcelType),
		WeightKg:        o.WeightKg,
		DeclaredValue:   o.DeclaredValue,
		ShippingFee:     o.ShippingFee,
		CodAmount:       o.CodAmount,
		PaymentMethod:   entities.PaymentMethodType(o.PaymentMethod),
		PaymentStatus:   entities.PaymentStatusType(o.PaymentStatus),
		Status:          entities.OrderStatusType(o.Status),
		DriverID:        o.DriverID,
		VehicleID:       o.VehicleID,
		RouteID:         o.RouteID,
		PickedUpAt:      o.PickedUpAt,
		DeliveredAt:     o.DeliveredAt,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func ToDomainList(models []OrderDB) []entities.Order {
	orders := make([]entities.Order, 0, len(models))
	for i := range models {
		orders = append(orders, *ToDomain(&models[i]))
	}
	return orders
}

func ToHistoryDomain(h *StatusHistoryDB) *entities.OrderStatusHistory {
	if h == nil {
		return nil
	}
	history := &entities.OrderStatusHistory{
		ID:        h.ID,
		OrderID:   h.OrderID,
		NewStatus: entities.OrderStatusType(h.NewStatus),
		ChangedBy: h.ChangedBy,
		Notes:     h.Notes,
		PhotoURL:  h.PhotoURL,
		Location:  h.Location,
		CreatedAt: h.CreatedAt,
	}
	if h.OldStatus != nil {
		history.OldStatus = entities.OrderStatusType(*h.OldStatus)
	}
	return history
}

func ToHistoryDomainList(models []StatusHistoryDB) []entities.OrderStatusHistory {
	history := make([]entities.OrderStatusHistory, 0, len(models))
	for i := range models {
		history = append(history, *ToHistoryDomain(&models[i]))
	}
	return history
}

func FromDomainModify(o *entities.OrderModify) *OrderModifyDB {
	if o == nil {
		return nil
	}
	orderModifyDB := &OrderModifyDB{}

	if o.ID != nil {
		orderModifyDB.ID = o.ID
	}
	if o.TrackingCode != nil {
		orderModifyDB.TrackingCode = o.TrackingCode
	}
	if o.CompanyID != nil {
		orderModifyDB.CompanyID = o.CompanyID
	}
	if o.SenderName != nil {
		orderModifyDB.SenderName = o.SenderName
	}
	if o.SenderPhone != nil {
		orderModifyDB.SenderPhone = o.SenderPhone
	}
	if o.SenderAddress != nil {
		orderModifyDB.SenderAddress = o.SenderAddress
	}
	if o.SenderEmail != nil {
		orderModifyDB.SenderEmail = o.SenderEmail
	}
	if o.ReceiverName != nil {
		orderModifyDB.ReceiverName = o.ReceiverName
	}
	if o.ReceiverPhone != nil {
		orderModifyDB.ReceiverPhone = o.ReceiverPhone
	}
	if o.ReceiverAddress != nil {
		orderModifyDB.ReceiverAddress = o.ReceiverAddress
	}
	if o.ParcelType != nil {
		parcelType := o.ParcelType.String()
		orderModifyDB.ParcelType = &parcelType
	}
	if o.WeightKg != nil {
		orderModifyDB.WeightKg = o.WeightKg
	}
	if o.DeclaredValue != nil {
		orderModifyDB.DeclaredValue = o.DeclaredValue
	}
	if o.ShippingFee != nil {
		orderModifyDB.ShippingFee = o.ShippingFee
	}
	if o.CodAmount != nil {
		orderModifyDB.CodAmount = o.CodAmount
	}
	if o.PaymentMethod != nil {
		paymentMethod := o.PaymentMethod.String()
		orderModifyDB.PaymentMethod = &paymentMethod
	}
	if o.PaymentStatus != nil {
		paymentStatus := o.PaymentStatus.String()
		orderModifyDB.PaymentStatus = &paymentStatus
	}
	if o.Status != nil {
		status := o.Status.String()
		orderModifyDB.Status = &status
	}
	if o.DriverID != nil {
		orderModifyDB.DriverID = o.DriverID
	}
	if o.VehicleID != nil {
		orderModifyDB.VehicleID = o.VehicleID
	}
	if o.RouteID != nil {
		orderModifyDB.RouteID = o.RouteID
	}
	if o.PickedUpAt != nil {
		orderModifyDB.PickedUpAt = o.PickedUpAt
	}
	if o.DeliveredAt != nil {
		orderModifyDB.DeliveredAt = o.DeliveredAt
	}

	return orderModifyDB
}
