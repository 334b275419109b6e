package transfer

import "logistics/internal/entities"

func ToDomain(t *OrderTransferDB) *entities.OrderTransfer {
	if t == nil {
		return nil
	}
	return &entities.OrderTransfer{
		ID:               t.ID,
		OrderID:          t.OrderID,
		FromCompanyID:    t.FromCompanyID,
		ToCompanyID:      t.ToCompanyID,
		PartnershipID:    t.PartnershipID,
		CommissionAmount: t.CommissionAmount,
		Status:           entities.TransferStatusType(t.Status),
		VehicleID:        t.VehicleID,
		RejectReason:     t.RejectReason,
		ExpiresAt:        t.ExpiresAt,
		DecidedAt:        t.DecidedAt,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func ToDomainList(models []OrderTransferDB) []entities.OrderTransfer {
	transfers := make([]entities.OrderTransfer, 0, len(models))
	for i := range models {
		transfers = append(transfers, *ToDomain(&models[i]))
	}
	return transfers
}

func FromDomainModify(t *entities.OrderTransferModify) *OrderTransferModifyDB {
	if t == nil {
		return nil
	}
	transferModifyDB := &OrderTransferModifyDB{}

	if t.ID != nil {
		transferModifyDB.ID = t.ID
	}
	if t.OrderID != nil {
		transferModifyDB.OrderID = t.OrderID
	}
	if t.FromCompanyID != nil {
		transferModifyDB.FromCompanyID = t.FromCompanyID
	}
	if t.ToCompanyID != nil {
		transferModifyDB.ToCompanyID = t.ToCompanyID
	}
	if t.PartnershipID != nil {
		transferModifyDB.PartnershipID = t.PartnershipID
	}
	if t.CommissionAmount != nil {
		transferModifyDB.CommissionAmount = t.CommissionAmount
	}
	if t.Status != nil {
		status := t.Status.String()
		transferModifyDB.Status = &status
	}
	if t.VehicleID != nil {
		transferModifyDB.VehicleID = t.VehicleID
	}
	if t.RejectReason != nil {
		transferModifyDB.RejectReason = t.RejectReason
	}
	if t.ExpiresAt != nil {
		transferModifyDB.ExpiresAt = t.ExpiresAt
	}
	if t.DecidedAt != nil {
		transferModifyDB.DecidedAt = t.DecidedAt
	}

	return transferModifyDB
}
