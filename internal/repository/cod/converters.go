package cod

import "logistics/internal/entities"

func ToDomain(c *CodTransactionDB) *entities.CodTransaction {
	if c == nil {
		return nil
	}
	codTransaction := &entities.CodTransaction{
		ID:              c.ID,
		OrderID:         c.OrderID,
		DriverID:        c.DriverID,
		Status:          entities.CodStatusType(c.Status),
		Amount:          c.Amount,
		CollectedAmount: c.CollectedAmount,
		SubmittedAmount: c.SubmittedAmount,
		ProofPhotoURL:   c.ProofPhotoURL,
		PayoutReference: c.PayoutReference,
		FailureReason:   c.FailureReason,
		CollectedAt:     c.CollectedAt,
		SubmittedAt:     c.SubmittedAt,
		ReceivedAt:      c.ReceivedAt,
		CompletedAt:     c.CompletedAt,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
	if c.PayoutMethod != nil {
		codTransaction.PayoutMethod = entities.PaymentMethodType(*c.PayoutMethod)
	}
	return codTransaction
}

func ToDomainList(models []CodTransactionDB) []entities.CodTransaction {
	codTransactions := make([]entities.CodTransaction, 0, len(models))
	for i := range models {
		codTransactions = append(codTransactions, *ToDomain(&models[i]))
	}
	return codTransactions
}

func FromDomainModify(c *entities.CodTransactionModify) *CodTransactionModifyDB {
	if c == nil {
		return nil
	}
	codModifyDB := &CodTransactionModifyDB{}

	if c.ID != nil {
		codModifyDB.ID = c.ID
	}
	if c.OrderID != nil {
		codModifyDB.OrderID = c.OrderID
	}
	if c.DriverID != nil {
		codModifyDB.DriverID = c.DriverID
	}
	if c.Status != nil {
		status := c.Status.String()
		codModifyDB.Status = &status
	}
	if c.Amount != nil {
		codModifyDB.Amount = c.Amount
	}
	if c.CollectedAmount != nil {
		codModifyDB.CollectedAmount = c.CollectedAmount
	}
	if c.SubmittedAmount != nil {
		codModifyDB.SubmittedAmount = c.SubmittedAmount
	}
	if c.ProofPhotoURL != nil {
		codModifyDB.ProofPhotoURL = c.ProofPhotoURL
	}
	if c.PayoutMethod != nil {
		payoutMethod := c.PayoutMethod.String()
		codModifyDB.PayoutMethod = &payoutMethod
	}
	if c.PayoutReference != nil {
		codModifyDB.PayoutReference = c.PayoutReference
	}
	if c.FailureReason != nil {
		codModifyDB.FailureReason = c.FailureReason
	}
	if c.CollectedAt != nil {
		codModifyDB.CollectedAt = c.CollectedAt
	}
	if c.SubmittedAt != nil {
		codModifyDB.SubmittedAt = c.SubmittedAt
	}
	if c.ReceivedAt != nil {
		codModifyDB.ReceivedAt = c.ReceivedAt
	}
	if c.CompletedAt != nil {
		codModifyDB.CompletedAt = c.CompletedAt
	}

	return codModifyDB
}
