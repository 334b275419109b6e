package partnership

import "logistics/internal/entities"

func ToDomain(p *PartnershipDB) *entities.CompanyPartnership {
	if p == nil {
		return nil
	}
	return &entities.CompanyPartnership{
		ID:               p.ID,
		CompanyID:        p.CompanyID,
		PartnerCompanyID: p.PartnerCompanyID,
		Level:            entities.PartnershipLevelType(p.Level),
		CommissionRate:   p.CommissionRate,
		Priority:         p.Priority,
		IsActive:         p.IsActive,
		TotalTransferred: p.TotalTransferred,
		TotalCommission:  p.TotalCommission,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}

func ToDomainList(models []PartnershipDB) []entities.CompanyPartnership {
	partnerships := make([]entities.CompanyPartnership, 0, len(models))
	for i := range models {
		partnerships = append(partnerships, *ToDomain(&models[i]))
	}
	return partnerships
}

func FromDomainModify(p *entities.CompanyPartnershipModify) *PartnershipModifyDB {
	if p == nil {
		return nil
	}
	partnershipModifyDB := &PartnershipModifyDB{}

	if p.ID != nil {
		partnershipModifyDB.ID = p.ID
	}
	if p.CompanyID != nil {
		partnershipModifyDB.CompanyID = p.CompanyID
	}
	if p.PartnerCompanyID != nil {
		partnershipModifyDB.PartnerCompanyID = p.PartnerCompanyID
	}
	if p.Level != nil {
		level := p.Level.String()
		partnershipModifyDB.Level = &level
	}
	if p.CommissionRate != nil {
		partnershipModifyDB.CommissionRate = p.CommissionRate
	}
	if p.Priority != nil {
		partnershipModifyDB.Priority = p.Priority
	}
	if p.IsActive != nil {
		partnershipModifyDB.IsActive = p.IsActive
	}

	return partnershipModifyDB
}
