package partnership

import (
	"context"
	"fmt"

	"logistics/internal/entities"
)

type Partnership struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Partnership {
	return &Partnership{
		repository: repository,
		txManager:  txManager,
	}
}

func (s *Partnership) CreatePartnership(ctx context.Context, partnershipModify entities.CompanyPartnershipModify) (int64, error) {
	if partnershipModify.CompanyID == nil ||
		partnershipModify.PartnerCompanyID == nil ||
		partnershipModify.CommissionRate == nil {
		return 0, ErrMissingRequiredFields
	}

	if *partnershipModify.CompanyID <= 0 || *partnershipModify.PartnerCompanyID <= 0 {
		return 0, ErrInvalidCompanyID
	}
	if *partnershipModify.CompanyID == *partnershipModify.PartnerCompanyID {
		return 0, ErrSameCompany
	}
	if *partnershipModify.CommissionRate < 0 || *partnershipModify.CommissionRate > 100 {
		return 0, ErrInvalidCommissionRate
	}
	if partnershipModify.Level == nil {
		defaultLevel := entities.DefaultPartnershipLevel
		partnershipModify.Level = &defaultLevel
	}
	if !partnershipModify.Level.IsValid() {
		return 0, ErrInvalidLevel
	}
	if partnershipModify.IsActive == nil {
		active := true
		partnershipModify.IsActive = &active
	}

	id, err := s.repository.Create(ctx, partnershipModify)
	if err != nil {
		return 0, fmt.Errorf("create partnership: %w", err)
	}

	return id, nil
}

func (s *Partnership) UpdatePartnership(ctx context.Context, partnershipModify entities.CompanyPartnershipModify) (*entities.CompanyPartnership, error) {
	if partnershipModify.ID == nil || *partnershipModify.ID <= 0 {
		return nil, ErrInvalidPartnershipID
	}
	if partnershipModify.Level == nil &&
		partnershipModify.CommissionRate == nil &&
		partnershipModify.Priority == nil &&
		partnershipModify.IsActive == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if partnershipModify.CommissionRate != nil &&
		(*partnershipModify.CommissionRate < 0 || *partnershipModify.CommissionRate > 100) {
		return nil, ErrInvalidCommissionRate
	}
	if partnershipModify.Level != nil && !partnershipModify.Level.IsValid() {
		return nil, ErrInvalidLevel
	}

	partnership, err := s.repository.Update(ctx, partnershipModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update partnership: %w", err)
	}
	return partnership, nil
}

func (s *Partnership) GetPartnership(ctx context.Context, id int64) (*entities.CompanyPartnership, error) {
	if id <= 0 {
		return nil, ErrInvalidPartnershipID
	}

	partnership, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get partnership: %w", err)
	}

	return partnership, nil
}

func (s *Partnership) GetPartnerships(ctx context.Context, companyID int64) ([]entities.CompanyPartnership, error) {
	if companyID <= 0 {
		return nil, ErrInvalidCompanyID
	}

	partnerships, err := s.repository.GetByCompanyID(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get partnerships: %w", err)
	}

	return partnerships, nil
}
