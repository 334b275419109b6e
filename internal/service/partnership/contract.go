//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partnership_test
package partnership

import (
	"context"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, partnershipModifyEntity entities.CompanyPartnershipModify) (int64, error)
	GetByID(ctx context.Context, id int64) (*entities.CompanyPartnership, error)
	GetByCompanyID(ctx context.Context, companyID int64) ([]entities.CompanyPartnership, error)
	// GetActiveByCompanies returns the best active partnership from one
	// company towards another: highest level first, then priority.
	GetActiveByCompanies(ctx context.Context, companyID, partnerCompanyID int64) (*entities.CompanyPartnership, error)
	Update(ctx context.Context, partnershipModifyEntity entities.CompanyPartnershipModify) (*entities.CompanyPartnership, error)
	IncrementTransferStats(ctx context.Context, id int64, commission float64) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
