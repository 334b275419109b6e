package partnership

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/partnership"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const partnershipColumns = `id, company_id, partner_company_id, level, commission_rate,
		priority, is_active, total_transferred, total_commission, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, partnershipModifyEntity entities.CompanyPartnershipModify) (int64, error) {
	partnershipModifyModel := FromDomainModify(&partnershipModifyEntity)
	query := `INSERT INTO company_partnerships (company_id, partner_company_id, level,
			commission_rate, priority, is_active)
		VALUES ($1, $2, $3, $4, COALESCE($5, 0), $6)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		partnershipModifyModel.CompanyID,
		partnershipModifyModel.PartnerCompanyID,
		partnershipModifyModel.Level,
		partnershipModifyModel.CommissionRate,
		partnershipModifyModel.Priority,
		partnershipModifyModel.IsActive,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, partnership.ErrConflict
		}
		return 0, fmt.Errorf("unexpected partnership repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, partnershipModifyEntity entities.CompanyPartnershipModify) (*entities.CompanyPartnership, error) {
	partnershipModifyModel := FromDomainModify(&partnershipModifyEntity)

	builder := qb.
		Update("company_partnerships")

	if partnershipModifyModel.Level != nil {
		builder = builder.Set("level", partnershipModifyModel.Level)
	}
	if partnershipModifyModel.CommissionRate != nil {
		builder = builder.Set("commission_rate", partnershipModifyModel.CommissionRate)
	}
	if partnershipModifyModel.Priority != nil {
		builder = builder.Set("priority", partnershipModifyModel.Priority)
	}
	if partnershipModifyModel.IsActive != nil {
		builder = builder.Set("is_active", partnershipModifyModel.IsActive)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": partnershipModifyModel.ID}).
		Suffix("RETURNING " + partnershipColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected partnership repository update error: %w", err)
	}

	var partnershipModel PartnershipDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&partnershipModel.ID,
			&partnershipModel.CompanyID,
			&partnershipModel.PartnerCompanyID,
			&partnershipModel.Level,
			&partnershipModel.CommissionRate,
			&partnershipModel.Priority,
			&partnershipModel.IsActive,
			&partnershipModel.TotalTransferred,
			&partnershipModel.TotalCommission,
			&partnershipModel.CreatedAt,
			&partnershipModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, partnership.ErrPartnershipNotFound
		}

		return nil, fmt.Errorf("unexpected partnership repository update error: %w", err)
	}

	return ToDomain(&partnershipModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.CompanyPartnership, error) {
	query := `SELECT ` + partnershipColumns + `
		FROM company_partnerships
		WHERE id = $1`

	var partnershipModel PartnershipDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&partnershipModel.ID,
			&partnershipModel.CompanyID,
			&partnershipModel.PartnerCompanyID,
			&partnershipModel.Level,
			&partnershipModel.CommissionRate,
			&partnershipModel.Priority,
			&partnershipModel.IsActive,
			&partnershipModel.TotalTransferred,
			&partnershipModel.TotalCommission,
			&partnershipModel.CreatedAt,
			&partnershipModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, partnership.ErrPartnershipNotFound
		}

		return nil, fmt.Errorf("unexpected partnership repository getbyid error: %w", err)
	}

	return ToDomain(&partnershipModel), nil
}

// GetActiveByCompanies picks the single best active partnership towards the
// partner company: preferred before regular before backup, then by priority.
func (r *Repository) GetActiveByCompanies(ctx context.Context, companyID, partnerCompanyID int64) (*entities.CompanyPartnership, error) {
	query := `SELECT ` + partnershipColumns + `
		FROM company_partnerships
		WHERE company_id = $1
		  AND partner_company_id = $2
		  AND is_active = TRUE
		ORDER BY
			CASE level
				WHEN 'preferred' THEN 0
				WHEN 'regular' THEN 1
				ELSE 2
			END,
			priority DESC,
			id
		LIMIT 1`

	var partnershipModel PartnershipDB
	err := r.querier.QueryRow(ctx, query, companyID, partnerCompanyID).
		Scan(
			&partnershipModel.ID,
			&partnershipModel.CompanyID,
			&partnershipModel.PartnerCompanyID,
			&partnershipModel.Level,
			&partnershipModel.CommissionRate,
			&partnershipModel.Priority,
			&partnershipModel.IsActive,
			&partnershipModel.TotalTransferred,
			&partnershipModel.TotalCommission,
			&partnershipModel.CreatedAt,
			&partnershipModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, partnership.ErrPartnershipNotFound
		}

		return nil, fmt.Errorf("unexpected partnership repository getactive error: %w", err)
	}

	return ToDomain(&partnershipModel), nil
}

func (r *Repository) GetByCompanyID(ctx context.Context, companyID int64) ([]entities.CompanyPartnership, error) {
	query := `SELECT ` + partnershipColumns + `
		FROM company_partnerships
		WHERE company_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("unexpected partnership repository getbycompanyid error: %w", err)
	}
	defer rows.Close()

	partnershipModels := make([]PartnershipDB, 0, 8)
	for rows.Next() {
		var partnershipModel PartnershipDB
		err := rows.Scan(
			&partnershipModel.ID,
			&partnershipModel.CompanyID,
			&partnershipModel.PartnerCompanyID,
			&partnershipModel.Level,
			&partnershipModel.CommissionRate,
			&partnershipModel.Priority,
			&partnershipModel.IsActive,
			&partnershipModel.TotalTransferred,
			&partnershipModel.TotalCommission,
			&partnershipModel.CreatedAt,
			&partnershipModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected partnership repository getbycompanyid error: %w", err)
		}
		partnershipModels = append(partnershipModels, partnershipModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected partnership repository getbycompanyid error: %w", err)
	}

	return ToDomainList(partnershipModels), nil
}

func (r *Repository) IncrementTransferStats(ctx context.Context, id int64, commission float64) error {
	query := `
		UPDATE company_partnerships
		SET total_transferred = total_transferred + 1,
			total_commission = total_commission + $2,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, commission)
	if err != nil {
		return fmt.Errorf("unexpected partnership repository increment stats error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return partnership.ErrPartnershipNotFound
	}

	return nil
}
