package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/service/transfer"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const transferColumns = `id, order_id, from_company_id, to_company_id, partnership_id,
		commission_amount, status, vehicle_id, reject_reason,
		expires_at, decided_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanTransfer(row pgx.Row, transferModel *OrderTransferDB) error {
	return row.Scan(
		&transferModel.ID,
		&transferModel.OrderID,
		&transferModel.FromCompanyID,
		&transferModel.ToCompanyID,
		&transferModel.PartnershipID,
		&transferModel.CommissionAmount,
		&transferModel.Status,
		&transferModel.VehicleID,
		&transferModel.RejectReason,
		&transferModel.ExpiresAt,
		&transferModel.DecidedAt,
		&transferModel.CreatedAt,
		&transferModel.UpdatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, transferModifyEntity entities.OrderTransferModify) (*entities.OrderTransfer, error) {
	transferModifyModel := FromDomainModify(&transferModifyEntity)

	query := `INSERT INTO order_transfers (order_id, from_company_id, to_company_id, partnership_id,
			commission_amount, status, vehicle_id, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + transferColumns

	var transferModel OrderTransferDB
	err := scanTransfer(r.querier.QueryRow(
		ctx,
		query,
		transferModifyModel.OrderID,
		transferModifyModel.FromCompanyID,
		transferModifyModel.ToCompanyID,
		transferModifyModel.PartnershipID,
		transferModifyModel.CommissionAmount,
		transferModifyModel.Status,
		transferModifyModel.VehicleID,
		transferModifyModel.ExpiresAt,
	), &transferModel)
	if err != nil {
		return nil, fmt.Errorf("unexpected transfer repository create error: %w", err)
	}

	return ToDomain(&transferModel), nil
}

func (r *Repository) Update(ctx context.Context, transferModifyEntity entities.OrderTransferModify) (*entities.OrderTransfer, error) {
	transferModifyModel := FromDomainModify(&transferModifyEntity)

	builder := qb.
		Update("order_transfers")

	if transferModifyModel.Status != nil {
		builder = builder.Set("status", transferModifyModel.Status)
	}
	if transferModifyModel.VehicleID != nil {
		builder = builder.Set("vehicle_id", transferModifyModel.VehicleID)
	}
	if transferModifyModel.RejectReason != nil {
		builder = builder.Set("reject_reason", transferModifyModel.RejectReason)
	}
	if transferModifyModel.ExpiresAt != nil {
		builder = builder.Set("expires_at", transferModifyModel.ExpiresAt)
	}
	if transferModifyModel.DecidedAt != nil {
		builder = builder.Set("decided_at", transferModifyModel.DecidedAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": transferModifyModel.ID}).
		Suffix("RETURNING " + transferColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected transfer repository update error: %w", err)
	}

	var transferModel OrderTransferDB
	err = scanTransfer(r.querier.QueryRow(ctx, query, args...), &transferModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, transfer.ErrTransferNotFound
		}

		return nil, fmt.Errorf("unexpected transfer repository update error: %w", err)
	}

	return ToDomain(&transferModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.OrderTransfer, error) {
	return r.getByID(ctx, id, false)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.OrderTransfer, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*entities.OrderTransfer, error) {
	query := `SELECT ` + transferColumns + `
		FROM order_transfers
		WHERE id = $1`
	if forUpdate {
		query += `
		FOR UPDATE`
	}

	var transferModel OrderTransferDB
	err := scanTransfer(r.querier.QueryRow(ctx, query, id), &transferModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, transfer.ErrTransferNotFound
		}

		return nil, fmt.Errorf("unexpected transfer repository getbyid error: %w", err)
	}

	return ToDomain(&transferModel), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID int64) ([]entities.OrderTransfer, error) {
	query := `SELECT ` + transferColumns + `
		FROM order_transfers
		WHERE order_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected transfer repository getbyorderid error: %w", err)
	}
	defer rows.Close()

	transferModels := make([]OrderTransferDB, 0, 8)
	for rows.Next() {
		var transferModel OrderTransferDB
		if err := scanTransfer(rows, &transferModel); err != nil {
			return nil, fmt.Errorf("unexpected transfer repository getbyorderid error: %w", err)
		}
		transferModels = append(transferModels, transferModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected transfer repository getbyorderid error: %w", err)
	}

	return ToDomainList(transferModels), nil
}

func (r *Repository) ExpirePending(ctx context.Context, olderThan time.Time) (int64, error) {
	query := `
		UPDATE order_transfers
		SET status = $1,
			decided_at = NOW(),
			updated_at = NOW()
		WHERE status = $2 AND expires_at < $3
	`

	result, err := r.querier.Exec(
		ctx,
		query,
		entities.TransferExpired.String(),
		entities.TransferPending.String(),
		olderThan,
	)
	if err != nil {
		return 0, fmt.Errorf("unexpected transfer repository expirepending error: %w", err)
	}

	return result.RowsAffected(), nil
}
