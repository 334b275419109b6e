package cod

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/cod"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const codColumns = `id, order_id, driver_id, status,
		amount, collected_amount, submitted_amount,
		proof_photo_url, payout_method, payout_reference, failure_reason,
		collected_at, submitted_at, received_at, completed_at,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanCodTransaction(row pgx.Row, codModel *CodTransactionDB) error {
	return row.Scan(
		&codModel.ID,
		&codModel.OrderID,
		&codModel.DriverID,
		&codModel.Status,
		&codModel.Amount,
		&codModel.CollectedAmount,
		&codModel.SubmittedAmount,
		&codModel.ProofPhotoURL,
		&codModel.PayoutMethod,
		&codModel.PayoutReference,
		&codModel.FailureReason,
		&codModel.CollectedAt,
		&codModel.SubmittedAt,
		&codModel.ReceivedAt,
		&codModel.CompletedAt,
		&codModel.CreatedAt,
		&codModel.UpdatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, codModifyEntity entities.CodTransactionModify) (*entities.CodTransaction, error) {
	codModifyModel := FromDomainModify(&codModifyEntity)

	query := `INSERT INTO cod_transactions (order_id, driver_id, status, amount)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + codColumns

	var codModel CodTransactionDB
	err := scanCodTransaction(r.querier.QueryRow(
		ctx,
		query,
		codModifyModel.OrderID,
		codModifyModel.DriverID,
		codModifyModel.Status,
		codModifyModel.Amount,
	), &codModel)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, cod.ErrDuplicateRequest
		}
		return nil, fmt.Errorf("unexpected cod repository create error: %w", err)
	}

	return ToDomain(&codModel), nil
}

func (r *Repository) Update(ctx context.Context, codModifyEntity entities.CodTransactionModify) (*entities.CodTransaction, error) {
	codModifyModel := FromDomainModify(&codModifyEntity)

	builder := qb.
		Update("cod_transactions")

	if codModifyModel.Status != nil {
		builder = builder.Set("status", codModifyModel.Status)
	}
	if codModifyModel.DriverID != nil {
		builder = builder.Set("driver_id", codModifyModel.DriverID)
	}
	if codModifyModel.CollectedAmount != nil {
		builder = builder.Set("collected_amount", codModifyModel.CollectedAmount)
	}
	if codModifyModel.SubmittedAmount != nil {
		builder = builder.Set("submitted_amount", codModifyModel.SubmittedAmount)
	}
	if codModifyModel.ProofPhotoURL != nil {
		builder = builder.Set("proof_photo_url", codModifyModel.ProofPhotoURL)
	}
	if codModifyModel.PayoutMethod != nil {
		builder = builder.Set("payout_method", codModifyModel.PayoutMethod)
	}
	if codModifyModel.PayoutReference != nil {
		builder = builder.Set("payout_reference", codModifyModel.PayoutReference)
	}
	if codModifyModel.FailureReason != nil {
		builder = builder.Set("failure_reason", codModifyModel.FailureReason)
	}
	if codModifyModel.CollectedAt != nil {
		builder = builder.Set("collected_at", codModifyModel.CollectedAt)
	}
	if codModifyModel.SubmittedAt != nil {
		builder = builder.Set("submitted_at", codModifyModel.SubmittedAt)
	}
	if codModifyModel.ReceivedAt != nil {
		builder = builder.Set("received_at", codModifyModel.ReceivedAt)
	}
	if codModifyModel.CompletedAt != nil {
		builder = builder.Set("completed_at", codModifyModel.CompletedAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": codModifyModel.ID}).
		Suffix("RETURNING " + codColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected cod repository update error: %w", err)
	}

	var codModel CodTransactionDB
	err = scanCodTransaction(r.querier.QueryRow(ctx, query, args...), &codModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cod.ErrCodNotFound
		}

		return nil, fmt.Errorf("unexpected cod repository update error: %w", err)
	}

	return ToDomain(&codModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.CodTransaction, error) {
	query := `SELECT ` + codColumns + `
		FROM cod_transactions
		WHERE id = $1`

	var codModel CodTransactionDB
	err := scanCodTransaction(r.querier.QueryRow(ctx, query, id), &codModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cod.ErrCodNotFound
		}

		return nil, fmt.Errorf("unexpected cod repository getbyid error: %w", err)
	}

	return ToDomain(&codModel), nil
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID int64) (*entities.CodTransaction, error) {
	query := `SELECT ` + codColumns + `
		FROM cod_transactions
		WHERE order_id = $1`

	var codModel CodTransactionDB
	err := scanCodTransaction(r.querier.QueryRow(ctx, query, orderID), &codModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cod.ErrCodNotFound
		}

		return nil, fmt.Errorf("unexpected cod repository getbyorderid error: %w", err)
	}

	return ToDomain(&codModel), nil
}

// GetByDriverAndStatus locks the matching rows so batch submit/receive runs
// do not race with a concurrent collection.
func (r *Repository) GetByDriverAndStatus(ctx context.Context, driverID int64, status entities.CodStatusType) ([]entities.CodTransaction, error) {
	query := `SELECT ` + codColumns + `
		FROM cod_transactions
		WHERE driver_id = $1 AND status = $2
		ORDER BY id
		FOR UPDATE`

	rows, err := r.querier.Query(ctx, query, driverID, status.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected cod repository getbydriverandstatus error: %w", err)
	}
	defer rows.Close()

	codModels := make([]CodTransactionDB, 0, 8)
	for rows.Next() {
		var codModel CodTransactionDB
		if err := scanCodTransaction(rows, &codModel); err != nil {
			return nil, fmt.Errorf("unexpected cod repository getbydriverandstatus error: %w", err)
		}
		codModels = append(codModels, codModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected cod repository getbydriverandstatus error: %w", err)
	}

	return ToDomainList(codModels), nil
}
