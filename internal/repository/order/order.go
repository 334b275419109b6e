package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, tracking_code, company_id,
		sender_name, sender_phone, sender_address, sender_email,
		receiver_name, receiver_phone, receiver_address,
		parcel_type, weight_kg, declared_value,
		shipping_fee, cod_amount, payment_method, payment_status,
		status, driver_id, vehicle_id, route_id,
		picked_up_at, delivered_at, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func scanOrder(row pgx.Row, orderModel *OrderDB) error {
	return row.Scan(
		&orderModel.ID,
		&orderModel.TrackingCode,
		&orderModel.CompanyID,
		&orderModel.SenderName,
		&orderModel.SenderPhone,
		&orderModel.SenderAddress,
		&orderModel.SenderEmail,
		&orderModel.ReceiverName,
		&orderModel.ReceiverPhone,
		&orderModel.ReceiverAddress,
		&orderModel.ParcelType,
		&orderModel.WeightKg,
		&orderModel.DeclaredValue,
		&orderModel.ShippingFee,
		&orderModel.CodAmount,
		&orderModel.PaymentMethod,
		&orderModel.PaymentStatus,
		&orderModel.Status,
		&orderModel.DriverID,
		&orderModel.VehicleID,
		&orderModel.RouteID,
		&orderModel.PickedUpAt,
		&orderModel.DeliveredAt,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
}

func (r *Repository) Create(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	query := `INSERT INTO orders (tracking_code, company_id,
			sender_name, sender_phone, sender_address, sender_email,
			receiver_name, receiver_phone, receiver_address,
			parcel_type, weight_kg, declared_value,
			shipping_fee, cod_amount, payment_method, payment_status, status)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, ''), $7, $8, $9, $10, $11,
			COALESCE($12, 0), COALESCE($13, 0), COALESCE($14, 0), $15, $16, $17)
		RETURNING ` + orderColumns

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(
		ctx,
		query,
		orderModifyModel.TrackingCode,
		orderModifyModel.CompanyID,
		orderModifyModel.SenderName,
		orderModifyModel.SenderPhone,
		orderModifyModel.SenderAddress,
		orderModifyModel.SenderEmail,
		orderModifyModel.ReceiverName,
		orderModifyModel.ReceiverPhone,
		orderModifyModel.ReceiverAddress,
		orderModifyModel.ParcelType,
		orderModifyModel.WeightKg,
		orderModifyModel.DeclaredValue,
		orderModifyModel.ShippingFee,
		orderModifyModel.CodAmount,
		orderModifyModel.PaymentMethod,
		orderModifyModel.PaymentStatus,
		orderModifyModel.Status,
	), &orderModel)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.PaymentStatus != nil {
		builder = builder.Set("payment_status", orderModifyModel.PaymentStatus)
	}
	if orderModifyModel.DriverID != nil {
		builder = builder.Set("driver_id", orderModifyModel.DriverID)
	}
	if orderModifyModel.VehicleID != nil {
		builder = builder.Set("vehicle_id", orderModifyModel.VehicleID)
	}
	if orderModifyModel.RouteID != nil {
		builder = builder.Set("route_id", orderModifyModel.RouteID)
	}
	if orderModifyModel.PickedUpAt != nil {
		builder = builder.Set("picked_up_at", orderModifyModel.PickedUpAt)
	}
	if orderModifyModel.DeliveredAt != nil {
		builder = builder.Set("delivered_at", orderModifyModel.DeliveredAt)
	}
	if orderModifyModel.DeclaredValue != nil {
		builder = builder.Set("declared_value", orderModifyModel.DeclaredValue)
	}
	if orderModifyModel.ShippingFee != nil {
		builder = builder.Set("shipping_fee", orderModifyModel.ShippingFee)
	}
	if orderModifyModel.CodAmount != nil {
		builder = builder.Set("cod_amount", orderModifyModel.CodAmount)
	}
	if orderModifyModel.CompanyID != nil {
		builder = builder.Set("company_id", orderModifyModel.CompanyID)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	var orderModel OrderDB
	err = scanOrder(r.querier.QueryRow(ctx, query, args...), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

// ClearAssignment detaches the order from driver, vehicle and route.
func (r *Repository) ClearAssignment(ctx context.Context, orderID int64) error {
	query := `
		UPDATE orders
		SET driver_id = NULL,
			vehicle_id = NULL,
			route_id = NULL,
			updated_at = NOW()
		WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("unexpected order repository clear assignment error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return order.ErrOrderNotFound
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, id), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByTrackingCode(ctx context.Context, trackingCode string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE tracking_code = $1`

	var orderModel OrderDB
	err := scanOrder(r.querier.QueryRow(ctx, query, trackingCode), &orderModel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}

		return nil, fmt.Errorf("unexpected order repository getbytrackingcode error: %w", err)
	}

	return ToDomain(&orderModel), nil
}

func (r *Repository) GetByCompanyID(ctx context.Context, companyID int64, status *entities.OrderStatusType) ([]entities.Order, error) {
	builder := qb.
		Select(orderColumns).
		From("orders").
		Where(sq.Eq{"company_id": companyID}).
		OrderBy("id")

	if status != nil {
		builder = builder.Where(sq.Eq{"status": status.String()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbycompanyid error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbycompanyid error: %w", err)
	}
	defer rows.Close()

	orderModels := make([]OrderDB, 0, 8)
	for rows.Next() {
		var orderModel OrderDB
		if err := scanOrder(rows, &orderModel); err != nil {
			return nil, fmt.Errorf("unexpected order repository getbycompanyid error: %w", err)
		}
		orderModels = append(orderModels, orderModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository getbycompanyid error: %w", err)
	}

	return ToDomainList(orderModels), nil
}

func (r *Repository) AppendHistory(ctx context.Context, history entities.OrderStatusHistory) error {
	query := `
		INSERT INTO order_status_history (order_id, old_status, new_status, changed_by, notes, photo_url, location)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		history.OrderID,
		history.OldStatus.String(),
		history.NewStatus.String(),
		history.ChangedBy,
		history.Notes,
		history.PhotoURL,
		history.Location,
	)
	if err != nil {
		return fmt.Errorf("unexpected order repository append history error: %w", err)
	}

	return nil
}

func (r *Repository) GetHistory(ctx context.Context, orderID int64) ([]entities.OrderStatusHistory, error) {
	query := `
		SELECT id, order_id, old_status, new_status, changed_by, notes, photo_url, location, created_at
		FROM order_status_history
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get history error: %w", err)
	}
	defer rows.Close()

	historyModels := make([]StatusHistoryDB, 0, 8)
	for rows.Next() {
		var historyModel StatusHistoryDB
		err := rows.Scan(
			&historyModel.ID,
			&historyModel.OrderID,
			&historyModel.OldStatus,
			&historyModel.NewStatus,
			&historyModel.ChangedBy,
			&historyModel.Notes,
			&historyModel.PhotoURL,
			&historyModel.Location,
			&historyModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository get history error: %w", err)
		}
		historyModels = append(historyModels, historyModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get history error: %w", err)
	}

	return ToHistoryDomainList(historyModels), nil
}
