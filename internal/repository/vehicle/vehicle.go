package vehicle

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"logistics/internal/entities"
	"logistics/internal/repository"
	"logistics/internal/service/vehicle"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const vehicleColumns = `id, company_id, plate_number, vehicle_type, max_weight_kg,
		current_weight_kg, overload_threshold, allow_overload, status, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (int64, error) {
	vehicleModifyModel := FromDomainModify(&vehicleModifyEntity)
	query := `INSERT INTO vehicles (company_id, plate_number, vehicle_type, max_weight_kg,
			current_weight_kg, overload_threshold, allow_overload, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	allowOverload := false
	if vehicleModifyModel.AllowOverload != nil {
		allowOverload = *vehicleModifyModel.AllowOverload
	}

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		vehicleModifyModel.CompanyID,
		vehicleModifyModel.PlateNumber,
		vehicleModifyModel.VehicleType,
		vehicleModifyModel.MaxWeightKg,
		vehicleModifyModel.CurrentWeightKg,
		vehicleModifyModel.OverloadThreshold,
		allowOverload,
		vehicleModifyModel.Status,
	).Scan(&id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return 0, vehicle.ErrConflict
		}
		return 0, fmt.Errorf("unexpected vehicle repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, vehicleModifyEntity entities.VehicleModify) (*entities.Vehicle, error) {
	vehicleModifyModel := FromDomainModify(&vehicleModifyEntity)

	builder := qb.
		Update("vehicles")

	if vehicleModifyModel.PlateNumber != nil {
		builder = builder.Set("plate_number", vehicleModifyModel.PlateNumber)
	}
	if vehicleModifyModel.VehicleType != nil {
		builder = builder.Set("vehicle_type", vehicleModifyModel.VehicleType)
	}
	if vehicleModifyModel.MaxWeightKg != nil {
		builder = builder.Set("max_weight_kg", vehicleModifyModel.MaxWeightKg)
	}
	if vehicleModifyModel.CurrentWeightKg != nil {
		builder = builder.Set("current_weight_kg", vehicleModifyModel.CurrentWeightKg)
	}
	if vehicleModifyModel.OverloadThreshold != nil {
		builder = builder.Set("overload_threshold", vehicleModifyModel.OverloadThreshold)
	}
	if vehicleModifyModel.AllowOverload != nil {
		builder = builder.Set("allow_overload", vehicleModifyModel.AllowOverload)
	}
	if vehicleModifyModel.Status != nil {
		builder = builder.Set("status", vehicleModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": vehicleModifyModel.ID}).
		Suffix("RETURNING " + vehicleColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository update error: %w", err)
	}

	var vehicleModel VehicleDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&vehicleModel.ID,
			&vehicleModel.CompanyID,
			&vehicleModel.PlateNumber,
			&vehicleModel.VehicleType,
			&vehicleModel.MaxWeightKg,
			&vehicleModel.CurrentWeightKg,
			&vehicleModel.OverloadThreshold,
			&vehicleModel.AllowOverload,
			&vehicleModel.Status,
			&vehicleModel.CreatedAt,
			&vehicleModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vehicle.ErrVehicleNotFound
		}

		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, vehicle.ErrConflict
		}

		return nil, fmt.Errorf("unexpected vehicle repository update error: %w", err)
	}

	return ToDomain(&vehicleModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Vehicle, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate takes a row lock; only meaningful inside a transaction.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*entities.Vehicle, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id int64, forUpdate bool) (*entities.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE id = $1`
	if forUpdate {
		query += `
		FOR UPDATE`
	}

	var vehicleModel VehicleDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&vehicleModel.ID,
			&vehicleModel.CompanyID,
			&vehicleModel.PlateNumber,
			&vehicleModel.VehicleType,
			&vehicleModel.MaxWeightKg,
			&vehicleModel.CurrentWeightKg,
			&vehicleModel.OverloadThreshold,
			&vehicleModel.AllowOverload,
			&vehicleModel.Status,
			&vehicleModel.CreatedAt,
			&vehicleModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, vehicle.ErrVehicleNotFound
		}

		return nil, fmt.Errorf("unexpected vehicle repository getbyid error: %w", err)
	}

	return ToDomain(&vehicleModel), nil
}

func (r *Repository) GetByCompanyID(ctx context.Context, companyID int64) ([]entities.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + `
		FROM vehicles
		WHERE company_id = $1
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository getbycompanyid error: %w", err)
	}
	defer rows.Close()

	vehicleModels := make([]VehicleDB, 0, 8)
	for rows.Next() {
		var vehicleModel VehicleDB
		err := rows.Scan(
			&vehicleModel.ID,
			&vehicleModel.CompanyID,
			&vehicleModel.PlateNumber,
			&vehicleModel.VehicleType,
			&vehicleModel.MaxWeightKg,
			&vehicleModel.CurrentWeightKg,
			&vehicleModel.OverloadThreshold,
			&vehicleModel.AllowOverload,
			&vehicleModel.Status,
			&vehicleModel.CreatedAt,
			&vehicleModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected vehicle repository getbycompanyid error: %w", err)
		}
		vehicleModels = append(vehicleModels, vehicleModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected vehicle repository getbycompanyid error: %w", err)
	}

	return ToDomainList(vehicleModels), nil
}
