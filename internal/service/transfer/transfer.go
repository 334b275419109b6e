package transfer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/entities"
	"logistics/internal/service/partnership"
)

type Transfer struct {
	repository            Repository
	partnershipRepository PartnershipRepository
	orderRepository       OrderRepository
	vehicleService        VehicleService
	deadlineFactory       DeadlineFactory
	txManager             TxManager
}

func New(
	repository Repository,
	partnershipRepository PartnershipRepository,
	orderRepository OrderRepository,
	vehicleService VehicleService,
	deadlineFactory DeadlineFactory,
	txManager TxManager,
) *Transfer {
	return &Transfer{
		repository:            repository,
		partnershipRepository: partnershipRepository,
		orderRepository:       orderRepository,
		vehicleService:        vehicleService,
		deadlineFactory:       deadlineFactory,
		txManager:             txManager,
	}
}

func (s *Transfer) GetTransfer(ctx context.Context, id int64) (*entities.OrderTransfer, error) {
	if id <= 0 {
		return nil, ErrInvalidTransferID
	}

	orderTransfer, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transfer: %w", err)
	}

	return orderTransfer, nil
}

func (s *Transfer) GetTransfersByOrder(ctx context.Context, orderID int64) ([]entities.OrderTransfer, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	transfers, err := s.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get transfers: %w", err)
	}

	return transfers, nil
}

// CreateTransfer offers the order to the partner company. The commission is
// fixed at creation time from the resolved partnership's rate, and the offer
// carries a deadline after which it expires.
func (s *Transfer) CreateTransfer(ctx context.Context, orderID, toCompanyID int64, vehicleID *int64) (*entities.OrderTransfer, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if toCompanyID <= 0 {
		return nil, ErrInvalidCompanyID
	}
	if vehicleID != nil && *vehicleID <= 0 {
		return nil, ErrInvalidVehicleID
	}

	var created *entities.OrderTransfer
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.orderRepository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.CompanyID == toCompanyID {
			return ErrSameCompany
		}
		if order.Status.IsTerminal() || order.Status == entities.OrderOutForDelivery {
			return ErrOrderNotTransferable
		}

		activePartnership, err := s.partnershipRepository.GetActiveByCompanies(ctx, order.CompanyID, toCompanyID)
		if err != nil {
			if errors.Is(err, partnership.ErrPartnershipNotFound) {
				return ErrNoActivePartnership
			}
			return fmt.Errorf("resolve partnership: %w", err)
		}

		if vehicleID != nil {
			if err := s.checkVehicleFits(ctx, *vehicleID, order.WeightKg); err != nil {
				return err
			}
		}

		commission := activePartnership.Commission(order.ShippingFee)
		status := entities.TransferPending
		expiresAt := s.deadlineFactory.CalculateDeadline(activePartnership.Level, time.Now())

		created, err = s.repository.Create(ctx, entities.OrderTransferModify{
			OrderID:          &orderID,
			FromCompanyID:    &order.CompanyID,
			ToCompanyID:      &toCompanyID,
			PartnershipID:    &activePartnership.ID,
			CommissionAmount: &commission,
			Status:           &status,
			VehicleID:        vehicleID,
			ExpiresAt:        &expiresAt,
		})
		if err != nil {
			return fmt.Errorf("create transfer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Accept completes the handshake: the order moves to the target company, the
// receiving vehicle (if any) is loaded, and the partnership counters are
// bumped, all in one transaction.
func (s *Transfer) Accept(ctx context.Context, transferID int64, newVehicleID *int64) (*entities.OrderTransfer, error) {
	if transferID <= 0 {
		return nil, ErrInvalidTransferID
	}
	if newVehicleID != nil && *newVehicleID <= 0 {
		return nil, ErrInvalidVehicleID
	}

	var updated *entities.OrderTransfer
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderTransfer, err := s.repository.GetByIDForUpdate(ctx, transferID)
		if err != nil {
			return fmt.Errorf("lock transfer: %w", err)
		}

		if !orderTransfer.Status.CanTransitionTo(entities.TransferAccepted) {
			return fmt.Errorf("%s -> %s: %w",
				orderTransfer.Status, entities.TransferAccepted, ErrInvalidTransferTransition)
		}
		if time.Now().After(orderTransfer.ExpiresAt) {
			return ErrTransferExpired
		}

		order, err := s.orderRepository.GetByID(ctx, orderTransfer.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		vehicleID := orderTransfer.VehicleID
		if newVehicleID != nil {
			vehicleID = newVehicleID
		}
		if vehicleID != nil {
			vehicle, err := s.vehicleService.GetVehicle(ctx, *vehicleID)
			if err != nil {
				return fmt.Errorf("get vehicle: %w", err)
			}
			if vehicle.Status != entities.VehicleAvailable {
				return ErrVehicleUnavailable
			}
		}

		// The old company's driver and vehicle are released before the order
		// is re-homed.
		if err := s.orderRepository.ClearAssignment(ctx, order.ID); err != nil {
			return fmt.Errorf("clear order assignment: %w", err)
		}

		orderModify := entities.OrderModify{
			ID:        &order.ID,
			CompanyID: &orderTransfer.ToCompanyID,
			VehicleID: vehicleID,
		}
		if _, err := s.orderRepository.Update(ctx, orderModify); err != nil {
			return fmt.Errorf("reassign order: %w", err)
		}

		if vehicleID != nil {
			if _, err := s.vehicleService.AddWeight(ctx, *vehicleID, order.WeightKg); err != nil {
				return fmt.Errorf("load vehicle: %w", err)
			}
		}

		now := time.Now()
		newStatus := entities.TransferAccepted
		updated, err = s.repository.Update(ctx, entities.OrderTransferModify{
			ID:        &transferID,
			Status:    &newStatus,
			VehicleID: vehicleID,
			DecidedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("update transfer: %w", err)
		}

		err = s.partnershipRepository.IncrementTransferStats(ctx, orderTransfer.PartnershipID, orderTransfer.CommissionAmount)
		if err != nil {
			return fmt.Errorf("increment partnership stats: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Reject declines a pending offer; a reason is mandatory.
func (s *Transfer) Reject(ctx context.Context, transferID int64, reason string) (*entities.OrderTransfer, error) {
	if transferID <= 0 {
		return nil, ErrInvalidTransferID
	}
	if reason == "" {
		return nil, ErrMissingReason
	}

	var updated *entities.OrderTransfer
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		orderTransfer, err := s.repository.GetByIDForUpdate(ctx, transferID)
		if err != nil {
			return fmt.Errorf("lock transfer: %w", err)
		}

		if !orderTransfer.Status.CanTransitionTo(entities.TransferRejected) {
			return fmt.Errorf("%s -> %s: %w",
				orderTransfer.Status, entities.TransferRejected, ErrInvalidTransferTransition)
		}

		now := time.Now()
		newStatus := entities.TransferRejected
		updated, err = s.repository.Update(ctx, entities.OrderTransferModify{
			ID:           &transferID,
			Status:       &newStatus,
			RejectReason: &reason,
			DecidedAt:    &now,
		})
		if err != nil {
			return fmt.Errorf("update transfer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// ExpirePending sweeps pending offers whose deadline passed before olderThan.
func (s *Transfer) ExpirePending(ctx context.Context, olderThan time.Time) (int64, error) {
	expired, err := s.repository.ExpirePending(ctx, olderThan)
	if err != nil {
		return 0, fmt.Errorf("expire pending transfers: %w", err)
	}

	return expired, nil
}

func (s *Transfer) checkVehicleFits(ctx context.Context, vehicleID int64, weightKg float64) error {
	vehicle, err := s.vehicleService.GetVehicle(ctx, vehicleID)
	if err != nil {
		return fmt.Errorf("get vehicle: %w", err)
	}
	if vehicle.Status != entities.VehicleAvailable {
		return ErrVehicleUnavailable
	}
	if vehicle.CurrentWeightKg+weightKg > vehicle.MaxWeightKg && !vehicle.AllowOverload {
		return ErrInsufficientCapacity
	}
	return nil
}
