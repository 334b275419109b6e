package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/entities"
)

const createTrackingAttempts = 3

type Order struct {
	repository     Repository
	codRepository  CodRepository
	driverService  DriverService
	vehicleService VehicleService
	events         EventPublisher
	txManager      TxManager
}

func New(
	repository Repository,
	codRepository CodRepository,
	driverService DriverService,
	vehicleService VehicleService,
	events EventPublisher,
	txManager TxManager,
) *Order {
	return &Order{
		repository:     repository,
		codRepository:  codRepository,
		driverService:  driverService,
		vehicleService: vehicleService,
		events:         events,
		txManager:      txManager,
	}
}

func (s *Order) CreateOrder(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.CompanyID == nil ||
		orderModify.SenderName == nil ||
		orderModify.SenderPhone == nil ||
		orderModify.SenderAddress == nil ||
		orderModify.ReceiverName == nil ||
		orderModify.ReceiverPhone == nil ||
		orderModify.ReceiverAddress == nil ||
		orderModify.WeightKg == nil {
		return nil, ErrMissingRequiredFields
	}

	if *orderModify.CompanyID <= 0 {
		return nil, ErrInvalidCompanyID
	}
	if !isValidName(*orderModify.SenderName) || !isValidName(*orderModify.ReceiverName) {
		return nil, ErrInvalidContact
	}
	if !isValidPhone(*orderModify.SenderPhone) || !isValidPhone(*orderModify.ReceiverPhone) {
		return nil, ErrInvalidContact
	}
	if !isValidAddress(*orderModify.SenderAddress) || !isValidAddress(*orderModify.ReceiverAddress) {
		return nil, ErrInvalidContact
	}
	if orderModify.SenderEmail != nil && !isValidEmail(*orderModify.SenderEmail) {
		return nil, ErrInvalidContact
	}
	if *orderModify.WeightKg <= 0 {
		return nil, ErrInvalidWeight
	}
	if orderModify.ShippingFee != nil && *orderModify.ShippingFee < 0 {
		return nil, ErrInvalidAmount
	}
	if orderModify.CodAmount != nil && *orderModify.CodAmount < 0 {
		return nil, ErrInvalidAmount
	}
	if orderModify.ParcelType == nil {
		defaultParcel := entities.DefaultParcelType
		orderModify.ParcelType = &defaultParcel
	}
	if !isValidParcelType(orderModify.ParcelType.String()) {
		return nil, ErrInvalidParcelType
	}
	if orderModify.PaymentMethod == nil {
		defaultMethod := entities.PaymentCash
		orderModify.PaymentMethod = &defaultMethod
	}
	if !isValidPaymentMethod(orderModify.PaymentMethod.String()) {
		return nil, ErrInvalidPaymentMethod
	}

	initialStatus := entities.OrderPendingPickup
	initialPayment := entities.PaymentUnpaid
	orderModify.Status = &initialStatus
	orderModify.PaymentStatus = &initialPayment

	var created *entities.Order
	// tracking code is random; retry a couple of times on the unique index
	for attempt := 0; attempt < createTrackingAttempts; attempt++ {
		trackingCode, err := generateTrackingCode()
		if err != nil {
			return nil, fmt.Errorf("create order: %w", err)
		}
		orderModify.TrackingCode = &trackingCode

		err = s.txManager.Do(ctx, func(ctx context.Context) error {
			created, err = s.repository.Create(ctx, orderModify)
			if err != nil {
				return fmt.Errorf("create order: %w", err)
			}

			history := entities.OrderStatusHistory{
				OrderID:   created.ID,
				NewStatus: entities.OrderPendingPickup,
				Notes:     "order created",
			}
			if err := s.repository.AppendHistory(ctx, history); err != nil {
				return fmt.Errorf("append history: %w", err)
			}
			return nil
		})
		if err != nil {
			if errors.Is(err, ErrConflict) && attempt < createTrackingAttempts-1 {
				continue
			}
			return nil, err
		}
		return created, nil
	}

	return nil, fmt.Errorf("create order: %w", ErrConflict)
}

func (s *Order) GetOrder(ctx context.Context, id int64) (*entities.Order, error) {
	if id <= 0 {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return order, nil
}

func (s *Order) GetOrderByTrackingCode(ctx context.Context, trackingCode string) (*entities.Order, error) {
	if trackingCode == "" {
		return nil, ErrInvalidTrackingCode
	}

	order, err := s.repository.GetByTrackingCode(ctx, trackingCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get order by tracking code: %w", err)
	}

	return order, nil
}

func (s *Order) GetOrders(ctx context.Context, companyID int64, status *entities.OrderStatusType) ([]entities.Order, error) {
	if companyID <= 0 {
		return nil, ErrInvalidCompanyID
	}
	if status != nil && !status.IsValid() {
		return nil, ErrInvalidStatus
	}

	orders, err := s.repository.GetByCompanyID(ctx, companyID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders: %w", err)
	}

	return orders, nil
}

func (s *Order) GetOrderHistory(ctx context.Context, orderID int64) ([]entities.OrderStatusHistory, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	history, err := s.repository.GetHistory(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order history: %w", err)
	}

	return history, nil
}

// AssignDriver couples the order to a driver and a vehicle and loads the
// parcel weight onto the vehicle, all in one transaction.
func (s *Order) AssignDriver(ctx context.Context, orderID, driverID, vehicleID int64) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if driverID <= 0 || vehicleID <= 0 {
		return nil, ErrMissingRequiredFields
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if order.Status.IsTerminal() || order.Status == entities.OrderOutForDelivery {
			return ErrOrderNotAssignable
		}

		driver, err := s.driverService.GetDriver(ctx, driverID)
		if err != nil {
			return fmt.Errorf("get driver: %w", err)
		}
		if driver.Status != entities.DriverActive {
			return ErrDriverInactive
		}

		// reassignment moves the parcel weight between vehicles
		if order.VehicleID != nil && *order.VehicleID != vehicleID {
			if _, err := s.vehicleService.RemoveWeight(ctx, *order.VehicleID, order.WeightKg); err != nil {
				return fmt.Errorf("unload previous vehicle: %w", err)
			}
		}
		if order.VehicleID == nil || *order.VehicleID != vehicleID {
			if _, err := s.vehicleService.AddWeight(ctx, vehicleID, order.WeightKg); err != nil {
				return fmt.Errorf("load vehicle: %w", err)
			}
		}

		orderModify := entities.OrderModify{
			ID:        &orderID,
			DriverID:  &driverID,
			VehicleID: &vehicleID,
		}

		updated, err = s.repository.Update(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// UpdateStatus applies one transition of the order workflow. The transition
// table is closed: anything outside it fails with ErrInvalidTransition.
func (s *Order) UpdateStatus(ctx context.Context, update entities.StatusUpdate) (*entities.Order, error) {
	if update.OrderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if !update.NewStatus.IsValid() {
		return nil, ErrInvalidStatus
	}

	var (
		updated  *entities.Order
		oldState entities.OrderStatusType
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := s.repository.GetByID(ctx, update.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		oldState = order.Status

		if !order.Status.CanTransitionTo(update.NewStatus) {
			return fmt.Errorf("%s -> %s: %w", order.Status, update.NewStatus, ErrInvalidTransition)
		}

		now := time.Now().UTC()
		orderModify := entities.OrderModify{
			ID:     &update.OrderID,
			Status: &update.NewStatus,
		}

		releaseAssignment := false
		switch update.NewStatus {
		case entities.OrderPickedUp:
			orderModify.PickedUpAt = &now
		case entities.OrderDelivered:
			paidStatus := entities.PaymentPaid
			orderModify.DeliveredAt = &now
			orderModify.PaymentStatus = &paidStatus
		case entities.OrderReturned, entities.OrderCancelled:
			releaseAssignment = true
		}

		if releaseAssignment {
			if err := s.repository.ClearAssignment(ctx, update.OrderID); err != nil {
				return fmt.Errorf("clear assignment: %w", err)
			}
		}
		// the parcel leaves the vehicle on any exit from the delivery leg
		if order.VehicleID != nil &&
			(releaseAssignment || update.NewStatus == entities.OrderDelivered) {
			if _, err := s.vehicleService.RemoveWeight(ctx, *order.VehicleID, order.WeightKg); err != nil {
				return fmt.Errorf("unload vehicle: %w", err)
			}
		}

		if update.NewStatus == entities.OrderOutForDelivery && order.CodAmount > 0 {
			codStatus := entities.CodPendingCollection
			codModify := entities.CodTransactionModify{
				OrderID:  &order.ID,
				DriverID: order.DriverID,
				Status:   &codStatus,
				Amount:   &order.CodAmount,
			}
			if _, err := s.codRepository.Create(ctx, codModify); err != nil {
				return fmt.Errorf("create cod transaction: %w", err)
			}
		}

		updated, err = s.repository.Update(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		history := entities.OrderStatusHistory{
			OrderID:   order.ID,
			OldStatus: order.Status,
			NewStatus: update.NewStatus,
			ChangedBy: update.ChangedBy,
			Notes:     update.Notes,
			PhotoURL:  update.PhotoURL,
			Location:  update.Location,
		}
		if err := s.repository.AppendHistory(ctx, history); err != nil {
			return fmt.Errorf("append history: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.PublishStatusChanged(ctx, entities.OrderStatusEvent{
		OrderID:      updated.ID,
		TrackingCode: updated.TrackingCode,
		OldStatus:    oldState,
		NewStatus:    updated.Status,
		ChangedBy:    update.ChangedBy,
		OccurredAt:   time.Now().UTC(),
	})

	return updated, nil
}
