package notify_handle

import (
	"context"
	"errors"
	"fmt"

	"logistics/internal/entities"
)

var ErrNoNotification = errors.New("no notification configured for status")

type ExecuteFn func(ctx context.Context, order *entities.Order) error

type Notifier interface {
	SendEmail(ctx context.Context, to, subject, body string) error
	SendSMS(ctx context.Context, phone, message string) error
}

// StatusHandlerFactory maps a committed order status to the customer
// notifications that status triggers.
type StatusHandlerFactory struct {
	notifier Notifier
}

func NewStatusHandlerFactory(notifier Notifier) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		notifier: notifier,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (ExecuteFn, error) {
	switch status {
	case entities.OrderDelivered:
		return f.deliveredHandler, nil
	case entities.OrderReturned:
		return f.returnedHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	case entities.OrderOutForDelivery:
		return f.outForDeliveryHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNoNotification, status)
	}
}

func (f *StatusHandlerFactory) deliveredHandler(ctx context.Context, order *entities.Order) error {
	var errs []error

	if order.SenderEmail != "" {
		err := f.notifier.SendEmail(ctx, order.SenderEmail,
			fmt.Sprintf("Order %s delivered", order.TrackingCode),
			fmt.Sprintf("Your order %s was delivered to %s.", order.TrackingCode, order.ReceiverName))
		if err != nil {
			errs = append(errs, fmt.Errorf("email sender for delivered order %d: %w", order.ID, err))
		}
	}

	err := f.notifier.SendSMS(ctx, order.ReceiverPhone,
		fmt.Sprintf("Order %s has been delivered. Thank you!", order.TrackingCode))
	if err != nil {
		errs = append(errs, fmt.Errorf("sms receiver for delivered order %d: %w", order.ID, err))
	}

	return errors.Join(errs...)
}

func (f *StatusHandlerFactory) returnedHandler(ctx context.Context, order *entities.Order) error {
	return f.senderEmail(ctx, order,
		fmt.Sprintf("Order %s returned", order.TrackingCode),
		fmt.Sprintf("Your order %s could not be delivered and is being returned.", order.TrackingCode))
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, order *entities.Order) error {
	return f.senderEmail(ctx, order,
		fmt.Sprintf("Order %s cancelled", order.TrackingCode),
		fmt.Sprintf("Your order %s was cancelled.", order.TrackingCode))
}

func (f *StatusHandlerFactory) outForDeliveryHandler(ctx context.Context, order *entities.Order) error {
	err := f.notifier.SendSMS(ctx, order.ReceiverPhone,
		fmt.Sprintf("Order %s is out for delivery today.", order.TrackingCode))
	if err != nil {
		return fmt.Errorf("sms receiver for order %d: %w", order.ID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) senderEmail(ctx context.Context, order *entities.Order, subject, body string) error {
	if order.SenderEmail == "" {
		return nil
	}
	if err := f.notifier.SendEmail(ctx, order.SenderEmail, subject, body); err != nil {
		return fmt.Errorf("email sender for order %d: %w", order.ID, err)
	}
	return nil
}
