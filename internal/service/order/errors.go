package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidCompanyID      = errors.New("invalid company id")
	ErrInvalidContact        = errors.New("invalid contact")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidParcelType     = errors.New("invalid parcel type")
	ErrInvalidPaymentMethod  = errors.New("invalid payment method")
	ErrInvalidTrackingCode   = errors.New("invalid tracking code")
	ErrInvalidAmount         = errors.New("invalid amount")

	ErrOrderNotFound      = errors.New("order not found")
	ErrConflict           = errors.New("resource already exists")
	ErrInvalidTransition  = errors.New("status transition not allowed")
	ErrOrderNotAssignable = errors.New("order cannot be assigned in its current status")
	ErrDriverInactive     = errors.New("driver is inactive")
)
