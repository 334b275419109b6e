package transfer

import "errors"

var (
	ErrInvalidTransferID = errors.New("invalid transfer id")
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidCompanyID  = errors.New("invalid company id")
	ErrInvalidVehicleID  = errors.New("invalid vehicle id")
	ErrMissingReason     = errors.New("missing reject reason")
	ErrSameCompany       = errors.New("order is already with the target company")

	ErrTransferNotFound          = errors.New("transfer not found")
	ErrNoActivePartnership       = errors.New("no active partnership with the target company")
	ErrOrderNotTransferable      = errors.New("order cannot be transferred in its current status")
	ErrTransferExpired           = errors.New("transfer offer expired")
	ErrInvalidTransferTransition = errors.New("transfer status transition not allowed")
	ErrVehicleUnavailable        = errors.New("vehicle is not available")
	ErrInsufficientCapacity      = errors.New("vehicle has insufficient remaining capacity")
)
