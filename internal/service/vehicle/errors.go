package vehicle

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidVehicleID      = errors.New("invalid vehicle id")
	ErrInvalidCompanyID      = errors.New("invalid company id")
	ErrInvalidPlateNumber    = errors.New("invalid plate number")
	ErrInvalidVehicleType    = errors.New("invalid vehicle type")
	ErrInvalidWeight         = errors.New("invalid weight")
	ErrInvalidThreshold      = errors.New("invalid overload threshold")

	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrConflict           = errors.New("resource already exists")
	ErrCapacityExceeded   = errors.New("vehicle capacity exceeded")
	ErrVehicleUnavailable = errors.New("vehicle unavailable")
)
