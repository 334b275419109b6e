package partnership

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPartnershipID  = errors.New("invalid partnership id")
	ErrInvalidCompanyID      = errors.New("invalid company id")
	ErrInvalidCommissionRate = errors.New("invalid commission rate")
	ErrInvalidLevel          = errors.New("invalid partnership level")
	ErrSameCompany           = errors.New("company cannot partner with itself")

	ErrPartnershipNotFound = errors.New("partnership not found")
	ErrConflict            = errors.New("resource already exists")
)
