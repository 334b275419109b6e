package entities

import "time"

// OrderTransfer records a single hand-off of an order from one company to a
// partner company. Acceptance is a two-phase handshake: the target company
// accepts (optionally supplying its own vehicle) or rejects with a reason.
type OrderTransfer struct {
	ID               int64
	OrderID          int64
	FromCompanyID    int64
	ToCompanyID      int64
	PartnershipID    int64
	CommissionAmount float64
	Status           TransferStatusType
	VehicleID        *int64
	RejectReason     string
	ExpiresAt        time.Time
	DecidedAt        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type TransferStatusType string

const (
	TransferPending  TransferStatusType = "pending"
	TransferAccepted TransferStatusType = "accepted"
	TransferRejected TransferStatusType = "rejected"
	TransferExpired  TransferStatusType = "expired"
)

func (s TransferStatusType) String() string {
	return string(s)
}

var transferTransitions = map[TransferStatusType][]TransferStatusType{
	TransferPending: {TransferAccepted, TransferRejected, TransferExpired},
}

func (s TransferStatusType) CanTransitionTo(next TransferStatusType) bool {
	for _, allowed := range transferTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s TransferStatusType) IsTerminal() bool {
	return s != TransferPending
}

type OrderTransferModify struct {
	ID               *int64
	OrderID          *int64
	FromCompanyID    *int64
	ToCompanyID      *int64
	PartnershipID    *int64
	CommissionAmount *float64
	Status           *TransferStatusType
	VehicleID        *int64
	RejectReason     *string
	ExpiresAt        *time.Time
	DecidedAt        *time.Time
}
