package entities

import "time"

// CodTransaction tracks the cash-on-delivery settlement for a single order:
// driver collects at the door, submits the cash to the company, the company
// receives and reconciles it, then pays the net amount out to the sender.
type CodTransaction struct {
	ID       int64
	OrderID  int64
	DriverID *int64

	Status CodStatusType

	Amount          float64
	CollectedAmount float64
	SubmittedAmount float64

	ProofPhotoURL   string
	PayoutMethod    PaymentMethodType
	PayoutReference string
	FailureReason   string

	CollectedAt *time.Time
	SubmittedAt *time.Time
	ReceivedAt  *time.Time
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CodStatusType string

const (
	CodPendingCollection CodStatusType = "pending_collection"
	CodCollected         CodStatusType = "collected"
	CodSubmitted         CodStatusType = "submitted_to_company"
	CodReceived          CodStatusType = "received_by_company"
	CodCompleted         CodStatusType = "completed"
	CodFailed            CodStatusType = "failed"
)

func (s CodStatusType) String() string {
	return string(s)
}

var codTransitions = map[CodStatusType][]CodStatusType{
	CodPendingCollection: {CodCollected, CodFailed},
	CodCollected:         {CodSubmitted, CodFailed},
	CodSubmitted:         {CodReceived, CodFailed},
	CodReceived:          {CodCompleted, CodFailed},
}

func (s CodStatusType) CanTransitionTo(next CodStatusType) bool {
	for _, allowed := range codTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s CodStatusType) IsTerminal() bool {
	return s == CodCompleted || s == CodFailed
}

type CodTransactionModify struct {
	ID       *int64
	OrderID  *int64
	DriverID *int64

	Status *CodStatusType

	Amount          *float64
	CollectedAmount *float64
	SubmittedAmount *float64

	ProofPhotoURL   *string
	PayoutMethod    *PaymentMethodType
	PayoutReference *string
	FailureReason   *string

	CollectedAt *time.Time
	SubmittedAt *time.Time
	ReceivedAt  *time.Time
	CompletedAt *time.Time
}

// CodSettlement is a per-driver reconciliation summary: the company compares
// what the driver collected against what was handed over.
type CodSettlement struct {
	DriverID         int64
	TransactionCount int64
	CollectedTotal   float64
	SubmittedTotal   float64
	Variance         float64
	ReceivedBy       int64
	ReceivedAt       time.Time
}
