package cod

import "time"

type CodTransactionDB struct {
	ID       int64
	OrderID  int64
	DriverID *int64

	Status string

	Amount          float64
	CollectedAmount float64
	SubmittedAmount float64

	ProofPhotoURL   string
	PayoutMethod    *string
	PayoutReference string
	FailureReason   string

	CollectedAt *time.Time
	SubmittedAt *time.Time
	ReceivedAt  *time.Time
	CompletedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CodTransactionModifyDB struct {
	ID       *int64
	OrderID  *int64
	DriverID *int64

	Status *string

	Amount          *float64
	CollectedAmount *float64
	SubmittedAmount *float64

	ProofPhotoURL   *string
	PayoutMethod    *string
	PayoutReference *string
	FailureReason   *string

	CollectedAt *time.Time
	SubmittedAt *time.Time
	ReceivedAt  *time.Time
	CompletedAt *time.Time
}
