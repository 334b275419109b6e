package transfer_deadline

import (
	"time"

	"logistics/internal/entities"
)

// TransferDeadlineFactory decides how long a partner gets to answer a
// transfer offer. Closer partners get more slack.
type TransferDeadlineFactory struct{}

func New() *TransferDeadlineFactory {
	return &TransferDeadlineFactory{}
}

func (d *TransferDeadlineFactory) CalculateDeadline(level entities.PartnershipLevelType, baseTime time.Time) time.Time {
	resultTime := baseTime
	switch level {
	case entities.PartnershipPreferred:
		resultTime = resultTime.Add(48 * time.Hour)
	case entities.PartnershipRegular:
		resultTime = resultTime.Add(24 * time.Hour)
	case entities.PartnershipBackup:
		resultTime = resultTime.Add(12 * time.Hour)
	default:
		resultTime = resultTime.Add(24 * time.Hour)
	}

	return resultTime
}
