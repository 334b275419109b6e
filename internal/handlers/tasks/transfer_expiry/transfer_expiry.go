package transfer_expiry

import (
	"context"
	"time"

	"logistics/pkg/logger"
)

type Service interface {
	ExpirePending(ctx context.Context, olderThan time.Time) (int64, error)
}

// TransferExpiry periodically sweeps pending transfer offers whose answer
// deadline has passed.
type TransferExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewTransferExpiry(log logger.Logger, service Service, interval time.Duration) *TransferExpiry {
	return &TransferExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (t *TransferExpiry) TTL() time.Duration {
	return t.interval
}

func (t *TransferExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	rowsAffected, err := t.service.ExpirePending(ctxWithTimeout, time.Now())

	if rowsAffected > 0 {
		t.log.With(
			logger.NewField("expired_transfers", rowsAffected),
		).Info("transfer expiry sweep")
	}

	return err
}

func (t *TransferExpiry) Info() string {
	return "transfer expiry"
}
