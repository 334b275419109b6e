package cod

import (
	"context"
	"errors"
	"fmt"
	"time"

	"logistics/internal/entities"
	"logistics/pkg/kvstore"
)

const (
	collectKeyPrefix = "cod:collect:"
	submitKeyPrefix  = "cod:submit:"
)

type Cod struct {
	repository     Repository
	kv             KVStore
	txManager      TxManager
	idempotencyTTL time.Duration
}

func New(repository Repository, kv KVStore, txManager TxManager, idempotencyTTL time.Duration) *Cod {
	return &Cod{
		repository:     repository,
		kv:             kv,
		txManager:      txManager,
		idempotencyTTL: idempotencyTTL,
	}
}

func (s *Cod) GetTransaction(ctx context.Context, id int64) (*entities.CodTransaction, error) {
	if id <= 0 {
		return nil, ErrInvalidCodID
	}

	codTransaction, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get cod transaction: %w", err)
	}

	return codTransaction, nil
}

func (s *Cod) GetTransactionByOrder(ctx context.Context, orderID int64) (*entities.CodTransaction, error) {
	if orderID <= 0 {
		return nil, ErrInvalidCodID
	}

	codTransaction, err := s.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cod transaction: %w", err)
	}

	return codTransaction, nil
}

// Collect records the cash taken at the door and moves the transaction to
// collected. The idempotency key is reserved before the transaction; a repeat
// of the same key returns ErrDuplicateRequest without touching the record.
func (s *Cod) Collect(ctx context.Context, codID, driverID int64, amount float64, proofURL, idempotencyKey string) (*entities.CodTransaction, error) {
	if codID <= 0 {
		return nil, ErrInvalidCodID
	}
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if amount <= 0 {
		return nil, ErrInvalidAmount
	}
	if idempotencyKey == "" {
		return nil, ErrMissingIdempotencyKey
	}

	key := collectKeyPrefix + idempotencyKey
	if err := s.kv.SetNX(ctx, key, fmt.Sprintf("%d", codID), s.idempotencyTTL); err != nil {
		if errors.Is(err, kvstore.ErrKeyExists) {
			return nil, ErrDuplicateRequest
		}
		return nil, fmt.Errorf("reserve idempotency key: %w", err)
	}

	var updated *entities.CodTransaction
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		codTransaction, err := s.repository.GetByID(ctx, codID)
		if err != nil {
			return fmt.Errorf("get cod transaction: %w", err)
		}

		if !codTransaction.Status.CanTransitionTo(entities.CodCollected) {
			return fmt.Errorf("%s -> %s: %w",
				codTransaction.Status, entities.CodCollected, ErrInvalidCodTransition)
		}

		now := time.Now()
		newStatus := entities.CodCollected
		updated, err = s.repository.Update(ctx, entities.CodTransactionModify{
			ID:              &codID,
			DriverID:        &driverID,
			Status:          &newStatus,
			CollectedAmount: &amount,
			ProofPhotoURL:   &proofURL,
			CollectedAt:     &now,
		})
		if err != nil {
			return fmt.Errorf("update cod transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		// Release the key so the caller may retry after a genuine failure.
		_ = s.kv.Delete(ctx, key)
		return nil, err
	}

	return updated, nil
}

// Submit hands all of the driver's collected transactions over to the company
// in one transaction and returns the batch total.
func (s *Cod) Submit(ctx context.Context, driverID int64, idempotencyKey string) (float64, error) {
	if driverID <= 0 {
		return 0, ErrInvalidDriverID
	}
	if idempotencyKey == "" {
		return 0, ErrMissingIdempotencyKey
	}

	key := submitKeyPrefix + idempotencyKey
	if err := s.kv.SetNX(ctx, key, fmt.Sprintf("%d", driverID), s.idempotencyTTL); err != nil {
		if errors.Is(err, kvstore.ErrKeyExists) {
			return 0, ErrDuplicateRequest
		}
		return 0, fmt.Errorf("reserve idempotency key: %w", err)
	}

	var total float64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		collected, err := s.repository.GetByDriverAndStatus(ctx, driverID, entities.CodCollected)
		if err != nil {
			return fmt.Errorf("get collected transactions: %w", err)
		}
		if len(collected) == 0 {
			return ErrNothingToSubmit
		}

		now := time.Now()
		newStatus := entities.CodSubmitted
		for i := range collected {
			codTransaction := collected[i]
			submittedAmount := codTransaction.CollectedAmount

			_, err := s.repository.Update(ctx, entities.CodTransactionModify{
				ID:              &codTransaction.ID,
				Status:          &newStatus,
				SubmittedAmount: &submittedAmount,
				SubmittedAt:     &now,
			})
			if err != nil {
				return fmt.Errorf("submit cod transaction %d: %w", codTransaction.ID, err)
			}

			total += submittedAmount
		}
		return nil
	})
	if err != nil {
		_ = s.kv.Delete(ctx, key)
		return 0, err
	}

	return total, nil
}

// Receive confirms the company took the driver's submitted cash and returns
// the settlement summary with the collected/submitted variance.
func (s *Cod) Receive(ctx context.Context, driverID, receivedBy int64) (*entities.CodSettlement, error) {
	if driverID <= 0 {
		return nil, ErrInvalidDriverID
	}
	if receivedBy <= 0 {
		return nil, ErrInvalidDriverID
	}

	var settlement *entities.CodSettlement
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		submitted, err := s.repository.GetByDriverAndStatus(ctx, driverID, entities.CodSubmitted)
		if err != nil {
			return fmt.Errorf("get submitted transactions: %w", err)
		}
		if len(submitted) == 0 {
			return ErrNothingToReceive
		}

		now := time.Now()
		newStatus := entities.CodReceived

		var collectedTotal, submittedTotal float64
		for i := range submitted {
			codTransaction := submitted[i]

			_, err := s.repository.Update(ctx, entities.CodTransactionModify{
				ID:         &codTransaction.ID,
				Status:     &newStatus,
				ReceivedAt: &now,
			})
			if err != nil {
				return fmt.Errorf("receive cod transaction %d: %w", codTransaction.ID, err)
			}

			collectedTotal += codTransaction.CollectedAmount
			submittedTotal += codTransaction.SubmittedAmount
		}

		settlement = &entities.CodSettlement{
			DriverID:         driverID,
			TransactionCount: int64(len(submitted)),
			CollectedTotal:   collectedTotal,
			SubmittedTotal:   submittedTotal,
			Variance:         collectedTotal - submittedTotal,
			ReceivedBy:       receivedBy,
			ReceivedAt:       now,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return settlement, nil
}

// Payout closes a received transaction, recording how the sender was paid.
func (s *Cod) Payout(ctx context.Context, codID int64, payoutMethod entities.PaymentMethodType, reference string) (*entities.CodTransaction, error) {
	if codID <= 0 {
		return nil, ErrInvalidCodID
	}

	var updated *entities.CodTransaction
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		codTransaction, err := s.repository.GetByID(ctx, codID)
		if err != nil {
			return fmt.Errorf("get cod transaction: %w", err)
		}

		if !codTransaction.Status.CanTransitionTo(entities.CodCompleted) {
			return fmt.Errorf("%s -> %s: %w",
				codTransaction.Status, entities.CodCompleted, ErrInvalidCodTransition)
		}

		now := time.Now()
		newStatus := entities.CodCompleted
		updated, err = s.repository.Update(ctx, entities.CodTransactionModify{
			ID:              &codID,
			Status:          &newStatus,
			PayoutMethod:    &payoutMethod,
			PayoutReference: &reference,
			CompletedAt:     &now,
		})
		if err != nil {
			return fmt.Errorf("update cod transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Fail moves any non-terminal transaction to failed with a mandatory reason.
func (s *Cod) Fail(ctx context.Context, codID int64, reason string) (*entities.CodTransaction, error) {
	if codID <= 0 {
		return nil, ErrInvalidCodID
	}
	if reason == "" {
		return nil, ErrMissingReason
	}

	var updated *entities.CodTransaction
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		codTransaction, err := s.repository.GetByID(ctx, codID)
		if err != nil {
			return fmt.Errorf("get cod transaction: %w", err)
		}

		if !codTransaction.Status.CanTransitionTo(entities.CodFailed) {
			return fmt.Errorf("%s -> %s: %w",
				codTransaction.Status, entities.CodFailed, ErrInvalidCodTransition)
		}

		newStatus := entities.CodFailed
		updated, err = s.repository.Update(ctx, entities.CodTransactionModify{
			ID:            &codID,
			Status:        &newStatus,
			FailureReason: &reason,
		})
		if err != nil {
			return fmt.Errorf("update cod transaction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
