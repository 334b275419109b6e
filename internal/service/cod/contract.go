//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cod_test
package cod

import (
	"context"
	"time"

	"logistics/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, codModifyEntity entities.CodTransactionModify) (*entities.CodTransaction, error)
	GetByID(ctx context.Context, id int64) (*entities.CodTransaction, error)
	GetByOrderID(ctx context.Context, orderID int64) (*entities.CodTransaction, error)
	GetByDriverAndStatus(ctx context.Context, driverID int64, status entities.CodStatusType) ([]entities.CodTransaction, error)
	Update(ctx context.Context, codModifyEntity entities.CodTransactionModify) (*entities.CodTransaction, error)
}

// KVStore reserves idempotency keys with a TTL.
type KVStore interface {
	SetNX(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
