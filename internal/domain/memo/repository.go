package memo

import (
	"context"

	"bfsi-los-backend/internal/domain/borrower"
)

type Repository interface {
	Create(ctx context.Context, m *Memo) error
	GetByID(ctx context.Context, id uint64) (*Memo, error)
	GetByMemoID(ctx context.Context, memoID string) (*Memo, error)
	GetByKey(ctx context.Context, key borrower.Key) (*Memo, error)
	List(ctx context.Context) ([]Memo, error)
	Save(ctx context.Context, m *Memo) error
}
