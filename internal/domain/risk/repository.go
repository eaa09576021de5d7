package risk

import (
	"context"

	"bfsi-los-backend/internal/domain/borrower"
)

type Repository interface {
	Create(ctx context.Context, r *Risk) error
	GetByID(ctx context.Context, id uint64) (*Risk, error)
	GetByKey(ctx context.Context, key borrower.Key) (*Risk, error)
	List(ctx context.Context) ([]Risk, error)
}
