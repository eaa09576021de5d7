package analysis

import (
	"context"

	"bfsi-los-backend/internal/domain/borrower"
)

type ExtractedValuesRepository interface {
	Create(ctx context.Context, e *ExtractedValues) error
	GetByID(ctx context.Context, id uint64) (*ExtractedValues, error)
	// GetByKey returns the first record matching the borrower key
	// (ordered by id; uniqueness is also enforced at the store level).
	GetByKey(ctx context.Context, key borrower.Key) (*ExtractedValues, error)
	List(ctx context.Context) ([]ExtractedValues, error)
}

type RatiosRepository interface {
	Create(ctx context.Context, r *Ratios) error
	GetByKey(ctx context.Context, key borrower.Key) (*Ratios, error)
}
