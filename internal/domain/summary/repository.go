package summary

import (
	"context"

	"bfsi-los-backend/internal/domain/borrower"
)

type Repository interface {
	Create(ctx context.Context, s *Summary) error
	GetByID(ctx context.Context, id uint64) (*Summary, error)
	GetByKey(ctx context.Context, key borrower.Key) (*Summary, error)
	List(ctx context.Context) ([]Summary, error)
	ListByLeadID(ctx context.Context, leadID string) ([]Summary, error)
}
