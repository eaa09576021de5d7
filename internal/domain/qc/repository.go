package qc

import (
	"context"

	"bfsi-los-backend/internal/domain/borrower"
)

type Repository interface {
	Create(ctx context.Context, r *Record) error
	GetByID(ctx context.Context, id uint64) (*Record, error)
	GetByKey(ctx context.Context, key borrower.Key) (*Record, error)
	List(ctx context.Context) ([]Record, error)
	ListByStatus(ctx context.Context, status Status) ([]Record, error)
	UpdateStatus(ctx context.Context, id uint64, status Status) (*Record, error)
}
