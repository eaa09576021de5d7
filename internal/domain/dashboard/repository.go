package dashboard

import "context"

type Repository interface {
	Create(ctx context.Context, s *Snapshot) error
	// List returns snapshots latest year first.
	List(ctx context.Context) ([]Snapshot, error)
	GetByYear(ctx context.Context, year int) (*Snapshot, error)
}
