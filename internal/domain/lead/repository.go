package lead

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l *Lead) error
	GetByID(ctx context.Context, id uint64) (*Lead, error)
	GetByLeadRef(ctx context.Context, ref string) (*Lead, error)
	// List returns all leads, most recent first.
	List(ctx context.Context) ([]Lead, error)
	Save(ctx context.Context, l *Lead) error
	Delete(ctx context.Context, id uint64) error
	// ListDraftOlderThan feeds the submission-reminder sweep.
	ListDraftOlderThan(ctx context.Context, cutoff time.Time) ([]Lead, error)
	// SetAMLStatus persists a screening transition for one target.
	SetAMLStatus(ctx context.Context, id uint64, target AMLTarget, status AMLStatus) error
}
