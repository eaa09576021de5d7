package leadmock

import (
	"context"
	"time"

	domain "bfsi-los-backend/internal/domain/lead"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn             func(ctx context.Context, l *domain.Lead) error
	GetByIDFn            func(ctx context.Context, id uint64) (*domain.Lead, error)
	GetByLeadRefFn       func(ctx context.Context, ref string) (*domain.Lead, error)
	ListFn               func(ctx context.Context) ([]domain.Lead, error)
	SaveFn               func(ctx context.Context, l *domain.Lead) error
	DeleteFn             func(ctx context.Context, id uint64) error
	ListDraftOlderThanFn func(ctx context.Context, cutoff time.Time) ([]domain.Lead, error)
	SetAMLStatusFn       func(ctx context.Context, id uint64, target domain.AMLTarget, status domain.AMLStatus) error
}

func (m *Repo) Create(ctx context.Context, l *domain.Lead) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Lead, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByLeadRef(ctx context.Context, ref string) (*domain.Lead, error) {
	if m.GetByLeadRefFn != nil {
		return m.GetByLeadRefFn(ctx, ref)
	}
	return nil, context.Canceled
}

func (m *Repo) List(ctx context.Context) ([]domain.Lead, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, l *domain.Lead) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

func (m *Repo) ListDraftOlderThan(ctx context.Context, cutoff time.Time) ([]domain.Lead, error) {
	if m.ListDraftOlderThanFn != nil {
		return m.ListDraftOlderThanFn(ctx, cutoff)
	}
	return nil, nil
}

func (m *Repo) SetAMLStatus(ctx context.Context, id uint64, target domain.AMLTarget, status domain.AMLStatus) error {
	if m.SetAMLStatusFn != nil {
		return m.SetAMLStatusFn(ctx, id, target, status)
	}
	return nil
}
