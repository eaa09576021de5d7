package dashboard

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "bfsi-los-backend/internal/domain/dashboard"
)

var ErrNoData = errors.New("no dashboard data")

type Usecase struct {
	snapshots domain.Repository
}

func NewUsecase(snapshots domain.Repository) *Usecase {
	return &Usecase{snapshots: snapshots}
}

// List returns every snapshot, latest year first. Empty is reported as
// ErrNoData so the handler can 404 the way the original endpoint did.
func (u *Usecase) List(ctx context.Context) ([]domain.Snapshot, error) {
	out, err := u.snapshots.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNoData
	}
	return out, nil
}

func (u *Usecase) GetByYear(ctx context.Context, year int) (*domain.Snapshot, error) {
	s, err := u.snapshots.GetByYear(ctx, year)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoData
		}
		return nil, err
	}
	return s, nil
}
