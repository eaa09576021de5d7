package summary

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "bfsi-los-backend/internal/domain/summary"
)

type Usecase struct {
	summaries domain.Repository
}

func NewUsecase(summaries domain.Repository) *Usecase {
	return &Usecase{summaries: summaries}
}

// List returns all summaries, or only those for one lead reference when
// leadID is non-empty.
func (u *Usecase) List(ctx context.Context, leadID string) ([]domain.Summary, error) {
	if leadID != "" {
		return u.summaries.ListByLeadID(ctx, leadID)
	}
	return u.summaries.List(ctx)
}

func (u *Usecase) GetByID(ctx context.Context, id uint64) (*domain.Summary, error) {
	s, err := u.summaries.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}
