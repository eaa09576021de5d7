package mysql

import (
	"context"

	"gorm.io/gorm"

	"bfsi-los-backend/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := uow.Repos{
			Leads:           &LeadRepository{db: tx},
			ExtractedValues: &ExtractedValuesRepository{db: tx},
			Ratios:          &RatiosRepository{db: tx},
			Risks:           &RiskRepository{db: tx},
			Summaries:       &SummaryRepository{db: tx},
			Memos:           &MemoRepository{db: tx},
			QC:              &QCRepository{db: tx},
		}
		return fn(r)
	})
}
