package mysql

import (
	"context"

	"gorm.io/gorm"

	"bfsi-los-backend/internal/domain/borrower"
	summaryDomain "bfsi-los-backend/internal/domain/summary"
)

type SummaryRepository struct{ db *gorm.DB }

func NewSummaryRepository(db *gorm.DB) *SummaryRepository { return &SummaryRepository{db: db} }

func (r *SummaryRepository) Create(ctx context.Context, s *summaryDomain.Summary) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *SummaryRepository) GetByID(ctx context.Context, id uint64) (*summaryDomain.Summary, error) {
	var out summaryDomain.Summary
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *SummaryRepository) GetByKey(ctx context.Context, key borrower.Key) (*summaryDomain.Summary, error) {
	var out summaryDomain.Summary
	res := r.db.WithContext(ctx).
		Where("customer_name = ? AND loan_id = ?", key.CustomerName, key.LeadID).
		Order("id ASC").
		First(&out)
	return &out, res.Error
}

func (r *SummaryRepository) List(ctx context.Context) ([]summaryDomain.Summary, error) {
	var out []summaryDomain.Summary
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *SummaryRepository) ListByLeadID(ctx context.Context, leadID string) ([]summaryDomain.Summary, error) {
	var out []summaryDomain.Summary
	res := r.db.WithContext(ctx).Where("loan_id = ?", leadID).Order("id ASC").Find(&out)
	return out, res.Error
}
