package mysql

import (
	"context"

	"gorm.io/gorm"

	analysisDomain "bfsi-los-backend/internal/domain/analysis"
	"bfsi-los-backend/internal/domain/borrower"
)

type ExtractedValuesRepository struct{ db *gorm.DB }

func NewExtractedValuesRepository(db *gorm.DB) *ExtractedValuesRepository {
	return &ExtractedValuesRepository{db: db}
}

func (r *ExtractedValuesRepository) Create(ctx context.Context, e *analysisDomain.ExtractedValues) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *ExtractedValuesRepository) GetByID(ctx context.Context, id uint64) (*analysisDomain.ExtractedValues, error) {
	var out analysisDomain.ExtractedValues
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *ExtractedValuesRepository) GetByKey(ctx context.Context, key borrower.Key) (*analysisDomain.ExtractedValues, error) {
	var out analysisDomain.ExtractedValues
	res := r.db.WithContext(ctx).
		Where("customer_name = ? AND lead_id = ?", key.CustomerName, key.LeadID).
		Order("id ASC").
		First(&out)
	return &out, res.Error
}

func (r *ExtractedValuesRepository) List(ctx context.Context) ([]analysisDomain.ExtractedValues, error) {
	var out []analysisDomain.ExtractedValues
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

type RatiosRepository struct{ db *gorm.DB }

func NewRatiosRepository(db *gorm.DB) *RatiosRepository { return &RatiosRepository{db: db} }

func (r *RatiosRepository) Create(ctx context.Context, rt *analysisDomain.Ratios) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *RatiosRepository) GetByKey(ctx context.Context, key borrower.Key) (*analysisDomain.Ratios, error) {
	var out analysisDomain.Ratios
	res := r.db.WithContext(ctx).
		Where("customer_name = ? AND lead_id = ?", key.CustomerName, key.LeadID).
		Order("id ASC").
		First(&out)
	return &out, res.Error
}
