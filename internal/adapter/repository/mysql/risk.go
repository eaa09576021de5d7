package mysql

import (
	"context"

	"gorm.io/gorm"

	"bfsi-los-backend/internal/domain/borrower"
	riskDomain "bfsi-los-backend/internal/domain/risk"
)

type RiskRepository struct{ db *gorm.DB }

func NewRiskRepository(db *gorm.DB) *RiskRepository { return &RiskRepository{db: db} }

func (r *RiskRepository) Create(ctx context.Context, rec *riskDomain.Risk) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *RiskRepository) GetByID(ctx context.Context, id uint64) (*riskDomain.Risk, error) {
	var out riskDomain.Risk
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *RiskRepository) GetByKey(ctx context.Context, key borrower.Key) (*riskDomain.Risk, error) {
	var out riskDomain.Risk
	res := r.db.WithContext(ctx).
		Where("customer_name = ? AND lead_id = ?", key.CustomerName, key.LeadID).
		Order("id ASC").
		First(&out)
	return &out, res.Error
}

func (r *RiskRepository) List(ctx context.Context) ([]riskDomain.Risk, error) {
	var out []riskDomain.Risk
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}
