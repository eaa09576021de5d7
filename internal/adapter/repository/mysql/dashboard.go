package mysql

import (
	"context"

	"gorm.io/gorm"

	dashDomain "bfsi-los-backend/internal/domain/dashboard"
)

type DashboardRepository struct{ db *gorm.DB }

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db: db}
}

func (r *DashboardRepository) Create(ctx context.Context, s *dashDomain.Snapshot) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *DashboardRepository) List(ctx context.Context) ([]dashDomain.Snapshot, error) {
	var out []dashDomain.Snapshot
	res := r.db.WithContext(ctx).Order("year DESC").Find(&out)
	return out, res.Error
}

func (r *DashboardRepository) GetByYear(ctx context.Context, year int) (*dashDomain.Snapshot, error) {
	var out dashDomain.Snapshot
	res := r.db.WithContext(ctx).Where("year = ?", year).First(&out)
	return &out, res.Error
}
