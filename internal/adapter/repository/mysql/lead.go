package mysql

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	leadDomain "bfsi-los-backend/internal/domain/lead"
)

type LeadRepository struct{ db *gorm.DB }

func NewLeadRepository(db *gorm.DB) *LeadRepository { return &LeadRepository{db: db} }

func (r *LeadRepository) Create(ctx context.Context, l *leadDomain.Lead) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LeadRepository) Save(ctx context.Context, l *leadDomain.Lead) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *LeadRepository) GetByID(ctx context.Context, id uint64) (*leadDomain.Lead, error) {
	var out leadDomain.Lead
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *LeadRepository) GetByLeadRef(ctx context.Context, ref string) (*leadDomain.Lead, error) {
	var out leadDomain.Lead
	res := r.db.WithContext(ctx).Where("lead_ref = ?", ref).First(&out)
	return &out, res.Error
}

func (r *LeadRepository) List(ctx context.Context) ([]leadDomain.Lead, error) {
	var out []leadDomain.Lead
	res := r.db.WithContext(ctx).Order("created_date DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *LeadRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&leadDomain.Lead{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *LeadRepository) ListDraftOlderThan(ctx context.Context, cutoff time.Time) ([]leadDomain.Lead, error) {
	var out []leadDomain.Lead
	res := r.db.WithContext(ctx).
		Where("status = ? AND created_date < ?", leadDomain.StatusDraft, cutoff).
		Order("created_date ASC").
		Find(&out)
	return out, res.Error
}

func (r *LeadRepository) SetAMLStatus(ctx context.Context, id uint64, target leadDomain.AMLTarget, status leadDomain.AMLStatus) error {
	var col string
	switch target {
	case leadDomain.AMLTargetCompany:
		col = "aml_company_status"
	case leadDomain.AMLTargetDirector:
		col = "aml_director_status"
	default:
		return fmt.Errorf("unknown aml target %q", target)
	}
	// no RowsAffected check: setting an unchanged status is a valid no-op
	return r.db.WithContext(ctx).Model(&leadDomain.Lead{}).
		Where("id = ?", id).
		Update(col, status).Error
}
