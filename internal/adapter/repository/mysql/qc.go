package mysql

import (
	"context"

	"gorm.io/gorm"

	"bfsi-los-backend/internal/domain/borrower"
	qcDomain "bfsi-los-backend/internal/domain/qc"
)

type QCRepository struct{ db *gorm.DB }

func NewQCRepository(db *gorm.DB) *QCRepository { return &QCRepository{db: db} }

func (r *QCRepository) Create(ctx context.Context, rec *qcDomain.Record) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *QCRepository) GetByID(ctx context.Context, id uint64) (*qcDomain.Record, error) {
	var out qcDomain.Record
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *QCRepository) GetByKey(ctx context.Context, key borrower.Key) (*qcDomain.Record, error) {
	var out qcDomain.Record
	res := r.db.WithContext(ctx).
		Where("customer_name = ? AND lead_id = ?", key.CustomerName, key.LeadID).
		Order("id ASC").
		First(&out)
	return &out, res.Error
}

func (r *QCRepository) List(ctx context.Context) ([]qcDomain.Record, error) {
	var out []qcDomain.Record
	res := r.db.WithContext(ctx).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *QCRepository) ListByStatus(ctx context.Context, status qcDomain.Status) ([]qcDomain.Record, error) {
	var out []qcDomain.Record
	res := r.db.WithContext(ctx).Where("status = ?", status).Order("id ASC").Find(&out)
	return out, res.Error
}

func (r *QCRepository) UpdateStatus(ctx context.Context, id uint64, status qcDomain.Status) (*qcDomain.Record, error) {
	var out qcDomain.Record
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, err
	}
	out.Status = status
	if err := r.db.WithContext(ctx).Save(&out).Error; err != nil {
		return nil, err
	}
	return &out, nil
}
