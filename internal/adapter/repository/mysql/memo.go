package mysql

import (
	"context"

	"gorm.io/gorm"

	"bfsi-los-backend/internal/domain/borrower"
	memoDomain "bfsi-los-backend/internal/domain/memo"
)

type MemoRepository struct{ db *gorm.DB }

func NewMemoRepository(db *gorm.DB) *MemoRepository { return &MemoRepository{db: db} }

func (r *MemoRepository) Create(ctx context.Context, m *memoDomain.Memo) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemoRepository) Save(ctx context.Context, m *memoDomain.Memo) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MemoRepository) GetByID(ctx context.Context, id uint64) (*memoDomain.Memo, error) {
	var out memoDomain.Memo
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *MemoRepository) GetByMemoID(ctx context.Context, memoID string) (*memoDomain.Memo, error) {
	var out memoDomain.Memo
	res := r.db.WithContext(ctx).Where("memo_id = ?", memoID).First(&out)
	return &out, res.Error
}

func (r *MemoRepository) GetByKey(ctx context.Context, key borrower.Key) (*memoDomain.Memo, error) {
	var out memoDomain.Memo
	res := r.db.WithContext(ctx).
		Where("customer_name = ? AND lead_id = ?", key.CustomerName, key.LeadID).
		Order("id ASC").
		First(&out)
	return &out, res.Error
}

func (r *MemoRepository) List(ctx context.Context) ([]memoDomain.Memo, error) {
	var out []memoDomain.Memo
	res := r.db.WithContext(ctx).Order("id DESC").Find(&out)
	return out, res.Error
}
