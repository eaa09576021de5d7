package mysql

import (
	"context"

	"gorm.io/gorm"

	notifDomain "bfsi-los-backend/internal/domain/notification"
)

type NotificationRepository struct{ db *gorm.DB }

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *notifDomain.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *NotificationRepository) GetByID(ctx context.Context, id uint64) (*notifDomain.Notification, error) {
	var out notifDomain.Notification
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]notifDomain.Notification, error) {
	var out []notifDomain.Notification
	res := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *NotificationRepository) CountUnread(ctx context.Context, userID string) (int64, error) {
	var count int64
	res := r.db.WithContext(ctx).Model(&notifDomain.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count)
	return count, res.Error
}

func (r *NotificationRepository) MarkRead(ctx context.Context, id uint64) (*notifDomain.Notification, error) {
	var out notifDomain.Notification
	if err := r.db.WithContext(ctx).First(&out, id).Error; err != nil {
		return nil, err
	}
	if !out.IsRead {
		out.IsRead = true
		if err := r.db.WithContext(ctx).Save(&out).Error; err != nil {
			return nil, err
		}
	}
	return &out, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID string) error {
	// updating zero rows is fine: the call is idempotent
	return r.db.WithContext(ctx).Model(&notifDomain.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Update("is_read", true).Error
}

func (r *NotificationRepository) FindReminderForLead(ctx context.Context, leadRef string) (*notifDomain.Notification, error) {
	var out notifDomain.Notification
	res := r.db.WithContext(ctx).
		Where("lead_id = ? AND type = ?", leadRef, notifDomain.TypeLeadReminder).
		First(&out)
	return &out, res.Error
}

func (r *NotificationRepository) Delete(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Delete(&notifDomain.Notification{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
