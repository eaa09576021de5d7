package notification

import "context"

type Repository interface {
	Create(ctx context.Context, n *Notification) error
	GetByID(ctx context.Context, id uint64) (*Notification, error)
	// ListByUser returns a user's notifications, newest first.
	ListByUser(ctx context.Context, userID string) ([]Notification, error)
	CountUnread(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, id uint64) (*Notification, error)
	// MarkAllRead is idempotent: marking an already-clean inbox is a no-op.
	MarkAllRead(ctx context.Context, userID string) error
	// FindReminderForLead dedupes the reminder sweep.
	FindReminderForLead(ctx context.Context, leadRef string) (*Notification, error)
	Delete(ctx context.Context, id uint64) error
}
