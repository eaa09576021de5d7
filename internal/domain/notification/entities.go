package notification

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("notification not found")

type Type string

const (
	TypeLeadReminder Type = "lead_reminder"
	TypeSystem       Type = "system"
	TypeApproval     Type = "approval"
	TypeRejection    Type = "rejection"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

type Notification struct {
	ID           uint64     `gorm:"primaryKey;column:id" json:"id"`
	UserID       string     `gorm:"size:64;not null;index:idx_notifications_user" json:"user_id"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Message      string     `gorm:"type:text;not null" json:"message"`
	Type         Type       `gorm:"size:32;default:'system'" json:"type"`
	LeadID       string     `gorm:"size:32;index:idx_notifications_lead" json:"lead_id,omitempty"`
	IsRead       bool       `gorm:"default:false" json:"is_read"`
	Priority     Priority   `gorm:"size:8;default:'medium'" json:"priority"`
	ScheduledFor *time.Time `json:"scheduled_for,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
