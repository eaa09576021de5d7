package notification

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	leadDomain "bfsi-los-backend/internal/domain/lead"
	domain "bfsi-los-backend/internal/domain/notification"
)

// Mailer sends the reminder email. A nil Mailer disables mail entirely;
// send failures are logged and never fail the sweep.
type Mailer interface {
	Send(to, subject, body string) error
}

type Usecase struct {
	notifications domain.Repository
	leads         leadDomain.Repository
	mailer        Mailer
}

func NewUsecase(notifications domain.Repository, leads leadDomain.Repository, mailer Mailer) *Usecase {
	return &Usecase{notifications: notifications, leads: leads, mailer: mailer}
}

type CreateInput struct {
	UserID   string          `json:"user_id" validate:"required"`
	Title    string          `json:"title" validate:"required"`
	Message  string          `json:"message" validate:"required"`
	Type     domain.Type     `json:"type" validate:"omitempty,oneof=lead_reminder system approval rejection"`
	LeadID   string          `json:"lead_id"`
	Priority domain.Priority `json:"priority" validate:"omitempty,oneof=low medium high"`
}

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*domain.Notification, error) {
	n := &domain.Notification{
		UserID:   in.UserID,
		Title:    in.Title,
		Message:  in.Message,
		Type:     in.Type,
		LeadID:   in.LeadID,
		Priority: in.Priority,
	}
	if n.Type == "" {
		n.Type = domain.TypeSystem
	}
	if n.Priority == "" {
		n.Priority = domain.PriorityMedium
	}
	if err := u.notifications.Create(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (u *Usecase) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	return u.notifications.ListByUser(ctx, userID)
}

func (u *Usecase) CountUnread(ctx context.Context, userID string) (int64, error) {
	return u.notifications.CountUnread(ctx, userID)
}

func (u *Usecase) MarkRead(ctx context.Context, id uint64) (*domain.Notification, error) {
	n, err := u.notifications.MarkRead(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return n, nil
}

// MarkAllRead clears a user's inbox. Calling it on an already-clean inbox
// succeeds the same way.
func (u *Usecase) MarkAllRead(ctx context.Context, userID string) error {
	return u.notifications.MarkAllRead(ctx, userID)
}

func (u *Usecase) Delete(ctx context.Context, id uint64) error {
	err := u.notifications.Delete(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}

// CreateLeadReminder records a reminder for one lead on demand.
func (u *Usecase) CreateLeadReminder(ctx context.Context, userID, leadRef, businessName string) (*domain.Notification, error) {
	return u.Create(ctx, CreateInput{
		UserID:   userID,
		Title:    "Lead submission reminder",
		Message:  reminderMessage(businessName, leadRef),
		Type:     domain.TypeLeadReminder,
		LeadID:   leadRef,
		Priority: domain.PriorityHigh,
	})
}

// SweepResult summarizes one reminder sweep run.
type SweepResult struct {
	Checked int `json:"checked"`
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Emailed int `json:"emailed"`
}

// SweepLeadReminders creates one reminder per Draft lead older than the
// cutoff. A lead that already has a reminder is skipped, so the sweep can
// run on any schedule without duplicating noise. Reminders go to the
// lead's assigned user, or to the calling principal when unassigned.
func (u *Usecase) SweepLeadReminders(ctx context.Context, principal string, olderThan time.Duration) (*SweepResult, error) {
	cutoff := time.Now().Add(-olderThan)
	stale, err := u.leads.ListDraftOlderThan(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	res := &SweepResult{Checked: len(stale)}
	for i := range stale {
		l := &stale[i]

		if _, err := u.notifications.FindReminderForLead(ctx, l.LeadRef); err == nil {
			res.Skipped++
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		userID := l.UserID
		if userID == "" {
			userID = principal
		}

		n := &domain.Notification{
			UserID:   userID,
			Title:    "Lead submission reminder",
			Message:  reminderMessage(l.BusinessName, l.LeadRef),
			Type:     domain.TypeLeadReminder,
			LeadID:   l.LeadRef,
			Priority: domain.PriorityHigh,
		}
		if err := u.notifications.Create(ctx, n); err != nil {
			return nil, err
		}
		res.Created++

		if u.mailer != nil && l.ContactEmail != "" {
			if err := u.mailer.Send(l.ContactEmail, n.Title, n.Message); err != nil {
				log.Printf("reminder mail for lead %s failed: %v", l.LeadRef, err)
			} else {
				res.Emailed++
			}
		}
	}
	return res, nil
}

func reminderMessage(businessName, leadRef string) string {
	return fmt.Sprintf("Lead %s (%s) has been in Draft for over a month. Please complete the submission.", leadRef, businessName)
}
