package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	leadDomain "bfsi-los-backend/internal/domain/lead"
	domain "bfsi-los-backend/internal/domain/notification"
	"bfsi-los-backend/internal/testutil/leadmock"
)

// memRepo is an in-memory notification store for sweep tests.
type memRepo struct {
	items  []domain.Notification
	nextID uint64
}

func (m *memRepo) Create(ctx context.Context, n *domain.Notification) error {
	m.nextID++
	n.ID = m.nextID
	m.items = append(m.items, *n)
	return nil
}
func (m *memRepo) GetByID(ctx context.Context, id uint64) (*domain.Notification, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			return &m.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *memRepo) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	var out []domain.Notification
	for _, n := range m.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}
func (m *memRepo) CountUnread(ctx context.Context, userID string) (int64, error) {
	var n int64
	for _, it := range m.items {
		if it.UserID == userID && !it.IsRead {
			n++
		}
	}
	return n, nil
}
func (m *memRepo) MarkRead(ctx context.Context, id uint64) (*domain.Notification, error) {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].IsRead = true
			return &m.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *memRepo) MarkAllRead(ctx context.Context, userID string) error {
	for i := range m.items {
		if m.items[i].UserID == userID {
			m.items[i].IsRead = true
		}
	}
	return nil
}
func (m *memRepo) FindReminderForLead(ctx context.Context, leadRef string) (*domain.Notification, error) {
	for i := range m.items {
		if m.items[i].LeadID == leadRef && m.items[i].Type == domain.TypeLeadReminder {
			return &m.items[i], nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *memRepo) Delete(ctx context.Context, id uint64) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

type mailerFunc func(to, subject, body string) error

func (f mailerFunc) Send(to, subject, body string) error { return f(to, subject, body) }

func staleLead(id uint64, ref, user, email string) leadDomain.Lead {
	return leadDomain.Lead{
		ID:           id,
		LeadRef:      ref,
		BusinessName: "Acme Industries",
		UserID:       user,
		ContactEmail: email,
		Status:       leadDomain.StatusDraft,
	}
}

func TestMarkAllRead_Idempotent(t *testing.T) {
	repo := &memRepo{}
	uc := NewUsecase(repo, &leadmock.Repo{}, nil)
	ctx := context.Background()

	if _, err := uc.Create(ctx, CreateInput{UserID: "rm-1", Title: "t", Message: "m"}); err != nil {
		t.Fatalf("Create err: %v", err)
	}

	if err := uc.MarkAllRead(ctx, "rm-1"); err != nil {
		t.Fatalf("first MarkAllRead err: %v", err)
	}
	n, _ := uc.CountUnread(ctx, "rm-1")
	if n != 0 {
		t.Fatalf("unread after first pass = %d", n)
	}

	// second pass over a clean inbox still succeeds
	if err := uc.MarkAllRead(ctx, "rm-1"); err != nil {
		t.Fatalf("second MarkAllRead err: %v", err)
	}
}

func TestCreate_Defaults(t *testing.T) {
	repo := &memRepo{}
	uc := NewUsecase(repo, &leadmock.Repo{}, nil)

	n, err := uc.Create(context.Background(), CreateInput{UserID: "rm-1", Title: "t", Message: "m"})
	if err != nil {
		t.Fatalf("Create err: %v", err)
	}
	if n.Type != domain.TypeSystem || n.Priority != domain.PriorityMedium {
		t.Fatalf("defaults = %q / %q", n.Type, n.Priority)
	}
}

func TestSweep_CreatesOnceAndDedupes(t *testing.T) {
	repo := &memRepo{}
	leads := &leadmock.Repo{
		ListDraftOlderThanFn: func(ctx context.Context, cutoff time.Time) ([]leadDomain.Lead, error) {
			return []leadDomain.Lead{staleLead(1, "LEAD-AAAA1111", "rm-7", "")}, nil
		},
	}
	uc := NewUsecase(repo, leads, nil)
	ctx := context.Background()

	res, err := uc.SweepLeadReminders(ctx, "scheduler", 30*24*time.Hour)
	if err != nil {
		t.Fatalf("sweep err: %v", err)
	}
	if res.Created != 1 || res.Skipped != 0 {
		t.Fatalf("first sweep = %+v", res)
	}

	// the reminder lands on the assigned user
	got, _ := repo.ListByUser(ctx, "rm-7")
	if len(got) != 1 || got[0].Type != domain.TypeLeadReminder || got[0].Priority != domain.PriorityHigh {
		t.Fatalf("reminder = %+v", got)
	}

	// second run finds the existing reminder and skips
	res, err = uc.SweepLeadReminders(ctx, "scheduler", 30*24*time.Hour)
	if err != nil {
		t.Fatalf("second sweep err: %v", err)
	}
	if res.Created != 0 || res.Skipped != 1 {
		t.Fatalf("second sweep = %+v", res)
	}
}

func TestSweep_FallsBackToPrincipal(t *testing.T) {
	repo := &memRepo{}
	leads := &leadmock.Repo{
		ListDraftOlderThanFn: func(ctx context.Context, cutoff time.Time) ([]leadDomain.Lead, error) {
			return []leadDomain.Lead{staleLead(2, "LEAD-BBBB2222", "", "")}, nil
		},
	}
	uc := NewUsecase(repo, leads, nil)

	if _, err := uc.SweepLeadReminders(context.Background(), "rm-caller", time.Hour); err != nil {
		t.Fatalf("sweep err: %v", err)
	}
	got, _ := repo.ListByUser(context.Background(), "rm-caller")
	if len(got) != 1 {
		t.Fatalf("principal fallback reminders = %d", len(got))
	}
}

func TestSweep_MailFailureIsBestEffort(t *testing.T) {
	repo := &memRepo{}
	leads := &leadmock.Repo{
		ListDraftOlderThanFn: func(ctx context.Context, cutoff time.Time) ([]leadDomain.Lead, error) {
			return []leadDomain.Lead{staleLead(3, "LEAD-CCCC3333", "rm-1", "ops@acme.example")}, nil
		},
	}
	uc := NewUsecase(repo, leads, mailerFunc(func(to, subject, body string) error {
		return errors.New("smtp down")
	}))

	res, err := uc.SweepLeadReminders(context.Background(), "scheduler", time.Hour)
	if err != nil {
		t.Fatalf("sweep err: %v", err)
	}
	if res.Created != 1 || res.Emailed != 0 {
		t.Fatalf("result = %+v", res)
	}
}

func TestSweep_SendsMailWhenConfigured(t *testing.T) {
	repo := &memRepo{}
	leads := &leadmock.Repo{
		ListDraftOlderThanFn: func(ctx context.Context, cutoff time.Time) ([]leadDomain.Lead, error) {
			return []leadDomain.Lead{staleLead(4, "LEAD-DDDD4444", "rm-1", "ops@acme.example")}, nil
		},
	}
	var sentTo string
	uc := NewUsecase(repo, leads, mailerFunc(func(to, subject, body string) error {
		sentTo = to
		return nil
	}))

	res, err := uc.SweepLeadReminders(context.Background(), "scheduler", time.Hour)
	if err != nil {
		t.Fatalf("sweep err: %v", err)
	}
	if res.Emailed != 1 || sentTo != "ops@acme.example" {
		t.Fatalf("mail result = %+v, to %q", res, sentTo)
	}
}
