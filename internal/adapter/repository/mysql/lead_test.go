package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "bfsi-los-backend/internal/domain/lead"
)

func openLeadTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&domain.Lead{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makeLead(ref, name string) *domain.Lead {
	return &domain.Lead{
		LeadRef:           ref,
		BusinessName:      name,
		LoanType:          "Working Capital",
		LoanAmount:        2_500_000,
		Status:            domain.StatusDraft,
		AMLCompanyStatus:  domain.AMLIdle,
		AMLDirectorStatus: domain.AMLIdle,
		UserID:            "rm-042",
	}
}

func TestLeadRepository_CreateAndGet(t *testing.T) {
	repo := NewLeadRepository(openLeadTestDB(t))
	ctx := context.Background()

	l := makeLead("LEAD-AAAA1111", "Acme Industries")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("create: %v", err)
	}
	if l.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.BusinessName != "Acme Industries" || got.LeadRef != "LEAD-AAAA1111" {
		t.Fatalf("got %+v", got)
	}

	byRef, err := repo.GetByLeadRef(ctx, "LEAD-AAAA1111")
	if err != nil {
		t.Fatalf("get by ref: %v", err)
	}
	if byRef.ID != l.ID {
		t.Fatalf("ref lookup id = %d, want %d", byRef.ID, l.ID)
	}

	if _, err := repo.GetByLeadRef(ctx, "LEAD-ZZZZ9999"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("missing ref err = %v", err)
	}
}

func TestLeadRepository_ListNewestFirst(t *testing.T) {
	db := openLeadTestDB(t)
	repo := NewLeadRepository(db)
	ctx := context.Background()

	older := makeLead("LEAD-AAAA1111", "Acme Industries")
	newer := makeLead("LEAD-BBBB2222", "Brightwave Textiles")
	for _, l := range []*domain.Lead{older, newer} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	// autoCreateTime is second-granular under sqlite, so force distinct dates
	if err := db.Model(older).Update("created_date", time.Now().Add(-48*time.Hour)).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}

	leads, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(leads) != 2 || leads[0].LeadRef != "LEAD-BBBB2222" {
		t.Fatalf("order wrong: %+v", leads)
	}
}

func TestLeadRepository_Delete(t *testing.T) {
	repo := NewLeadRepository(openLeadTestDB(t))
	ctx := context.Background()

	l := makeLead("LEAD-AAAA1111", "Acme Industries")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(ctx, l.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, l.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("second delete err = %v", err)
	}
}

func TestLeadRepository_ListDraftOlderThan(t *testing.T) {
	db := openLeadTestDB(t)
	repo := NewLeadRepository(db)
	ctx := context.Background()

	stale := makeLead("LEAD-AAAA1111", "Acme Industries")
	fresh := makeLead("LEAD-BBBB2222", "Brightwave Textiles")
	submitted := makeLead("LEAD-CCCC3333", "Crescent Foods")
	submitted.Status = domain.StatusSubmitted
	for _, l := range []*domain.Lead{stale, fresh, submitted} {
		if err := repo.Create(ctx, l); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	old := time.Now().Add(-45 * 24 * time.Hour)
	for _, l := range []*domain.Lead{stale, submitted} {
		if err := db.Model(l).Update("created_date", old).Error; err != nil {
			t.Fatalf("backdate: %v", err)
		}
	}

	got, err := repo.ListDraftOlderThan(ctx, time.Now().Add(-30*24*time.Hour))
	if err != nil {
		t.Fatalf("list draft older than: %v", err)
	}
	if len(got) != 1 || got[0].LeadRef != "LEAD-AAAA1111" {
		t.Fatalf("got %+v", got)
	}
}

func TestLeadRepository_SetAMLStatus(t *testing.T) {
	repo := NewLeadRepository(openLeadTestDB(t))
	ctx := context.Background()

	l := makeLead("LEAD-AAAA1111", "Acme Industries")
	if err := repo.Create(ctx, l); err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.SetAMLStatus(ctx, l.ID, domain.AMLTargetCompany, domain.AMLDone); err != nil {
		t.Fatalf("set company: %v", err)
	}
	got, err := repo.GetByID(ctx, l.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.AMLCompanyStatus != domain.AMLDone || got.AMLDirectorStatus != domain.AMLIdle {
		t.Fatalf("statuses = %q / %q", got.AMLCompanyStatus, got.AMLDirectorStatus)
	}

	// same status again is a no-op, not an error
	if err := repo.SetAMLStatus(ctx, l.ID, domain.AMLTargetCompany, domain.AMLDone); err != nil {
		t.Fatalf("idempotent set: %v", err)
	}

	if err := repo.SetAMLStatus(ctx, l.ID, "board", domain.AMLDone); err == nil {
		t.Fatalf("expected error for unknown target")
	}
}
