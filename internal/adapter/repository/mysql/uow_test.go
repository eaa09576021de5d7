package mysql

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	analysisDomain "bfsi-los-backend/internal/domain/analysis"
	riskDomain "bfsi-los-backend/internal/domain/risk"
	"bfsi-los-backend/internal/domain/uow"
)

func openUowTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&analysisDomain.ExtractedValues{}, &riskDomain.Risk{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestGormUoW_RollsBackOnError(t *testing.T) {
	db := openUowTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.ExtractedValues.Create(ctx, &analysisDomain.ExtractedValues{
			CustomerName: "Acme Industries",
			LeadID:       "LEAD-AAAA1111",
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	var count int64
	db.Model(&analysisDomain.ExtractedValues{}).Count(&count)
	if count != 0 {
		t.Fatalf("rollback left %d rows", count)
	}
}

func TestGormUoW_CommitsAcrossRepos(t *testing.T) {
	db := openUowTestDB(t)
	u := NewGormUoW(db)
	ctx := context.Background()

	err := u.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.ExtractedValues.Create(ctx, &analysisDomain.ExtractedValues{
			CustomerName: "Acme Industries",
			LeadID:       "LEAD-AAAA1111",
		}); err != nil {
			return err
		}
		return r.Risks.Create(ctx, &riskDomain.Risk{
			CustomerName: "Acme Industries",
			LeadID:       "LEAD-AAAA1111",
		})
	})
	if err != nil {
		t.Fatalf("WithinTx: %v", err)
	}

	var evCount, riskCount int64
	db.Model(&analysisDomain.ExtractedValues{}).Count(&evCount)
	db.Model(&riskDomain.Risk{}).Count(&riskCount)
	if evCount != 1 || riskCount != 1 {
		t.Fatalf("counts = %d / %d", evCount, riskCount)
	}
}
