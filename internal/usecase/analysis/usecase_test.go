package analysis

import (
	"context"
	"errors"
	"testing"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"bfsi-los-backend/internal/domain/borrower"
	domain "bfsi-los-backend/internal/domain/analysis"
	riskDomain "bfsi-los-backend/internal/domain/risk"
	summaryDomain "bfsi-los-backend/internal/domain/summary"
	"bfsi-los-backend/internal/finmetrics"
)

// ----- test doubles -----

type mockExtracted struct {
	GetByIDFn func(ctx context.Context, id uint64) (*domain.ExtractedValues, error)
	ListFn    func(ctx context.Context) ([]domain.ExtractedValues, error)
}

func (m *mockExtracted) Create(ctx context.Context, e *domain.ExtractedValues) error { return nil }
func (m *mockExtracted) GetByID(ctx context.Context, id uint64) (*domain.ExtractedValues, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockExtracted) GetByKey(ctx context.Context, key borrower.Key) (*domain.ExtractedValues, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockExtracted) List(ctx context.Context) ([]domain.ExtractedValues, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

type mockRatios struct {
	GetByKeyFn func(ctx context.Context, key borrower.Key) (*domain.Ratios, error)
}

func (m *mockRatios) Create(ctx context.Context, r *domain.Ratios) error { return nil }
func (m *mockRatios) GetByKey(ctx context.Context, key borrower.Key) (*domain.Ratios, error) {
	if m.GetByKeyFn != nil {
		return m.GetByKeyFn(ctx, key)
	}
	return nil, gorm.ErrRecordNotFound
}

type mockRisks struct {
	GetByKeyFn func(ctx context.Context, key borrower.Key) (*riskDomain.Risk, error)
}

func (m *mockRisks) Create(ctx context.Context, r *riskDomain.Risk) error { return nil }
func (m *mockRisks) GetByID(ctx context.Context, id uint64) (*riskDomain.Risk, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRisks) GetByKey(ctx context.Context, key borrower.Key) (*riskDomain.Risk, error) {
	if m.GetByKeyFn != nil {
		return m.GetByKeyFn(ctx, key)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRisks) List(ctx context.Context) ([]riskDomain.Risk, error) { return nil, nil }

type mockSummaries struct {
	GetByKeyFn func(ctx context.Context, key borrower.Key) (*summaryDomain.Summary, error)
}

func (m *mockSummaries) Create(ctx context.Context, s *summaryDomain.Summary) error { return nil }
func (m *mockSummaries) GetByID(ctx context.Context, id uint64) (*summaryDomain.Summary, error) {
	return nil, gorm.ErrRecordNotFound
}
func (m *mockSummaries) GetByKey(ctx context.Context, key borrower.Key) (*summaryDomain.Summary, error) {
	if m.GetByKeyFn != nil {
		return m.GetByKeyFn(ctx, key)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockSummaries) List(ctx context.Context) ([]summaryDomain.Summary, error) { return nil, nil }
func (m *mockSummaries) ListByLeadID(ctx context.Context, leadID string) ([]summaryDomain.Summary, error) {
	return nil, nil
}

// ----- fixtures -----

func acmeExtracted() *domain.ExtractedValues {
	return &domain.ExtractedValues{
		ID:           1,
		CustomerName: "Acme Industries",
		LeadID:       "LEAD-AAAA1111",
		Data: datatypes.NewJSONType(map[string]finmetrics.YearlyItem{
			finmetrics.ItemTotalAssets: {
				Value2025: finmetrics.Num(1000),
				Source:    finmetrics.SourceBalanceSheet,
			},
			finmetrics.ItemTotalNonCurrentLiab: {
				Value2025: finmetrics.Num(300),
				Source:    finmetrics.SourceBalanceSheet,
			},
			finmetrics.ItemTotalCurrentLiab: {
				Value2025: finmetrics.Num(200),
				Source:    finmetrics.SourceBalanceSheet,
			},
			finmetrics.ItemRevenueFromOperations: {
				Value2023: finmetrics.Num(700),
				Value2024: finmetrics.Num(800),
				Value2025: finmetrics.Num(900),
				Source:    finmetrics.SourceProfitLoss,
			},
		}),
	}
}

// ----- tests -----

func TestList_MergesSecondaries(t *testing.T) {
	uc := NewUsecase(
		&mockExtracted{ListFn: func(ctx context.Context) ([]domain.ExtractedValues, error) {
			return []domain.ExtractedValues{*acmeExtracted()}, nil
		}},
		&mockRatios{GetByKeyFn: func(ctx context.Context, key borrower.Key) (*domain.Ratios, error) {
			return &domain.Ratios{
				CustomerName: key.CustomerName,
				LeadID:       key.LeadID,
				Ratios: datatypes.NewJSONType(map[string]domain.RatioDetail{
					domain.RatioDSCR:       {Value: 1.8, Threshold: ">1.25"},
					domain.RatioDebtEquity: {Value: 0.9, Threshold: "<2"},
				}),
			}, nil
		}},
		&mockRisks{GetByKeyFn: func(ctx context.Context, key borrower.Key) (*riskDomain.Risk, error) {
			return &riskDomain.Risk{
				CustomerName: key.CustomerName,
				LeadID:       key.LeadID,
				FinancialStrength: datatypes.NewJSONType(riskDomain.FinancialStrength{
					Subtotals: map[string]float64{"2025": 42},
				}),
			}, nil
		}},
		&mockSummaries{},
	)

	out, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("rows = %d, want 1", len(out))
	}
	row := out[0]
	if !row.NetWorth.Valid || row.NetWorth.Num != 500 {
		t.Fatalf("net worth = %+v, want 500", row.NetWorth)
	}
	if row.YearRange != "2023-2025" {
		t.Fatalf("year range = %q", row.YearRange)
	}
	if row.DSCR.Num != 1.8 || row.DebtToEquity.Num != 0.9 {
		t.Fatalf("ratios = %+v / %+v", row.DSCR, row.DebtToEquity)
	}
	// subtotal 42 is above the >40 cut
	if row.RatioHealth != finmetrics.HealthGood {
		t.Fatalf("ratio health = %q, want %q", row.RatioHealth, finmetrics.HealthGood)
	}
}

func TestList_MissingSecondariesYieldPartialRow(t *testing.T) {
	uc := NewUsecase(
		&mockExtracted{ListFn: func(ctx context.Context) ([]domain.ExtractedValues, error) {
			return []domain.ExtractedValues{*acmeExtracted()}, nil
		}},
		&mockRatios{}, &mockRisks{}, &mockSummaries{},
	)

	out, err := uc.List(context.Background())
	if err != nil {
		t.Fatalf("List err: %v", err)
	}
	row := out[0]
	if row.DSCR.Valid || row.DebtToEquity.Valid {
		t.Fatalf("expected N/A ratios, got %+v / %+v", row.DSCR, row.DebtToEquity)
	}
	if row.RatioHealth != "" {
		t.Fatalf("expected empty ratio health, got %q", row.RatioHealth)
	}
}

func TestGetDetail_NotFound(t *testing.T) {
	uc := NewUsecase(&mockExtracted{}, &mockRatios{}, &mockRisks{}, &mockSummaries{})

	_, err := uc.GetDetail(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestGetDetail_ShapesStatementsAndAttachesSummary(t *testing.T) {
	ev := acmeExtracted()
	uc := NewUsecase(
		&mockExtracted{GetByIDFn: func(ctx context.Context, id uint64) (*domain.ExtractedValues, error) {
			if id != 1 {
				return nil, gorm.ErrRecordNotFound
			}
			return ev, nil
		}},
		&mockRatios{}, &mockRisks{},
		&mockSummaries{GetByKeyFn: func(ctx context.Context, key borrower.Key) (*summaryDomain.Summary, error) {
			if key != ev.Key() {
				t.Fatalf("summary looked up with wrong key: %+v", key)
			}
			return &summaryDomain.Summary{CustomerName: key.CustomerName, LoanID: key.LeadID, ExecutiveSummary: "solid"}, nil
		}},
	)

	dto, err := uc.GetDetail(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetDetail err: %v", err)
	}
	if len(dto.BalanceSheet) != 3 {
		t.Fatalf("balance sheet rows = %d, want 3", len(dto.BalanceSheet))
	}
	if len(dto.ProfitLoss) != 1 {
		t.Fatalf("profit loss rows = %d, want 1", len(dto.ProfitLoss))
	}
	if len(dto.CashFlow) != 0 {
		t.Fatalf("cash flow rows = %d, want 0", len(dto.CashFlow))
	}
	if dto.Summary == nil || dto.Summary.ExecutiveSummary != "solid" {
		t.Fatalf("summary section = %+v", dto.Summary)
	}
}

func TestGetRatioTable_ColorsFromYearlyScores(t *testing.T) {
	ev := acmeExtracted()
	uc := NewUsecase(
		&mockExtracted{GetByIDFn: func(ctx context.Context, id uint64) (*domain.ExtractedValues, error) {
			return ev, nil
		}},
		&mockRatios{},
		&mockRisks{GetByKeyFn: func(ctx context.Context, key borrower.Key) (*riskDomain.Risk, error) {
			return &riskDomain.Risk{
				CustomerName: key.CustomerName,
				LeadID:       key.LeadID,
				FinancialStrength: datatypes.NewJSONType(riskDomain.FinancialStrength{
					Scores: map[string]riskDomain.YearScore{
						domain.RatioDSCR: {
							Threshold: ">1.25",
							Value2023: finmetrics.Num(0.8), Score2023: 1,
							Value2024: finmetrics.Num(1.4), Score2024: 2,
							Value2025: finmetrics.Num(2.1), Score2025: 4,
						},
					},
				}),
			}, nil
		}},
		&mockSummaries{},
	)

	dto, err := uc.GetRatioTable(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetRatioTable err: %v", err)
	}
	if len(dto.Ratios) != 1 {
		t.Fatalf("rows = %d, want 1", len(dto.Ratios))
	}
	cells := dto.Ratios[0].Years
	want := []string{"red", "orange", "green"}
	for i, color := range want {
		if cells[i].Color != color {
			t.Fatalf("year %s color = %q, want %q", cells[i].Year, cells[i].Color, color)
		}
	}
}

func TestGetRatioTable_NoGradingYieldsEmptyTable(t *testing.T) {
	uc := NewUsecase(
		&mockExtracted{GetByIDFn: func(ctx context.Context, id uint64) (*domain.ExtractedValues, error) {
			return acmeExtracted(), nil
		}},
		&mockRatios{}, &mockRisks{}, &mockSummaries{},
	)

	dto, err := uc.GetRatioTable(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetRatioTable err: %v", err)
	}
	if len(dto.Ratios) != 0 {
		t.Fatalf("rows = %d, want 0", len(dto.Ratios))
	}
}
