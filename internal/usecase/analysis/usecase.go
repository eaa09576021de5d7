// Package analysis assembles the company financial views: the primary
// extracted_values record is fetched by id, its borrower key drives
// secondary lookups on ratios, risk and summaries, and the derived
// metrics are computed on the way out. Missing secondaries degrade to
// partial responses; only a missing primary is an error.
package analysis

import (
	"context"
	"errors"
	"sort"

	"gorm.io/gorm"

	domain "bfsi-los-backend/internal/domain/analysis"
	riskDomain "bfsi-los-backend/internal/domain/risk"
	summaryDomain "bfsi-los-backend/internal/domain/summary"
	"bfsi-los-backend/internal/finmetrics"
)

type Usecase struct {
	extracted domain.ExtractedValuesRepository
	ratios    domain.RatiosRepository
	risks     riskDomain.Repository
	summaries summaryDomain.Repository
}

func NewUsecase(
	extracted domain.ExtractedValuesRepository,
	ratios domain.RatiosRepository,
	risks riskDomain.Repository,
	summaries summaryDomain.Repository,
) *Usecase {
	return &Usecase{extracted: extracted, ratios: ratios, risks: risks, summaries: summaries}
}

// CompanyOverviewDTO is one row of the companies list.
type CompanyOverviewDTO struct {
	ID           uint64           `json:"_id,string"`
	CompanyName  string           `json:"company_name"`
	LeadID       string           `json:"lead_id"`
	NetWorth     finmetrics.Value `json:"net_worth"`
	DSCR         finmetrics.Value `json:"dscr"`
	DebtToEquity finmetrics.Value `json:"debt_to_equity"`
	YearRange    string           `json:"year_range"`
	RatioHealth  string           `json:"ratio_health"`
}

// CompanyDetailDTO adds the shaped statements and narrative summary.
type CompanyDetailDTO struct {
	CompanyOverviewDTO
	BalanceSheet []finmetrics.StatementRow `json:"balance_sheet"`
	ProfitLoss   []finmetrics.StatementRow `json:"profit_loss"`
	CashFlow     []finmetrics.StatementRow `json:"cash_flow"`

	Summary *summaryDomain.Summary `json:"summary,omitempty"`
}

// RatioYearCell is one year's cell of the ratio analysis table.
type RatioYearCell struct {
	Year  string           `json:"year"`
	Value finmetrics.Value `json:"value"`
	Color string           `json:"color"`
}

type RatioRowDTO struct {
	Name      string          `json:"name"`
	Threshold string          `json:"threshold"`
	Years     []RatioYearCell `json:"years"`
}

type RatioTableDTO struct {
	CompanyName string        `json:"company_name"`
	LeadID      string        `json:"lead_id"`
	Ratios      []RatioRowDTO `json:"ratios"`
}

// List returns the overview rows for every analyzed company.
func (u *Usecase) List(ctx context.Context) ([]CompanyOverviewDTO, error) {
	records, err := u.extracted.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]CompanyOverviewDTO, 0, len(records))
	for i := range records {
		out = append(out, u.overview(ctx, &records[i]))
	}
	return out, nil
}

// GetDetail aggregates the full company view for one primary record.
func (u *Usecase) GetDetail(ctx context.Context, id uint64) (*CompanyDetailDTO, error) {
	ev, err := u.extracted.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	items := ev.Items()
	shaped := finmetrics.ShapeStatements(items)
	dto := &CompanyDetailDTO{
		CompanyOverviewDTO: u.overview(ctx, ev),
		BalanceSheet:       shaped.BalanceSheet,
		ProfitLoss:         shaped.ProfitLoss,
		CashFlow:           shaped.CashFlow,
	}

	// summary section is optional; its absence never aborts the response
	if s, err := u.summaries.GetByKey(ctx, ev.Key()); err == nil {
		dto.Summary = s
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return dto, nil
}

// GetRatioTable builds the per-year ratio table from the risk grader's
// yearly scores. Cell colors come from the per-ratio bucketing (V1:
// scores run 0-5 per ratio).
func (u *Usecase) GetRatioTable(ctx context.Context, id uint64) (*RatioTableDTO, error) {
	ev, err := u.extracted.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rk, err := u.risks.GetByKey(ctx, ev.Key())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// no risk grading yet: empty table, not an error
			return &RatioTableDTO{CompanyName: ev.CustomerName, LeadID: ev.LeadID, Ratios: []RatioRowDTO{}}, nil
		}
		return nil, err
	}

	fs := rk.FinancialStrength.Data()
	rows := make([]RatioRowDTO, 0, len(fs.Scores))
	for _, name := range sortedScoreNames(fs.Scores) {
		sc := fs.Scores[name]
		rows = append(rows, RatioRowDTO{
			Name:      name,
			Threshold: sc.Threshold,
			Years: []RatioYearCell{
				yearCell("2023", sc.Value2023, sc.Score2023),
				yearCell("2024", sc.Value2024, sc.Score2024),
				yearCell("2025", sc.Value2025, sc.Score2025),
			},
		})
	}
	return &RatioTableDTO{CompanyName: ev.CustomerName, LeadID: ev.LeadID, Ratios: rows}, nil
}

func yearCell(year string, v finmetrics.Value, score float64) RatioYearCell {
	return RatioYearCell{
		Year:  year,
		Value: v,
		Color: finmetrics.HealthColor(finmetrics.SubtotalBucketingV1(score)),
	}
}

// overview merges the secondary lookups behind one list row. Each missing
// secondary leaves its fields at their zero/neutral value.
func (u *Usecase) overview(ctx context.Context, ev *domain.ExtractedValues) CompanyOverviewDTO {
	items := ev.Items()
	dto := CompanyOverviewDTO{
		ID:          ev.ID,
		CompanyName: ev.CustomerName,
		LeadID:      ev.LeadID,
		NetWorth:    finmetrics.NetWorth(items),
		YearRange:   finmetrics.YearRange(items),
	}

	if rt, err := u.ratios.GetByKey(ctx, ev.Key()); err == nil {
		if d, ok := rt.Detail(domain.RatioDSCR); ok {
			dto.DSCR = finmetrics.Num(d.Value)
		}
		if d, ok := rt.Detail(domain.RatioDebtEquity); ok {
			dto.DebtToEquity = finmetrics.Num(d.Value)
		}
	}

	// health bucket from the latest financial-strength subtotal (V2:
	// subtotals are percentage-scale here)
	if rk, err := u.risks.GetByKey(ctx, ev.Key()); err == nil {
		if sub, ok := rk.FinancialStrength.Data().LatestSubtotal(); ok {
			dto.RatioHealth = finmetrics.SubtotalBucketingV2(sub)
		}
	}
	return dto
}

func sortedScoreNames(scores map[string]riskDomain.YearScore) []string {
	names := make([]string, 0, len(scores))
	for n := range scores {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
