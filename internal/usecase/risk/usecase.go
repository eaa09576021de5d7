package risk

import (
	"context"
	"errors"

	"gorm.io/gorm"

	analysisDomain "bfsi-los-backend/internal/domain/analysis"
	domain "bfsi-los-backend/internal/domain/risk"
	qcDomain "bfsi-los-backend/internal/domain/qc"
	"bfsi-los-backend/internal/finmetrics"
)

// ErrNoExtractedValues is returned by GetDetail when the graded borrower
// has no extracted_values record to anchor the detail view on. The text
// is part of the API contract.
var ErrNoExtractedValues = errors.New("Matching extracted_values record not found")

type Usecase struct {
	risks     domain.Repository
	extracted analysisDomain.ExtractedValuesRepository
	qc        qcDomain.Repository
}

func NewUsecase(risks domain.Repository, extracted analysisDomain.ExtractedValuesRepository, qc qcDomain.Repository) *Usecase {
	return &Usecase{risks: risks, extracted: extracted, qc: qc}
}

type RowDTO struct {
	ID           uint64             `json:"_id,string"`
	CustomerName string             `json:"customer_name"`
	LeadID       string             `json:"lead_id"`
	RiskBucket   string             `json:"risk_bucket"`
	TotalScore   map[string]float64 `json:"total_score"`
}

type DetailDTO struct {
	ID           uint64 `json:"_id,string"`
	CustomerName string `json:"customer_name"`
	LeadID       string `json:"lead_id"`

	Weights           domain.Weights            `json:"weights"`
	FinancialStrength domain.FinancialStrength  `json:"financial_strength"`
	ManagementQuality domain.ComponentScores    `json:"management_quality"`
	IndustryRisk      domain.ComponentScores    `json:"industry_risk"`
	TotalScore        map[string]float64        `json:"total_score"`
	RiskBucket        map[string]string         `json:"risk_bucket"`
	RedFlags          map[string][]string       `json:"red_flags"`
	Revenue           map[string]finmetrics.Value `json:"revenue"`
}

// List returns the graded borrowers, optionally narrowed to those whose
// quality-check record is approved.
func (u *Usecase) List(ctx context.Context, qcApprovedOnly bool) ([]RowDTO, error) {
	records, err := u.risks.List(ctx)
	if err != nil {
		return nil, err
	}

	var approved map[string]struct{}
	if qcApprovedOnly {
		qcs, err := u.qc.ListByStatus(ctx, qcDomain.StatusApproved)
		if err != nil {
			return nil, err
		}
		approved = make(map[string]struct{}, len(qcs))
		for i := range qcs {
			approved[qcs[i].Key().String()] = struct{}{}
		}
	}

	out := make([]RowDTO, 0, len(records))
	for i := range records {
		r := &records[i]
		if approved != nil {
			if _, ok := approved[r.Key().String()]; !ok {
				continue
			}
		}
		out = append(out, RowDTO{
			ID:           r.ID,
			CustomerName: r.CustomerName,
			LeadID:       r.LeadID,
			RiskBucket:   r.LatestBucket(),
			TotalScore:   r.TotalScore.Data(),
		})
	}
	return out, nil
}

// GetDetail returns the full grading for one record, overlaid with the
// borrower's revenue series. A risk row whose borrower has no
// extracted_values record is unanchorable and reported as such.
func (u *Usecase) GetDetail(ctx context.Context, id uint64) (*DetailDTO, error) {
	r, err := u.risks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	ev, err := u.extracted.GetByKey(ctx, r.Key())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoExtractedValues
		}
		return nil, err
	}

	return &DetailDTO{
		ID:                r.ID,
		CustomerName:      r.CustomerName,
		LeadID:            r.LeadID,
		Weights:           r.Weights.Data(),
		FinancialStrength: r.FinancialStrength.Data(),
		ManagementQuality: r.ManagementQuality.Data(),
		IndustryRisk:      r.IndustryRisk.Data(),
		TotalScore:        r.TotalScore.Data(),
		RiskBucket:        r.RiskBucket.Data(),
		RedFlags:          r.RedFlags.Data(),
		Revenue:           finmetrics.RevenueSeries(ev.Items()),
	}, nil
}
