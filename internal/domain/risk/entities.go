package risk

import (
	"errors"
	"time"

	"gorm.io/datatypes"

	"bfsi-los-backend/internal/domain/borrower"
	"bfsi-los-backend/internal/finmetrics"
)

var ErrNotFound = errors.New("risk record not found")

// YearScore carries one ratio's value/flag/score per fiscal year, matching
// the grader output shape.
type YearScore struct {
	Threshold string `json:"threshold"`
	Max       float64 `json:"max"`

	Value2023   finmetrics.Value `json:"value_2023"`
	RedFlag2023 bool             `json:"red_flag_2023"`
	Score2023   float64          `json:"score_2023"`
	Value2024   finmetrics.Value `json:"value_2024"`
	RedFlag2024 bool             `json:"red_flag_2024"`
	Score2024   float64          `json:"score_2024"`
	Value2025   finmetrics.Value `json:"value_2025"`
	RedFlag2025 bool             `json:"red_flag_2025"`
	Score2025   float64          `json:"score_2025"`
}

type FinancialStrength struct {
	PerRatioMax float64              `json:"per_ratio_max"`
	Scores      map[string]YearScore `json:"scores"`
	// Subtotals keyed by fiscal year string ("2023".."2025").
	Subtotals map[string]float64 `json:"subtotals"`
}

// LatestSubtotal returns the most recent year's subtotal, or false when no
// subtotal is recorded at all.
func (fs FinancialStrength) LatestSubtotal() (float64, bool) {
	for _, y := range []string{"2025", "2024", "2023"} {
		if v, ok := fs.Subtotals[y]; ok {
			return v, true
		}
	}
	return 0, false
}

type ComponentScores struct {
	Scores map[string]float64 `json:"scores"`
}

type Weights struct {
	FinancialStrength float64 `json:"financial_strength"`
	ManagementQuality float64 `json:"management_quality"`
	IndustryRisk      float64 `json:"industry_risk"`
}

type Risk struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	CustomerName string `gorm:"size:255;not null;uniqueIndex:ux_risk_borrower" json:"customer_name"`
	LeadID       string `gorm:"size:32;not null;uniqueIndex:ux_risk_borrower" json:"lead_id"`

	Weights           datatypes.JSONType[Weights]             `json:"weights"`
	FinancialStrength datatypes.JSONType[FinancialStrength]   `json:"financial_strength"`
	ManagementQuality datatypes.JSONType[ComponentScores]     `json:"management_quality"`
	IndustryRisk      datatypes.JSONType[ComponentScores]     `json:"industry_risk"`
	TotalScore        datatypes.JSONType[map[string]float64]  `json:"total_score"`
	RiskBucket        datatypes.JSONType[map[string]string]   `json:"risk_bucket"`
	RedFlags          datatypes.JSONType[map[string][]string] `json:"red_flags"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Risk) TableName() string { return "risk" }

func (r *Risk) Key() borrower.Key {
	return borrower.NewKey(r.CustomerName, r.LeadID)
}

// LatestBucket picks the most recent year's risk bucket label.
func (r *Risk) LatestBucket() string {
	m := r.RiskBucket.Data()
	for _, y := range []string{"2025", "2024", "2023"} {
		if v, ok := m[y]; ok && v != "" {
			return v
		}
	}
	return ""
}
