package dashboard

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

var ErrNotFound = errors.New("dashboard snapshot not found")

type TopCard struct {
	Value  float64 `json:"value"`
	Change float64 `json:"change"`
}

type TopCards struct {
	TotalDisbursement     TopCard `json:"total_disbursement"`
	CompaniesInDraft      TopCard `json:"companies_in_draft"`
	FinancialCaptureStage TopCard `json:"financial_capture_stage"`
	RejectedCompanies     TopCard `json:"rejected_companies"`
}

type RecentApplication struct {
	Borrower  string  `json:"borrower"`
	LoanType  string  `json:"loan_type"`
	Amount    float64 `json:"amount"`
	RiskLevel string  `json:"risk_level"`
	Status    string  `json:"status"`
}

type ApplicationsSummary struct {
	InProgress int `json:"in_progress"`
	Rejected   int `json:"rejected"`
	Approved   int `json:"approved"`
}

// Snapshot is one pre-aggregated dashboard payload per year. The map
// blocks keep the original month/stage label keys.
type Snapshot struct {
	ID              uint64 `gorm:"primaryKey;column:id" json:"-"`
	Year            int    `gorm:"not null;uniqueIndex:ux_dashboard_year" json:"year"`
	TotalApplicants int    `json:"total_applicants"`

	TopCards              datatypes.JSONType[TopCards]            `json:"top_cards"`
	MonthlyDisbursement   datatypes.JSONType[map[string]float64]  `json:"monthly_disbursement"`
	MonthlyBreakdown      datatypes.JSONType[map[string]float64]  `json:"monthly_breakdown"`
	ApplicationPipeline   datatypes.JSONType[map[string]int]      `json:"application_pipeline"`
	PendingProgress       datatypes.JSONType[map[string]int]      `json:"pending_progress"`
	ApplicationsSummary   datatypes.JSONType[ApplicationsSummary] `json:"applications_summary"`
	RecentApplications    datatypes.JSONType[[]RecentApplication] `json:"recent_applications"`
	RiskRatio             datatypes.JSONType[map[string]float64]  `json:"risk_ratio"`
	RiskCategoryBreakdown datatypes.JSONType[map[string]int]      `json:"risk_category_breakdown"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"-"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"-"`
}

func (Snapshot) TableName() string { return "dashboard" }
