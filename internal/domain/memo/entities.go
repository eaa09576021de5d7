package memo

import (
	"errors"
	"time"

	"gorm.io/datatypes"

	"bfsi-los-backend/internal/domain/borrower"
	"bfsi-los-backend/internal/domain/summary"
)

var (
	ErrNotFound    = errors.New("memo not found")
	ErrNotEligible = errors.New("borrower has no approved QC record")
	ErrNoSummary   = errors.New("no matching summary for borrower")
)

type Status string

const (
	StatusDraft    Status = "Draft"
	StatusApproved Status = "Approved"
	StatusDeclined Status = "Declined"
)

// Memo is a point-in-time copy of the matching Summary taken at creation.
// Later edits to the summary do not flow through.
type Memo struct {
	ID     uint64 `gorm:"primaryKey;column:id" json:"-"`
	MemoID string `gorm:"size:36;uniqueIndex:ux_memos_memo_id" json:"memo_id"`

	CustomerName string `gorm:"size:255" json:"customer_name"`
	LeadID       string `gorm:"size:32;index" json:"lead_id"`
	LoanType     string `gorm:"size:64" json:"loan_type"`
	CreatedBy    string `gorm:"size:64" json:"created_by"`
	Status       Status `gorm:"size:16;default:'Draft'" json:"status"`

	LoanPurposeTable string `gorm:"type:text" json:"loan_purpose_table"`
	ExecutiveSummary string `gorm:"type:text" json:"executive_summary"`

	FinancialSummaryAndRatios datatypes.JSONType[map[string][]string]     `json:"financial_summary_and_ratios"`
	LoanPurpose               datatypes.JSONType[[]string]                `json:"loan_purpose"`
	SWOTAnalysis              datatypes.JSONType[summary.SWOT]            `json:"swot_analysis"`
	SecurityOffered           datatypes.JSONType[summary.SecurityOffered] `json:"security_offered"`
	Recommendation            datatypes.JSONType[[]string]                `json:"recommendation"`

	SummaryHighlights string                       `gorm:"type:text" json:"summary_highlights,omitempty"`
	Comments          string                       `gorm:"type:text" json:"comments,omitempty"`
	Attachments       datatypes.JSONType[[]string] `json:"attachments,omitempty"`

	CreatedAt   time.Time `gorm:"autoCreateTime" json:"date"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

func (Memo) TableName() string { return "memos" }

func (m *Memo) Key() borrower.Key {
	return borrower.NewKey(m.CustomerName, m.LeadID)
}
