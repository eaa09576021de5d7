package summary

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"

	"bfsi-los-backend/internal/domain/borrower"
)

var ErrNotFound = errors.New("summary not found")

type SWOT struct {
	Strengths     []string `json:"Strengths"`
	Weaknesses    []string `json:"Weaknesses"`
	Opportunities []string `json:"Opportunities"`
	Threats       []string `json:"Threats"`
}

type SecurityOffered struct {
	PrimarySecurity    []string `json:"primary_security"`
	CollateralSecurity []string `json:"collateral_security"`
	PersonalGuarantees []string `json:"personal_guarantees"`
}

// Summary is the narrative output of the analysis pipeline. The loan_id
// column name is historical; it holds the same lead reference the other
// analysis tables call lead_id.
type Summary struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	CustomerName string `gorm:"size:255;uniqueIndex:ux_summaries_borrower" json:"customer_name"`
	LoanID       string `gorm:"column:loan_id;size:32;uniqueIndex:ux_summaries_borrower" json:"loan_id"`

	FinancialSummary string `gorm:"type:text" json:"financial_summary"`
	ExecutiveSummary string `gorm:"type:text" json:"executive_summary"`

	// The pipeline is loose about these shapes (single string, array or
	// keyed object), so they are stored raw and normalized when a memo
	// snapshots them.
	FinancialSummaryAndRatios datatypes.JSONType[map[string]json.RawMessage] `json:"financial_summary_and_ratios"`
	LoanPurpose               datatypes.JSON                                 `json:"loan_purpose"`
	SWOTAnalysis              datatypes.JSONType[SWOT]                       `json:"swot_analysis"`
	SecurityOffered           datatypes.JSONType[SecurityOffered]            `json:"security_offered"`
	Recommendation            datatypes.JSON                                 `json:"recommendation"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Summary) TableName() string { return "summaries" }

func (s *Summary) Key() borrower.Key {
	return borrower.NewKey(s.CustomerName, s.LoanID)
}
