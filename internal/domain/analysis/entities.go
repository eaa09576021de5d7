package analysis

import (
	"errors"
	"time"

	"gorm.io/datatypes"

	"bfsi-los-backend/internal/domain/borrower"
	"bfsi-los-backend/internal/finmetrics"
)

var (
	ErrNotFound       = errors.New("analysis not found")
	ErrRatiosNotFound = errors.New("ratios not found")
)

// ExtractedValues holds the per-company statement line items pulled from
// uploaded financials. One record per borrower key.
type ExtractedValues struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	CustomerName string `gorm:"size:255;not null;uniqueIndex:ux_extracted_values_borrower" json:"customer_name"`
	LeadID       string `gorm:"size:32;not null;uniqueIndex:ux_extracted_values_borrower" json:"lead_id"`

	Data datatypes.JSONType[map[string]finmetrics.YearlyItem] `json:"data"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ExtractedValues) TableName() string { return "extracted_values" }

func (e *ExtractedValues) Key() borrower.Key {
	return borrower.NewKey(e.CustomerName, e.LeadID)
}

// Items unwraps the JSON column; never nil.
func (e *ExtractedValues) Items() map[string]finmetrics.YearlyItem {
	m := e.Data.Data()
	if m == nil {
		return map[string]finmetrics.YearlyItem{}
	}
	return m
}

// RatioDetail is one derived ratio with its threshold verdict.
type RatioDetail struct {
	Value     float64 `json:"value"`
	Threshold string  `json:"threshold"`
	RedFlag   bool    `json:"red_flag"`
}

// Canonical ratio names produced by the pipeline.
const (
	RatioDSCR         = "DSCR"
	RatioDebtEquity   = "Debt/Equity"
	RatioPATMargin    = "PAT Margin"
	RatioCurrentRatio = "Current Ratio"
)

// Ratios is the per-borrower derived ratio set.
type Ratios struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	CustomerName string `gorm:"size:255;not null;uniqueIndex:ux_ratios_borrower" json:"customer_name"`
	LeadID       string `gorm:"size:32;not null;uniqueIndex:ux_ratios_borrower" json:"lead_id"`

	Ratios datatypes.JSONType[map[string]RatioDetail] `json:"ratios"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Ratios) TableName() string { return "ratios" }

func (r *Ratios) Key() borrower.Key {
	return borrower.NewKey(r.CustomerName, r.LeadID)
}

func (r *Ratios) Detail(name string) (RatioDetail, bool) {
	m := r.Ratios.Data()
	if m == nil {
		return RatioDetail{}, false
	}
	d, ok := m[name]
	return d, ok
}
