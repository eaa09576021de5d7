package lead

import (
	"errors"
	"time"

	"gorm.io/datatypes"
)

var ErrNotFound = errors.New("lead not found")

type Status string

const (
	StatusDraft       Status = "Draft"
	StatusSubmitted   Status = "Submitted"
	StatusUnderReview Status = "Under Review"
	StatusApproved    Status = "Approved"
	StatusRejected    Status = "Rejected"
)

// AMLStatus mirrors the screening state machine; see internal/aml.
type AMLStatus string

const (
	AMLIdle      AMLStatus = "idle"
	AMLInitiated AMLStatus = "initiated"
	AMLPending   AMLStatus = "pending"
	AMLDone      AMLStatus = "done"
	AMLFailed    AMLStatus = "failed"
)

type AMLTarget string

const (
	AMLTargetCompany  AMLTarget = "company"
	AMLTargetDirector AMLTarget = "director"
)

type Address struct {
	Line1   string `json:"line1"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
}

type Director struct {
	DIN       string `json:"din"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// StoredFile keeps uploads inline, as the source system did. FileData is
// base64 inside the JSON column.
type StoredFile struct {
	FileName string `json:"fileName"`
	FileType string `json:"fileType"`
	FileSize int64  `json:"fileSize"`
	FileData []byte `json:"fileData,omitempty"`
}

type Lead struct {
	ID      uint64 `gorm:"primaryKey;column:id" json:"-"`
	LeadRef string `gorm:"size:32;uniqueIndex:ux_leads_lead_ref" json:"lead_id"`

	CIN              string `gorm:"size:32" json:"cin"`
	RegistrationNo   string `gorm:"size:64" json:"registration_no"`
	BusinessName     string `gorm:"size:255;not null" json:"business_name"`
	IncorporatedDate string `gorm:"size:32" json:"incorporated_date"`

	ContactEmail    string                           `gorm:"size:255" json:"contact_email"`
	Address         datatypes.JSONType[Address]      `json:"address"`
	BusinessAddress string                           `gorm:"type:text" json:"business_address"`
	Directors       datatypes.JSONType[[]Director]   `json:"directors"`
	ContactPerson   string                           `gorm:"size:128" json:"contact_person"`
	ContactPhone    string                           `gorm:"size:32" json:"contact_phone"`
	Designation     string                           `gorm:"size:64" json:"designation"`

	LoanType   string  `gorm:"size:64;not null" json:"loan_type"`
	LoanAmount float64 `gorm:"type:decimal(18,2)" json:"loan_amount"`

	AMLCompanyStatus  AMLStatus `gorm:"size:16;default:'idle'" json:"aml_company_status"`
	AMLDirectorStatus AMLStatus `gorm:"size:16;default:'idle'" json:"aml_director_status"`

	Status         Status     `gorm:"size:16;default:'Draft';index:idx_leads_status" json:"status"`
	AnalysisStatus string     `gorm:"size:16" json:"analysis_status,omitempty"`
	AnalysisDate   *time.Time `json:"analysis_date,omitempty"`
	UserID         string     `gorm:"size:64;index" json:"user_id"`
	Notes          string     `gorm:"type:text" json:"notes"`

	FinancialDocuments datatypes.JSONType[[]StoredFile] `json:"financialDocuments"`
	Signature          datatypes.JSONType[*StoredFile]  `json:"signature"`

	CreatedDate time.Time `gorm:"autoCreateTime" json:"created_date"`
	LastUpdated time.Time `gorm:"autoUpdateTime" json:"last_updated"`
}

func (Lead) TableName() string { return "leads" }
