package qc

import (
	"errors"
	"time"

	"bfsi-los-backend/internal/domain/borrower"
)

var ErrNotFound = errors.New("qc record not found")

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusDeclined Status = "Declined"
)

// Record is the document-review gate in front of memo generation. A lead
// may only proceed to a memo once its record is Approved.
type Record struct {
	ID           uint64 `gorm:"primaryKey;column:id" json:"-"`
	CustomerID   string `gorm:"size:64" json:"customer_id"`
	CustomerName string `gorm:"size:255;uniqueIndex:ux_cq_borrower" json:"customer_name"`
	LeadID       string `gorm:"size:32;uniqueIndex:ux_cq_borrower" json:"lead_id"`
	LoanType     string `gorm:"size:64" json:"loan_type"`
	Status       Status `gorm:"size:16;default:'Pending'" json:"status"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (Record) TableName() string { return "cq" }

func (r *Record) Key() borrower.Key {
	return borrower.NewKey(r.CustomerName, r.LeadID)
}
