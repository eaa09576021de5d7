package borrower

import "strings"

// Key identifies a borrower across the analysis collections. Records in
// extracted_values, ratios, risk and summaries all carry this pair; joins
// happen on the typed key, never on ad hoc string pairs.
type Key struct {
	CustomerName string
	LeadID       string
}

func NewKey(customerName, leadID string) Key {
	return Key{
		CustomerName: strings.TrimSpace(customerName),
		LeadID:       strings.TrimSpace(leadID),
	}
}

func (k Key) IsZero() bool { return k.CustomerName == "" && k.LeadID == "" }

func (k Key) String() string { return k.CustomerName + "/" + k.LeadID }
