package finmetrics

import (
	"sort"
	"strconv"
)

// Statement source tags carried on every extracted line item.
const (
	SourceBalanceSheet = "bs"
	SourceProfitLoss   = "pl"
	SourceCashFlow     = "cf"
)

// YearlyItem is one financial-statement line item with fixed-year values.
// The year columns match the extraction pipeline output.
type YearlyItem struct {
	Value2023 Value  `json:"value_2023"`
	Value2024 Value  `json:"value_2024"`
	Value2025 Value  `json:"value_2025"`
	Source    string `json:"source"`
	Unit      string `json:"unit"`
}

// StatementRow is a display row for one line item.
type StatementRow struct {
	Item   string `json:"item"`
	FY2023 Value  `json:"FY2023"`
	FY2024 Value  `json:"FY2024"`
	FY2025 Value  `json:"FY2025"`
	Unit   string `json:"unit,omitempty"`
}

// Statements groups the shaped rows by source statement.
type Statements struct {
	BalanceSheet []StatementRow `json:"balance_sheet"`
	ProfitLoss   []StatementRow `json:"profit_loss"`
	CashFlow     []StatementRow `json:"cash_flow"`
}

// ShapeStatements re-projects the flat item map into the three statement
// tables, filtering on the source discriminator. Rows are sorted by item
// name so output is stable regardless of map order.
func ShapeStatements(items map[string]YearlyItem) Statements {
	var out Statements
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		it := items[name]
		row := StatementRow{
			Item:   name,
			FY2023: it.Value2023,
			FY2024: it.Value2024,
			FY2025: it.Value2025,
			Unit:   it.Unit,
		}
		switch it.Source {
		case SourceBalanceSheet:
			out.BalanceSheet = append(out.BalanceSheet, row)
		case SourceProfitLoss:
			out.ProfitLoss = append(out.ProfitLoss, row)
		case SourceCashFlow:
			out.CashFlow = append(out.CashFlow, row)
		}
	}
	return out
}

// YearRange reports the covered fiscal years, e.g. "2023-2025". Empty data
// yields "".
func YearRange(items map[string]YearlyItem) string {
	lo, hi := 0, 0
	for _, it := range items {
		for year, v := range map[int]Value{2023: it.Value2023, 2024: it.Value2024, 2025: it.Value2025} {
			if !v.Valid {
				continue
			}
			if lo == 0 || year < lo {
				lo = year
			}
			if year > hi {
				hi = year
			}
		}
	}
	if lo == 0 {
		return ""
	}
	return strconv.Itoa(lo) + "-" + strconv.Itoa(hi)
}
