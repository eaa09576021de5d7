package finmetrics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeStatements_SplitsBySource(t *testing.T) {
	items := map[string]YearlyItem{
		"Total assets":            {Value2024: Num(900), Value2025: Num(1000), Source: SourceBalanceSheet, Unit: "₹ crore"},
		"Revenue from operations": {Value2024: Num(400), Value2025: Num(500), Source: SourceProfitLoss},
		"Payment of lease liabilities": {Value2025: Num(20), Source: SourceCashFlow},
		"Unknown item":            {Value2025: Num(1), Source: "other"},
	}
	s := ShapeStatements(items)

	require.Len(t, s.BalanceSheet, 1)
	require.Len(t, s.ProfitLoss, 1)
	require.Len(t, s.CashFlow, 1)

	assert.Equal(t, "Total assets", s.BalanceSheet[0].Item)
	assert.Equal(t, Num(1000), s.BalanceSheet[0].FY2025)
	assert.Equal(t, "₹ crore", s.BalanceSheet[0].Unit)
	assert.Equal(t, "Revenue from operations", s.ProfitLoss[0].Item)
}

func TestShapeStatements_StableOrder(t *testing.T) {
	items := map[string]YearlyItem{
		"Trade payables":   {Value2025: Num(1), Source: SourceBalanceSheet},
		"Inventories":      {Value2025: Num(2), Source: SourceBalanceSheet},
		"Total assets":     {Value2025: Num(3), Source: SourceBalanceSheet},
	}
	s := ShapeStatements(items)
	require.Len(t, s.BalanceSheet, 3)
	assert.Equal(t, "Inventories", s.BalanceSheet[0].Item)
	assert.Equal(t, "Total assets", s.BalanceSheet[1].Item)
	assert.Equal(t, "Trade payables", s.BalanceSheet[2].Item)
}

func TestStatementRow_MissingValueRendersNA(t *testing.T) {
	row := StatementRow{Item: "Total assets", FY2025: NA(), FY2024: Num(12.5)}
	b, err := json.Marshal(row)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"FY2025":"N/A"`)
	assert.Contains(t, string(b), `"FY2024":12.5`)
}

func TestYearRange(t *testing.T) {
	items := map[string]YearlyItem{
		"Total assets": {Value2023: Num(1), Value2025: Num(2)},
	}
	assert.Equal(t, "2023-2025", YearRange(items))
	assert.Equal(t, "", YearRange(map[string]YearlyItem{}))

	only2024 := map[string]YearlyItem{"Total assets": {Value2024: Num(1)}}
	assert.Equal(t, "2024-2024", YearRange(only2024))
}

func TestValue_UnmarshalTolerance(t *testing.T) {
	var it YearlyItem
	raw := `{"value_2023": 10.5, "value_2024": "null", "value_2025": null, "source": "bs", "unit": ""}`
	require.NoError(t, json.Unmarshal([]byte(raw), &it))
	assert.Equal(t, Num(10.5), it.Value2023)
	assert.False(t, it.Value2024.Valid)
	assert.False(t, it.Value2025.Valid)

	// numeric strings still parse
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`"42"`), &v))
	assert.Equal(t, Num(42), v)
}
