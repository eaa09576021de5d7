package finmetrics

// Balance-sheet item names emitted by the extraction pipeline.
const (
	ItemTotalAssets           = "Total assets"
	ItemTotalNonCurrentLiab   = "Total non-current liabilities"
	ItemTotalCurrentLiab      = "Total current liabilities"
	ItemRevenueFromOperations = "Revenue from operations"
)

// NetWorth computes total assets minus total liabilities using the latest
// year carrying a value for each item. Missing inputs count as 0, so a
// record with no balance sheet at all yields 0-(0+0)=0. That imprecision
// is long-standing upstream behavior and is pinned by tests.
func NetWorth(items map[string]YearlyItem) Value {
	assets := latest(items, ItemTotalAssets)
	ncl := latest(items, ItemTotalNonCurrentLiab)
	cl := latest(items, ItemTotalCurrentLiab)

	nw := assets.Decimal().Sub(ncl.Decimal().Add(cl.Decimal()))
	f, _ := nw.Float64()
	return Num(f)
}

// latest returns the most recent valid year value for the named item, or
// an invalid Value when the item is absent or has no usable year.
func latest(items map[string]YearlyItem, name string) Value {
	it, ok := items[name]
	if !ok {
		return NA()
	}
	for _, v := range []Value{it.Value2025, it.Value2024, it.Value2023} {
		if v.Valid {
			return v
		}
	}
	return NA()
}

// RevenueSeries pulls the yearly revenue row used as the overlay on the
// risk detail view. The map is keyed by fiscal year.
func RevenueSeries(items map[string]YearlyItem) map[string]Value {
	it, ok := items[ItemRevenueFromOperations]
	if !ok {
		return nil
	}
	return map[string]Value{
		"2023": it.Value2023,
		"2024": it.Value2024,
		"2025": it.Value2025,
	}
}
