package finmetrics

// Ratio-health labels shown on the company views.
const (
	HealthGood     = "Good"
	HealthModerate = "Moderate"
	HealthPoor     = "Poor"
)

// BucketingStrategy maps a financial-strength subtotal to a health label.
type BucketingStrategy func(subtotal float64) string

// SubtotalBucketingV1 is the per-ratio score variant (scores run 0-5).
// SubtotalBucketingV2 is the percentage variant (subtotals run 0-100).
// The two call sites in the source system disagree on which to use; both
// are kept as named strategies until product reconciles them.
func SubtotalBucketingV1(subtotal float64) string {
	switch {
	case subtotal >= 3:
		return HealthGood
	case subtotal >= 2:
		return HealthModerate
	default:
		return HealthPoor
	}
}

func SubtotalBucketingV2(subtotal float64) string {
	switch {
	case subtotal > 40:
		return HealthGood
	case subtotal > 30:
		return HealthModerate
	default:
		return HealthPoor
	}
}

// HealthColor maps a health label to the cell color used by the ratio
// table in the dashboard.
func HealthColor(health string) string {
	switch health {
	case HealthGood:
		return "green"
	case HealthModerate:
		return "orange"
	default:
		return "red"
	}
}
