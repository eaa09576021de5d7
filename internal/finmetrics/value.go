package finmetrics

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"
)

// Value is the single optional-number representation used across the
// calculator. Upstream extraction emits numbers, nulls and junk strings
// ("null", "N/A") interchangeably; everything non-numeric decodes to an
// invalid Value, and invalid renders back as "N/A".
type Value struct {
	Num   float64
	Valid bool
}

func Num(f float64) Value { return Value{Num: f, Valid: true} }

func NA() Value { return Value{} }

func (v Value) Or(f float64) float64 {
	if v.Valid {
		return v.Num
	}
	return f
}

func (v Value) Decimal() decimal.Decimal {
	if !v.Valid {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v.Num)
}

func (v Value) MarshalJSON() ([]byte, error) {
	if !v.Valid {
		return []byte(`"N/A"`), nil
	}
	return []byte(strconv.FormatFloat(v.Num, 'f', -1, 64)), nil
}

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*v = Value{}
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			// "null", "N/A", "-" and friends
			*v = Value{}
			return nil
		}
		*v = Value{Num: f, Valid: true}
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return err
	}
	*v = Value{Num: f, Valid: true}
	return nil
}
