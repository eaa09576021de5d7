package finmetrics

import (
	"encoding/json"
	"sort"
	"strings"
)

// NormalizeToArray coerces the loosely-typed list fields coming out of
// summaries (loan_purpose, recommendation) into an ordered []string.
// Accepted shapes: JSON array of strings, a single string, or an
// object whose values are strings (ordered by key). Anything else yields
// an empty slice, never nil panic paths.
func NormalizeToArray(raw json.RawMessage) []string {
	raw = json.RawMessage(strings.TrimSpace(string(raw)))
	if len(raw) == 0 || string(raw) == "null" {
		return []string{}
	}

	switch raw[0] {
	case '[':
		var arr []string
		if err := json.Unmarshal(raw, &arr); err == nil {
			return arr
		}
		// array of non-strings: stringify each element
		var anyArr []any
		if err := json.Unmarshal(raw, &anyArr); err == nil {
			out := make([]string, 0, len(anyArr))
			for _, v := range anyArr {
				if s, ok := v.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return []string{s}
		}
	case '{':
		var obj map[string]string
		if err := json.Unmarshal(raw, &obj); err == nil {
			keys := make([]string, 0, len(obj))
			for k := range obj {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			out := make([]string, 0, len(keys))
			for _, k := range keys {
				out = append(out, obj[k])
			}
			return out
		}
	}
	return []string{}
}
