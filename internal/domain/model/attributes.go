package model

import (
	"encoding/json"
	"strconv"
)

// Attributes is the free-form attribute bag of an entity. Values arrive from JSON,
// so numbers are usually float64, but integer types are accepted too.
type Attributes map[string]interface{}

func (a Attributes) Has(key string) bool {
	_, ok := a[key]
	return ok
}

func (a Attributes) String(key string) string {
	s, _ := a[key].(string)
	return s
}

func (a Attributes) Bool(key string) bool {
	b, _ := a[key].(bool)
	return b
}

// Float returns the numeric value of key. Numeric strings are parsed as well.
func (a Attributes) Float(key string) (float64, bool) {
	return ToFloat(a[key])
}

// Strings returns a list attribute such as hvac_modes or options.
func (a Attributes) Strings(key string) []string {
	switch v := a[key].(type) {
	case []string:
		return v
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// SupportsFeature checks a bit of the supported_features bitmask.
func (a Attributes) SupportsFeature(feature int) bool {
	f, ok := a.Float("supported_features")
	if !ok {
		return false
	}
	return int(f)&feature != 0
}

func ToFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}
