package provider

import "strconv"

// ExtractNumber normalizes a numeric value from the feed's loose Details map.
//
// Hockey feeds send penalty durations as flat numbers, football feeds wrap
// them in objects like {"total": 10, "value": 10}. This handles both.
//
// Returns the scalar float64 value, and ok=false if not extractable.
func ExtractNumber(val interface{}) (float64, bool) {
	if val == nil {
		return 0, false
	}

	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f, true
		}
		return 0, false
	case map[string]interface{}:
		// Wrapped objects: try "total", "value", "minutes"
		for _, key := range []string{"total", "value", "minutes"} {
			if inner, exists := v[key]; exists && inner != nil {
				return ExtractNumber(inner)
			}
		}
		return 0, false
	default:
		return 0, false
	}
}
