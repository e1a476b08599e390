package schema

// Context is the key-value fact mapping one evaluation runs against.
// It is owned by the caller and supplied fresh per evaluation call:
// predicates read it, outcome actions may mutate it, and nodes never
// retain a reference past the call.
type Context map[string]any

// Get returns the value stored under key as type T, or def when the key
// is absent or holds a value of a different type. Predicates use it to
// stay total over arbitrary contexts instead of failing on missing keys.
func Get[T any](c Context, key string, def T) T {
	v, ok := c[key]
	if !ok {
		return def
	}
	t, ok := v.(T)
	if !ok {
		return def
	}
	return t
}

// GetNumber returns the value under key coerced to float64, or def when
// the key is absent or not numeric. Contexts built from Go literals carry
// int values while contexts decoded from JSON carry float64; numeric
// predicates should not care which.
func GetNumber(c Context, key string, def float64) float64 {
	switch v := c[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return def
	}
}
