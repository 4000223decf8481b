package theme

// DeepGet performs sequential key lookups through nested string-keyed maps.
// It returns the terminal value, or ok=false the moment any intermediate key
// is absent or an intermediate value is not itself a map.
func DeepGet(m map[string]any, keys ...string) (any, bool) {
	var current any = m
	for _, key := range keys {
		inner, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}
		current, ok = inner[key]
		if !ok {
			return nil, false
		}
	}
	return current, true
}
