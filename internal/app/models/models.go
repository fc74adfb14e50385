package models

// FieldMap is the untyped key/value record exchanged at the API boundary.
// Create and update endpoints for the permanencia service records accept this
// shape directly; the validation rulesets perform the schema role before any
// row is written.
type FieldMap map[string]any

// Get returns the value for key, or nil when absent.
func (m FieldMap) Get(key string) any {
	if m == nil {
		return nil
	}
	return m[key]
}

// GetString returns the string value for key, or "" when the value is absent
// or not a string.
func (m FieldMap) GetString(key string) string {
	if s, ok := m.Get(key).(string); ok {
		return s
	}
	return ""
}

// Has reports whether key is present with a non-nil, non-empty value.
func (m FieldMap) Has(key string) bool {
	v, ok := m[key]
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return false
	}
	return true
}

// Copy returns a shallow copy of the map.
func (m FieldMap) Copy() FieldMap {
	out := make(FieldMap, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
