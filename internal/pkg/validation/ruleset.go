package validation

import (
	"strconv"
	"strings"

	"github.com/davidrv/permanencia/internal/app/models"
)

// Result maps a field name to a human-readable error message. An empty
// result means the input passed every applicable rule.
type Result map[string]string

// Valid reports whether no rule failed.
func (r Result) Valid() bool {
	return len(r) == 0
}

// Rule is one declarative validation entry: a field, a predicate over its
// raw value, and the message recorded when the predicate fails. Optional
// rules are skipped when the field is absent or empty.
type Rule struct {
	Field    string
	Check    func(v any) bool
	Message  string
	Optional bool
}

// Ruleset is the full validation and normalization configuration for one
// entity: default values backfilled before validation, fields coerced from
// numeric strings, and the ordered rule list. Rules never short-circuit;
// every failure is accumulated so the caller can display all of them at
// once.
type Ruleset struct {
	// Defaults are applied during Normalize for fields that are absent or
	// empty. Defaulting lives here, next to the rules, so the two can never
	// diverge.
	Defaults models.FieldMap
	// IntFields are coerced from numeric strings to ints during Normalize.
	IntFields []string
	Rules     []Rule
}

// Normalize returns a copy of data with int coercions and defaults applied.
// The input map is never mutated.
func (rs *Ruleset) Normalize(data models.FieldMap) models.FieldMap {
	out := rs.Coerce(data)
	for field, value := range rs.Defaults {
		if !out.Has(field) {
			out[field] = value
		}
	}
	return out
}

// Coerce returns a copy of data with int coercions applied but no defaults
// backfilled. Partial update paths use it: an omitted field must stay
// omitted instead of reappearing with its default.
func (rs *Ruleset) Coerce(data models.FieldMap) models.FieldMap {
	out := data.Copy()
	for _, field := range rs.IntFields {
		if s, ok := out[field].(string); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
				out[field] = n
			}
		}
	}
	return out
}

// Validate runs every rule against data and returns the accumulated
// field→message map. It never panics and never returns an error: a failed
// cast inside a predicate is simply a failed rule.
func (rs *Ruleset) Validate(data models.FieldMap) Result {
	res := Result{}
	for _, rule := range rs.Rules {
		if rule.Optional && !data.Has(rule.Field) {
			continue
		}
		if _, already := res[rule.Field]; already {
			continue
		}
		if !rule.Check(data.Get(rule.Field)) {
			res[rule.Field] = rule.Message
		}
	}
	return res
}

// ValidatePartial validates only the fields present in data. Update paths
// use it so a partial payload is held to the same rules as a create without
// failing on everything it omits.
func (rs *Ruleset) ValidatePartial(data models.FieldMap) Result {
	res := Result{}
	for _, rule := range rs.Rules {
		if _, present := data[rule.Field]; !present {
			continue
		}
		if rule.Optional && !data.Has(rule.Field) {
			continue
		}
		if _, already := res[rule.Field]; already {
			continue
		}
		if !rule.Check(data.Get(rule.Field)) {
			res[rule.Field] = rule.Message
		}
	}
	return res
}

// Extend returns a new Ruleset that inherits this one's configuration and
// appends the given rules. The service-record rulesets build on the shared
// student rules this way.
func (rs *Ruleset) Extend(rules ...Rule) *Ruleset {
	merged := &Ruleset{
		Defaults:  models.FieldMap{},
		IntFields: append([]string{}, rs.IntFields...),
		Rules:     append(append([]Rule{}, rs.Rules...), rules...),
	}
	for k, v := range rs.Defaults {
		merged.Defaults[k] = v
	}
	return merged
}

// WithIntFields returns the ruleset with extra int-coerced fields
// registered.
func (rs *Ruleset) WithIntFields(fields ...string) *Ruleset {
	rs.IntFields = append(rs.IntFields, fields...)
	return rs
}

// WithDefaults returns the ruleset with extra default values registered.
func (rs *Ruleset) WithDefaults(defaults models.FieldMap) *Ruleset {
	if rs.Defaults == nil {
		rs.Defaults = models.FieldMap{}
	}
	for k, v := range defaults {
		rs.Defaults[k] = v
	}
	return rs
}
