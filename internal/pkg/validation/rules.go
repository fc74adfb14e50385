package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Compiled field patterns. The letters pattern is the single canonical
// definition used everywhere: Unicode letters plus spaces, no digits or
// underscore.
var (
	digitsPattern      = regexp.MustCompile(`^\d+$`)
	lettersPattern     = regexp.MustCompile(`^[\p{L} ]+$`)
	emailPattern       = regexp.MustCompile(`^[\w\-.]+@([\w-]+\.)+[\w-]{2,4}$`)
	cellphonePattern   = regexp.MustCompile(`^3\d{9}$`)
	programCodePattern = regexp.MustCompile(`^[A-Z]{3}-\d{3}$`)
	hourPattern        = regexp.MustCompile(`^(?:[01]\d|2[0-3]):[0-5]\d$`)
)

// DateLayout is the only accepted date format at the API boundary.
const DateLayout = "2006-01-02"

// Every predicate in this file is total over any input: type mismatches and
// failed casts return false, they never panic. Validation must not throw.

// IsDigitsOnly reports whether v's string form consists only of digits.
func IsDigitsOnly(v any) bool {
	s, ok := stringForm(v)
	return ok && digitsPattern.MatchString(s)
}

// IsLettersOnly reports whether v is a string of letters and spaces.
// Accented characters count as letters.
func IsLettersOnly(v any) bool {
	s, ok := v.(string)
	return ok && lettersPattern.MatchString(s)
}

// IsValidDate reports whether v is a date string in YYYY-MM-DD form. The
// parse is strict: the value must round-trip, which rejects out-of-range
// components and partial strings.
func IsValidDate(v any) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

// InList reports whether v is one of the allowed string values.
func InList(v any, allowed []string) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}

// InNumericRange reports whether v casts to a number in [lo, hi].
func InNumericRange(v any, lo, hi float64) bool {
	n, ok := AsFloat(v)
	return ok && n >= lo && n <= hi
}

// IsBoolean reports whether v is a bool or one of the boolean-ish literals
// accepted at the boundary: "true", "false", "1", "0", 1, 0.
func IsBoolean(v any) bool {
	switch t := v.(type) {
	case bool:
		return true
	case string:
		return t == "true" || t == "false" || t == "1" || t == "0"
	default:
		n, ok := AsInt(v)
		return ok && (n == 0 || n == 1)
	}
}

// IsText reports whether v is a string whose trimmed length does not exceed
// maxLen. The empty string is text; required-ness is a separate rule.
func IsText(v any, maxLen int) bool {
	s, ok := v.(string)
	return ok && len(strings.TrimSpace(s)) <= maxLen
}

// IsRequiredText reports whether v is a non-empty string of at most maxLen
// characters after trimming.
func IsRequiredText(v any, maxLen int) bool {
	s, ok := v.(string)
	if !ok {
		return false
	}
	trimmed := strings.TrimSpace(s)
	return trimmed != "" && len(trimmed) <= maxLen
}

// IsValidEmail reports whether v is a syntactically valid email address.
func IsValidEmail(v any) bool {
	s, ok := v.(string)
	return ok && len(s) <= 255 && emailPattern.MatchString(s)
}

// IsValidCellphone reports whether v is a Colombian mobile number
// (ten digits starting with 3).
func IsValidCellphone(v any) bool {
	s, ok := stringForm(v)
	return ok && cellphonePattern.MatchString(s)
}

// IsProgramCode reports whether v matches the ABC-123 program code format.
func IsProgramCode(v any) bool {
	s, ok := v.(string)
	return ok && programCodePattern.MatchString(s)
}

// IsValidHour reports whether v is a 24h HH:MM string.
func IsValidHour(v any) bool {
	s, ok := v.(string)
	return ok && hourPattern.MatchString(s)
}

// AsInt converts v to an int when it carries an integral value. JSON numbers
// arrive as float64, so integral floats are accepted; strings are not (the
// ruleset normalization step coerces numeric strings beforehand where the
// field allows it).
func AsInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		if n == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	case float32:
		if float64(n) == float64(int(n)) {
			return int(n), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// AsFloat converts v to a float64. Numeric strings are accepted, matching
// the range predicate's cast semantics.
func AsFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// stringForm renders scalar values as strings for pattern matching.
// Documento numbers in particular arrive sometimes as strings and sometimes
// as JSON numbers.
func stringForm(v any) (string, bool) {
	switch s := v.(type) {
	case string:
		return s, true
	case int, int32, int64:
		return fmt.Sprintf("%d", s), true
	case float64:
		if s == float64(int64(s)) {
			return strconv.FormatInt(int64(s), 10), true
		}
		return "", false
	default:
		return "", false
	}
}
