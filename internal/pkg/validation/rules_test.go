package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDocumento(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"seven digits", "1234567", true},
		{"ten digits", "1065432100", true},
		{"six digits too short", "123456", false},
		{"eleven digits too long", "12345678901", false},
		{"numeric input accepted", float64(1065432100), true},
		{"letters rejected", "12345ab", false},
		{"empty", "", false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isDocumento(tt.value))
		})
	}
}

func TestIsValidCellphone(t *testing.T) {
	assert.True(t, IsValidCellphone("3001234567"))
	assert.True(t, IsValidCellphone(float64(3001234567)))

	assert.False(t, IsValidCellphone("4001234567"), "must start with 3")
	assert.False(t, IsValidCellphone("300123456"), "nine digits")
	assert.False(t, IsValidCellphone("30012345678"), "eleven digits")
	assert.False(t, IsValidCellphone("300 123 4567"), "spaces not allowed")
	assert.False(t, IsValidCellphone(nil))
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2025-03-14"))

	assert.False(t, IsValidDate("2025-02-30"), "nonexistent day")
	assert.False(t, IsValidDate("2025-13-01"), "month out of range")
	assert.False(t, IsValidDate("14/03/2025"), "wrong layout")
	assert.False(t, IsValidDate("2025-3-4"), "components must be zero-padded")
	assert.False(t, IsValidDate(20250314))
}

func TestIsValidHour(t *testing.T) {
	assert.True(t, IsValidHour("00:00"))
	assert.True(t, IsValidHour("09:30"))
	assert.True(t, IsValidHour("23:59"))

	assert.False(t, IsValidHour("24:00"))
	assert.False(t, IsValidHour("12:60"))
	assert.False(t, IsValidHour("9:30"))
	assert.False(t, IsValidHour(930))
}

func TestIsProgramCode(t *testing.T) {
	assert.True(t, IsProgramCode("ISI-001"))
	assert.False(t, IsProgramCode("isi-001"))
	assert.False(t, IsProgramCode("ISIS-001"))
	assert.False(t, IsProgramCode("ISI-01"))
	assert.False(t, IsProgramCode("ISI001"))
}

func TestIsLettersOnly(t *testing.T) {
	assert.True(t, IsLettersOnly("María José"))
	assert.True(t, IsLettersOnly("Peñaranda"))
	assert.False(t, IsLettersOnly("Maria3"))
	assert.False(t, IsLettersOnly("O'Brien"))
	assert.False(t, IsLettersOnly(42))
}

func TestIsBoolean(t *testing.T) {
	assert.True(t, IsBoolean(true))
	assert.True(t, IsBoolean(false))
	assert.True(t, IsBoolean("true"))
	assert.True(t, IsBoolean("0"))
	assert.True(t, IsBoolean(float64(1)))

	assert.False(t, IsBoolean("yes"))
	assert.False(t, IsBoolean(float64(2)))
	assert.False(t, IsBoolean(nil))
}

func TestAsInt(t *testing.T) {
	n, ok := AsInt(float64(5))
	assert.True(t, ok)
	assert.Equal(t, 5, n)

	_, ok = AsInt(5.5)
	assert.False(t, ok, "non-integral floats do not convert")

	_, ok = AsInt("5")
	assert.False(t, ok, "strings are coerced by the ruleset, not the cast")
}

func TestInNumericRange(t *testing.T) {
	assert.True(t, InNumericRange(3, 1, 6))
	assert.True(t, InNumericRange("4", 1, 6), "numeric strings cast")
	assert.True(t, InNumericRange(1, 1, 6), "bounds are inclusive")
	assert.True(t, InNumericRange(6, 1, 6))

	assert.False(t, InNumericRange(0, 1, 6))
	assert.False(t, InNumericRange(7, 1, 6))
	assert.False(t, InNumericRange("abc", 1, 6))
}
