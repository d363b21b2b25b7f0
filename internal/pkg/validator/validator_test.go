package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("hr@bavaria.example"))
	assert.True(t, IsValidEmail("first.last+tag@sub.domain.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidDate(t *testing.T) {
	d, ok := IsValidDate("2025-02-28")
	assert.True(t, ok)
	assert.Equal(t, 2025, d.Year())

	_, ok = IsValidDate("2025-02-30")
	assert.False(t, ok)

	_, ok = IsValidDate("28/02/2025")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	tm, ok := IsValidClockTime("09:10")
	assert.True(t, ok)
	assert.Equal(t, 9, tm.Hour())
	assert.Equal(t, 10, tm.Minute())

	tm, ok = IsValidClockTime("17:45:30")
	assert.True(t, ok)
	assert.Equal(t, 17, tm.Hour())

	_, ok = IsValidClockTime("25:00")
	assert.False(t, ok)
	_, ok = IsValidClockTime("910")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "cannot be in the future"},
		{Field: "gross_salary", Message: "must be non-negative"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "cannot be in the future", m["date"])
	assert.Contains(t, errs.Error(), "gross_salary: must be non-negative")
}
