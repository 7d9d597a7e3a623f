package attendance

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestLaborDuration_HoursToDays(t *testing.T) {
	cases := []struct {
		name      string
		hours     string
		wantDays  string
		wantHours string
	}{
		{"full day", "8", "1", "8"},
		{"half day", "4", "0.5", "4"},
		{"partial day", "7", "0.875", "7"},
		{"overtime day", "10", "1.25", "10"},
		{"zero", "0", "0", "0"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := LaborHours(decimal.RequireFromString(tc.hours))

			assert.True(t, d.Days().Equal(decimal.RequireFromString(tc.wantDays)),
				"days = %s, want %s", d.Days(), tc.wantDays)
			// Converting back must reproduce the input hours.
			assert.True(t, d.Hours().Equal(decimal.RequireFromString(tc.wantHours)),
				"hours = %s, want %s", d.Hours(), tc.wantHours)
		})
	}
}

func TestLaborDuration_DaysToHours(t *testing.T) {
	d := LaborDays(decimal.RequireFromString("1.5"))
	assert.True(t, d.Hours().Equal(decimal.NewFromInt(12)))
}

func TestLaborDuration_Add(t *testing.T) {
	total := OneLaborDay().
		Add(LaborHours(decimal.NewFromInt(4))).
		Add(LaborDays(decimal.RequireFromString("0.5")))

	assert.True(t, total.Days().Equal(decimal.NewFromInt(2)), "days = %s", total.Days())
	assert.True(t, total.Hours().Equal(decimal.NewFromInt(16)))
}

func TestLaborDuration_Zero(t *testing.T) {
	var d LaborDuration
	assert.True(t, d.IsZero())
	assert.False(t, d.IsPositive())
	assert.False(t, OneLaborDay().IsZero())
	assert.True(t, OneLaborDay().IsPositive())
}
