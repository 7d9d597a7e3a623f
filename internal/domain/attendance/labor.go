package attendance

import "github.com/shopspring/decimal"

// hoursPerLaborDay is the "gongsu" convention used on site: one labor-day
// equals eight worked hours.
var hoursPerLaborDay = decimal.NewFromInt(8)

// LaborDuration expresses worked time in labor-days. Attendance rows record
// the same quantity in either hours or labor-days, so all conversion between
// the two units lives here instead of in calling code.
type LaborDuration struct {
	days decimal.Decimal
}

// LaborDays builds a duration from a labor-day count (1.0 = one full day).
func LaborDays(days decimal.Decimal) LaborDuration {
	return LaborDuration{days: days}
}

// LaborHours builds a duration from worked hours.
func LaborHours(hours decimal.Decimal) LaborDuration {
	return LaborDuration{days: hours.Div(hoursPerLaborDay)}
}

// OneLaborDay is the presence-inference unit: a worker known to have been on
// site without recorded hours is credited exactly one labor-day.
func OneLaborDay() LaborDuration {
	return LaborDuration{days: decimal.NewFromInt(1)}
}

func (d LaborDuration) Days() decimal.Decimal {
	return d.days
}

func (d LaborDuration) Hours() decimal.Decimal {
	return d.days.Mul(hoursPerLaborDay)
}

func (d LaborDuration) Add(other LaborDuration) LaborDuration {
	return LaborDuration{days: d.days.Add(other.days)}
}

func (d LaborDuration) IsZero() bool {
	return d.days.IsZero()
}

func (d LaborDuration) IsPositive() bool {
	return d.days.IsPositive()
}
