package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is one worker's activity on one calendar date. Records are written
// by the field attendance subsystem; the payroll engine only reads them.
type Record struct {
	ID            string
	WorkerID      string
	WorkDate      time.Time
	SiteID        *string
	WorkHours     decimal.Decimal
	LaborHours    decimal.Decimal
	OvertimeHours decimal.Decimal
	Status        string
	CheckInTime   *time.Time
	CheckOutTime  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined fields
	SiteName *string
}
