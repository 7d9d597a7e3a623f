package salary

import "errors"

var (
	// ErrPolicyLookup marks a genuine store failure during policy resolution.
	// "No policy rows" is not an error and falls through to the default policy.
	ErrPolicyLookup = errors.New("salary policy lookup failed")

	ErrLegacyRecordNotFound = errors.New("legacy salary record not found")
	ErrTaxRateNotFound      = errors.New("tax rate policy not found")
	ErrWorkerNotFound       = errors.New("worker not found")
	ErrInvalidPeriod        = errors.New("invalid payroll period")
)
