package response

import (
	"errors"
	"net/http"

	"github.com/gpdavidyang/inopnc-payroll/internal/domain/attendance"
	"github.com/gpdavidyang/inopnc-payroll/internal/domain/salary"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, salary.ErrInvalidPeriod):
		BadRequest(w, "Invalid payroll period", nil)
	case errors.Is(err, salary.ErrPolicyLookup):
		InternalServerError(w, "Could not compute payroll: salary policy lookup failed")
	case errors.Is(err, attendance.ErrFetchFailed):
		InternalServerError(w, "Could not compute payroll: attendance fetch failed")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
