package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gpdavidyang/inopnc-payroll/internal/domain/attendance"
	"github.com/gpdavidyang/inopnc-payroll/internal/domain/salary"
)

type stubSalaryService struct {
	daily      salary.Result
	monthly    salary.MonthlySalary
	dailyErr   error
	monthlyErr error

	gotWorkerID string
	gotYear     int
	gotMonth    int
	gotSiteID   *string
}

func (s *stubSalaryService) ComputeDaily(_ context.Context, workerID string, _ time.Time) (salary.Result, error) {
	s.gotWorkerID = workerID
	return s.daily, s.dailyErr
}

func (s *stubSalaryService) ComputeMonthly(_ context.Context, workerID string, year, month int, siteID *string) (salary.MonthlySalary, error) {
	s.gotWorkerID = workerID
	s.gotYear, s.gotMonth, s.gotSiteID = year, month, siteID
	return s.monthly, s.monthlyErr
}

func TestSalaryHandler_ComputeDaily_Success(t *testing.T) {
	svc := &stubSalaryService{daily: salary.Result{WorkerID: "w1", NetPay: 133072}}
	handler := NewSalaryHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/salary/daily?worker_id=w1&date=2025-06-02", nil)
	rec := httptest.NewRecorder()

	handler.ComputeDaily(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "w1", svc.gotWorkerID)

	var body struct {
		Success bool          `json:"success"`
		Data    salary.Result `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, int64(133072), body.Data.NetPay)
}

func TestSalaryHandler_ComputeDaily_BadParams(t *testing.T) {
	handler := NewSalaryHandler(&stubSalaryService{})

	cases := []struct {
		name  string
		query string
	}{
		{"missing worker_id", "date=2025-06-02"},
		{"missing date", "worker_id=w1"},
		{"malformed date", "worker_id=w1&date=06/02/2025"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/salary/daily?"+tc.query, nil)
			rec := httptest.NewRecorder()

			handler.ComputeDaily(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestSalaryHandler_ComputeMonthly_Success(t *testing.T) {
	svc := &stubSalaryService{monthly: salary.MonthlySalary{WorkDays: 20}}
	handler := NewSalaryHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/salary/monthly?worker_id=w1&year=2025&month=6&site_id=site-7", nil)
	rec := httptest.NewRecorder()

	handler.ComputeMonthly(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2025, svc.gotYear)
	assert.Equal(t, 6, svc.gotMonth)
	require.NotNil(t, svc.gotSiteID)
	assert.Equal(t, "site-7", *svc.gotSiteID)
}

func TestSalaryHandler_ComputeMonthly_InvalidPeriod(t *testing.T) {
	svc := &stubSalaryService{monthlyErr: salary.ErrInvalidPeriod}
	handler := NewSalaryHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/salary/monthly?worker_id=w1&year=2025&month=13", nil)
	rec := httptest.NewRecorder()

	handler.ComputeMonthly(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSalaryHandler_ComputeMonthly_FatalErrorsMapTo500(t *testing.T) {
	for _, tc := range []struct {
		name string
		err  error
	}{
		{"policy lookup failed", salary.ErrPolicyLookup},
		{"attendance fetch failed", attendance.ErrFetchFailed},
	} {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewSalaryHandler(&stubSalaryService{monthlyErr: tc.err})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/salary/monthly?worker_id=w1&year=2025&month=6", nil)
			rec := httptest.NewRecorder()

			handler.ComputeMonthly(rec, req)

			assert.Equal(t, http.StatusInternalServerError, rec.Code)
		})
	}
}
