package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gpdavidyang/inopnc-payroll/internal/domain/salary"
	"github.com/gpdavidyang/inopnc-payroll/internal/handler/http/response"
)

type SalaryHandler interface {
	ComputeDaily(w http.ResponseWriter, r *http.Request)
	ComputeMonthly(w http.ResponseWriter, r *http.Request)
}

type salaryHandlerImpl struct {
	salaryService salary.Service
}

func NewSalaryHandler(salaryService salary.Service) SalaryHandler {
	return &salaryHandlerImpl{salaryService: salaryService}
}

func (h *salaryHandlerImpl) ComputeDaily(w http.ResponseWriter, r *http.Request) {
	workerID := r.URL.Query().Get("worker_id")
	if workerID == "" {
		response.BadRequest(w, "worker_id is required", nil)
		return
	}

	dateStr := r.URL.Query().Get("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		response.BadRequest(w, "date must be in YYYY-MM-DD format", nil)
		return
	}

	result, err := h.salaryService.ComputeDaily(r.Context(), workerID, date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *salaryHandlerImpl) ComputeMonthly(w http.ResponseWriter, r *http.Request) {
	workerID := r.URL.Query().Get("worker_id")
	if workerID == "" {
		response.BadRequest(w, "worker_id is required", nil)
		return
	}

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return
	}

	month, err := strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		response.BadRequest(w, "month must be a number", nil)
		return
	}

	var siteID *string
	if s := r.URL.Query().Get("site_id"); s != "" {
		siteID = &s
	}

	result, err := h.salaryService.ComputeMonthly(r.Context(), workerID, year, month, siteID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
