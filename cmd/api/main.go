package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"

	"github.com/gpdavidyang/inopnc-payroll/internal/config"
	appHTTP "github.com/gpdavidyang/inopnc-payroll/internal/handler/http"
	"github.com/gpdavidyang/inopnc-payroll/internal/pkg/database"
	"github.com/gpdavidyang/inopnc-payroll/internal/repository/postgresql"
	salaryService "github.com/gpdavidyang/inopnc-payroll/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "inopnc-payroll"),
		slog.String("env", cfg.App.Env),
	)

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	policyRepo := postgresql.NewSalaryPolicyRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	taxRateRepo := postgresql.NewTaxRateRepository(db)

	salarySvc := salaryService.NewSalaryService(
		attendanceRepo,
		policyRepo,
		workerRepo,
		taxRateRepo,
		cfg.Payroll,
		logger,
	)

	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)
	router := appHTTP.NewRouter(logger, salaryHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
