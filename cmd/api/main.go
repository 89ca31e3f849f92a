package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/sigea-hr/attendance-backend-go/internal/config"
	appHTTP "github.com/sigea-hr/attendance-backend-go/internal/handler/http"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/database"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/identity"
	"github.com/sigea-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/sigea-hr/attendance-backend-go/internal/repository/postgresql"
	attendanceService "github.com/sigea-hr/attendance-backend-go/internal/service/attendance"
	authService "github.com/sigea-hr/attendance-backend-go/internal/service/auth"
	employeeService "github.com/sigea-hr/attendance-backend-go/internal/service/employee"
	"github.com/sigea-hr/attendance-backend-go/internal/service/master"
	reportService "github.com/sigea-hr/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "sigea-attendance"),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	departmentRepo := postgresql.NewDepartmentRepository(db)
	jobPositionRepo := postgresql.NewJobPositionRepository(db)
	observationTypeRepo := postgresql.NewObservationTypeRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	jwtService := jwt.NewJWTService(cfg.Session.Secret, cfg.Session.MaxAge)
	identityProvider := identity.NewRESTProvider(cfg.Identity.BaseURL, cfg.Identity.APIKey)

	auth := authService.NewAuthService(identityProvider, jwtService)
	masterSvc := master.NewMasterService(departmentRepo, jobPositionRepo, observationTypeRepo, roleRepo)
	employees := employeeService.NewEmployeeService(
		employeeRepo,
		departmentRepo,
		jobPositionRepo,
		roleRepo,
		attendanceRepo,
		identityProvider,
		logger,
	)
	attendances := attendanceService.NewAttendanceService(
		attendanceRepo,
		employeeRepo,
		departmentRepo,
		observationTypeRepo,
		logger,
	)
	reports := reportService.NewReportService()

	authHandler := appHTTP.NewAuthHandler(auth, jwtService)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employees, reports)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendances, reports)

	router := appHTTP.NewRouter(jwtService, authHandler, masterHandler, employeeHandler, attendanceHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server listening", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
