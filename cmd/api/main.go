package main

import (
	"fmt"
	"net/http"

	"github.com/mcube35/infranet-team1/internal/config"
	appHTTP "github.com/mcube35/infranet-team1/internal/handler/http"
	"github.com/mcube35/infranet-team1/internal/pkg/database"
	"github.com/mcube35/infranet-team1/internal/pkg/jwt"
	"github.com/mcube35/infranet-team1/internal/repository/postgresql"
	attendanceService "github.com/mcube35/infranet-team1/internal/service/attendance"
	employeeService "github.com/mcube35/infranet-team1/internal/service/employee"
	leaveService "github.com/mcube35/infranet-team1/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	ledgerSvc := attendanceService.NewLedgerService(attendanceRepo)
	balanceCalc := leaveService.NewBalanceCalculator(leaveRequestRepo, employeeRepo)
	requestSvc := leaveService.NewRequestService(leaveRequestRepo, balanceCalc)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(ledgerSvc)
	leaveHandler := appHTTP.NewLeaveHandler(requestSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		JWTService,
		attendanceHandler,
		leaveHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
