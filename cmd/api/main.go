package main

import (
	"fmt"
	"net/http"

	"github.com/hrledger/hr-backend-go/internal/config"
	appHTTP "github.com/hrledger/hr-backend-go/internal/handler/http"
	"github.com/hrledger/hr-backend-go/internal/pkg/database"
	"github.com/hrledger/hr-backend-go/internal/pkg/jwt"
	"github.com/hrledger/hr-backend-go/internal/repository/postgresql"
	accountService "github.com/hrledger/hr-backend-go/internal/service/account"
	attendanceService "github.com/hrledger/hr-backend-go/internal/service/attendance"
	authService "github.com/hrledger/hr-backend-go/internal/service/auth"
	companyService "github.com/hrledger/hr-backend-go/internal/service/company"
	employeeService "github.com/hrledger/hr-backend-go/internal/service/employee"
	leaveService "github.com/hrledger/hr-backend-go/internal/service/leave"
	ledgerService "github.com/hrledger/hr-backend-go/internal/service/ledger"
	summaryService "github.com/hrledger/hr-backend-go/internal/service/summary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	bonusRepo := postgresql.NewBonusRepository(db)
	discountRepo := postgresql.NewDiscountRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	companyRepo := postgresql.NewCompanyRepository(db)
	profileRepo := postgresql.NewProfileRepository(db)
	accountRepo := postgresql.NewAccountRepository(db)
	attendanceLogRepo := postgresql.NewAttendanceLogRepository(db)
	jwtRepo := postgresql.NewJWTRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(db, profileRepo, jwtService, jwtRepo)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo)
	ledgerSvc := ledgerService.NewLedgerService(db, advanceRepo, bonusRepo, discountRepo, overtimeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo)
	companySvc := companyService.NewCompanyService(db, companyRepo)
	summarySvc := summaryService.NewSummaryService(
		employeeRepo,
		attendanceRepo,
		advanceRepo,
		bonusRepo,
		discountRepo,
		overtimeRepo,
		leaveRepo,
	)
	accountSvc := accountService.NewAccountService(db, profileRepo, accountRepo, attendanceLogRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	ledgerHandler := appHTTP.NewLedgerHandler(ledgerSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	companyHandler := appHTTP.NewCompanyHandler(companySvc)
	summaryHandler := appHTTP.NewSummaryHandler(summarySvc, companySvc)
	accountHandler := appHTTP.NewAccountHandler(accountSvc)

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		ledgerHandler,
		leaveHandler,
		companyHandler,
		summaryHandler,
		accountHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
