package main

import (
	"fmt"
	"net/http"

	"github.com/restotrack/personnel-backend-go/internal/config"
	"github.com/restotrack/personnel-backend-go/internal/domain/attendance"
	appHTTP "github.com/restotrack/personnel-backend-go/internal/handler/http"
	"github.com/restotrack/personnel-backend-go/internal/pkg/database"
	"github.com/restotrack/personnel-backend-go/internal/pkg/jwt"
	"github.com/restotrack/personnel-backend-go/internal/repository/postgresql"
	absenceService "github.com/restotrack/personnel-backend-go/internal/service/absence"
	adjustmentService "github.com/restotrack/personnel-backend-go/internal/service/adjustment"
	attendanceService "github.com/restotrack/personnel-backend-go/internal/service/attendance"
	auditService "github.com/restotrack/personnel-backend-go/internal/service/audit"
	serviceAuth "github.com/restotrack/personnel-backend-go/internal/service/auth"
	kioskService "github.com/restotrack/personnel-backend-go/internal/service/kiosk"
	leaveService "github.com/restotrack/personnel-backend-go/internal/service/leave"
	personnelService "github.com/restotrack/personnel-backend-go/internal/service/personnel"
	summaryService "github.com/restotrack/personnel-backend-go/internal/service/summary"
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

	personnelRepo := postgresql.NewPersonnelRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)
	adjustmentRepo := postgresql.NewAdjustmentRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	kioskRepo := postgresql.NewKioskRepository(db)

	txManager := postgresql.NewTxManager(db)
	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	recorder := auditService.NewRecorder(auditRepo)

	policy := attendance.EarningsPolicy{
		OvertimeMultiplier:          cfg.Wage.OvertimeMultiplier,
		LatePenaltyMultiplier:       cfg.Wage.LatePenaltyMultiplier,
		EarlyLeavePenaltyMultiplier: cfg.Wage.EarlyLeavePenaltyMultiplier,
	}
	wageConstants := personnelService.WageConstants{
		DaysPerMonth: cfg.Wage.DaysPerMonth,
		HoursPerDay:  cfg.Wage.HoursPerDay,
	}

	personnelSvc := personnelService.NewPersonnelService(personnelRepo, txManager, recorder, wageConstants)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, personnelRepo, kioskRepo, txManager, recorder, policy)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, personnelRepo, txManager, recorder)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, personnelRepo, recorder)
	adjustmentSvc := adjustmentService.NewAdjustmentService(adjustmentRepo, personnelRepo, recorder)
	summarySvc := summaryService.NewSummaryService(attendanceRepo, absenceRepo, adjustmentRepo, personnelRepo)
	authSvc := serviceAuth.NewAuthService(userRepo, jwtService)
	kioskSvc := kioskService.NewKioskService(kioskRepo)

	router := appHTTP.NewRouter(jwtService, cfg.App.Env, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Personnel:  appHTTP.NewPersonnelHandler(personnelSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Absence:    appHTTP.NewAbsenceHandler(absenceSvc),
		Adjustment: appHTTP.NewAdjustmentHandler(adjustmentSvc),
		Summary:    appHTTP.NewSummaryHandler(summarySvc),
		Audit:      appHTTP.NewAuditHandler(recorder),
		Kiosk:      appHTTP.NewKioskHandler(kioskSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
