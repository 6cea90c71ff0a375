package main

import (
	"fmt"
	"net/http"

	"github.com/Marshmallowc/hrms-backend/internal/config"
	appHTTP "github.com/Marshmallowc/hrms-backend/internal/handler/http"
	"github.com/Marshmallowc/hrms-backend/internal/pkg/database"
	"github.com/Marshmallowc/hrms-backend/internal/pkg/jwt"
	"github.com/Marshmallowc/hrms-backend/internal/repository/postgresql"
	attendanceService "github.com/Marshmallowc/hrms-backend/internal/service/attendance"
	authService "github.com/Marshmallowc/hrms-backend/internal/service/auth"
	dashboardService "github.com/Marshmallowc/hrms-backend/internal/service/dashboard"
	employeeService "github.com/Marshmallowc/hrms-backend/internal/service/employee"
	leaveService "github.com/Marshmallowc/hrms-backend/internal/service/leave"
	performanceService "github.com/Marshmallowc/hrms-backend/internal/service/performance"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	performanceRepo := postgresql.NewPerformanceRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	authSvc := authService.NewAuthService(db, userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	performanceSvc := performanceService.NewPerformanceService(performanceRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, employeeRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:        appHTTP.NewAuthHandler(authSvc),
		Employee:    appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance:  appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:       appHTTP.NewLeaveHandler(leaveSvc),
		Performance: appHTTP.NewPerformanceHandler(performanceSvc),
		Dashboard:   appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
