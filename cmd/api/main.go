package main

import (
	"fmt"
	"net/http"

	"github.com/staffdesk/hr-backend-go/internal/config"
	"github.com/staffdesk/hr-backend-go/internal/domain/attendance"
	appHTTP "github.com/staffdesk/hr-backend-go/internal/handler/http"
	"github.com/staffdesk/hr-backend-go/internal/pkg/database"
	"github.com/staffdesk/hr-backend-go/internal/pkg/jwt"
	"github.com/staffdesk/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffdesk/hr-backend-go/internal/service/attendance"
	authService "github.com/staffdesk/hr-backend-go/internal/service/auth"
	employeeService "github.com/staffdesk/hr-backend-go/internal/service/employee"
	leaveService "github.com/staffdesk/hr-backend-go/internal/service/leave"
	masterService "github.com/staffdesk/hr-backend-go/internal/service/master"
	notificationService "github.com/staffdesk/hr-backend-go/internal/service/notification"
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

	userRepo := postgresql.NewUserRepository(db)
	departmentRepo := postgresql.NewDepartmentRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	leaveRepo := postgresql.NewLeaveApplicationRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo, notificationRepo)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		employeeRepo,
		leaveRepo,
		attendance.PolicyAppend,
	)
	notificationSvc := notificationService.NewNotificationService(notificationRepo)
	masterSvc := masterService.NewMasterService(departmentRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	notificationHandler := appHTTP.NewNotificationHandler(notificationSvc)
	masterHandler := appHTTP.NewMasterHandler(masterSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		attendanceHandler,
		leaveHandler,
		employeeHandler,
		notificationHandler,
		masterHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
