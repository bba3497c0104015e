package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/itschool-lms/lms-backend-go/internal/config"
	"github.com/itschool-lms/lms-backend-go/internal/domain/schedule"
	appHTTP "github.com/itschool-lms/lms-backend-go/internal/handler/http"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/database"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/jwt"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/messages"
	"github.com/itschool-lms/lms-backend-go/internal/pkg/trainingtime"
	"github.com/itschool-lms/lms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/itschool-lms/lms-backend-go/internal/service/attendance"
	serviceAuth "github.com/itschool-lms/lms-backend-go/internal/service/auth"
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

	if err := db.Migrate(context.Background()); err != nil {
		fmt.Println("Error running migrations:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewStudentAttendanceRepository(db)
	scheduleRepo := postgresql.NewCourseScheduleRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	clock := trainingtime.NewSystemClock(cfg.Training.RolloverHour)
	hours := schedule.Hours{
		Start: cfg.Training.StandardStartTime,
		End:   cfg.Training.StandardEndTime,
	}
	catalog := messages.NewCatalog()

	authService := serviceAuth.NewAuthService(userRepo, JWTService)
	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		scheduleRepo,
		clock,
		hours,
		catalog,
	)

	authHandler := appHTTP.NewAuthHandler(authService)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(JWTService, authHandler, attendanceHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
