package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/library-seat-booking/internal/config"
	"github.com/iliyamo/library-seat-booking/internal/database"
	"github.com/iliyamo/library-seat-booking/internal/handler"
	"github.com/iliyamo/library-seat-booking/internal/middleware"
	"github.com/iliyamo/library-seat-booking/internal/queue"
	"github.com/iliyamo/library-seat-booking/internal/repository"
	"github.com/iliyamo/library-seat-booking/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	defer db.Close()

	// Redis backs the response cache and the booking rate limiter.
	// A nil client disables both; the server still works without it.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; cache and rate limiting disabled")
	}
	boardCache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)
	bookLimit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	users := repository.NewUserRepo(db)
	tokens := repository.NewTokenRepo(db)
	admissions := repository.NewAdmissionRepo(db)
	bookings := repository.NewBookingRepo(db)
	attendance := repository.NewAttendanceRepo(db)
	payments := repository.NewPaymentRepo(db)
	schedules := repository.NewScheduleRepo(db)
	help := repository.NewHelpRepo(db)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, users, tokens), cfg.JWTSecret)
	router.RegisterStudent(e, router.StudentHandlers{
		Admission:  handler.NewAdmissionHandler(admissions),
		Payment:    handler.NewPaymentHandler(cfg, admissions, payments),
		Booking:    handler.NewBookingHandler(admissions, bookings),
		Attendance: handler.NewAttendanceHandler(attendance, bookings),
		Schedule:   handler.NewScheduleHandler(schedules),
		Help:       handler.NewHelpHandler(help),
	}, cfg.JWTSecret, boardCache, bookLimit)
	router.RegisterAdmin(e, handler.NewAdminHandler(admissions, bookings, attendance, help), cfg.JWTSecret)

	// Background consumer mirrors seat.booked events to the booking
	// log.  It runs its own reconnect loop and never exits.
	go func() {
		if err := queue.StartSeatBookedConsumer(); err != nil {
			log.Printf("seat-consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
