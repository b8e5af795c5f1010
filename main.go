package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/seportal/uniportal/config"
	"github.com/seportal/uniportal/internal/auth"
	"github.com/seportal/uniportal/internal/handler"
	"github.com/seportal/uniportal/internal/middleware"
	"github.com/seportal/uniportal/internal/notify"
	"github.com/seportal/uniportal/internal/repository"
	"github.com/seportal/uniportal/internal/service"
	"github.com/seportal/uniportal/pkg/database"
	"github.com/seportal/uniportal/pkg/rabbitmq"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())

	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Printf("rabbitmq unavailable, notifications are store-only: %v", err)
		} else {
			publisher = p
			defer publisher.Close()
		}
	}

	userRepo := repository.NewUserRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	regRepo := repository.NewRegistrationRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	attRepo := repository.NewAttendanceRepository(db)
	eventRepo := repository.NewEventRepository(db)
	chatroomRepo := repository.NewChatroomRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	notifier := notify.New(notificationRepo, publisher)

	bookingSvc := service.NewBookingService(bookingRepo, userRepo)
	courseSvc := service.NewCourseService(courseRepo, regRepo, gradeRepo, chatroomRepo)
	regSvc := service.NewRegistrationService(regRepo, courseRepo, chatroomRepo, notifier)
	gradeSvc := service.NewGradeService(gradeRepo, regRepo, userRepo, courseRepo, notifier)
	attSvc := service.NewAttendanceService(attRepo, courseRepo, regRepo, notifier)
	eventSvc := service.NewEventService(eventRepo, userRepo, notifier)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = middleware.NewRequestValidator()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", auth.Middleware(cfg.JWTSecret))
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api)
	handler.NewCourseHandler(courseSvc).RegisterRoutes(api)
	handler.NewRegistrationHandler(regSvc).RegisterRoutes(api)
	handler.NewGradeHandler(gradeSvc).RegisterRoutes(api)
	handler.NewAttendanceHandler(attSvc).RegisterRoutes(api)
	handler.NewEventHandler(eventSvc).RegisterRoutes(api)

	go func() {
		if err := e.Start(":" + cfg.ServerPort); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
