package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"
	"wio-tracker/internal/config"
	"wio-tracker/internal/handler"
	"wio-tracker/internal/repository"
	"wio-tracker/internal/service"
	"wio-tracker/pkg/workcal"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetServerConfig()
	logrus.Info("Config initialized...")

	db, err := gorm.Open(sqlite.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		logrus.Fatal("Failed to connect to database:", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		logrus.Fatal("Failed to get database instance:", err)
	}

	statusRepo, err := repository.NewGormDailyStatusRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create daily status repository")
	}

	holidayRepo, err := repository.NewGormCustomHolidayRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create custom holiday repository")
	}

	settingsRepo, err := repository.NewGormSettingsRepository(db)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to create settings repository")
	}

	// National holiday calendar; an unknown region degrades to weekend-only
	// detection instead of failing.
	calendar := workcal.New(cfg.HolidayRegion)
	if calendar.Available() {
		logrus.Infof("National holiday calendar loaded for region %q", calendar.Region())
	} else {
		logrus.Warnf("No national holiday data for region %q, using weekend-only detection", cfg.HolidayRegion)
	}

	holidayService := service.NewHolidayService(holidayRepo, calendar)
	statusService := service.NewStatusService(statusRepo)
	settingsService := service.NewSettingsService(settingsRepo)
	calendarService := service.NewCalendarService(statusRepo, holidayService, settingsService)

	apiHandler := handler.NewHandler(calendarService, statusService, settingsService, holidayService)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	apiHandler.RegisterRoutes(router)

	// Static front-end, when a web directory is shipped alongside the binary.
	if index := filepath.Join(cfg.WebDir, "index.html"); fileExists(index) {
		router.StaticFile("/", index)
		router.Static("/static", cfg.WebDir)
	}

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	go func() {
		logrus.Infof("Server listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatal("Server error:", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logrus.Infof("Error shutting down server: %v", err)
	}

	if err := sqlDB.Close(); err != nil {
		logrus.Infof("Error closing database: %v", err)
	}

	logrus.Info("Server stopped gracefully")
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
