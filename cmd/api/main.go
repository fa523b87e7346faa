package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/counsel-scheduler/internal/audit"
	"github.com/BruksfildServices01/counsel-scheduler/internal/auth"
	"github.com/BruksfildServices01/counsel-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/counsel-scheduler/internal/db"
	domainBooking "github.com/BruksfildServices01/counsel-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/counsel-scheduler/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/counsel-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/counsel-scheduler/internal/logger"
	"github.com/BruksfildServices01/counsel-scheduler/internal/routes"
	"github.com/BruksfildServices01/counsel-scheduler/internal/storage"
	"github.com/BruksfildServices01/counsel-scheduler/internal/timezone"
	"github.com/BruksfildServices01/counsel-scheduler/internal/validators"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg)
	defer log.Sync() //nolint:errcheck

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db := dbpkg.NewDB(cfg)

	// ======================================================
	// INFRA
	// ======================================================
	var locker domainBooking.Locker
	if cfg.RedisEnabled() {
		locker = lock.NewRedisLocker(lock.NewRedisClient(cfg), cfg.BookingLockTTL)
		log.Info("booking lock: redis", zap.String("addr", cfg.RedisAddr))
	} else {
		locker = lock.NewLocalLocker()
		log.Info("booking lock: in-process")
	}

	var uploader storage.Uploader
	if cfg.StorageEnabled() {
		uploader = storage.NewS3Uploader(cfg)
	} else {
		log.Info("avatar uploads disabled, S3_BUCKET not set")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)
	defer auditDispatcher.Close()

	clock := timezone.NewClock(cfg.Timezone)

	// ======================================================
	// ROUTER
	// ======================================================
	r := gin.New()

	routes.RegisterRoutes(r, cfg, routes.Infra{
		Accounts:    infraRepo.NewAccountGormRepository(db),
		Bookings:    infraRepo.NewBookingGormRepository(db),
		Consultants: infraRepo.NewConsultantGormRepository(db),
		Surveys:     infraRepo.NewSurveyGormRepository(db),
		Locker:      locker,
		Uploader:    uploader,
		Audit:       auditDispatcher,
		Clock:       clock,
		Tokens:      auth.NewTokens(cfg.JWTSecret),
		Logger:      log,
		DB:          db,
		EmailCheck:  validators.NewEmailDomains(nil, 3*time.Second).Valid,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running",
			zap.String("addr", cfg.Addr()),
			zap.String("timezone", clock.Location().String()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
}
