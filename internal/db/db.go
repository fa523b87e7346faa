package db

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/BruksfildServices01/counsel-scheduler/internal/config"
	"github.com/BruksfildServices01/counsel-scheduler/internal/domain/booking"
	"github.com/BruksfildServices01/counsel-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	logLevel := logger.Warn
	if !cfg.IsProduction() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
		Logger:      logger.Default.LogMode(logLevel),
	})
	if err != nil {
		zap.L().Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		zap.L().Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := Migrate(db); err != nil {
		zap.L().Fatal("failed to migrate", zap.Error(err))
	}

	return db
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Consultant{},
		&models.Slot{},
		&models.ConsultantSlot{},
		&models.Booking{},
		&models.Program{},
		&models.Survey{},
		&models.SurveyResponse{},
		&models.AuditLog{},
	); err != nil {
		return err
	}

	// At most one active booking per consultant, slot and date. Booking
	// creation maps a violation of this index to a slot conflict.
	return db.Exec(activeSlotIndexSQL()).Error
}

func activeSlotIndexSQL() string {
	quoted := make([]string, 0, len(booking.ActiveStatuses))
	for _, s := range booking.ActiveStatuses {
		quoted = append(quoted, "'"+string(s)+"'")
	}

	return fmt.Sprintf(
		`CREATE UNIQUE INDEX IF NOT EXISTS %s ON bookings (consultant_id, slot_id, date) WHERE status IN (%s)`,
		booking.ActiveSlotIndex,
		strings.Join(quoted, ", "),
	)
}
