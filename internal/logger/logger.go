package logger

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BruksfildServices01/counsel-scheduler/internal/config"
)

// New builds the process logger and installs it as the zap global,
// so packages without an injected logger can use zap.L().
func New(cfg *config.Config) *zap.Logger {
	var zc zap.Config

	if cfg.IsProduction() {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level.SetLevel(zapcore.InfoLevel)
	}
	zc.Level = level

	l, err := zc.Build()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	zap.ReplaceGlobals(l)
	return l
}
