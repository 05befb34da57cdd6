package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
	gormlogger "gorm.io/gorm/logger"

	"github.com/leminhohoho/movie-lens/api/pkg/config"
)

func NewLogger(cfg config.AppConfig) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{}
	var output io.Writer

	if cfg.Debug {
		opts.Level = slog.LevelDebug
	}

	if cfg.Silent {
		output = &lumberjack.Logger{
			Filename:   cfg.LogFilePath,
			MaxSize:    500,
			MaxAge:     30,
			MaxBackups: 3,
			Compress:   true,
			LocalTime:  true,
		}
	} else {
		output = os.Stdout
	}

	return slog.New(slog.NewJSONHandler(output, opts)), nil
}

// NewGormLogger routes gorm's log lines through logger. SQL statements are
// only logged in debug mode.
func NewGormLogger(logger *slog.Logger, debug bool) gormlogger.Interface {
	level := gormlogger.Warn
	slogLevel := slog.LevelWarn

	if debug {
		level = gormlogger.Info
		slogLevel = slog.LevelDebug
	}

	return gormlogger.New(
		slog.NewLogLogger(logger.Handler(), slogLevel),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}
