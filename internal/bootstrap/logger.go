package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ironvale/bountyhall/internal/config"
	"github.com/ironvale/bountyhall/internal/logger"
)

// SetupLogger initializes the process logger, writing to stdout and a
// size-rotated file under cfg.LogDir.
func SetupLogger(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(cfg.LogDir, cfg.ServiceName+".log"),
		MaxSize:    LogMaxSizeMB,
		MaxBackups: LogMaxBackups,
		MaxAge:     LogMaxAgeDays,
		Compress:   true,
	}

	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, cfg.ServiceName,
		cfg.Version, cfg.Environment, false)
	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, rotator))

	logger.Info(LogMsgLoggingInitialized,
		"level", cfg.LogLevel,
		"format", cfg.LogFormat,
		"log_file", rotator.Filename)
	return nil
}
