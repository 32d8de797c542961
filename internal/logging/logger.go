// Package logging builds the zap logger used across cogscreen.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/abhisek/cogscreen/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileName is the name of the rotating JSON log inside the log directory.
const FileName = "cogscreen.log"

// New builds a logger with a colored console core on console and, when a
// directory is configured, a rotating JSON file core.
func New(cfg config.LoggingConfig, console io.Writer) (*zap.Logger, error) {
	consoleLevel, err := zapcore.ParseLevel(orDefault(cfg.ConsoleLevel, "warn"))
	if err != nil {
		return nil, fmt.Errorf("logging.console_level: %w", err)
	}
	fileLevel, err := zapcore.ParseLevel(orDefault(cfg.Level, "info"))
	if err != nil {
		return nil, fmt.Errorf("logging.level: %w", err)
	}

	if console == nil {
		console = os.Stderr
	}
	cores := []zapcore.Core{newConsoleCore(console, consoleLevel)}

	if cfg.Directory != "" {
		fileCore, err := newFileCore(cfg, fileLevel)
		if err != nil {
			return nil, err
		}
		cores = append(cores, fileCore)
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

// newFileCore creates a core that writes JSON entries at or above level to
// a rotating file.
func newFileCore(cfg config.LoggingConfig, level zapcore.Level) (zapcore.Core, error) {
	if err := os.MkdirAll(cfg.Directory, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:   "message",
		LevelKey:     "level",
		TimeKey:      "time",
		CallerKey:    "caller",
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(cfg.Directory, FileName),
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	})

	return zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), writer, level), nil
}

// newConsoleCore creates a human-readable core.
func newConsoleCore(w io.Writer, level zapcore.Level) zapcore.Core {
	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	return zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(w),
		level,
	)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
