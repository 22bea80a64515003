// Package logging builds zap loggers from logging configuration.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iwvelando/equity-payoff/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultLevel  = "info"
	defaultFormat = "json"
)

// NewLogger builds a logger from cfg. A non-empty levelOverride, normally the
// -log-level flag, replaces cfg.Level.
func NewLogger(cfg config.LoggingConfig, levelOverride string) (*zap.Logger, error) {
	level, err := resolveLevel(cfg.Level, levelOverride)
	if err != nil {
		return nil, err
	}

	zapConfig, err := encoderConfig(cfg.Format)
	if err != nil {
		return nil, err
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	if cfg.OutputFile != "" {
		if err := ensureWritable(cfg.OutputFile); err != nil {
			return nil, err
		}
		zapConfig.OutputPaths = []string{cfg.OutputFile}
		zapConfig.ErrorOutputPaths = []string{cfg.OutputFile}
	}

	return zapConfig.Build()
}

func resolveLevel(configured, override string) (zapcore.Level, error) {
	name := strings.ToLower(strings.TrimSpace(configured))
	if o := strings.ToLower(strings.TrimSpace(override)); o != "" {
		name = o
	}
	switch name {
	case "":
		name = defaultLevel
	case "warning":
		name = "warn"
	}

	level, err := zapcore.ParseLevel(name)
	if err != nil || level > zapcore.ErrorLevel {
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", name)
	}
	return level, nil
}

// encoderConfig maps a format name onto zap's presets: console output uses
// the development encoder, json the production one.
func encoderConfig(format string) (zap.Config, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", defaultFormat:
		return zap.NewProductionConfig(), nil
	case "console":
		return zap.NewDevelopmentConfig(), nil
	default:
		return zap.Config{}, fmt.Errorf("invalid log format: %s", format)
	}
}

// ensureWritable creates the log file and its directory up front.
func ensureWritable(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create log directory for %s: %w", path, err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	return file.Close()
}
