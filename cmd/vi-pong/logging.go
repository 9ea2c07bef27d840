package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logDir      = "logs"
	logFileName = "vi-pong.log"
	maxLogSize  = 10 * 1024 * 1024 // 10 MB
)

// setupLogging returns a JSON file logger when debug is set, a no-op logger otherwise
// The terminal owns stdout/stderr, so nothing is ever written to the console
// The returned file is nil when logging is disabled or the file cannot be opened
func setupLogging(debug bool) (*zap.Logger, *os.File) {
	if !debug {
		return zap.NewNop(), nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return zap.NewNop(), nil
	}

	logPath := filepath.Join(logDir, logFileName)

	// Rotate if over size limit
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("vi-pong-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zap.NewNop(), nil
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(f), zapcore.DebugLevel)
	return zap.New(core), f
}
