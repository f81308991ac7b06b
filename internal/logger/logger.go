package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const (
	appDir      = ".datepicker"
	logFileName = "datepicker.log"
)

// Config controls logger initialization.
type Config struct {
	Level  string
	Format string
	// File is the log file path. Empty means stderr, except in TUI mode
	// where a file under ~/.datepicker/logs is used.
	File    string
	TUIMode bool
}

var (
	mu        sync.RWMutex
	logger    *slog.Logger
	logLevel  slog.Level
	logFormat string
	logFile   string
	logHandle *os.File
	tuiMode   bool
	once      sync.Once
)

func init() {
	Initialize()
}

// Initialize configures the logger from the environment once.
func Initialize() {
	once.Do(func() {
		levelStr := os.Getenv("LOG_LEVEL")
		if levelStr == "" {
			levelStr = os.Getenv("DATEPICKER_DEBUG")
			if levelStr == "1" || levelStr == "true" {
				levelStr = "DEBUG"
			} else {
				levelStr = "INFO"
			}
		}

		if err := InitializeWithConfig(Config{
			Level:  levelStr,
			Format: os.Getenv("LOG_FORMAT"),
			File:   os.Getenv("LOG_FILE"),
		}); err != nil {
			fmt.Fprintf(os.Stderr, "logger: %v\n", err)
			_ = InitializeWithConfig(Config{Level: levelStr})
		}
	})
}

// InitializeWithConfig replaces the logger. It is safe to call concurrently.
func InitializeWithConfig(cfg Config) error {
	level := parseLevel(cfg.Level)

	format := strings.ToLower(cfg.Format)
	if format == "" {
		format = "text"
	}

	file := cfg.File
	if file == "" && cfg.TUIMode {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve home directory: %w", err)
		}
		file = filepath.Join(home, appDir, "logs", logFileName)
	}

	var w io.Writer = os.Stderr
	var handle *os.File
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		w = f
		handle = f
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	mu.Lock()
	defer mu.Unlock()
	if logHandle != nil {
		_ = logHandle.Close()
	}
	logger = slog.New(handler)
	logLevel = level
	logFormat = format
	logFile = file
	logHandle = handle
	tuiMode = cfg.TUIMode
	return nil
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func GetLogger() *slog.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l == nil {
		Initialize()
		mu.RLock()
		l = logger
		mu.RUnlock()
	}
	return l
}

func GetLevel() slog.Level {
	mu.RLock()
	defer mu.RUnlock()
	return logLevel
}

func GetFormat() string {
	mu.RLock()
	defer mu.RUnlock()
	return logFormat
}

func GetLogFile() string {
	mu.RLock()
	defer mu.RUnlock()
	return logFile
}

func IsTUIMode() bool {
	mu.RLock()
	defer mu.RUnlock()
	return tuiMode
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}
