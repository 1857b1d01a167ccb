package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Output targets
const (
	OutputStderr = "stderr"
	OutputStdout = "stdout"
)

// Formats
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Rotation defaults for file output
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 14
)

// Options configures the application logger
type Options struct {
	Level  string // debug, info, warn, error
	Format string // console or json
	// Output is stderr, stdout, or a file path rotated by lumberjack
	Output     string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// New builds a zap logger from opts
func New(opts Options) (*zap.Logger, error) {
	logger, _, err := NewWithLevel(opts)
	return logger, err
}

// NewWithLevel builds a zap logger whose level can be changed at runtime
// through the returned AtomicLevel.
func NewWithLevel(opts Options) (*zap.Logger, zap.AtomicLevel, error) {
	level := zap.NewAtomicLevelAt(ParseLevel(opts.Level))

	writer, err := buildWriteSyncer(opts)
	if err != nil {
		return nil, level, fmt.Errorf("failed to create log writer: %w", err)
	}

	core := zapcore.NewCore(buildEncoder(opts.Format), writer, level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), level, nil
}

// ParseLevel maps a level name to a zap level, defaulting to info
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func buildEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	if strings.ToLower(format) == FormatJSON {
		return zapcore.NewJSONEncoder(encoderConfig)
	}
	return zapcore.NewConsoleEncoder(encoderConfig)
}

func buildWriteSyncer(opts Options) (zapcore.WriteSyncer, error) {
	switch strings.ToLower(opts.Output) {
	case OutputStderr, "":
		return zapcore.AddSync(os.Stderr), nil
	case OutputStdout:
		return zapcore.AddSync(os.Stdout), nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.Output), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.Output,
		MaxSize:    withDefault(opts.MaxSizeMB, DefaultMaxSizeMB),
		MaxBackups: withDefault(opts.MaxBackups, DefaultMaxBackups),
		MaxAge:     withDefault(opts.MaxAgeDays, DefaultMaxAgeDays),
	}), nil
}

func withDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

// OrNop returns logger, or a no-op logger when it is nil
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
