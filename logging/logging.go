package logging

import (
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	EnvLogLevel   = "REDLEVEL_LOG_LEVEL"
	EnvLogNoColor = "REDLEVEL_LOG_NOCOLOR"
)

// Config controls where and how much the tool logs.
type Config struct {
	Level     string `toml:"level"`
	File      string `toml:"file"`
	NoColor   bool   `toml:"no_color"`
	Timestamp bool   `toml:"-"`
}

func DefaultConfig() Config {
	return Config{Level: "info", Timestamp: true}
}

// Configure installs the global logger and returns it.
func Configure(cfg Config) zerolog.Logger {
	applyEnvOverrides(&cfg)

	var out io.Writer = zerolog.ConsoleWriter{
		Out:        os.Stderr,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}
	if cfg.File != "" {
		out = zerolog.MultiLevelWriter(out, &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    5,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		})
	}

	lvl, ok := ParseLevel(cfg.Level)
	if !ok {
		lvl = zerolog.InfoLevel
	}

	ctx := zerolog.New(out).Level(lvl).With()
	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}
	logger := ctx.Str("app", "redlevel").Logger()
	log.Logger = logger
	return logger
}

// ConfigureTests logs everything at debug level without timestamps.
func ConfigureTests() zerolog.Logger {
	return Configure(Config{Level: "debug", NoColor: true})
}

func applyEnvOverrides(cfg *Config) {
	if raw := strings.TrimSpace(os.Getenv(EnvLogLevel)); raw != "" {
		if _, ok := ParseLevel(raw); ok {
			cfg.Level = raw
		}
	}
	if raw := strings.TrimSpace(os.Getenv(EnvLogNoColor)); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			cfg.NoColor = v
		}
	}
}

// ParseLevel maps a level name to a zerolog level.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "", "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
