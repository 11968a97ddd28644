// Package config reads the service configuration from the environment.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"conic-visualizer/internal/geometry"
	"conic-visualizer/internal/session"
)

type Config struct {
	Port             string
	Env              string
	ServiceName      string
	TelemetryEnabled bool
	Session          SessionConfig
	Canvas           CanvasConfig
	Tolerance        geometry.Tolerance
}

type SessionConfig struct {
	Capacity int
	TTL      time.Duration
}

// CanvasConfig is the image size used when a request does not name one.
type CanvasConfig struct {
	Width  int
	Height int
}

const (
	defaultPort         = ":8080"
	defaultEnv          = "local"
	defaultServiceName  = "conic-visualizer"
	defaultSessionCap   = 1024
	defaultCanvasWidth  = 800
	defaultCanvasHeight = 600
	maxCanvasSide       = 4096
)

// Load builds a Config from environment variables, falling back to defaults
// for anything unset. Values that are set but malformed are errors.
func Load() (*Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (*Config, error) {
	env := func(key string) string { return strings.TrimSpace(getenv(key)) }

	cfg := &Config{
		Port:        normalizePort(firstNonEmpty(env("PORT"), defaultPort)),
		Env:         firstNonEmpty(env("APP_ENV"), defaultEnv),
		ServiceName: firstNonEmpty(env("OTEL_SERVICE_NAME"), defaultServiceName),
	}

	var err error
	if cfg.TelemetryEnabled, err = parseBool("TELEMETRY_ENABLED", env("TELEMETRY_ENABLED"), false); err != nil {
		return nil, err
	}
	if cfg.Session.Capacity, err = parsePositiveInt("SESSION_CAPACITY", env("SESSION_CAPACITY"), defaultSessionCap); err != nil {
		return nil, err
	}
	if cfg.Session.TTL, err = parseDuration("SESSION_TTL", env("SESSION_TTL"), session.DefaultTTL); err != nil {
		return nil, err
	}
	if cfg.Canvas.Width, err = parsePositiveInt("CANVAS_WIDTH", env("CANVAS_WIDTH"), defaultCanvasWidth); err != nil {
		return nil, err
	}
	if cfg.Canvas.Height, err = parsePositiveInt("CANVAS_HEIGHT", env("CANVAS_HEIGHT"), defaultCanvasHeight); err != nil {
		return nil, err
	}
	if cfg.Canvas.Width > maxCanvasSide || cfg.Canvas.Height > maxCanvasSide {
		return nil, fmt.Errorf("canvas %dx%d exceeds %d pixels per side", cfg.Canvas.Width, cfg.Canvas.Height, maxCanvasSide)
	}
	if cfg.Tolerance.Parabola, err = parsePositiveFloat("CURVE_TOLERANCE_PARABOLA", env("CURVE_TOLERANCE_PARABOLA"), geometry.DefaultTolerance.Parabola); err != nil {
		return nil, err
	}
	if cfg.Tolerance.Implicit, err = parsePositiveFloat("CURVE_TOLERANCE_IMPLICIT", env("CURVE_TOLERANCE_IMPLICIT"), geometry.DefaultTolerance.Implicit); err != nil {
		return nil, err
	}

	return cfg, nil
}

func normalizePort(port string) string {
	if strings.HasPrefix(port, ":") || strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

func parseBool(key, raw string, def bool) (bool, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func parsePositiveInt(key, raw string, def int) (int, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %d", key, v)
	}
	return v, nil
}

func parsePositiveFloat(key, raw string, def float64) (float64, error) {
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if !(v > 0) || math.IsInf(v, 1) {
		return 0, fmt.Errorf("%s must be a positive number, got %s", key, raw)
	}
	return v, nil
}

func parseDuration(key, raw string, def time.Duration) (time.Duration, error) {
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, v)
	}
	return v, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
