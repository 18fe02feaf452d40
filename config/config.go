package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"snake-classic/game/types"

	"github.com/joho/godotenv"
)

const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

var (
	ErrUnknownFrontend = errors.New("unknown frontend")
	ErrInvalidCanvas   = errors.New("canvas size must be a positive multiple of the scale")
)

// Config holds the application's configuration values.
type Config struct {
	Frontend   string // FrontendWindow or FrontendTerminal
	CanvasSize int    // Canvas extent in pixels
	Scale      int    // Pixels per cell
	Speed      int    // Initial tick period in ms, 0 waits for a selection
	Seed       uint64 // Food RNG seed, 0 picks one from the clock
	Autopilot  bool   // Let the built-in pilot steer
	LogLevel   string // zerolog level name
	LogFile    string // Log destination, empty for stderr (window) or none (terminal)
}

// Grid derives the playing grid from the canvas geometry.
func (c Config) Grid() types.Grid {
	return types.NewGrid(c.CanvasSize, c.Scale)
}

// Load reads an optional .env file, then SNAKE_* environment variables, then
// command-line flags; later sources win.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	canvas, err := getEnvAsInt("SNAKE_CANVAS", types.CanvasSize)
	if err != nil {
		return Config{}, err
	}
	scale, err := getEnvAsInt("SNAKE_SCALE", types.Scale)
	if err != nil {
		return Config{}, err
	}
	autopilot, err := getEnvAsBool("SNAKE_AUTOPILOT", false)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Frontend:   getEnvWithDefault("SNAKE_FRONTEND", FrontendWindow),
		CanvasSize: canvas,
		Scale:      scale,
		Autopilot:  autopilot,
		LogLevel:   getEnvWithDefault("SNAKE_LOG_LEVEL", "info"),
		LogFile:    os.Getenv("SNAKE_LOG_FILE"),
	}
	speed := os.Getenv("SNAKE_SPEED")
	seed := os.Getenv("SNAKE_SEED")

	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&cfg.Frontend, "frontend", cfg.Frontend, "window or terminal")
	fs.IntVar(&cfg.CanvasSize, "canvas", cfg.CanvasSize, "canvas size in pixels")
	fs.IntVar(&cfg.Scale, "scale", cfg.Scale, "pixels per cell")
	fs.StringVar(&speed, "speed", speed, "beginner, intermediate, advanced or milliseconds per tick")
	fs.StringVar(&seed, "seed", seed, "food RNG seed")
	fs.BoolVar(&cfg.Autopilot, "autopilot", cfg.Autopilot, "let the computer play")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "trace, debug, info, warn or error")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parsing flags: %w", err)
	}

	if cfg.Speed, err = types.ParseSpeed(speed); err != nil {
		return Config{}, err
	}
	if seed == "" {
		cfg.Seed = uint64(time.Now().UnixNano())
	} else if cfg.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
		return Config{}, fmt.Errorf("seed %q: %w", seed, err)
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, c.Frontend)
	}
	if c.Scale <= 0 || c.CanvasSize <= 0 || c.CanvasSize%c.Scale != 0 {
		return fmt.Errorf("%w: canvas %d, scale %d", ErrInvalidCanvas, c.CanvasSize, c.Scale)
	}
	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return b, nil
}
