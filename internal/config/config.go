package config

import (
	"flag"
	"fmt"
)

// Default values for configuration
const (
	DefaultBalls       = 100000
	DefaultLaunchDelay = 10.0
	MaxBalls           = 5000000
)

// Config holds the application configuration
type Config struct {
	Balls       int
	LaunchDelay float64 // seconds
	Mute        bool
	Seed        int64
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("swarmpong", flag.ContinueOnError)

	balls := fs.Int("balls", DefaultBalls, "balls per batch (1-5000000)")
	delay := fs.Float64("launch-delay", DefaultLaunchDelay, "seconds before launching a fresh batch (>=0)")
	mute := fs.Bool("mute", false, "disable sound")
	seed := fs.Int64("seed", 0, "random seed (0 = time-based)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	// Validate ball batch size
	if *balls < 1 || *balls > MaxBalls {
		return nil, fmt.Errorf("balls must be between 1 and %d, got %d", MaxBalls, *balls)
	}

	// Validate launch delay
	if *delay < 0 {
		return nil, fmt.Errorf("launch-delay must be >= 0, got %g", *delay)
	}

	cfg := &Config{
		Balls:       *balls,
		LaunchDelay: *delay,
		Mute:        *mute,
		Seed:        *seed,
	}

	return cfg, nil
}
