package config

import (
	"testing"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Balls != DefaultBalls {
		t.Errorf("expected balls %d, got %d", DefaultBalls, cfg.Balls)
	}
	if cfg.LaunchDelay != DefaultLaunchDelay {
		t.Errorf("expected launch delay %g, got %g", DefaultLaunchDelay, cfg.LaunchDelay)
	}
	if cfg.Mute {
		t.Error("expected sound enabled by default")
	}
	if cfg.Seed != 0 {
		t.Errorf("expected seed 0, got %d", cfg.Seed)
	}
}

func TestParseArgs_CustomOptions(t *testing.T) {
	args := []string{"--balls", "500", "--launch-delay", "2.5", "--mute", "--seed", "42"}
	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Balls != 500 {
		t.Errorf("expected balls 500, got %d", cfg.Balls)
	}
	if cfg.LaunchDelay != 2.5 {
		t.Errorf("expected launch delay 2.5, got %g", cfg.LaunchDelay)
	}
	if !cfg.Mute {
		t.Error("expected Mute to be true")
	}
	if cfg.Seed != 42 {
		t.Errorf("expected seed 42, got %d", cfg.Seed)
	}
}

func TestParseArgs_InvalidBallsZero(t *testing.T) {
	args := []string{"--balls", "0"}
	_, err := ParseArgs(args)
	if err == nil {
		t.Error("expected error for balls 0")
	}
}

func TestParseArgs_InvalidBallsNegative(t *testing.T) {
	args := []string{"--balls", "-5"}
	_, err := ParseArgs(args)
	if err == nil {
		t.Error("expected error for negative balls")
	}
}

func TestParseArgs_InvalidBallsTooHigh(t *testing.T) {
	args := []string{"--balls", "5000001"}
	_, err := ParseArgs(args)
	if err == nil {
		t.Error("expected error for balls above the cap")
	}
}

func TestParseArgs_InvalidLaunchDelay(t *testing.T) {
	args := []string{"--launch-delay", "-1"}
	_, err := ParseArgs(args)
	if err == nil {
		t.Error("expected error for negative launch delay")
	}
}

func TestParseArgs_ValidBallBoundaries(t *testing.T) {
	tests := []struct {
		name  string
		balls string
		want  int
	}{
		{"minimum batch", "1", 1},
		{"maximum batch", "5000000", 5000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := []string{"--balls", tt.balls}
			cfg, err := ParseArgs(args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if cfg.Balls != tt.want {
				t.Errorf("expected balls %d, got %d", tt.want, cfg.Balls)
			}
		})
	}
}

func TestParseArgs_ZeroLaunchDelayAllowed(t *testing.T) {
	args := []string{"--launch-delay", "0"}
	cfg, err := ParseArgs(args)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LaunchDelay != 0 {
		t.Errorf("expected launch delay 0, got %g", cfg.LaunchDelay)
	}
}

func TestDefaultConstants(t *testing.T) {
	if DefaultBalls != 100000 {
		t.Errorf("expected DefaultBalls 100000, got %d", DefaultBalls)
	}
	if DefaultLaunchDelay != 10.0 {
		t.Errorf("expected DefaultLaunchDelay 10.0, got %g", DefaultLaunchDelay)
	}
}
