package game

import (
	"math"
	"time"
)

// LaunchTimer is a one-shot countdown. It advances by wall-clock time every
// tick and completes at most once per Reset.
type LaunchTimer struct {
	Duration time.Duration
	Elapsed  time.Duration
	Fired    bool
}

// Tick advances the countdown and reports whether it completed on this call.
// Completion is edge-triggered: after firing once it stays quiet until Reset.
func (t *LaunchTimer) Tick(dt time.Duration) bool {
	if t.Fired {
		return false
	}
	t.Elapsed += dt
	if t.Elapsed >= t.Duration {
		t.Fired = true
		return true
	}
	return false
}

// Reset restarts the countdown from the full duration.
func (t *LaunchTimer) Reset() {
	t.Elapsed = 0
	t.Fired = false
}

// Remaining returns the time left before completion, zero once fired.
func (t *LaunchTimer) Remaining() time.Duration {
	if t.Fired || t.Elapsed >= t.Duration {
		return 0
	}
	return t.Duration - t.Elapsed
}

// runSpawner checks the two spawn gates. Repopulate fires when the pool is
// empty: a full batch of stationary balls at the spawn point and a fresh
// countdown. Launch fires when the countdown completes and sets every ball
// moving. The timer ticks every frame regardless of either gate.
func (w *World) runSpawner(dt time.Duration) {
	if w.ballCount == 0 {
		for i := 0; i < w.ballBatch; i++ {
			w.store.Spawn(TagBall, 0, 0)
		}
		w.launch.Reset()
		w.ballCount = w.ballBatch
	}

	if w.launch.Tick(dt) {
		w.launchBalls()
		w.launched = true
	}
}

// launchBalls gives every ball a random heading at BallSpeed. The vertical
// component is drawn from half the range of the horizontal one, which skews
// headings toward the paddles. That skew is intentional.
func (w *World) launchBalls() {
	s := w.store
	for i := range s.tags {
		if s.tags[i] != TagBall {
			continue
		}
		x := (w.rng.Float64() - 0.5) * 2
		y := w.rng.Float64() - 0.5
		n := math.Hypot(x, y)
		if n == 0 {
			x, n = 1, 1
		}
		s.velX[i] = x / n * BallSpeed
		s.velY[i] = y / n * BallSpeed
	}
}
