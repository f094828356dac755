package game

import (
	"math"
	"testing"
	"time"
)

// testWorld builds a world with a far-future launch so that stepping with
// dt=0 never randomizes velocities under a test.
func testWorld(width, height float64, batch int) *World {
	return NewWorld(width, height, Options{
		BallBatch:   batch,
		LaunchDelay: time.Hour,
		Seed:        1,
	})
}

func ballIDs(w *World) []EntityID {
	var ids []EntityID
	for i := range w.store.tags {
		if w.store.tags[i] == TagBall {
			ids = append(ids, w.store.ids[i])
		}
	}
	return ids
}

func TestWorld_IntegrationLinearity(t *testing.T) {
	w := testWorld(10000, 10000, 1)
	w.Step(Input{}, 0) // repopulate

	ball := ballIDs(w)[0]
	w.store.SetVel(ball, 3, 4)

	const n = 10
	for i := 0; i < n; i++ {
		w.Step(Input{}, 0)
	}

	x, y, ok := w.store.Pos(ball)
	if !ok {
		t.Fatal("ball despawned unexpectedly")
	}
	if x != 3*n || y != 4*n {
		t.Errorf("expected (%d,%d) after %d ticks, got (%f,%f)", 3*n, 4*n, n, x, y)
	}
	if vx, vy, _ := w.store.Vel(ball); vx != 3 || vy != 4 {
		t.Errorf("expected velocity unchanged, got (%f,%f)", vx, vy)
	}
}

func TestWorld_WallBounce(t *testing.T) {
	w := testWorld(1000, 800, 1)
	w.Step(Input{}, 0)
	ball := ballIDs(w)[0]

	t.Run("top", func(t *testing.T) {
		w.store.SetPos(ball, 0, -398)
		w.store.SetVel(ball, 0, -5)
		w.Step(Input{}, 0)

		if _, vy, _ := w.store.Vel(ball); vy != 5 {
			t.Errorf("expected vy=5 after top bounce, got %f", vy)
		}
	})

	t.Run("bottom", func(t *testing.T) {
		w.store.SetPos(ball, 0, 398)
		w.store.SetVel(ball, 0, 5)
		w.Step(Input{}, 0)

		if _, vy, _ := w.store.Vel(ball); vy != -5 {
			t.Errorf("expected vy=-5 after bottom bounce, got %f", vy)
		}
	})
}

func TestWorld_PaddleBouncePreservesSpeed(t *testing.T) {
	w := testWorld(1000, 800, 1)
	w.Step(Input{}, 0)
	ball := ballIDs(w)[0]

	px, py, _, _ := w.PaddleRect(SidePlayer)

	offsets := [][2]float64{{3, 4}, {-6, 0}, {0, 8}, {5, -5}, {1, 1}}
	for _, off := range offsets {
		w.store.SetPos(ball, px+off[0], py+off[1])
		w.store.SetVel(ball, 0, 0)
		w.Step(Input{}, 0)

		vx, vy, _ := w.store.Vel(ball)
		speed := math.Hypot(vx, vy)
		if math.Abs(speed-BallSpeed) > 1e-9 {
			t.Errorf("offset %v: expected speed %f, got %f", off, BallSpeed, speed)
		}

		// Heading points from the paddle center through the ball center.
		if off[0] != 0 && math.Signbit(vx) != math.Signbit(off[0]) {
			t.Errorf("offset %v: vx=%f points the wrong way", off, vx)
		}
		if off[1] != 0 && math.Signbit(vy) != math.Signbit(off[1]) {
			t.Errorf("offset %v: vy=%f points the wrong way", off, vy)
		}
	}
}

func TestWorld_GoalScoring(t *testing.T) {
	t.Run("left exit scores opponent", func(t *testing.T) {
		w := testWorld(1000, 800, 3)
		w.Step(Input{}, 0)
		ball := ballIDs(w)[0]

		w.store.SetPos(ball, -520, 0)
		w.Step(Input{}, 0)

		if got := w.Score(SideOpponent).Count; got != 1 {
			t.Errorf("expected opponent score 1, got %d", got)
		}
		if got := w.Score(SidePlayer).Count; got != 0 {
			t.Errorf("expected player score 0, got %d", got)
		}
		if got := w.Score(SideOpponent).Text; got != "1" {
			t.Errorf("expected score text %q, got %q", "1", got)
		}
		if w.BallCount() != 2 {
			t.Errorf("expected 2 live balls, got %d", w.BallCount())
		}
		if got := w.store.Count(TagBall); got != 2 {
			t.Errorf("expected 2 ball entities, got %d", got)
		}
		if _, _, ok := w.store.Pos(ball); ok {
			t.Error("expected scored ball to be despawned")
		}

		changes := w.ScoreChanges()
		if len(changes) != 1 || changes[0].Winner != SideOpponent {
			t.Errorf("expected one opponent score change, got %v", changes)
		}
	})

	t.Run("right exit scores player", func(t *testing.T) {
		w := testWorld(1000, 800, 3)
		w.Step(Input{}, 0)
		ball := ballIDs(w)[0]

		w.store.SetPos(ball, 520, 0)
		w.Step(Input{}, 0)

		if got := w.Score(SidePlayer).Count; got != 1 {
			t.Errorf("expected player score 1, got %d", got)
		}
		if w.BallCount() != 2 {
			t.Errorf("expected 2 live balls, got %d", w.BallCount())
		}
	})

	t.Run("events cleared next tick", func(t *testing.T) {
		w := testWorld(1000, 800, 3)
		w.Step(Input{}, 0)
		w.store.SetPos(ballIDs(w)[0], -520, 0)
		w.Step(Input{}, 0)
		w.Step(Input{}, 0)

		if len(w.ScoreChanges()) != 0 {
			t.Errorf("expected no score changes on a quiet tick, got %v", w.ScoreChanges())
		}
		if got := w.Score(SideOpponent).Count; got != 1 {
			t.Errorf("expected score to stay at 1, got %d", got)
		}
	})
}

func TestWorld_CornerBounceAndGoalSameTick(t *testing.T) {
	// Wall bounce and goal detection are independent checks and a corner
	// ball triggers both in the same tick.
	w := testWorld(1000, 800, 1)
	w.Step(Input{}, 0)
	ball := ballIDs(w)[0]

	w.store.SetPos(ball, -520, -398)
	w.store.SetVel(ball, 0, -5)
	w.Step(Input{}, 0)

	if got := w.Score(SideOpponent).Count; got != 1 {
		t.Errorf("expected goal to score, got %d", got)
	}
	if _, _, ok := w.store.Pos(ball); ok {
		t.Error("expected corner ball despawned by its goal")
	}
	// Draining the pool repopulated it the same tick with a fresh batch.
	if w.BallCount() != 1 {
		t.Errorf("expected repopulated pool of 1, got %d", w.BallCount())
	}
}

func TestWorld_TickCounter(t *testing.T) {
	w := testWorld(1000, 800, 1)

	if w.Tick() != 0 {
		t.Errorf("expected tick 0 before any step, got %d", w.Tick())
	}
	for i := 1; i <= 3; i++ {
		w.Step(Input{}, 0)
		if w.Tick() != i {
			t.Errorf("expected tick %d, got %d", i, w.Tick())
		}
	}
}

func TestWorld_Resize(t *testing.T) {
	w := testWorld(1000, 800, 1)

	w.Resize(600, 400)

	width, height := w.Size()
	if width != 600 || height != 400 {
		t.Errorf("expected 600x400, got %fx%f", width, height)
	}

	px, _, _, _ := w.PaddleRect(SidePlayer)
	if px != -300+PaddleOffset {
		t.Errorf("expected player paddle at x=%f, got %f", -300+PaddleOffset, px)
	}
	bx, _, _, _ := w.PaddleRect(SideOpponent)
	if bx != 300-PaddleOffset {
		t.Errorf("expected bot paddle at x=%f, got %f", 300-PaddleOffset, bx)
	}
}
