package game

import (
	"math/rand"
	"time"
)

// Tuning constants, in world units per tick at 60 Hz.
const (
	PaddleOffset        = 50.0 // distance from the goal line to the paddle center
	PaddleWidth         = 12.5
	DefaultPaddleHeight = 100.0
	PaddleSpeed         = 10.0 // player vertical speed
	BotMaxSpeed         = 10.0 // bot tracking speed cap

	BallSize  = 10.0 // balls are square
	BallSpeed = 14.0

	DefaultBallBatch   = 100000
	DefaultLaunchDelay = 10 * time.Second
)

// Paddle is the per-paddle fixed geometry. Position and velocity live in the
// entity store under ID.
type Paddle struct {
	ID     EntityID
	Width  float64
	Height float64
}

// Options configures a World. Unset values select the defaults above; a zero
// LaunchDelay is valid and launches on the repopulate tick.
type Options struct {
	BallBatch    int
	LaunchDelay  time.Duration // negative selects the default
	PaddleHeight float64
	Seed         int64 // 0 seeds from the clock
}

// World holds the complete simulation state and runs the fixed-timestep loop:
// controllers, integration, collision, scoring, spawn scheduling.
type World struct {
	store *Store

	halfW float64
	halfH float64

	player  EntityID
	bot     EntityID
	paddles [2]Paddle

	scores    [2]Score
	ballCount int
	ballBatch int
	launch    LaunchTimer

	goals        []GoalEvent
	scoreChanges []ScoreChangedEvent
	launched     bool
	paddleHits   int

	rng  *rand.Rand
	tick int
}

// NewWorld creates a world for a playfield of the given size, centered on the
// origin. The ball pool starts empty; the first Step repopulates it.
func NewWorld(width, height float64, opt Options) *World {
	if opt.BallBatch <= 0 {
		opt.BallBatch = DefaultBallBatch
	}
	if opt.LaunchDelay < 0 {
		opt.LaunchDelay = DefaultLaunchDelay
	}
	if opt.PaddleHeight <= 0 {
		opt.PaddleHeight = DefaultPaddleHeight
	}
	seed := opt.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	w := &World{
		store:     NewStore(),
		halfW:     width / 2,
		halfH:     height / 2,
		ballBatch: opt.BallBatch,
		launch:    LaunchTimer{Duration: opt.LaunchDelay},
		rng:       rand.New(rand.NewSource(seed)),
	}

	w.player = w.store.Spawn(TagPlayer, -w.halfW+PaddleOffset, 0)
	w.bot = w.store.Spawn(TagBot, w.halfW-PaddleOffset, 0)
	w.paddles = [2]Paddle{
		{ID: w.player, Width: PaddleWidth, Height: opt.PaddleHeight},
		{ID: w.bot, Width: PaddleWidth, Height: opt.PaddleHeight},
	}

	w.scores = [2]Score{
		{Side: SidePlayer, Text: "0"},
		{Side: SideOpponent, Text: "0"},
	}

	return w
}

// Step advances the simulation by one tick. dt is the wall-clock time since
// the previous tick and only feeds the launch countdown; motion is per-tick.
func (w *World) Step(in Input, dt time.Duration) {
	w.tick++
	w.goals = w.goals[:0]
	w.scoreChanges = w.scoreChanges[:0]
	w.launched = false
	w.paddleHits = 0

	w.controlPlayer(in)
	w.controlBot()
	w.integrate()
	w.clampPaddles()
	w.resolveCollisions()
	w.applyGoals()
	w.runSpawner(dt)
}

// Resize updates the playfield dimensions and keeps the paddles at their
// fixed offset from the new goal lines.
func (w *World) Resize(width, height float64) {
	w.halfW = width / 2
	w.halfH = height / 2

	_, py, _ := w.store.Pos(w.player)
	w.store.SetPos(w.player, -w.halfW+PaddleOffset, py)
	_, by, _ := w.store.Pos(w.bot)
	w.store.SetPos(w.bot, w.halfW-PaddleOffset, by)
	w.clampPaddles()
}

// Size returns the playfield dimensions.
func (w *World) Size() (width, height float64) {
	return w.halfW * 2, w.halfH * 2
}

// Tick returns the number of completed steps.
func (w *World) Tick() int {
	return w.tick
}

// BallCount returns the live-ball counter.
func (w *World) BallCount() int {
	return w.ballCount
}

// Score returns the score record for a side.
func (w *World) Score(side Side) Score {
	return w.scores[side]
}

// ScoreChanges returns the points scored during the last Step. The slice is
// valid until the next Step.
func (w *World) ScoreChanges() []ScoreChangedEvent {
	return w.scoreChanges
}

// Launched reports whether the last Step fired the ball launch.
func (w *World) Launched() bool {
	return w.launched
}

// PaddleHits returns the number of ball/paddle bounces during the last Step.
func (w *World) PaddleHits() int {
	return w.paddleHits
}

// LaunchCountdown returns the time left before the pending launch, or zero
// once it has fired.
func (w *World) LaunchCountdown() time.Duration {
	return w.launch.Remaining()
}

// Balls calls fn with the center position of every live ball.
func (w *World) Balls(fn func(x, y float64)) {
	s := w.store
	for i := range s.tags {
		if s.tags[i] == TagBall {
			fn(s.posX[i], s.posY[i])
		}
	}
}

// PaddleRect returns the center position and full extents of a side's paddle.
func (w *World) PaddleRect(side Side) (x, y, width, height float64) {
	p := w.paddles[side]
	x, y, _ = w.store.Pos(p.ID)
	return x, y, p.Width, p.Height
}
