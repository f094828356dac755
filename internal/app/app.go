package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/swarmpong/internal/audio"
	"github.com/diegok/swarmpong/internal/config"
	"github.com/diegok/swarmpong/internal/game"
	"github.com/diegok/swarmpong/internal/ui"
)

// App is the main application controller that manages the game lifecycle.
type App struct {
	cfg      *config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	world    *game.World
	keys     ui.Keys

	lastHitSound time.Time

	quit    chan struct{}
	sigChan chan os.Signal
}

// NewApp creates a new App instance with the given configuration.
func NewApp(cfg *config.Config) *App {
	return &App{
		cfg:  cfg,
		quit: make(chan struct{}),
	}
}

// Run is the main entry point for the application.
// It initializes the screen and audio, sets up signal handling, and runs the
// simulation loop until quit.
func (a *App) Run() error {
	// Initialize audio (ignore errors - game works without sound)
	if !a.cfg.Mute {
		_ = audio.Init()
	}

	// Initialize screen. Without a terminal there is no playfield to derive,
	// so this is fatal.
	screen, err := ui.InitScreen()
	if err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	a.screen = screen
	a.renderer = ui.NewRenderer(screen)

	// Setup signal handling
	a.sigChan = make(chan os.Signal, 1)
	signal.Notify(a.sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-a.sigChan
		close(a.quit)
	}()

	// Size the playfield from the terminal
	cols, rows := a.screen.Size()
	width, height := ui.WorldSize(cols, rows)
	a.world = game.NewWorld(width, height, game.Options{
		BallBatch:   a.cfg.Balls,
		LaunchDelay: time.Duration(a.cfg.LaunchDelay * float64(time.Second)),
		Seed:        a.cfg.Seed,
	})

	runErr := a.mainLoop()

	// Cleanup
	a.cleanup()

	return runErr
}

// mainLoop drives the fixed 60 Hz simulation and handles input events.
func (a *App) mainLoop() error {
	// Create event channel for screen events
	events := make(chan tcell.Event)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-a.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	last := time.Now()

	for {
		select {
		case <-a.quit:
			return nil

		case ev := <-events:
			if a.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			now := time.Now()
			dt := now.Sub(last)
			last = now

			a.world.Step(a.keys.Sample(), dt)
			a.playSounds(now)
			a.renderer.RenderGame(a.world)
		}
	}
}

// handleEvent processes keyboard and resize events.
// Returns true if the application should quit.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ui.IsQuitKey(ev.Key(), ev.Rune()) {
			return true
		}
		a.keys.HandleKey(ev)

	case *tcell.EventResize:
		cols, rows := a.screen.Size()
		width, height := ui.WorldSize(cols, rows)
		a.world.Resize(width, height)
		a.screen.Clear()
	}

	return false
}

// playSounds maps the tick's simulation events to audio cues.
func (a *App) playSounds(now time.Time) {
	if a.cfg.Mute {
		return
	}

	if len(a.world.ScoreChanges()) > 0 {
		audio.PlayScore()
	}
	if a.world.Launched() {
		audio.PlayLaunch()
	}

	// Paddle hits arrive in bursts with a full pool; play at most ~8/s.
	if a.world.PaddleHits() > 0 && now.Sub(a.lastHitSound) > 120*time.Millisecond {
		audio.PlayPaddleHit()
		a.lastHitSound = now
	}
}

// cleanup shuts down all resources.
func (a *App) cleanup() {
	// Close audio
	audio.Close()

	// Finalize screen
	if a.screen != nil {
		a.screen.Fini()
	}

	// Stop signal handling
	signal.Stop(a.sigChan)
}
