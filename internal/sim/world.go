// Package sim owns the simulation context. A World holds every piece of
// mutable game state and is advanced one fixed tick at a time by a single
// driver; frontends only read Snapshots.
package sim

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy-pebble/internal/collision"
	"github.com/vovakirdan/flappy-pebble/internal/config"
	"github.com/vovakirdan/flappy-pebble/internal/core"
	"github.com/vovakirdan/flappy-pebble/internal/obstacle"
	"github.com/vovakirdan/flappy-pebble/internal/player"
	"github.com/vovakirdan/flappy-pebble/internal/score"
	"github.com/vovakirdan/flappy-pebble/internal/state"
	"github.com/vovakirdan/flappy-pebble/internal/viewport"
)

// BestSink receives new best scores. score.Persister implements it.
type BestSink interface {
	Submit(best uint32)
}

// Options configures a World beyond the game configuration.
type Options struct {
	Best    uint32         // Best score loaded from storage
	Sink    BestSink       // Where new best scores go; nil keeps them in memory
	Logger  *log.Logger    // Defaults to log.Default()
	Seed    int64          // RNG seed; 0 picks one from the clock
	Buttons []state.Button // Defaults to state.DefaultButtons
}

// RunSummary describes a run that just ended.
type RunSummary struct {
	Score   uint32
	Best    uint32
	NewBest bool
	Ticks   int
	Seed    int64
	Cause   collision.Cause
}

// StepResult reports what a single tick did.
type StepResult struct {
	State      state.RunState
	Transition *state.Transition // Non-nil when the tick committed a transition
	Passed     int               // Obstacles passed this tick
	Ended      *RunSummary       // Non-nil when a run ended this tick
	Exit       bool              // The world reached the Exit state
}

// World is the explicit simulation context.
type World struct {
	cfg    config.Config
	dt     float32
	seed   int64
	rng    *rand.Rand
	logger *log.Logger
	sink   BestSink

	tracker    *viewport.Tracker
	machine    *state.Machine
	buttons    []state.Button
	actor      *player.Actor
	obstacles  *obstacle.Scheduler
	score      *score.Tracker
	difficulty *config.DifficultyManager

	tick     uint64 // Ticks since the world was created
	runTicks int    // Simulated ticks in the current run
	cause    collision.Cause
	ended    *RunSummary
}

// NewWorld builds a world in the MainMenu state with bounds derived from
// the configured window size.
func NewWorld(cfg config.Config, opts Options) (*World, error) {
	tracker, err := viewport.NewTrackerFromConfig(cfg)
	if err != nil {
		return nil, err
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	buttons := opts.Buttons
	if buttons == nil {
		buttons = state.DefaultButtons
	}

	rng := rand.New(rand.NewSource(seed))
	w := &World{
		cfg:        cfg,
		dt:         1 / float32(cfg.Simulation.TickRate),
		seed:       seed,
		rng:        rng,
		logger:     logger,
		sink:       opts.Sink,
		tracker:    tracker,
		buttons:    buttons,
		obstacles:  obstacle.NewScheduler(cfg.Moai, rng),
		score:      score.NewTracker(opts.Best, cfg.Score.Latch),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	w.machine = state.NewMachine(w.onTransition)
	return w, nil
}

// Step executes exactly one fixed tick. A button transition takes the
// tick's transition slot and suspends simulation for that tick; otherwise,
// while Playing, physics, obstacles, collision and score run in that order
// and a hit requests GameOver.
func (w *World) Step(in core.InputFrame) StepResult {
	current := w.machine.Current()
	if current == state.Exit {
		return StepResult{State: current, Exit: true}
	}
	w.tick++

	var res StepResult
	if b, ok := state.Resolve(w.buttons, current, in); ok {
		w.machine.Request(b.Trigger)
	}

	if w.machine.Pending() == state.TriggerNone && current.Simulating() {
		passed, hit := w.simulate(in.Has(core.ActionJump))
		res.Passed = passed
		if hit.Hit() {
			w.cause = hit.Cause
			w.machine.Request(state.TriggerCrash)
		}
	}

	if tr, ok := w.machine.Commit(); ok {
		res.Transition = &tr
	}

	res.State = w.machine.Current()
	res.Exit = res.State == state.Exit
	res.Ended, w.ended = w.ended, nil
	return res
}

// simulate runs the in-game part of a tick.
func (w *World) simulate(jump bool) (int, collision.Result) {
	a := w.mustActor()
	bounds := w.tracker.Bounds()
	w.runTicks++

	a.Step(w.dt, w.cfg.Physics.Gravity, w.cfg.Pebble.JumpVelocity, jump)

	speed := w.difficulty.Speed(w.cfg.Moai.MoveSpeed, int(w.score.Current()), w.runTicks)
	passed := w.obstacles.Advance(w.dt, speed, bounds, a.X)

	hit := collision.Check(a.Box(w.cfg.Pebble.Width, w.cfg.Pebble.Height), w.obstacles.Obstacles(), w.cfg.Moai, bounds)

	w.score.Add(passed)
	return passed, hit
}

// onTransition fires the lifecycle side effects of a committed transition.
func (w *World) onTransition(tr state.Transition) {
	w.logger.Debug("state transition", "from", tr.From, "to", tr.To, "trigger", tr.Trigger)

	switch {
	case tr.To == state.Playing && tr.From != state.Paused:
		w.startRun()
	case tr.To == state.GameOver:
		w.finishRun()
	case tr.To == state.MainMenu:
		w.despawn()
	case tr.To == state.Exit:
		// Quitting mid-run still records a best reached so far.
		if tr.From == state.Playing || tr.From == state.Paused {
			w.finishRun()
		}
		w.despawn()
	}
}

// startRun despawns leftovers and spawns a fresh actor and first obstacle.
func (w *World) startRun() {
	w.despawn()
	w.actor = player.Spawn(w.rng, w.cfg.Pebble)
	w.obstacles.SpawnInitial(w.tracker.Bounds())
	w.score.Reset()
	w.runTicks = 0
	w.cause = collision.CauseNone
}

// finishRun ends the run, raises the best score and hands it to the sink.
func (w *World) finishRun() {
	best, isNew := w.score.Finish()
	if isNew {
		w.logger.Info("new best score", "best", best)
		if w.sink != nil {
			w.sink.Submit(best)
		}
	}
	w.ended = &RunSummary{
		Score:   w.score.Current(),
		Best:    best,
		NewBest: w.score.IsNewBest(),
		Ticks:   w.runTicks,
		Seed:    w.seed,
		Cause:   w.cause,
	}
}

func (w *World) despawn() {
	w.actor = nil
	w.obstacles.Reset()
}

// mustActor returns the live actor. A missing actor while simulating is a
// lifecycle bug.
func (w *World) mustActor() *player.Actor {
	if w.actor == nil {
		panic("sim: no player actor while " + w.machine.Current().String())
	}
	return w.actor
}

// Resize reports a new physical viewport size. Invalid sizes are logged
// and the previous bounds are kept.
func (w *World) Resize(physW, physH float32) viewport.Bounds {
	b, err := w.tracker.Resize(physW, physH)
	if err != nil {
		w.logger.Warn("ignoring viewport resize", "width", physW, "height", physH, "error", err)
	}
	return b
}

// State returns the current run state.
func (w *World) State() state.RunState {
	return w.machine.Current()
}

// Seed returns the seed driving start heights and gap heights.
func (w *World) Seed() int64 {
	return w.seed
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.Config {
	return w.cfg
}
