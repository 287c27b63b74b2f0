package animation

import (
	"context"
	"math"
	"sync"
	"time"
)

// Phase is one segment of a breathing cycle.
type Phase int

const (
	PhaseInhale Phase = iota
	PhaseHoldIn
	PhaseExhale
	PhaseHoldOut
)

func (phase Phase) String() string {
	switch phase {
	case PhaseInhale:
		return "Breathe in"
	case PhaseExhale:
		return "Breathe out"
	default:
		return "Hold"
	}
}

// Config contains breathing pacer timing values.
type Config struct {
	Inhale        time.Duration
	HoldIn        time.Duration
	Exhale        time.Duration
	HoldOut       time.Duration
	FrameInterval time.Duration
}

// DefaultConfig returns a slow 4-2-6 breath.
func DefaultConfig() Config {
	return Config{
		Inhale:        4 * time.Second,
		HoldIn:        2 * time.Second,
		Exhale:        6 * time.Second,
		FrameInterval: 50 * time.Millisecond,
	}
}

// Cycle returns the length of one full breath.
func (config Config) Cycle() time.Duration {
	return config.Inhale + config.HoldIn + config.Exhale + config.HoldOut
}

// Breath returns the phase and a fill level in [0,1] at elapsed time since the
// pacer started. Transitions use a cosine ease.
func (config Config) Breath(elapsed time.Duration) (Phase, float64) {
	cycle := config.Cycle()
	if cycle <= 0 {
		return PhaseHoldOut, 0
	}
	if elapsed < 0 {
		elapsed = 0
	}
	offset := elapsed % cycle

	if offset < config.Inhale {
		return PhaseInhale, ease(offset, config.Inhale)
	}
	offset -= config.Inhale
	if offset < config.HoldIn {
		return PhaseHoldIn, 1
	}
	offset -= config.HoldIn
	if offset < config.Exhale {
		return PhaseExhale, 1 - ease(offset, config.Exhale)
	}
	return PhaseHoldOut, 0
}

func ease(offset, span time.Duration) float64 {
	return 0.5 - 0.5*math.Cos(math.Pi*float64(offset)/float64(span))
}

// Engine drives the pacer on its own goroutine.
type Engine struct {
	mu     sync.Mutex
	config Config
	update func(Phase, float64)
	cancel context.CancelFunc
}

// New creates a pacer engine. update is called from the engine goroutine.
func New(config Config, update func(Phase, float64)) *Engine {
	if config.FrameInterval <= 0 {
		config.FrameInterval = DefaultConfig().FrameInterval
	}
	return &Engine{config: config, update: update}
}

// Start restarts the pacer from the beginning of a breath.
func (engine *Engine) Start(ctx context.Context) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancel = cancel
	engine.mu.Unlock()

	go engine.run(runCtx)
}

// Running reports whether the pacer is active.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.cancel != nil
}

// Stop terminates the pacer.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) run(ctx context.Context) {
	start := time.Now()
	for {
		phase, level := engine.config.Breath(time.Since(start))
		engine.update(phase, level)
		if !sleepWithContext(ctx, engine.config.FrameInterval) {
			return
		}
	}
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
