package animation

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_BreathPhases(t *testing.T) {
	config := Config{Inhale: 4 * time.Second, HoldIn: 2 * time.Second, Exhale: 6 * time.Second, HoldOut: time.Second}
	assert.Equal(t, 13*time.Second, config.Cycle())

	tests := []struct {
		elapsed time.Duration
		phase   Phase
		level   float64
	}{
		{0, PhaseInhale, 0},
		{2 * time.Second, PhaseInhale, 0.5},
		{5 * time.Second, PhaseHoldIn, 1},
		{6 * time.Second, PhaseExhale, 1},
		{9 * time.Second, PhaseExhale, 0.5},
		{12500 * time.Millisecond, PhaseHoldOut, 0},
		{15 * time.Second, PhaseInhale, 0.5},
		{-time.Second, PhaseInhale, 0},
	}
	for _, test := range tests {
		phase, level := config.Breath(test.elapsed)
		assert.Equal(t, test.phase, phase, test.elapsed)
		assert.InDelta(t, test.level, level, 1e-9, test.elapsed)
	}
}

func TestConfig_EmptyCycleIsStill(t *testing.T) {
	phase, level := Config{}.Breath(time.Second)
	assert.Equal(t, PhaseHoldOut, phase)
	assert.Equal(t, 0.0, level)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "Breathe in", PhaseInhale.String())
	assert.Equal(t, "Hold", PhaseHoldIn.String())
	assert.Equal(t, "Breathe out", PhaseExhale.String())
}

func TestEngine_StopHaltsUpdates(t *testing.T) {
	var frames atomic.Int64
	engine := New(Config{Inhale: time.Second, Exhale: time.Second, FrameInterval: time.Millisecond}, func(Phase, float64) {
		frames.Add(1)
	})

	engine.Start(context.Background())
	assert.True(t, engine.Running())
	assert.Eventually(t, func() bool { return frames.Load() >= 3 }, time.Second, time.Millisecond)

	engine.Stop()
	assert.False(t, engine.Running())
	time.Sleep(10 * time.Millisecond)
	stopped := frames.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, frames.Load())
}
