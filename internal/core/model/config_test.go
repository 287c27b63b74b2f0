package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSessionConfig_NormalizeFloorsAtOneSecond(t *testing.T) {
	config := SessionConfig{TotalSeconds: 0, BellIntervalSeconds: -5}.Normalize()

	assert.Equal(t, SessionConfig{TotalSeconds: 1, BellIntervalSeconds: 1}, config)
	assert.Equal(t, time.Second, config.Total())
	assert.Equal(t, time.Second, config.BellInterval())
}

func TestParseAmbient(t *testing.T) {
	assert.Equal(t, AmbientRain, ParseAmbient("rain"))
	assert.Equal(t, AmbientWaves, ParseAmbient(" Waves "))
	assert.Equal(t, AmbientSilence, ParseAmbient("thunder"))
	assert.Equal(t, AmbientSilence, ParseAmbient(""))
}

func TestAmbientLabels(t *testing.T) {
	for _, track := range AmbientTracks {
		assert.Equal(t, track, ParseAmbientLabel(track.Label()))
	}
	assert.Equal(t, "Forest", AmbientForest.Label())
	assert.Equal(t, AmbientSilence, ParseAmbientLabel("Unknown"))
	assert.False(t, AmbientSilence.HasSound())
	assert.True(t, AmbientRain.HasSound())
}
