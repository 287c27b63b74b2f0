package model

import (
	"strings"
	"time"
)

// SessionConfig contains the timing settings of a single meditation session.
type SessionConfig struct {
	TotalSeconds        int
	BellIntervalSeconds int
}

// Normalize coerces both values to at least one second.
func (config SessionConfig) Normalize() SessionConfig {
	if config.TotalSeconds < 1 {
		config.TotalSeconds = 1
	}
	if config.BellIntervalSeconds < 1 {
		config.BellIntervalSeconds = 1
	}
	return config
}

// Total returns the session length as a duration.
func (config SessionConfig) Total() time.Duration {
	return time.Duration(config.TotalSeconds) * time.Second
}

// BellInterval returns the bell interval as a duration.
func (config SessionConfig) BellInterval() time.Duration {
	return time.Duration(config.BellIntervalSeconds) * time.Second
}

// AmbientID identifies an ambient track from a closed set.
type AmbientID string

const (
	AmbientSilence AmbientID = "silence"
	AmbientRain    AmbientID = "rain"
	AmbientForest  AmbientID = "forest"
	AmbientWaves   AmbientID = "waves"
)

// AmbientTracks lists the selectable ambient tracks in display order.
var AmbientTracks = []AmbientID{AmbientSilence, AmbientRain, AmbientForest, AmbientWaves}

// ParseAmbient maps a raw identifier to a known track, defaulting to silence.
func ParseAmbient(value string) AmbientID {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, track := range AmbientTracks {
		if string(track) == value {
			return track
		}
	}
	return AmbientSilence
}

// HasSound reports whether the track plays anything.
func (id AmbientID) HasSound() bool {
	return id != AmbientSilence && id != ""
}

// Label returns the human readable name of the track.
func (id AmbientID) Label() string {
	switch id {
	case AmbientRain:
		return "Rain"
	case AmbientForest:
		return "Forest"
	case AmbientWaves:
		return "Waves"
	default:
		return "Silence"
	}
}

// ParseAmbientLabel maps a display label back to its track.
func ParseAmbientLabel(label string) AmbientID {
	for _, track := range AmbientTracks {
		if track.Label() == label {
			return track
		}
	}
	return AmbientSilence
}
