package preferences

import (
	"math"
	"strconv"
	"strings"

	"justmeditation/internal/core/model"
)

const (
	MinDurationMinutes     = 1
	MaxDurationMinutes     = 180
	MinBellIntervalMinutes = 0.25
	MaxBellIntervalMinutes = 60
	BellIntervalStep       = 0.25
)

// Settings defines editable user preferences.
type Settings struct {
	DurationMinutes     int
	BellIntervalMinutes float64
	Ambient             model.AmbientID

	SoundsDir string
	Player    string
	Verbose   bool
}

// DefaultSettings returns default settings for Just Meditation.
func DefaultSettings() Settings {
	return Settings{
		DurationMinutes:     10,
		BellIntervalMinutes: 1,
		Ambient:             model.AmbientSilence,
	}
}

// Normalized clamps every field into the range accepted by the timer inputs.
func (settings Settings) Normalized() Settings {
	if settings.DurationMinutes < MinDurationMinutes {
		settings.DurationMinutes = MinDurationMinutes
	}
	if settings.DurationMinutes > MaxDurationMinutes {
		settings.DurationMinutes = MaxDurationMinutes
	}
	if math.IsNaN(settings.BellIntervalMinutes) || settings.BellIntervalMinutes <= 0 {
		settings.BellIntervalMinutes = MinBellIntervalMinutes
	}
	if settings.BellIntervalMinutes > MaxBellIntervalMinutes {
		settings.BellIntervalMinutes = MaxBellIntervalMinutes
	}
	settings.Ambient = model.ParseAmbient(string(settings.Ambient))
	return settings
}

// SessionConfig converts settings to the timing configuration.
// The bell interval is floored to whole seconds with a one second minimum.
func (settings Settings) SessionConfig() model.SessionConfig {
	normalized := settings.Normalized()
	return model.SessionConfig{
		TotalSeconds:        normalized.DurationMinutes * 60,
		BellIntervalSeconds: int(math.Floor(normalized.BellIntervalMinutes * 60)),
	}.Normalize()
}

// WithInput applies raw minute values typed by the user. Text that does not
// parse as a number keeps the current value.
func (settings Settings) WithInput(durationText, intervalText string) Settings {
	if minutes, err := strconv.ParseFloat(strings.TrimSpace(durationText), 64); err == nil && !math.IsNaN(minutes) {
		settings.DurationMinutes = int(math.Round(math.Max(0, math.Min(minutes, MaxDurationMinutes))))
	}
	if minutes, err := strconv.ParseFloat(strings.TrimSpace(intervalText), 64); err == nil {
		settings.BellIntervalMinutes = minutes
	}
	return settings.Normalized()
}

// FormatMinutes renders a minute value without trailing zeros.
func FormatMinutes(minutes float64) string {
	return strconv.FormatFloat(minutes, 'f', -1, 64)
}
