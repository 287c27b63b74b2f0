package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"justmeditation/internal/core/model"
	"justmeditation/resources"
)

const ambientRetryDelay = 2 * time.Second

// Player plays the bell and ambient loops through a Backend. Every failure is
// logged and swallowed so timing never depends on playback.
type Player struct {
	mu            sync.Mutex
	backend       Backend
	catalog       *resources.Catalog
	cacheDir      string
	logger        *slog.Logger
	files         map[string]string
	bellCancel    context.CancelFunc
	ambientCancel context.CancelFunc
	retryDelay    time.Duration
	wg            sync.WaitGroup
}

// New creates a player. A nil backend produces a silent player that only logs.
func New(backend Backend, catalog *resources.Catalog, cacheDir string, logger *slog.Logger) *Player {
	if catalog == nil {
		catalog = resources.NewCatalog("")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Player{
		backend:    backend,
		catalog:    catalog,
		cacheDir:   cacheDir,
		logger:     logger,
		files:      map[string]string{},
		retryDelay: ambientRetryDelay,
	}
}

// PlayBellOnce restarts the bell from the beginning.
func (player *Player) PlayBellOnce() {
	player.mu.Lock()
	defer player.mu.Unlock()
	if player.backend == nil {
		player.logger.Debug("bell skipped", slog.String("reason", ErrPlayerUnavailable.Error()))
		return
	}

	path, err := player.soundFileLocked(resources.BellName, player.catalog.Bell)
	if err != nil {
		player.logger.Warn("bell unavailable", slog.String("error", err.Error()))
		return
	}

	if player.bellCancel != nil {
		player.bellCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	player.bellCancel = cancel

	player.wg.Add(1)
	go func() {
		defer player.wg.Done()
		if err := player.backend.Play(ctx, path); err != nil && !errors.Is(err, context.Canceled) {
			player.logger.Warn("bell playback failed", slog.String("error", err.Error()))
		}
	}()
}

// StartAmbientLoop replaces any running ambient loop with track.
func (player *Player) StartAmbientLoop(track model.AmbientID) {
	player.mu.Lock()
	defer player.mu.Unlock()
	player.stopAmbientLocked()
	if !track.HasSound() {
		return
	}
	if player.backend == nil {
		player.logger.Debug("ambient skipped", slog.String("track", string(track)), slog.String("reason", ErrPlayerUnavailable.Error()))
		return
	}

	path, err := player.soundFileLocked(string(track), func() (resources.Sound, error) {
		return player.catalog.Ambient(track)
	})
	if err != nil {
		player.logger.Warn("ambient unavailable", slog.String("track", string(track)), slog.String("error", err.Error()))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	player.ambientCancel = cancel

	player.wg.Add(1)
	go func() {
		defer player.wg.Done()
		player.loop(ctx, track, path)
	}()
}

// StopAmbient stops the ambient loop if one is playing.
func (player *Player) StopAmbient() {
	player.mu.Lock()
	defer player.mu.Unlock()
	player.stopAmbientLocked()
}

// StopBell cuts a ringing bell short.
func (player *Player) StopBell() {
	player.mu.Lock()
	defer player.mu.Unlock()
	if player.bellCancel != nil {
		player.bellCancel()
		player.bellCancel = nil
	}
}

// Close stops all playback and waits for player processes to exit.
func (player *Player) Close() {
	player.StopBell()
	player.StopAmbient()
	player.wg.Wait()
}

func (player *Player) loop(ctx context.Context, track model.AmbientID, path string) {
	for {
		err := player.backend.Play(ctx, path)
		if ctx.Err() != nil {
			return
		}
		if err != nil {
			player.logger.Warn("ambient playback failed", slog.String("track", string(track)), slog.String("error", err.Error()))
			if !sleepWithContext(ctx, player.retryDelay) {
				return
			}
		}
	}
}

func (player *Player) stopAmbientLocked() {
	if player.ambientCancel != nil {
		player.ambientCancel()
		player.ambientCancel = nil
	}
}

func (player *Player) soundFileLocked(name string, load func() (resources.Sound, error)) (string, error) {
	if path, ok := player.files[name]; ok {
		return path, nil
	}

	sound, err := load()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(player.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create sound cache: %w", err)
	}
	path := filepath.Join(player.cacheDir, sound.Name+sound.Extension)
	if err := os.WriteFile(path, sound.Data, 0o644); err != nil {
		return "", fmt.Errorf("write sound file: %w", err)
	}
	player.files[name] = path
	return path, nil
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
