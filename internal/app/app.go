package app

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"

	"justmeditation/internal/audio"
	"justmeditation/internal/core/session"
	"justmeditation/internal/logging"
	"justmeditation/internal/platform"
	"justmeditation/internal/storage"
	"justmeditation/internal/ui/preferences"
	"justmeditation/resources"
)

// Name is used for the config directory, the log file and the instance lock.
const Name = "justmeditation"

// Options override the defaults derived from Name. Zero values are resolved
// from the platform.
type Options struct {
	Settings     preferences.Settings
	SettingsPath string
	ConfigDir    string
	CacheDir     string
	Backend      audio.Backend
	WakeLock     platform.WakeLock
	TimeSource   session.TimeSource
	Scheduler    session.Scheduler
}

// App wires settings, logging, audio, the wake lock and the session driver
// for either front end.
type App struct {
	Driver *session.Driver
	Logger *slog.Logger

	mu           sync.Mutex
	settings     preferences.Settings
	settingsPath string
	log          *logging.Logger
	player       *audio.Player
	wakeLock     platform.WakeLock
	watcher      sync.WaitGroup
	closeOnce    sync.Once
}

// New builds the application graph.
func New(options Options) (*App, error) {
	settings := options.Settings.Normalized()

	configDir := options.ConfigDir
	if configDir == "" {
		dir, err := platform.ConfigDir(Name)
		if err != nil {
			return nil, err
		}
		configDir = dir
	}
	settingsPath := options.SettingsPath
	if settingsPath == "" {
		settingsPath = filepath.Join(configDir, "settings.yaml")
	}
	cacheDir := options.CacheDir
	if cacheDir == "" {
		cacheDir = platform.CacheDir(Name)
	}

	log, err := logging.New(configDir, settings.Verbose)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	logger := log.Logger

	backend := options.Backend
	if backend == nil {
		backend, err = audio.NewCommandBackend(settings.Player)
		if err != nil {
			logger.Warn("audio disabled", slog.String("error", err.Error()))
			backend = nil
		}
	}
	player := audio.New(backend, resources.NewCatalog(settings.SoundsDir), filepath.Join(cacheDir, "sounds"), logger)

	wakeLock := options.WakeLock
	if wakeLock == nil {
		wakeLock = platform.NewWakeLock(Name, "meditation session running")
	}

	driver := session.NewDriver(settings.SessionConfig(), player, session.Options{
		TimeSource: options.TimeSource,
		Scheduler:  options.Scheduler,
		Logger:     logger,
		Ambient:    settings.Ambient,
	})

	application := &App{
		Driver:       driver,
		Logger:       logger,
		settings:     settings,
		settingsPath: settingsPath,
		log:          log,
		player:       player,
		wakeLock:     wakeLock,
	}
	events := driver.Subscribe(16)
	application.watcher.Add(1)
	go application.holdWakeLock(events)

	logger.Info("started",
		slog.Int("duration_minutes", settings.DurationMinutes),
		slog.Float64("bell_interval_minutes", settings.BellIntervalMinutes),
		slog.String("ambient", string(settings.Ambient)))
	return application, nil
}

// Settings returns the active settings.
func (application *App) Settings() preferences.Settings {
	application.mu.Lock()
	defer application.mu.Unlock()
	return application.settings
}

// SettingsPath returns where Save writes.
func (application *App) SettingsPath() string {
	return application.settingsPath
}

// Apply installs new settings. The ambient track switches immediately. A
// changed timing configuration replaces an idle or completed session and is
// rejected while running, which the returned bool reports.
func (application *App) Apply(settings preferences.Settings) bool {
	settings = settings.Normalized()
	application.mu.Lock()
	previous := application.settings
	application.settings = settings
	application.mu.Unlock()

	application.Driver.SetAmbient(settings.Ambient)
	if settings.SessionConfig() == previous.SessionConfig() {
		return true
	}
	if !application.Driver.Configure(settings.SessionConfig()) {
		application.mu.Lock()
		application.settings.DurationMinutes = previous.DurationMinutes
		application.settings.BellIntervalMinutes = previous.BellIntervalMinutes
		application.mu.Unlock()
		return false
	}
	return true
}

// Start applies settings, then starts or resumes the session. A completed
// session starts over from the full duration.
func (application *App) Start(settings preferences.Settings) bool {
	application.Apply(settings)
	if application.Driver.State().Status == session.StatusCompleted {
		application.Driver.RequestReset()
	}
	return application.Driver.RequestStart()
}

// Toggle pauses a running session or starts one with the active settings.
func (application *App) Toggle() bool {
	if application.Driver.State().Status == session.StatusRunning {
		return application.Driver.RequestPause()
	}
	return application.Start(application.Settings())
}

// Save persists the active settings.
func (application *App) Save() error {
	if err := storage.SaveSettingsFile(application.settingsPath, application.Settings()); err != nil {
		application.Logger.Warn("save settings failed", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// Close stops the session, audio and wake lock, then closes the log.
func (application *App) Close() error {
	var err error
	application.closeOnce.Do(func() {
		application.Driver.Close()
		application.watcher.Wait()
		application.player.Close()
		if releaseErr := application.wakeLock.Release(); releaseErr != nil {
			err = fmt.Errorf("release wake lock: %w", releaseErr)
		}
		application.Logger.Info("stopped")
		err = errors.Join(err, application.log.Close())
	})
	return err
}

func (application *App) holdWakeLock(events <-chan session.Event) {
	defer application.watcher.Done()
	held, unsupported := false, false
	for event := range events {
		running := event.State.Status == session.StatusRunning
		switch {
		case running && !held && !unsupported:
			if err := application.wakeLock.Acquire(); err != nil {
				if errors.Is(err, platform.ErrWakeLockUnsupported) {
					application.Logger.Debug("wake lock unavailable")
					unsupported = true
				} else {
					application.Logger.Warn("acquire wake lock failed", slog.String("error", err.Error()))
				}
				continue
			}
			held = true
		case !running && held:
			if err := application.wakeLock.Release(); err != nil {
				application.Logger.Warn("release wake lock failed", slog.String("error", err.Error()))
			}
			held = false
		}
	}
}
