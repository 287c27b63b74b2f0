package main

import (
	"errors"

	"github.com/spf13/cobra"

	"justmeditation/internal/app"
	"justmeditation/internal/core/model"
	"justmeditation/internal/core/session"
	"justmeditation/internal/platform"
	"justmeditation/internal/ui/preferences"
	uitips "justmeditation/internal/ui/tips"
	"justmeditation/internal/ui/timer"
	"justmeditation/internal/ui/tray"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
)

const appID = "com.justmeditation.app"

func newGUICmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop timer (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGUI(opts)
		},
	}
}

func runGUI(opts *rootOptions) error {
	settings, path, err := opts.loadSettings()
	if err != nil {
		return err
	}

	lock, err := platform.LockInstance(app.Name)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			opts.out.Info("Just Meditation is already running")
			return nil
		}
		return err
	}
	defer func() {
		_ = lock.Unlock()
	}()

	application, err := app.New(app.Options{Settings: settings, SettingsPath: path})
	if err != nil {
		return err
	}
	defer func() {
		_ = application.Close()
	}()

	fyneApp := fyneapp.NewWithID(appID)
	tipsWindow := uitips.New(fyneApp)

	var prefsWindow *preferences.Window
	timerWindow := timer.New(fyneApp, application.Settings(), timer.Actions{
		OnStart: func(updated preferences.Settings) {
			current := application.Settings()
			current.DurationMinutes = updated.DurationMinutes
			current.BellIntervalMinutes = updated.BellIntervalMinutes
			current.Ambient = updated.Ambient
			application.Start(current)
			_ = application.Save()
		},
		OnPause: func() {
			application.Driver.RequestPause()
		},
		OnReset: func() {
			application.Driver.RequestReset()
		},
		OnAmbient: func(track model.AmbientID) {
			updated := application.Settings()
			updated.Ambient = track
			application.Apply(updated)
			_ = application.Save()
		},
		OnTips: tipsWindow.Show,
		OnPreferences: func() {
			prefsWindow.Show()
		},
	})

	prefsWindow = preferences.New(fyneApp, application.Settings(), func(updated preferences.Settings) {
		current := application.Settings()
		current.SoundsDir = updated.SoundsDir
		current.Player = updated.Player
		current.Verbose = updated.Verbose
		application.Apply(current)
		_ = application.Save()
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow: timerWindow.Show,
			OnToggle: func() {
				application.Toggle()
			},
			OnReset: func() {
				application.Driver.RequestReset()
			},
			OnTips:        tipsWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnQuit:        fyneApp.Quit,
		})
		timerWindow.Window().SetCloseIntercept(timerWindow.Window().Hide)
	} else {
		application.Logger.Info("system tray unsupported on this platform")
		timerWindow.Window().SetMaster()
	}

	events := application.Driver.Subscribe(16)
	go func() {
		for event := range events {
			state := event.State
			fyne.Do(func() {
				timerWindow.Render(state)
				if trayManager != nil {
					trayManager.SetState(state)
				}
			})
			if event.Type == session.EventComplete {
				fyneApp.SendNotification(fyne.NewNotification("Just Meditation", "Session complete"))
			}
		}
	}()

	go func() {
		for range lock.Knocks() {
			fyne.Do(timerWindow.Show)
		}
	}()

	timerWindow.Show()
	fyneApp.Run()
	timerWindow.Close()
	return nil
}
