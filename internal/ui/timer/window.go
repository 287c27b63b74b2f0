package timer

import (
	"context"
	"image/color"

	"justmeditation/internal/core/model"
	"justmeditation/internal/core/session"
	"justmeditation/internal/ui/animation"
	"justmeditation/internal/ui/preferences"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Actions are invoked from the UI goroutine.
type Actions struct {
	OnStart       func(preferences.Settings)
	OnPause       func()
	OnReset       func()
	OnAmbient     func(model.AmbientID)
	OnTips        func()
	OnPreferences func()
}

// Window is the main timer screen.
type Window struct {
	window     fyne.Window
	settings   preferences.Settings
	actions    Actions
	clockText  *canvas.Text
	statusText *canvas.Text
	progress   *widget.ProgressBar
	duration   *widget.Entry
	interval   *widget.Entry
	ambient    *widget.Select
	toggle     *widget.Button
	reset      *widget.Button
	face       *fyne.Container
	faceLayout *faceLayout
	pacer      *animation.Engine
	state      session.State
	syncing    bool
}

// New creates the timer window.
func New(app fyne.App, settings preferences.Settings, actions Actions) *Window {
	window := app.NewWindow("Just Meditation")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	clockText := canvas.NewText("--:--", color.NRGBA{R: 245, G: 245, B: 245, A: 255})
	clockText.Alignment = fyne.TextAlignCenter
	clockText.TextStyle = fyne.TextStyle{Monospace: true, Bold: true}
	clockText.TextSize = 56

	statusText := canvas.NewText("", color.NRGBA{R: 163, G: 163, B: 163, A: 255})
	statusText.Alignment = fyne.TextAlignCenter
	statusText.TextSize = 14

	duration := widget.NewEntry()
	interval := widget.NewEntry()

	labels := make([]string, 0, len(model.AmbientTracks))
	for _, track := range model.AmbientTracks {
		labels = append(labels, track.Label())
	}
	ambient := widget.NewSelect(labels, nil)

	pulse := canvas.NewCircle(color.NRGBA{R: 94, G: 129, B: 172, A: 60})
	pulse.StrokeColor = color.NRGBA{R: 94, G: 129, B: 172, A: 140}
	pulse.StrokeWidth = 2

	timer := &Window{
		window:     window,
		actions:    actions,
		clockText:  clockText,
		statusText: statusText,
		progress:   widget.NewProgressBar(),
		duration:   duration,
		interval:   interval,
		ambient:    ambient,
		faceLayout: &faceLayout{},
	}
	timer.pacer = animation.New(animation.DefaultConfig(), timer.breathe)
	timer.progress.TextFormatter = func() string { return "" }
	timer.toggle = widget.NewButton("Start", timer.handleToggle)
	timer.toggle.Importance = widget.HighImportance
	timer.reset = widget.NewButton("Reset", func() {
		if timer.actions.OnReset != nil {
			timer.actions.OnReset()
		}
	})
	ambient.OnChanged = timer.handleAmbient
	duration.OnSubmitted = func(string) { timer.handleToggle() }
	interval.OnSubmitted = func(string) { timer.handleToggle() }

	timer.face = container.New(timer.faceLayout, pulse, clockText, statusText)
	form := container.New(layout.NewFormLayout(),
		widget.NewLabel("Duration (min)"), duration,
		widget.NewLabel("Bell interval (min)"), interval,
		widget.NewLabel("Ambient"), ambient,
	)
	controls := container.NewBorder(nil, nil, nil, timer.reset, timer.toggle)
	links := container.NewHBox(
		layout.NewSpacer(),
		widget.NewButton("Tips", func() {
			if timer.actions.OnTips != nil {
				timer.actions.OnTips()
			}
		}),
		widget.NewButton("Preferences", func() {
			if timer.actions.OnPreferences != nil {
				timer.actions.OnPreferences()
			}
		}),
	)

	window.SetContent(container.NewPadded(container.NewVBox(timer.face, timer.progress, form, controls, links)))
	window.Resize(fyne.NewSize(420, 380))

	timer.SetSettings(settings)
	timer.Render(session.State{
		Status:    session.StatusIdle,
		Remaining: settings.SessionConfig().TotalSeconds,
		Total:     settings.SessionConfig().TotalSeconds,
		Ambient:   settings.Ambient,
	})
	return timer
}

// Window exposes the underlying fyne window.
func (timer *Window) Window() fyne.Window {
	return timer.window
}

// Show displays and focuses the window.
func (timer *Window) Show() {
	timer.window.Show()
	timer.window.RequestFocus()
}

// SetSettings replaces the form values.
func (timer *Window) SetSettings(settings preferences.Settings) {
	timer.settings = settings
	timer.syncing = true
	timer.duration.SetText(preferences.FormatMinutes(float64(settings.DurationMinutes)))
	timer.interval.SetText(preferences.FormatMinutes(settings.BellIntervalMinutes))
	timer.ambient.SetSelected(settings.Ambient.Label())
	timer.syncing = false
}

// Update renders state from any goroutine.
func (timer *Window) Update(state session.State) {
	fyne.Do(func() {
		timer.Render(state)
	})
}

// Render draws state. It must run on the UI goroutine.
func (timer *Window) Render(state session.State) {
	timer.state = state
	timer.clockText.Text = session.FormatClock(state.Remaining)
	timer.clockText.Refresh()
	timer.statusText.Text = statusLabel(state)
	timer.statusText.Refresh()
	timer.progress.SetValue(state.Progress)

	if state.Status == session.StatusRunning {
		timer.toggle.SetText("Pause")
		timer.duration.Disable()
		timer.interval.Disable()
		if !timer.pacer.Running() {
			timer.pacer.Start(context.Background())
		}
	} else {
		timer.toggle.SetText("Start")
		timer.duration.Enable()
		timer.interval.Enable()
		timer.pacer.Stop()
		timer.faceLayout.level = 0
		timer.face.Refresh()
	}

	if label := state.Ambient.Label(); label != "" && timer.ambient.Selected != label {
		timer.syncing = true
		timer.ambient.SetSelected(label)
		timer.syncing = false
	}
}

// Close stops the breathing pacer.
func (timer *Window) Close() {
	timer.pacer.Stop()
}

func (timer *Window) breathe(_ animation.Phase, level float64) {
	fyne.Do(func() {
		if !timer.pacer.Running() {
			return
		}
		timer.faceLayout.level = level
		timer.face.Refresh()
	})
}

func (timer *Window) handleToggle() {
	if timer.state.Status == session.StatusRunning {
		if timer.actions.OnPause != nil {
			timer.actions.OnPause()
		}
		return
	}

	settings := timer.settings.WithInput(timer.duration.Text, timer.interval.Text)
	settings.Ambient = model.ParseAmbientLabel(timer.ambient.Selected)
	timer.SetSettings(settings)
	if timer.actions.OnStart != nil {
		timer.actions.OnStart(settings)
	}
}

func (timer *Window) handleAmbient(label string) {
	if timer.syncing {
		return
	}
	track := model.ParseAmbientLabel(label)
	timer.settings.Ambient = track
	if timer.actions.OnAmbient != nil {
		timer.actions.OnAmbient(track)
	}
}

func statusLabel(state session.State) string {
	switch state.Status {
	case session.StatusRunning:
		return "Meditating"
	case session.StatusCompleted:
		return "Session complete"
	}
	if state.Remaining < state.Total {
		return "Paused"
	}
	return "Remaining time"
}

// faceLayout stacks the clock above its caption over a breathing circle.
type faceLayout struct {
	level float64
}

func (layout *faceLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	if len(objects) < 3 {
		return
	}
	pulse := objects[0]
	clock := objects[1]
	caption := objects[2]

	diameter := size.Height
	if size.Width < diameter {
		diameter = size.Width
	}
	diameter *= float32(0.6 + 0.4*layout.level)
	pulse.Resize(fyne.NewSize(diameter, diameter))
	pulse.Move(fyne.NewPos((size.Width-diameter)/2, (size.Height-diameter)/2))

	clockSize := clock.MinSize()
	captionSize := caption.MinSize()
	top := (size.Height - clockSize.Height - captionSize.Height) / 2
	if top < 0 {
		top = 0
	}

	clock.Move(fyne.NewPos(0, top))
	clock.Resize(fyne.NewSize(size.Width, clockSize.Height))
	caption.Move(fyne.NewPos(0, top+clockSize.Height))
	caption.Resize(fyne.NewSize(size.Width, captionSize.Height))
}

func (layout *faceLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	if len(objects) < 3 {
		return fyne.NewSize(0, 0)
	}
	clockSize := objects[1].MinSize()
	captionSize := objects[2].MinSize()
	width := clockSize.Width
	if captionSize.Width > width {
		width = captionSize.Width
	}
	return fyne.NewSize(width+20, clockSize.Height+captionSize.Height+48)
}
