package preferences

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Window handles the preferences UI.
type Window struct {
	window    fyne.Window
	settings  Settings
	onSave    func(Settings)
	soundsDir *widget.Entry
	player    *widget.Entry
	verbose   *widget.Check
}

// New creates a preferences window. Audio changes apply on next launch.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Just Meditation Settings")

	soundsDir := widget.NewEntry()
	soundsDir.SetPlaceHolder("Built-in sounds")
	player := widget.NewEntry()
	player.SetPlaceHolder("Detect automatically")
	verbose := widget.NewCheck("Verbose logging", nil)

	prefs := &Window{
		window:    window,
		onSave:    onSave,
		soundsDir: soundsDir,
		player:    player,
		verbose:   verbose,
	}

	browse := widget.NewButton("Browse...", func() {
		dialog.ShowFolderOpen(func(folder fyne.ListableURI, err error) {
			if err != nil || folder == nil {
				return
			}
			soundsDir.SetText(folder.Path())
		}, window)
	})

	form := container.NewVBox(
		widget.NewLabelWithStyle("Audio", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Sounds folder (bell, rain, forest, waves)"),
		container.NewBorder(nil, nil, nil, browse, soundsDir),
		widget.NewLabel("Player command"),
		player,
		widget.NewLabelWithStyle("Diagnostics", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		verbose,
		widget.NewLabel("Audio changes take effect after restart."),
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(420, 300))
	window.SetCloseIntercept(window.Hide)

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.soundsDir.SetText(settings.SoundsDir)
	prefs.player.SetText(settings.Player)
	prefs.verbose.SetChecked(settings.Verbose)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.SoundsDir = strings.TrimSpace(prefs.soundsDir.Text)
	settings.Player = strings.TrimSpace(prefs.player.Text)
	settings.Verbose = prefs.verbose.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
