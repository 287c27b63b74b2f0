package tips

import (
	"strings"

	tipcontent "justmeditation/internal/tips"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Window lists meditation tips.
type Window struct {
	window fyne.Window
}

// New creates the tips window. Closing hides it.
func New(app fyne.App) *Window {
	window := app.NewWindow(tipcontent.Title)

	items := []fyne.CanvasObject{
		widget.NewLabelWithStyle(tipcontent.Title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabel(tipcontent.Subtitle),
		widget.NewSeparator(),
	}
	for _, tip := range tipcontent.All() {
		items = append(items, card(tip))
	}
	footer := widget.NewLabel(tipcontent.Footer)
	footer.TextStyle = fyne.TextStyle{Italic: true}
	items = append(items, footer)

	window.SetContent(container.NewVScroll(container.NewVBox(items...)))
	window.Resize(fyne.NewSize(460, 520))
	window.SetCloseIntercept(window.Hide)
	return &Window{window: window}
}

// Show displays the window.
func (tips *Window) Show() {
	tips.window.Show()
	tips.window.RequestFocus()
}

func card(tip tipcontent.Tip) fyne.CanvasObject {
	body := widget.NewLabel(tip.Body)
	body.Wrapping = fyne.TextWrapWord
	return widget.NewCard(tip.Title, strings.Join(tip.Tags, " · "), body)
}
