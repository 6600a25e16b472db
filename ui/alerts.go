package ui

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"TimerBoard/i18n"
	"TimerBoard/timer"
)

// AlertText returns the dialog title and message for ev.
func AlertText(ev timer.Event) (title, message string) {
	switch ev.Kind {
	case timer.EventHalfway:
		return i18n.T("Halfway"), i18n.Tf("You're halfway through \"%s\"!", ev.Name)
	case timer.EventCompleted:
		return i18n.T("Completed"), i18n.Tf("Timer \"%s\" is completed!", ev.Name)
	}
	return "", ""
}

// Alerts shows a modal and a desktop notification for each event.
type Alerts struct {
	app fyne.App

	mu  sync.Mutex
	win fyne.Window
}

func NewAlerts(app fyne.App) *Alerts {
	return &Alerts{app: app}
}

// Bind sets the window the modals are shown on.
func (n *Alerts) Bind(w fyne.Window) {
	n.mu.Lock()
	n.win = w
	n.mu.Unlock()
}

func (n *Alerts) Notify(ev timer.Event) {
	title, message := AlertText(ev)
	if title == "" {
		return
	}
	n.mu.Lock()
	w := n.win
	n.mu.Unlock()

	if n.app != nil {
		n.app.SendNotification(fyne.NewNotification(title, message))
	}
	if w == nil {
		return
	}
	fyne.Do(func() {
		dialog.ShowInformation(title, message, w)
	})
}
