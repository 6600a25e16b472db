package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"TimerBoard/control"
	"TimerBoard/i18n"
)

// SetupTray installs the system tray menu when the driver supports one.
// With a tray the main window hides on close instead of quitting.
func SetupTray(fyneApp fyne.App, w fyne.Window, a App) bool {
	desk, ok := fyneApp.(desktop.App)
	if !ok {
		return false
	}

	menu := fyne.NewMenu(fyneApp.Metadata().Name,
		fyne.NewMenuItem(i18n.T("Show"), w.Show),
		fyne.NewMenuItem(i18n.T("Pause Everything"), func() {
			pauseEverything(a)
		}),
	)
	desk.SetSystemTrayMenu(menu)
	w.SetCloseIntercept(w.Hide)
	slog.Debug("System tray installed")
	return true
}

func pauseEverything(a App) {
	seen := make(map[string]bool)
	for _, t := range a.Timers() {
		if seen[t.Category] {
			continue
		}
		seen[t.Category] = true
		a.Execute(control.PauseAll(t.Category))
	}
}
