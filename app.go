// Package main contains the application wiring and the AppManager which
// connects the timer engine, storage, alerts and the UI.
//
// Maintenance notes:
//   - All timer mutations go through engine.Execute or the engine's own
//     tick. The UI never touches the store directly.
//   - Shutdown closes the engine before the store so the last queued save
//     reaches storage.
package main

import (
	"log/slog"

	"TimerBoard/config"
	"TimerBoard/engine"
	"TimerBoard/storage"
	"TimerBoard/timer"
)

// AppManager is the main application struct. The embedded engine provides
// the command and history surface used by the windows.
type AppManager struct {
	*engine.Engine

	cfg   config.Config
	store storage.Store
}

// NewAppManager creates the engine around a fresh timer store.
func NewAppManager(cfg config.Config, store storage.Store, notifier engine.Notifier) *AppManager {
	e := engine.New(timer.NewStore(), engine.Options{
		Persistence:     store,
		History:         store,
		Notifier:        notifier,
		TickInterval:    cfg.Engine.TickInterval,
		TimestampLayout: cfg.Engine.TimestampLayout,
	})
	return &AppManager{Engine: e, cfg: cfg, store: store}
}

// Start loads the persisted timers and begins ticking. A load failure is
// logged and the app continues with an empty board.
func (a *AppManager) Start() {
	if err := a.Load(); err != nil {
		slog.Error("Starting with no timers", "error", err)
	}
	a.Engine.Start()
}

// ExportFileName is the name offered by the export dialog.
func (a *AppManager) ExportFileName() string {
	return a.cfg.Export.FileName
}

// Shutdown stops the engine, drains pending writes and closes storage.
func (a *AppManager) Shutdown() {
	a.Close()
	if err := a.store.Close(); err != nil {
		slog.Error("Failed to close storage", "error", err)
	}
}
