package main

import (
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/joho/godotenv"

	"TimerBoard/audio"
	"TimerBoard/config"
	"TimerBoard/engine"
	"TimerBoard/i18n"
	"TimerBoard/storage"
	"TimerBoard/ui"
)

const appID = "io.github.timerboard"

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	cfg := loadConfig(*configPath)
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))
	if cfg.App.Language != "" {
		i18n.SetLang(cfg.App.Language)
	}
	slog.Info("Starting", "app", cfg.App.Name, "lang", i18n.GetLang(), "storage", cfg.Storage.Driver)

	store := openStore(cfg)

	fyneApp := app.NewWithID(appID)
	if theme := loadTheme(cfg.App); theme != nil {
		fyneApp.Settings().SetTheme(theme)
	}

	alerts := ui.NewAlerts(fyneApp)
	notifiers := engine.Notifiers{engine.LogNotifier{}, alerts}
	if player := newPlayer(cfg.Alerts); player != nil {
		notifiers = append(notifiers, player)
	}

	a := NewAppManager(cfg, store, notifiers)
	a.Start()

	w, board := ui.CreateMainWindow(a, fyneApp, cfg.App.Name, fyne.NewSize(float32(cfg.App.WindowWidth), float32(cfg.App.WindowHeight)))
	alerts.Bind(w)
	board.Watch()
	ui.SetupTray(fyneApp, w, a)

	w.ShowAndRun()
	a.Shutdown()
	slog.Info("Stopped")
}

func loadConfig(path string) config.Config {
	if path == "" {
		path = os.Getenv("TIMERBOARD_CONFIG")
	}
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			slog.Warn("Using built-in configuration", "error", err)
		}
		path = p
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			slog.Warn("Failed to load config, using defaults", "path", path, "error", err)
		}
		cfg = loaded
	}
	cfg.ApplyEnv(os.Getenv)
	return cfg
}

// openStore falls back to the memory driver when the database cannot be
// opened, so the board still works for this session.
func openStore(cfg config.Config) storage.Store {
	path := ""
	if cfg.Storage.Driver == storage.DriverSQLite {
		p, err := cfg.DBPath()
		if err != nil {
			slog.Error("Cannot resolve database path", "error", err)
			return storage.NewMemory()
		}
		path = p
	}
	store, err := storage.Open(cfg.Storage.Driver, path)
	if err != nil {
		slog.Error("Failed to open storage, timers will not be kept", "driver", cfg.Storage.Driver, "path", path, "error", err)
		return storage.NewMemory()
	}
	slog.Debug("Storage opened", "driver", cfg.Storage.Driver, "path", path)
	return store
}

func loadTheme(cfg config.AppConfig) fyne.Theme {
	if cfg.Font == "" && cfg.BoldFont == "" {
		return nil
	}
	return ui.NewCustomTheme(loadFont(cfg.Font), loadFont(cfg.BoldFont))
}

func loadFont(path string) fyne.Resource {
	if path == "" {
		return nil
	}
	res, err := fyne.LoadResourceFromPath(path)
	if err != nil {
		slog.Warn("Failed to load font", "path", path, "error", err)
		return nil
	}
	return res
}

func newPlayer(cfg config.AlertConfig) *audio.Player {
	if !cfg.Sound {
		return nil
	}
	player, err := audio.NewPlayer(audio.Tones{
		HalfwayHz:   cfg.HalfwayToneHz,
		CompletedHz: cfg.CompletedToneHz,
		Length:      cfg.ToneLength,
	})
	if err != nil {
		slog.Warn("Audio disabled", "error", err)
		return nil
	}
	if err := player.Init(); err != nil {
		return nil
	}
	return player
}
