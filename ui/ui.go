package ui

import (
	"io"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"TimerBoard/control"
	"TimerBoard/engine"
	"TimerBoard/history"
	"TimerBoard/i18n"
	"TimerBoard/timer"
)

// App is what the windows need from the application.
type App interface {
	Execute(cmd control.Command) control.Result
	Timers() []timer.Timer
	Subscribe(buffer int) <-chan engine.Update
	History() ([]history.Record, error)
	ExportHistory(w io.Writer) error
	ClearHistory() error
	ExportFileName() string
}

// Board is the main list of category sections. Its methods must run on
// the fyne goroutine.
type Board struct {
	a         App
	w         fyne.Window
	accordion *widget.Accordion
	sections  map[string]*sectionView
	rows      map[int64]*timerRow
}

type sectionView struct {
	list *fyne.Container
}

type timerRow struct {
	label   *widget.Label
	bar     *widget.ProgressBar
	doneBar *widget.ProgressBar
	start   *widget.Button
	pause   *widget.Button
	reset   *widget.Button
	object  fyne.CanvasObject
}

func newBoard(a App, w fyne.Window) *Board {
	accordion := widget.NewAccordion()
	accordion.MultiOpen = true
	return &Board{
		a:         a,
		w:         w,
		accordion: accordion,
		sections:  make(map[string]*sectionView),
		rows:      make(map[int64]*timerRow),
	}
}

// Apply brings the board in line with timers. Sections and rows are only
// ever added; existing widgets are updated in place.
func (b *Board) Apply(timers []timer.Timer) {
	added := false
	for _, sec := range GroupByCategory(timers) {
		view, ok := b.sections[sec.Category]
		if !ok {
			view = b.addSection(sec.Category)
			added = true
		}
		for _, t := range sec.Timers {
			row, ok := b.rows[t.ID]
			if !ok {
				row = b.newTimerRow(t.ID)
				b.rows[t.ID] = row
				view.list.Add(row.object)
			}
			row.update(t)
		}
	}
	if added {
		b.accordion.Refresh()
	}
}

func (b *Board) addSection(category string) *sectionView {
	view := &sectionView{list: container.NewVBox()}
	b.sections[category] = view

	bulk := container.NewHBox(
		widget.NewButtonWithIcon(i18n.T("Start All"), theme.MediaPlayIcon(), func() {
			b.run(control.StartAll(category))
		}),
		widget.NewButtonWithIcon(i18n.T("Pause All"), theme.MediaPauseIcon(), func() {
			b.run(control.PauseAll(category))
		}),
		widget.NewButtonWithIcon(i18n.T("Reset All"), theme.MediaReplayIcon(), func() {
			b.run(control.ResetAll(category))
		}),
	)

	b.accordion.Append(widget.NewAccordionItem(category, container.NewVBox(bulk, view.list)))
	b.accordion.Open(len(b.accordion.Items) - 1)
	return view
}

func (b *Board) newTimerRow(id int64) *timerRow {
	row := &timerRow{
		label:   widget.NewLabel(""),
		bar:     widget.NewProgressBar(),
		doneBar: widget.NewProgressBar(),
	}
	row.bar.TextFormatter = func() string { return "" }
	row.doneBar.TextFormatter = func() string { return "" }
	row.doneBar.Hide()

	row.start = widget.NewButtonWithIcon(i18n.T("Start"), theme.MediaPlayIcon(), func() {
		b.run(control.Start(id))
	})
	row.pause = widget.NewButtonWithIcon(i18n.T("Pause"), theme.MediaPauseIcon(), func() {
		b.run(control.Pause(id))
	})
	row.reset = widget.NewButtonWithIcon(i18n.T("Reset"), theme.MediaReplayIcon(), func() {
		b.run(control.Reset(id))
	})

	bars := container.NewStack(row.bar, container.NewThemeOverride(row.doneBar, newSuccessTheme(fyne.CurrentApp().Settings().Theme())))
	buttons := container.NewHBox(layout.NewSpacer(), row.start, row.pause, row.reset)
	row.object = container.NewVBox(row.label, bars, buttons, widget.NewSeparator())
	return row
}

func (r *timerRow) update(t timer.Timer) {
	r.label.SetText(TimerLine(t))
	r.bar.SetValue(t.Progress())
	r.doneBar.SetValue(t.Progress())
	if t.Status == timer.StatusCompleted {
		r.bar.Hide()
		r.doneBar.Show()
	} else {
		r.doneBar.Hide()
		r.bar.Show()
	}
	setEnabled(r.start, t.Status == timer.StatusPaused)
	setEnabled(r.pause, t.Status == timer.StatusRunning)
}

func setEnabled(btn *widget.Button, enabled bool) {
	if enabled {
		btn.Enable()
	} else {
		btn.Disable()
	}
}

func (b *Board) run(cmd control.Command) {
	res := b.a.Execute(cmd)
	if res.Err != nil {
		slog.Warn("Command failed", "command", cmd.Type, "error", res.Err)
		dialog.ShowError(res.Err, b.w)
		return
	}
	b.Apply(res.Timers)
}

// Watch applies engine updates until the subscription is closed.
func (b *Board) Watch() {
	updates := b.a.Subscribe(16)
	go func() {
		for range updates {
			fyne.Do(func() {
				b.Apply(b.a.Timers())
			})
		}
	}()
}

// CreateMainWindow builds the main window around the board.
func CreateMainWindow(a App, fyneApp fyne.App, title string, size fyne.Size) (fyne.Window, *Board) {
	if title == "" {
		title = fyneApp.Metadata().Name
	}
	if title == "" {
		title = "TimerBoard"
	}
	w := fyneApp.NewWindow(title)
	b := newBoard(a, w)

	toolbar := container.NewHBox(
		widget.NewButtonWithIcon(i18n.T("Add Timer"), theme.ContentAddIcon(), func() {
			showAddTimer(b)
		}),
		widget.NewButtonWithIcon(i18n.T("View History"), theme.HistoryIcon(), func() {
			showHistory(a, fyneApp)
		}),
		widget.NewButtonWithIcon(i18n.T("Export Data"), theme.DocumentSaveIcon(), func() {
			exportHistory(a, w)
		}),
	)

	header := container.NewVBox(widget.NewLabelWithStyle(i18n.T("Timers"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}), toolbar)
	w.SetContent(container.NewBorder(header, nil, nil, nil, container.NewVScroll(b.accordion)))
	w.Resize(size)

	w.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case 'n', 'N':
			showAddTimer(b)
		case 'h', 'H':
			showHistory(a, fyneApp)
		}
	})

	b.Apply(a.Timers())
	return w, b
}
