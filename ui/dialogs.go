package ui

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"TimerBoard/control"
	"TimerBoard/history"
	"TimerBoard/i18n"
)

func showAddTimer(b *Board) {
	name := widget.NewEntry()
	duration := widget.NewEntry()
	duration.SetPlaceHolder(i18n.T("seconds or mm:ss"))
	category := widget.NewEntry()
	halfway := widget.NewCheck("", nil)

	items := []*widget.FormItem{
		widget.NewFormItem(i18n.T("Name"), name),
		widget.NewFormItem(i18n.T("Duration"), duration),
		widget.NewFormItem(i18n.T("Category"), category),
		widget.NewFormItem(i18n.T("Halfway Alert"), halfway),
	}

	dialog.ShowForm(i18n.T("Add Timer"), i18n.T("Add Timer"), i18n.T("Cancel"), items, func(ok bool) {
		if !ok {
			return
		}
		cfg, err := FormInput{
			Name:         name.Text,
			Duration:     duration.Text,
			Category:     category.Text,
			HalfwayAlert: halfway.Checked,
		}.Config()
		if err != nil {
			dialog.ShowError(err, b.w)
			return
		}
		b.run(control.Add(cfg))
	}, b.w)
}

func showHistory(a App, fyneApp fyne.App) {
	w := fyneApp.NewWindow(i18n.T("Timer History"))

	var render func()
	render = func() {
		records, err := a.History()
		if err != nil {
			slog.Error("Failed to read history", "error", err)
			dialog.ShowError(err, w)
			return
		}

		list := container.NewVBox()
		if len(records) == 0 {
			list.Add(widget.NewLabel(i18n.T("No completed timers yet.")))
		}
		for _, r := range records {
			list.Add(widget.NewCard(r.Name, HistoryLine(r), nil))
		}

		clearBtn := widget.NewButtonWithIcon(i18n.T("Clear History"), theme.DeleteIcon(), func() {
			dialog.ShowConfirm(i18n.T("Confirm"), i18n.T("Are you sure you want to clear history?"), func(ok bool) {
				if !ok {
					return
				}
				if err := a.ClearHistory(); err != nil {
					dialog.ShowError(err, w)
					return
				}
				render()
			}, w)
		})
		if len(records) == 0 {
			clearBtn.Disable()
		}
		closeBtn := widget.NewButton(i18n.T("Close"), w.Close)

		w.SetContent(container.NewBorder(nil, container.NewHBox(clearBtn, closeBtn), nil, nil, container.NewVScroll(list)))
	}

	render()
	w.Resize(fyne.NewSize(360, 420))
	w.Show()
}

// exportHistory renders the log first so that an empty log never opens
// the save dialog.
func exportHistory(a App, w fyne.Window) {
	var buf bytes.Buffer
	if err := a.ExportHistory(&buf); err != nil {
		if errors.Is(err, history.ErrEmpty) {
			dialog.ShowInformation(i18n.T("Export Data"), i18n.T("No history data to export."), w)
			return
		}
		dialog.ShowError(err, w)
		return
	}

	save := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
		if err != nil {
			dialog.ShowError(err, w)
			return
		}
		if wc == nil {
			return
		}
		defer wc.Close()
		if _, err := wc.Write(buf.Bytes()); err != nil {
			dialog.ShowError(fmt.Errorf("write export: %w", err), w)
			return
		}
		slog.Info("Exported history", "path", wc.URI().Path())
		dialog.ShowInformation(i18n.T("Export Data"), i18n.Tf("History exported to %s", wc.URI().Path()), w)
	}, w)
	save.SetFileName(a.ExportFileName())
	save.Show()
}
