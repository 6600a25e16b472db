package ui

import (
	"io"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TimerBoard/control"
	"TimerBoard/engine"
	"TimerBoard/history"
	"TimerBoard/i18n"
	"TimerBoard/timer"
)

type fakeApp struct {
	timers   []timer.Timer
	commands []control.Command
}

func (f *fakeApp) Execute(cmd control.Command) control.Result {
	f.commands = append(f.commands, cmd)
	if cmd.Type == control.CmdStart {
		for i := range f.timers {
			if f.timers[i].ID == cmd.TimerID {
				f.timers[i].Status = timer.StatusRunning
			}
		}
	}
	out := make([]timer.Timer, len(f.timers))
	copy(out, f.timers)
	return control.Result{Timers: out, Changed: true}
}

func (f *fakeApp) Timers() []timer.Timer              { return f.timers }
func (f *fakeApp) Subscribe(int) <-chan engine.Update { return make(chan engine.Update) }
func (f *fakeApp) History() ([]history.Record, error) { return nil, nil }
func (f *fakeApp) ExportHistory(w io.Writer) error    { return history.ErrEmpty }
func (f *fakeApp) ClearHistory() error                { return nil }
func (f *fakeApp) ExportFileName() string             { return history.DefaultFileName }

func boardTimers() []timer.Timer {
	return []timer.Timer{
		{ID: 1, Name: "Tea", Category: "Kitchen", Duration: 4, Remaining: 4, Status: timer.StatusPaused},
		{ID: 2, Name: "Plank", Category: "Gym", Duration: 60, Remaining: 0, Status: timer.StatusCompleted},
	}
}

func TestBoardApply(t *testing.T) {
	i18n.SetLang("en")
	a := test.NewTempApp(t)
	fake := &fakeApp{timers: boardTimers()}

	w, b := CreateMainWindow(fake, a, "Board", fyne.NewSize(400, 600))
	require.NotNil(t, w)
	require.Len(t, b.accordion.Items, 2)
	assert.Equal(t, "Kitchen", b.accordion.Items[0].Title)
	assert.Equal(t, "Gym", b.accordion.Items[1].Title)

	tea := b.rows[1]
	assert.Equal(t, "Tea - 4s (Paused)", tea.label.Text)
	assert.False(t, tea.start.Disabled())
	assert.True(t, tea.pause.Disabled())
	assert.True(t, tea.bar.Visible())

	plank := b.rows[2]
	assert.True(t, plank.doneBar.Visible())
	assert.False(t, plank.bar.Visible())
	assert.True(t, plank.start.Disabled())

	b.run(control.Start(1))
	assert.Equal(t, "Tea - 4s (Running)", tea.label.Text)
	assert.True(t, tea.start.Disabled())
	assert.False(t, tea.pause.Disabled())

	fake.timers = append(fake.timers, timer.Timer{ID: 3, Name: "Eggs", Category: "Kitchen", Duration: 10, Remaining: 10, Status: timer.StatusPaused})
	b.Apply(fake.Timers())
	assert.Len(t, b.accordion.Items, 2)
	assert.Len(t, b.sections["Kitchen"].list.Objects, 2)
}

func TestPauseEverything(t *testing.T) {
	fake := &fakeApp{timers: append(boardTimers(), timer.Timer{ID: 3, Category: "Kitchen"})}
	pauseEverything(fake)
	assert.Equal(t, []control.Command{control.PauseAll("Kitchen"), control.PauseAll("Gym")}, fake.commands)
}

func TestAlertText(t *testing.T) {
	i18n.SetLang("en")
	title, msg := AlertText(timer.Event{Kind: timer.EventHalfway, Name: "Tea"})
	assert.Equal(t, "Halfway", title)
	assert.Equal(t, `You're halfway through "Tea"!`, msg)

	title, msg = AlertText(timer.Event{Kind: timer.EventCompleted, Name: "Tea"})
	assert.Equal(t, "Completed", title)
	assert.Equal(t, `Timer "Tea" is completed!`, msg)

	title, _ = AlertText(timer.Event{Kind: "other"})
	assert.Empty(t, title)
}
