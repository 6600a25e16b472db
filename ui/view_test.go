package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"TimerBoard/history"
	"TimerBoard/i18n"
	"TimerBoard/timer"
)

func TestGroupByCategory(t *testing.T) {
	timers := []timer.Timer{
		{ID: 1, Name: "Plank", Category: "Gym"},
		{ID: 2, Name: "Tea", Category: "Kitchen"},
		{ID: 3, Name: "Squats", Category: "Gym"},
	}
	sections := GroupByCategory(timers)
	require.Len(t, sections, 2)
	assert.Equal(t, "Gym", sections[0].Category)
	assert.Equal(t, []int64{1, 3}, []int64{sections[0].Timers[0].ID, sections[0].Timers[1].ID})
	assert.Equal(t, "Kitchen", sections[1].Category)
	assert.Nil(t, GroupByCategory(nil))
}

func TestTimerLine(t *testing.T) {
	i18n.SetLang("en")
	t.Cleanup(func() { i18n.SetLang("en") })

	tm := timer.Timer{Name: "Tea", Duration: 4, Remaining: 2, Status: timer.StatusRunning}
	assert.Equal(t, "Tea - 2s (Running)", TimerLine(tm))

	i18n.SetLang("pt")
	tm.Status = timer.StatusCompleted
	tm.Remaining = 0
	assert.Equal(t, "Tea - 0s (Concluído)", TimerLine(tm))
}

func TestHistoryLine(t *testing.T) {
	i18n.SetLang("en")
	assert.Equal(t, "Completed at: 10/14/2026, 6:30:00 PM",
		HistoryLine(history.Record{Name: "Tea", CompletedAt: "10/14/2026, 6:30:00 PM"}))
}

func TestFormInputConfig(t *testing.T) {
	i18n.SetLang("en")

	cfg, err := FormInput{Name: " Tea ", Duration: "1:30", Category: "Kitchen", HalfwayAlert: true}.Config()
	require.NoError(t, err)
	assert.Equal(t, timer.Config{Name: "Tea", Duration: 90, Category: "Kitchen", HalfwayAlert: true}, cfg)

	_, err = FormInput{Name: "Tea", Duration: "", Category: "Kitchen"}.Config()
	assert.EqualError(t, err, "Please enter all fields")

	_, err = FormInput{Name: "Tea", Duration: "abc", Category: "Kitchen"}.Config()
	var verr *timer.ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = FormInput{Name: "   ", Duration: "10", Category: "Kitchen"}.Config()
	assert.Error(t, err)
}
