package ui

import (
	"errors"
	"fmt"
	"strings"

	"TimerBoard/history"
	"TimerBoard/i18n"
	"TimerBoard/timer"
)

// Section is one category block of the board.
type Section struct {
	Category string
	Timers   []timer.Timer
}

// GroupByCategory splits timers into sections in first-seen category order,
// keeping insertion order inside each section.
func GroupByCategory(timers []timer.Timer) []Section {
	index := make(map[string]int)
	var sections []Section
	for _, t := range timers {
		i, ok := index[t.Category]
		if !ok {
			i = len(sections)
			index[t.Category] = i
			sections = append(sections, Section{Category: t.Category})
		}
		sections[i].Timers = append(sections[i].Timers, t)
	}
	return sections
}

// StatusText is the translated status word.
func StatusText(s timer.Status) string {
	return i18n.T(string(s))
}

// TimerLine renders "name - Ns (status)".
func TimerLine(t timer.Timer) string {
	return fmt.Sprintf("%s - %ds (%s)", t.Name, t.Remaining, StatusText(t.Status))
}

// HistoryLine renders the subtitle of a history row.
func HistoryLine(r history.Record) string {
	return i18n.Tf("Completed at: %s", r.CompletedAt)
}

// FormInput is what the Add Timer form collects.
type FormInput struct {
	Name         string
	Duration     string
	Category     string
	HalfwayAlert bool
}

// Config converts the form into a timer config. Blank fields produce the
// "Please enter all fields" message.
func (in FormInput) Config() (timer.Config, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Duration) == "" || strings.TrimSpace(in.Category) == "" {
		return timer.Config{}, errors.New(i18n.T("Please enter all fields"))
	}
	seconds, err := timer.ParseDuration(in.Duration)
	if err != nil {
		return timer.Config{}, err
	}
	cfg := timer.Config{
		Name:         in.Name,
		Duration:     seconds,
		Category:     in.Category,
		HalfwayAlert: in.HalfwayAlert,
	}
	return cfg.Normalize(), cfg.Validate()
}
