// Package control defines lightweight command messages used by the UI to
// request actions from the timer engine. The engine executes every command
// under the same lock as the periodic tick, so callers never race it.
package control

import "TimerBoard/timer"

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdAdd CommandType = iota
	CmdStart
	CmdPause
	CmdReset
	CmdStartAll
	CmdPauseAll
	CmdResetAll
)

var commandNames = map[CommandType]string{
	CmdAdd:      "add",
	CmdStart:    "start",
	CmdPause:    "pause",
	CmdReset:    "reset",
	CmdStartAll: "start_all",
	CmdPauseAll: "pause_all",
	CmdResetAll: "reset_all",
}

func (c CommandType) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}

// Command is the message sent from the UI to the engine. TimerID is used by
// the single-timer commands, Category by the bulk ones and Config by CmdAdd.
type Command struct {
	Type     CommandType
	TimerID  int64
	Category string
	Config   timer.Config
}

// Add builds a CmdAdd command.
func Add(cfg timer.Config) Command { return Command{Type: CmdAdd, Config: cfg} }

// Start builds a CmdStart command.
func Start(id int64) Command { return Command{Type: CmdStart, TimerID: id} }

// Pause builds a CmdPause command.
func Pause(id int64) Command { return Command{Type: CmdPause, TimerID: id} }

// Reset builds a CmdReset command.
func Reset(id int64) Command { return Command{Type: CmdReset, TimerID: id} }

// StartAll builds a CmdStartAll command.
func StartAll(category string) Command { return Command{Type: CmdStartAll, Category: category} }

// PauseAll builds a CmdPauseAll command.
func PauseAll(category string) Command { return Command{Type: CmdPauseAll, Category: category} }

// ResetAll builds a CmdResetAll command.
func ResetAll(category string) Command { return Command{Type: CmdResetAll, Category: category} }

// Result is the reply to an executed command. Timers is the collection as
// it stood right after the command; Timer is set for CmdAdd.
type Result struct {
	Timer   timer.Timer
	Timers  []timer.Timer
	Changed bool
	Err     error
}
