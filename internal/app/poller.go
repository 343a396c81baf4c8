package app

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// messagePollInterval is the fixed cadence of the message refresh loop.
const messagePollInterval = 2 * time.Second

// PollTickMsg triggers a message refresh cycle for one room activation.
// The generation stamps the tick with the activation that scheduled it;
// a tick that outlives its activation is dropped and never rescheduled,
// which is what tears the poll loop down.
type PollTickMsg struct {
	Gen  int
	Time time.Time
}

// PollTick returns a command that sends a PollTickMsg after the poll interval
func PollTick(gen int) tea.Cmd {
	return tea.Tick(messagePollInterval, func(t time.Time) tea.Msg {
		return PollTickMsg{Gen: gen, Time: t}
	})
}
