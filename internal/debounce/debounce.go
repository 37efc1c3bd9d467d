// Package debounce delays a value until input has been quiet for a while.
//
// Every Arm bumps a generation counter and schedules a tick carrying it.
// Ticks from older generations arrive as usual but are dropped by Live, so
// only the most recent Arm ever takes effect.
package debounce

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered when a tick elapses. Check it with Timer.Live.
type FiredMsg struct {
	ID    string
	Gen   int
	Value string
}

type Timer struct {
	id    string
	delay time.Duration
	gen   int
}

// New returns a timer; id tells apart messages of several timers in one program.
func New(id string, delay time.Duration) *Timer {
	return &Timer{id: id, delay: delay}
}

func (t *Timer) Delay() time.Duration { return t.delay }

// Arm restarts the quiet period for value.
func (t *Timer) Arm(value string) tea.Cmd {
	t.gen++
	gen, id := t.gen, t.id
	return tea.Tick(t.delay, func(time.Time) tea.Msg {
		return FiredMsg{ID: id, Gen: gen, Value: value}
	})
}

// Cancel invalidates any pending tick.
func (t *Timer) Cancel() {
	t.gen++
}

// Live reports whether msg belongs to this timer and is the latest Arm.
func (t *Timer) Live(msg FiredMsg) bool {
	return msg.ID == t.id && msg.Gen == t.gen
}
