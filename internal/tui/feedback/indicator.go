// Package feedback implements the transient "copied" indicator shown after a
// value is written to the clipboard.
//
// An Indicator is owned by the bubbletea model and only mutated from Update.
// Its timer is a tea.Tick whose callback produces an ExpiredMsg and never
// touches state. Each new Copy or Flash bumps a sequence number and closes the
// previous timer's cancel channel, so an old timer can neither fire nor reset
// a newer indicator.
package feedback

import (
	"time"

	"anchovy/internal/clipboard"

	tea "github.com/charmbracelet/bubbletea"
)

// State is the indicator's visible state.
type State int

const (
	Idle State = iota
	Copied
	Failed
)

func (s State) String() string {
	switch s {
	case Copied:
		return "copied"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// ExpiredMsg is delivered when an indicator's delay has elapsed.
type ExpiredMsg struct {
	ID  string
	Seq int
}

// Indicator tracks which item was last copied and for how long to show it.
type Indicator struct {
	id     string
	delay  time.Duration
	state  State
	key    string
	seq    int
	cancel chan struct{}
}

// New returns an idle indicator. id distinguishes the ExpiredMsgs of several
// indicators living in the same model.
func New(id string, delay time.Duration) *Indicator {
	return &Indicator{id: id, delay: delay}
}

// ID returns the indicator's identifier.
func (i *Indicator) ID() string { return i.id }

// Delay returns how long the indicator stays active.
func (i *Indicator) Delay() time.Duration { return i.delay }

// State returns the current state.
func (i *Indicator) State() State { return i.state }

// Key returns the key of the active item, or "" when idle.
func (i *Indicator) Key() string { return i.key }

// Active reports whether the indicator shows anything.
func (i *Indicator) Active() bool { return i.state != Idle }

// IsCopied reports whether key is the item currently shown as copied.
func (i *Indicator) IsCopied(key string) bool {
	return i.state == Copied && i.key == key
}

// IsFailed reports whether the last copy of key failed.
func (i *Indicator) IsFailed(key string) bool {
	return i.state == Failed && i.key == key
}

// Copy writes text to w. On success the indicator enters Copied(key) before
// returning; on failure it enters Failed(key) and the write error is returned.
// Either way the returned command resets the indicator after the delay.
func (i *Indicator) Copy(w clipboard.Writer, text, key string) (tea.Cmd, error) {
	if err := w.WriteAll(text); err != nil {
		return i.enter(Failed, key), err
	}
	return i.enter(Copied, key), nil
}

// Flash enters Copied(key) without touching the clipboard.
func (i *Indicator) Flash(key string) tea.Cmd {
	return i.enter(Copied, key)
}

// Fail enters Failed(key) for an operation that did not go through the
// clipboard, such as a file export.
func (i *Indicator) Fail(key string) tea.Cmd {
	return i.enter(Failed, key)
}

func (i *Indicator) enter(state State, key string) tea.Cmd {
	i.stopTimer()
	i.seq++
	i.state = state
	i.key = key

	i.cancel = make(chan struct{})
	captured := i.cancel
	msg := ExpiredMsg{ID: i.id, Seq: i.seq}

	return tea.Tick(i.delay, func(time.Time) tea.Msg {
		select {
		case <-captured:
			return nil
		default:
			return msg
		}
	})
}

// Update handles an ExpiredMsg addressed to this indicator. It returns true
// when the indicator went back to Idle.
func (i *Indicator) Update(msg tea.Msg) bool {
	expired, ok := msg.(ExpiredMsg)
	if !ok || expired.ID != i.id || expired.Seq != i.seq || i.state == Idle {
		return false
	}
	i.reset()
	return true
}

// Dispose cancels a pending timer and returns to Idle. Call it when the view
// owning the indicator goes away.
func (i *Indicator) Dispose() {
	i.stopTimer()
	i.seq++
	i.reset()
}

func (i *Indicator) reset() {
	i.state = Idle
	i.key = ""
	i.cancel = nil
}

func (i *Indicator) stopTimer() {
	if i.cancel != nil {
		close(i.cancel)
		i.cancel = nil
	}
}
