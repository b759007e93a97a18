// Package feedback holds the transient "saved" confirmation shown after a
// successful log action. The message clears itself after a fixed delay; a
// newer confirmation supersedes any pending reset, so a rapid second log
// action is never blocked by the first one's timer.
package feedback

import (
	"sync"
	"time"
)

// ResetDelay is how long a confirmation stays visible.
const ResetDelay = 2 * time.Second

// afterFunc is a package-level var to allow test injection.
var afterFunc = time.AfterFunc

// Banner is a self-clearing confirmation message.
type Banner struct {
	mu  sync.Mutex
	msg string
	gen uint64
}

// New creates an empty Banner.
func New() *Banner {
	return &Banner{}
}

// Show sets the confirmation message and schedules the reset. Only the
// newest Show's reset takes effect; earlier pending timers fire as no-ops.
func (b *Banner) Show(msg string) {
	b.mu.Lock()
	b.msg = msg
	b.gen++
	gen := b.gen
	b.mu.Unlock()

	afterFunc(ResetDelay, func() {
		b.clearIf(gen)
	})
}

// Message returns the current confirmation, or "" when none is showing.
func (b *Banner) Message() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.msg
}

// Clear hides the confirmation immediately.
func (b *Banner) Clear() {
	b.mu.Lock()
	b.msg = ""
	b.mu.Unlock()
}

// clearIf hides the confirmation only if no newer Show happened since the
// timer was scheduled.
func (b *Banner) clearIf(gen uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.gen == gen {
		b.msg = ""
	}
}
