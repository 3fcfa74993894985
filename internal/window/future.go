package window

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// FutureMsg delivers a completed future's result to the event loop.
type FutureMsg struct {
	Tag   string
	Value any
	Err   error
}

// Future carries one result from a background goroutine into the event
// loop. Background work never touches widgets directly; it completes a
// future and the loop applies the result when the message arrives.
type Future struct {
	tag    string
	once   sync.Once
	result chan FutureMsg
}

// NewFuture creates an incomplete future.
func NewFuture(tag string) *Future {
	return &Future{tag: tag, result: make(chan FutureMsg, 1)}
}

// Tag returns the future's tag.
func (f *Future) Tag() string { return f.tag }

// Complete resolves the future. Later calls are no-ops.
func (f *Future) Complete(value any, err error) {
	f.once.Do(func() {
		f.result <- FutureMsg{Tag: f.tag, Value: value, Err: err}
	})
}

// Await returns a command that blocks until the future completes and
// delivers its FutureMsg.
func (f *Future) Await() tea.Cmd {
	return func() tea.Msg { return <-f.result }
}

// Go runs fn in a background goroutine and returns the command the caller
// schedules to receive the result.
func Go(tag string, fn func() (any, error)) tea.Cmd {
	f := NewFuture(tag)
	go func() {
		f.Complete(fn())
	}()
	return f.Await()
}
