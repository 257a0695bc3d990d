// Package viewmodel contains the state holders behind the auction screens: the auction
// list, the detail of one auction and the create form. Each holder publishes its state
// through an observable.Value and runs at most one user action at a time.
package viewmodel

import (
	"context"
	"sync"
	"time"

	"auction-client/internal/observable"
	"auction-client/utils"

	"golang.org/x/sync/semaphore"
)

const DefaultMessageTTL = 3 * time.Second

// Phase is the step of the idle → loading → success|error → idle cycle
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseError:
		return "error"
	default:
		return "idle"
	}
}

// Status describes the outcome of the last action of a screen
type Status struct {
	Phase   Phase
	Error   string
	Success string
}

// Loading reports whether an action is in flight
func (s Status) Loading() bool {
	return s.Phase == PhaseLoading
}

// Options tunes a state holder
type Options struct {
	// MessageTTL is how long success and error messages stay before the holder returns to idle
	MessageTTL time.Duration
}

func (o Options) messageTTL() time.Duration {
	if o.MessageTTL <= 0 {
		return DefaultMessageTTL
	}
	return o.MessageTTL
}

// holder is the machinery shared by every screen state S
type holder[S any] struct {
	name   string
	ctx    context.Context
	cancel context.CancelFunc
	state  *observable.Value[S]
	status func(*S) *Status
	guard  *semaphore.Weighted
	ttl    time.Duration

	timerMu sync.Mutex
	timer   *time.Timer
	msgGen  uint64
}

func newHolder[S any](parent context.Context, name string, initial S, status func(*S) *Status, opts Options) *holder[S] {
	ctx, cancel := context.WithCancel(parent)
	return &holder[S]{
		name:   name,
		ctx:    ctx,
		cancel: cancel,
		state:  observable.NewValue(initial),
		status: status,
		guard:  semaphore.NewWeighted(1),
		ttl:    opts.messageTTL(),
	}
}

// State returns a snapshot of the current state
func (h *holder[S]) State() S {
	return h.state.Get()
}

// Subscribe returns a channel receiving the current state and every later change
func (h *holder[S]) Subscribe() <-chan S {
	return h.state.Subscribe()
}

// Unsubscribe detaches a channel obtained from Subscribe
func (h *holder[S]) Unsubscribe(ch <-chan S) {
	h.state.Unsubscribe(ch)
}

// Busy reports whether an action is in flight
func (h *holder[S]) Busy() bool {
	if !h.guard.TryAcquire(1) {
		return true
	}
	h.guard.Release(1)
	return false
}

// Close abandons in-flight actions and detaches all subscribers.
// Nothing is published after Close returns.
func (h *holder[S]) Close() {
	h.cancel()

	h.timerMu.Lock()
	if h.timer != nil {
		h.timer.Stop()
	}
	h.timerMu.Unlock()

	h.state.Close()
}

// ClearError drops the error message before its display interval ends
func (h *holder[S]) ClearError() {
	h.mutate(h.ctx, func(s *S) {
		st := h.status(s)
		st.Error = ""
		if st.Phase == PhaseError {
			st.Phase = PhaseIdle
		}
	})
}

// ClearSuccess drops the success message before its display interval ends
func (h *holder[S]) ClearSuccess() {
	h.mutate(h.ctx, func(s *S) {
		st := h.status(s)
		st.Success = ""
		if st.Phase == PhaseSuccess {
			st.Phase = PhaseIdle
		}
	})
}

// run executes one user action. It is a no-op while another action is in flight.
func (h *holder[S]) run(ctx context.Context, action string, fn func(ctx context.Context)) {
	if !h.guard.TryAcquire(1) {
		utils.Debug(h.name+": action ignored, another one is in flight", map[string]any{"action": action})
		return
	}
	defer h.guard.Release(1)

	ctx, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(h.ctx, cancel)
	defer func() {
		stop()
		cancel()
	}()

	if !h.mutate(ctx, func(s *S) {
		*h.status(s) = Status{Phase: PhaseLoading}
	}) {
		return
	}

	fn(ctx)

	// an action that ended without a message goes back to idle
	h.mutate(h.ctx, func(s *S) {
		if st := h.status(s); st.Phase == PhaseLoading {
			st.Phase = PhaseIdle
		}
	})
}

// alive reports whether results of the action bound to ctx may still be published
func (h *holder[S]) alive(ctx context.Context) bool {
	return ctx.Err() == nil && h.ctx.Err() == nil
}

// mutate applies fn to the state unless the action or the holder is gone
func (h *holder[S]) mutate(ctx context.Context, fn func(s *S)) bool {
	if !h.alive(ctx) {
		return false
	}
	h.state.Update(func(s S) S {
		fn(&s)
		return s
	})
	return true
}

// fail ends the action with a transient error message
func (h *holder[S]) fail(ctx context.Context, message string) {
	if h.mutate(ctx, func(s *S) {
		*h.status(s) = Status{Phase: PhaseError, Error: message}
	}) {
		h.scheduleClear()
	}
}

// succeed ends the action with a transient success message
func (h *holder[S]) succeed(ctx context.Context, message string) {
	if h.mutate(ctx, func(s *S) {
		*h.status(s) = Status{Phase: PhaseSuccess, Success: message}
	}) {
		h.scheduleClear()
	}
}

// scheduleClear returns the holder to idle once the message display interval is over.
// Only the timer of the latest message clears anything.
func (h *holder[S]) scheduleClear() {
	h.timerMu.Lock()
	defer h.timerMu.Unlock()

	h.msgGen++
	gen := h.msgGen
	if h.timer != nil {
		h.timer.Stop()
	}
	h.timer = time.AfterFunc(h.ttl, func() {
		h.timerMu.Lock()
		latest := gen == h.msgGen
		h.timerMu.Unlock()
		if !latest {
			return
		}

		h.mutate(h.ctx, func(s *S) {
			st := h.status(s)
			if st.Phase == PhaseSuccess || st.Phase == PhaseError {
				*st = Status{Phase: PhaseIdle}
			}
		})
	})
}
