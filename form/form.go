// Package form implements the draft / validate / submit pattern shared
// by every create-and-edit flow in the client: an immutable draft
// record updated one field at a time, a pure validator run at submit
// time, and a submission pipeline guarded by a processing flag.
package form

import (
	"context"
	"errors"
	"sync"
)

// ErrBusy is returned when Submit is called while a previous submission
// is still in flight. The processing flag is the sole concurrency
// guard; submissions are never queued.
var ErrBusy = errors.New("submission already in progress")

// ValidationError is a user-facing message detected before any network
// call is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErr(msg string) error {
	return &ValidationError{Message: msg}
}

// Form holds the lifecycle state around a draft: the current value, the
// processing flag, the single visible error string, and whether the
// owning view has closed after a successful submit.
type Form[D any] struct {
	mu       sync.Mutex
	initial  D
	draft    D
	validate func(D) error
	fallback string

	processing bool
	errMsg     string
	closed     bool
}

// New creates a form around an initial draft. validate runs at submit
// time; fallback is the error string shown when a failed submission
// carries no message of its own.
func New[D any](initial D, validate func(D) error, fallback string) *Form[D] {
	return &Form[D]{
		initial:  initial,
		draft:    initial,
		validate: validate,
		fallback: fallback,
	}
}

// Draft returns the current draft value.
func (f *Form[D]) Draft() D {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// Update applies a field setter to the current draft and clears any
// visible error, mirroring input handlers that reset the error on
// every keystroke.
func (f *Form[D]) Update(fn func(D) D) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = fn(f.draft)
	f.errMsg = ""
}

// UpdateErr applies a setter that can itself reject the change (for
// example adding a category with a non-positive amount). On rejection
// the draft is unchanged and the message becomes the visible error.
func (f *Form[D]) UpdateErr(fn func(D) (D, error)) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	next, err := fn(f.draft)
	if err != nil {
		f.errMsg = err.Error()
		return err
	}
	f.draft = next
	f.errMsg = ""
	return nil
}

// Processing reports whether a submission is in flight. Views bind
// their primary action control's disabled state to this.
func (f *Form[D]) Processing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.processing
}

// Err returns the single visible error string, empty when none.
func (f *Form[D]) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}

// Closed reports whether the owning view closed after a successful
// submission.
func (f *Form[D]) Closed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

// Reset restores the initial draft and clears the error, matching the
// cancel/close path. Reopening a modal after a cancelled edit always
// yields the original empty draft.
func (f *Form[D]) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = f.initial
	f.errMsg = ""
	f.closed = false
}

// Submit validates the current draft and, if valid, runs send with it.
// On success the draft resets to its initial value and the form closes.
// On failure the draft is retained so the user can retry, and the error
// message (or the fallback) becomes visible. A second Submit while one
// is in flight returns ErrBusy without touching anything.
func (f *Form[D]) Submit(ctx context.Context, send func(ctx context.Context, draft D) error) error {
	f.mu.Lock()
	if f.processing {
		f.mu.Unlock()
		return ErrBusy
	}

	draft := f.draft
	if err := f.validate(draft); err != nil {
		f.errMsg = err.Error()
		f.mu.Unlock()
		return err
	}

	f.processing = true
	f.errMsg = ""
	f.mu.Unlock()

	err := send(ctx, draft)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.processing = false

	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = f.fallback
		}
		f.errMsg = msg
		return err
	}

	f.draft = f.initial
	f.closed = true
	return nil
}
