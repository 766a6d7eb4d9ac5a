// Package notice carries user-facing messages alongside ordinary errors.
//
// Components report failures that the user should see (an on-screen message
// in mpv) by returning *Error. The application unwraps the message with
// Message and shows it; everything else is only logged.
package notice

import (
	"errors"
	"fmt"
	"time"
)

// DefaultDuration matches mpv's osd-duration default.
const DefaultDuration = time.Second

// Error is an error with an on-screen message attached.
type Error struct {
	Message  string
	Duration time.Duration
	Err      error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns a notice with the default duration.
func New(message string) *Error {
	return &Error{Message: message, Duration: DefaultDuration}
}

// Newf formats a notice message.
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap attaches a message to err.
func Wrap(err error, message string) *Error {
	return &Error{Message: message, Duration: DefaultDuration, Err: err}
}

// For sets how long the message stays on screen.
func (e *Error) For(d time.Duration) *Error {
	e.Duration = d
	return e
}

// Message extracts the outermost notice from err.
func Message(err error) (string, time.Duration, bool) {
	var n *Error
	if !errors.As(err, &n) {
		return "", 0, false
	}
	d := n.Duration
	if d <= 0 {
		d = DefaultDuration
	}
	return n.Message, d, true
}
