package backend

import (
	"context"
	"errors"
	"fmt"
	"os"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/atomicstack/mpv-context-menu/internal/mpv"
)

// maxRetryInterval caps the delay between connection attempts.
const maxRetryInterval = 5 * time.Second

// DialFunc connects to an mpv socket.
type DialFunc func(ctx context.Context, path string) (*mpv.Client, error)

// Dialer connects to mpv's socket, retrying while mpv is still starting.
type Dialer struct {
	Path string
	Dial DialFunc
	// Interval is the first retry delay. It doubles up to maxRetryInterval.
	Interval time.Duration
	// OnRetry is called with each failed attempt that will be retried.
	OnRetry func(attempt int, err error)
}

// NewDialer returns a dialer whose retry delay starts at interval.
func NewDialer(path string, interval time.Duration) *Dialer {
	return &Dialer{
		Path:     path,
		Dial:     mpv.Dial,
		Interval: interval,
	}
}

// retryPolicy doubles the delay from interval without jitter and never gives
// up on its own; the caller's context bounds the wait.
func retryPolicy(interval time.Duration) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = interval
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = maxRetryInterval
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}

// Connect dials until it succeeds, hits an error retrying cannot fix, or ctx
// ends.
func (d *Dialer) Connect(ctx context.Context) (*mpv.Client, error) {
	if d.Path == "" {
		return nil, errors.New("no mpv socket configured")
	}
	var (
		client  *mpv.Client
		attempt int
		lastErr error
	)
	dial := func() error {
		attempt++
		c, err := d.Dial(ctx, d.Path)
		if err != nil {
			lastErr = err
			if !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		client = c
		return nil
	}
	notify := func(err error, _ time.Duration) {
		if d.OnRetry != nil {
			d.OnRetry(attempt, err)
		}
	}
	err := backoff.RetryNotify(dial, backoff.WithContext(retryPolicy(d.Interval), ctx), notify)
	if err != nil {
		if ctx.Err() != nil && lastErr != nil {
			return nil, fmt.Errorf("connect to mpv: %w (last error: %v)", err, lastErr)
		}
		return nil, err
	}
	return client, nil
}

func retryable(err error) bool {
	if errors.Is(err, os.ErrNotExist) {
		return true
	}
	// A socket left behind by a dead mpv refuses connections until the next
	// instance replaces it.
	return errors.Is(err, syscall.ECONNREFUSED)
}
