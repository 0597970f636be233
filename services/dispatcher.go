package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"
)

// DegradedMessage is the only thing a caller sees when every candidate fails.
// It is chat text, not an error; the caller renders it directly.
const DegradedMessage = "The styling line is busy right now, please try again in a moment."

// ModelBackend is one hosted completion endpoint. Complete returns the raw
// completion text; an empty string with a nil error is a valid outcome (the
// dispatcher treats it as a soft failure).
type ModelBackend interface {
	Name() string
	Complete(ctx context.Context, req *ModelRequest) (string, error)
}

type DispatchResult struct {
	Text     string
	Backend  string
	Attempts int
	Degraded bool
}

// Dispatcher walks an ordered candidate list of backends, round-robining when
// maxAttempts exceeds the list length. Free hosted endpoints saturate often;
// bounding every attempt and recovering every failure locally turns that into
// an always-answering operation with a known worst case of
// maxAttempts * (attemptTimeout + retryDelay).
type Dispatcher struct {
	backends       []ModelBackend
	maxAttempts    int
	attemptTimeout time.Duration
	retryDelay     time.Duration
}

const (
	DefaultAttemptTimeout = 20 * time.Second
	DefaultRetryDelay     = 1 * time.Second
)

func NewDispatcher(backends []ModelBackend, maxAttempts int, attemptTimeout, retryDelay time.Duration) (*Dispatcher, error) {
	if len(backends) == 0 {
		return nil, fmt.Errorf("dispatcher needs at least one backend")
	}
	if maxAttempts <= 0 {
		maxAttempts = len(backends)
	}
	if attemptTimeout <= 0 {
		attemptTimeout = DefaultAttemptTimeout
	}
	if retryDelay < 0 {
		retryDelay = DefaultRetryDelay
	}
	return &Dispatcher{
		backends:       backends,
		maxAttempts:    maxAttempts,
		attemptTimeout: attemptTimeout,
		retryDelay:     retryDelay,
	}, nil
}

// Dispatch never returns an error: either some candidate produced usable text,
// or the result carries the fixed degraded message. Context cancellation is
// honored between attempts.
func (d *Dispatcher) Dispatch(ctx context.Context, req *ModelRequest) *DispatchResult {
	for attempt := 0; attempt < d.maxAttempts; attempt++ {
		backend := d.backends[attempt%len(d.backends)]

		attemptCtx, cancel := context.WithTimeout(ctx, d.attemptTimeout)
		text, err := backend.Complete(attemptCtx, req)
		cancel()

		switch {
		case err != nil:
			log.Warn().
				Err(err).
				Str("backend", backend.Name()).
				Int("attempt", attempt+1).
				Msg("model attempt failed")
		case strings.TrimSpace(text) == "":
			log.Warn().
				Str("backend", backend.Name()).
				Int("attempt", attempt+1).
				Msg("model returned empty completion")
		default:
			log.Info().
				Str("backend", backend.Name()).
				Int("attempt", attempt+1).
				Msg("model attempt succeeded")
			return &DispatchResult{Text: text, Backend: backend.Name(), Attempts: attempt + 1}
		}

		if attempt == d.maxAttempts-1 {
			break
		}
		select {
		case <-ctx.Done():
			// The caller gave up while we were waiting to retry. Still no
			// error: degrade like any other exhaustion.
			return &DispatchResult{Text: DegradedMessage, Attempts: attempt + 1, Degraded: true}
		case <-time.After(d.retryDelay):
		}
	}

	sentry.CaptureException(fmt.Errorf("all %d model attempts exhausted across %d backends", d.maxAttempts, len(d.backends)))
	return &DispatchResult{Text: DegradedMessage, Attempts: d.maxAttempts, Degraded: true}
}
