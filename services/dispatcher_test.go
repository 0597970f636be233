package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedOutcome struct {
	text string
	err  error
}

type scriptedBackend struct {
	name     string
	outcomes []scriptedOutcome
	calls    int
}

func (b *scriptedBackend) Name() string { return b.name }

func (b *scriptedBackend) Complete(ctx context.Context, req *ModelRequest) (string, error) {
	idx := b.calls
	b.calls++
	if idx >= len(b.outcomes) {
		idx = len(b.outcomes) - 1
	}
	if idx < 0 {
		return "", nil
	}
	return b.outcomes[idx].text, b.outcomes[idx].err
}

func newTestDispatcher(t *testing.T, maxAttempts int, backends ...ModelBackend) *Dispatcher {
	d, err := NewDispatcher(backends, maxAttempts, time.Second, time.Millisecond)
	require.NoError(t, err)
	return d
}

func TestNewDispatcherRejectsEmptyBackendList(t *testing.T) {
	_, err := NewDispatcher(nil, 3, time.Second, time.Millisecond)
	assert.Error(t, err)
}

func TestDispatchFirstBackendSucceeds(t *testing.T) {
	a := &scriptedBackend{name: "a", outcomes: []scriptedOutcome{{text: "wear the blazer"}}}
	b := &scriptedBackend{name: "b"}
	d := newTestDispatcher(t, 0, a, b)

	result := d.Dispatch(context.Background(), &ModelRequest{Text: "what to wear"})
	assert.Equal(t, "wear the blazer", result.Text)
	assert.Equal(t, "a", result.Backend)
	assert.Equal(t, 1, result.Attempts)
	assert.False(t, result.Degraded)
	assert.Equal(t, 0, b.calls)
}

func TestDispatchFallsThroughToSecondBackend(t *testing.T) {
	a := &scriptedBackend{name: "a", outcomes: []scriptedOutcome{{err: fmt.Errorf("rate limited")}}}
	b := &scriptedBackend{name: "b", outcomes: []scriptedOutcome{{text: "the denim jacket"}}}
	d := newTestDispatcher(t, 0, a, b)

	result := d.Dispatch(context.Background(), &ModelRequest{Text: "what to wear"})
	assert.Equal(t, "the denim jacket", result.Text)
	assert.Equal(t, "b", result.Backend)
	assert.Equal(t, 2, result.Attempts)
	assert.False(t, result.Degraded)
}

func TestDispatchEmptyCompletionIsSoftFailure(t *testing.T) {
	a := &scriptedBackend{name: "a", outcomes: []scriptedOutcome{{text: "  \n"}, {text: "recovered"}}}
	d := newTestDispatcher(t, 3, a)

	result := d.Dispatch(context.Background(), &ModelRequest{Text: "hello"})
	assert.Equal(t, "recovered", result.Text)
	assert.Equal(t, 2, result.Attempts)
	assert.False(t, result.Degraded)
}

func TestDispatchRoundRobinExhaustion(t *testing.T) {
	fail := scriptedOutcome{err: fmt.Errorf("upstream down")}
	a := &scriptedBackend{name: "a", outcomes: []scriptedOutcome{fail}}
	b := &scriptedBackend{name: "b", outcomes: []scriptedOutcome{fail}}
	d := newTestDispatcher(t, 4, a, b)

	result := d.Dispatch(context.Background(), &ModelRequest{Text: "hello"})
	assert.True(t, result.Degraded)
	assert.Equal(t, DegradedMessage, result.Text)
	assert.Equal(t, 4, result.Attempts)
	assert.Equal(t, 2, a.calls)
	assert.Equal(t, 2, b.calls)
}

func TestDispatchHonorsCancellationBetweenAttempts(t *testing.T) {
	a := &scriptedBackend{name: "a", outcomes: []scriptedOutcome{{err: fmt.Errorf("upstream down")}}}
	d, err := NewDispatcher([]ModelBackend{a}, 5, time.Second, 50*time.Millisecond)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := d.Dispatch(ctx, &ModelRequest{Text: "hello"})
	assert.True(t, result.Degraded)
	assert.Equal(t, DegradedMessage, result.Text)
	assert.Equal(t, 1, result.Attempts)
}
