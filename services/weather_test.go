package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	calls int
}

func (p *countingProvider) CurrentWeather(ctx context.Context, location string) (string, error) {
	p.calls++
	return "Sunny 24°C", nil
}

func TestWeatherCacheServesRepeatLookupsFromCache(t *testing.T) {
	provider := &countingProvider{}
	svc, err := NewWeatherCacheService(provider)
	require.NoError(t, err)
	ctx := context.Background()

	first, err := svc.Current(ctx, "Hong Kong")
	require.NoError(t, err)
	assert.Equal(t, "Sunny 24°C", first)

	// ristretto admits writes asynchronously
	time.Sleep(50 * time.Millisecond)

	second, err := svc.Current(ctx, "Hong Kong")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.calls)
}

func TestWeatherCacheEmptyLocationShortCircuits(t *testing.T) {
	provider := &countingProvider{}
	svc, err := NewWeatherCacheService(provider)
	require.NoError(t, err)

	weather, err := svc.Current(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, weather)
	assert.Equal(t, 0, provider.calls)
}

func TestSimulatedWeatherIsDeterministic(t *testing.T) {
	var sim SimulatedWeather
	a, err := sim.CurrentWeather(context.Background(), "Hong Kong")
	require.NoError(t, err)
	b, err := sim.CurrentWeather(context.Background(), "Hong Kong")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}
