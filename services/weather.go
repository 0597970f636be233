package services

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/dgraph-io/ristretto"
	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/store"
	ristretto_store "github.com/eko/gocache/store/ristretto/v4"
	"github.com/rs/zerolog/log"
)

const weatherCacheTTL = 15 * time.Minute

// WeatherProvider resolves a location to a short human-readable weather string
// for the persona header. Real lookups are an external collaborator; the
// default provider is simulated.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, location string) (string, error)
}

// SimulatedWeather derives a stable pseudo-forecast from the location name, so
// the persona line stays deterministic without any network dependency.
type SimulatedWeather struct{}

var simulatedConditions = []string{"Sunny 24°C", "Cloudy 19°C", "Light rain 17°C", "Clear 27°C", "Breezy 21°C"}

func (SimulatedWeather) CurrentWeather(_ context.Context, location string) (string, error) {
	h := fnv.New32a()
	h.Write([]byte(location))
	return simulatedConditions[int(h.Sum32())%len(simulatedConditions)], nil
}

// WeatherCacheService memoizes provider lookups per location with a TTL, so a
// chatty session does not hammer the provider on every prompt build.
type WeatherCacheService struct {
	cache *cache.LoadableCache[string]
}

func NewWeatherCacheService(provider WeatherProvider) (*WeatherCacheService, error) {
	ristrettoCache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     1 << 20,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create ristretto cache: %w", err)
	}
	ristrettoStore := ristretto_store.NewRistretto(ristrettoCache)

	loadFunction := func(ctx context.Context, key any) (string, []store.Option, error) {
		location, ok := key.(string)
		if !ok {
			return "", nil, fmt.Errorf("invalid key type provided to weather cache: expected string, got %T", key)
		}
		log.Debug().Str("location", location).Msg("weather cache miss, querying provider")
		weather, err := provider.CurrentWeather(ctx, location)
		return weather, []store.Option{store.WithExpiration(weatherCacheTTL)}, err
	}

	return &WeatherCacheService{
		cache: cache.NewLoadable[string](loadFunction, cache.New[string](ristrettoStore)),
	}, nil
}

func (s *WeatherCacheService) Current(ctx context.Context, location string) (string, error) {
	if location == "" {
		return "", nil
	}
	return s.cache.Get(ctx, location)
}
