package controllers

import (
	"testing"
	"time"

	"stylistapi/metrics"
	"stylistapi/models"
	"stylistapi/services"
	"stylistapi/test"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func setupTestServer(t *testing.T, backends ...services.ModelBackend) (*echo.Echo, *models.SessionContext) {
	t.Helper()
	if len(backends) == 0 {
		backends = []services.ModelBackend{
			&test.MockBackend{Outcomes: []test.MockOutcome{{Text: "You always look great!"}}},
		}
	}
	dispatcher, err := services.NewDispatcher(backends, 0, time.Second, time.Millisecond)
	require.NoError(t, err)
	weather, err := services.NewWeatherCacheService(services.SimulatedWeather{})
	require.NoError(t, err)

	session := models.NewSessionContext()
	e := SetupServer(session, dispatcher, weather, metrics.NewRegistry(), services.DefaultMaxImageEdge)
	return e, session
}
