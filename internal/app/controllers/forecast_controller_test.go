package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetForecast(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/weatherforecast", NewForecastController().GetForecast)

	recorder := doJSON(t, router, http.MethodGet, "/weatherforecast", nil)

	require.Equal(t, http.StatusOK, recorder.Code)

	var forecasts []WeatherForecast
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &forecasts))
	require.Len(t, forecasts, 5)

	for _, forecast := range forecasts {
		assert.GreaterOrEqual(t, forecast.TemperatureC, -20)
		assert.Less(t, forecast.TemperatureC, 55)
		assert.Equal(t, 32+int(float64(forecast.TemperatureC)/0.5556), forecast.TemperatureF)
		assert.Contains(t, forecastSummaries, forecast.Summary)
		assert.NotEmpty(t, forecast.Date)
	}
}
