package controllers

import (
	"math/rand"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// forecastSummaries are the canned descriptions for the demo endpoint.
var forecastSummaries = []string{
	"Freezing", "Bracing", "Chilly", "Cool", "Mild",
	"Warm", "Balmy", "Hot", "Sweltering", "Scorching",
}

// WeatherForecast is a demo payload with no business meaning
type WeatherForecast struct {
	Date         string `json:"date" example:"2025-04-24"`
	TemperatureC int    `json:"temperatureC" example:"21"`
	TemperatureF int    `json:"temperatureF" example:"69"`
	Summary      string `json:"summary" example:"Mild"`
}

// ForecastController serves the unauthenticated demo endpoint
type ForecastController struct{}

// NewForecastController creates a new ForecastController
func NewForecastController() *ForecastController {
	return &ForecastController{}
}

// GetForecast returns five random weather forecasts
// @Summary Demo weather forecast
// @Description Returns random forecast data; kept as an unprotected demo endpoint
// @Tags demo
// @Produce json
// @Success 200 {array} controllers.WeatherForecast "Forecasts"
// @Router /weatherforecast [get]
func (c *ForecastController) GetForecast(ctx *gin.Context) {
	forecasts := make([]WeatherForecast, 0, 5)
	for i := 1; i <= 5; i++ {
		tempC := rand.Intn(75) - 20
		forecasts = append(forecasts, WeatherForecast{
			Date:         time.Now().AddDate(0, 0, i).Format("2006-01-02"),
			TemperatureC: tempC,
			TemperatureF: 32 + int(float64(tempC)/0.5556),
			Summary:      forecastSummaries[rand.Intn(len(forecastSummaries))],
		})
	}

	ctx.JSON(http.StatusOK, forecasts)
}
