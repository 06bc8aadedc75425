package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okanck/studentapi/internal/app/models/dto"
)

type fakePinger struct {
	err error
}

func (p *fakePinger) Ping(context.Context) error {
	return p.err
}

func newHealthRouter(pinger DBPinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health/db", NewHealthController(pinger).CheckDB)
	return router
}

func getHealth(t *testing.T, router *gin.Engine) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/health/db", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestCheckDBHealthy(t *testing.T) {
	router := newHealthRouter(&fakePinger{})

	recorder := getHealth(t, router)

	require.Equal(t, http.StatusOK, recorder.Code)

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, dto.HealthStatusHealthy, resp.Status)
	assert.Empty(t, resp.Error)
}

func TestCheckDBUnhealthy(t *testing.T) {
	router := newHealthRouter(&fakePinger{err: errors.New("dial tcp: connection refused")})

	recorder := getHealth(t, router)

	require.Equal(t, http.StatusServiceUnavailable, recorder.Code)

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
	assert.Equal(t, dto.HealthStatusUnhealthy, resp.Status)
	assert.Contains(t, resp.Error, "connection refused")
}
