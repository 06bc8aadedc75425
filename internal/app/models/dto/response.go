package dto

// HealthStatus values reported by the health endpoint.
const (
	HealthStatusHealthy   = "Healthy"
	HealthStatusUnhealthy = "Unhealthy"
)

// HealthResponse reports data store reachability
type HealthResponse struct {
	Status string `json:"status" example:"Healthy"`
	Error  string `json:"error,omitempty"`
}

// PingResponse is the response of the protected test endpoint
type PingResponse struct {
	OK bool `json:"ok" example:"true"`
}
