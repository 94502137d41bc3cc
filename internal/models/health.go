package models

// HealthState is the tri-state connector health derived at request time from
// session liveness. It is never persisted.
type HealthState string

const (
	HealthHealthy   HealthState = "healthy"
	HealthDegraded  HealthState = "degraded"
	HealthUnhealthy HealthState = "unhealthy"
)

// HealthStatus is the health endpoint payload.
type HealthStatus struct {
	Status       HealthState `json:"status"`
	COMConnector string      `json:"comConnector,omitempty"`
	Error        string      `json:"error,omitempty"`
}
