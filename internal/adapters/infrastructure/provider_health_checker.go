package infrastructure

import (
	"context"

	"auraweather.app/internal/core/weather"
	"auraweather.app/internal/ports"
)

// ProviderHealthChecker implements weather provider health checking
type ProviderHealthChecker struct {
	provider weather.Provider
}

// NewProviderHealthChecker creates a new weather provider health checker
func NewProviderHealthChecker(provider weather.Provider) *ProviderHealthChecker {
	return &ProviderHealthChecker{provider: provider}
}

// Check verifies the weather provider is available
func (p *ProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherProvider",
		Status:    "healthy",
		Details:   make(map[string]interface{}),
	}

	if p.provider == nil {
		status.Status = "unhealthy"
		status.Error = "weather provider is not available"
		status.Details["connected"] = false
		return status
	}

	status.Details["connected"] = true
	status.Details["provider"] = p.provider.ProviderName()
	return status
}
