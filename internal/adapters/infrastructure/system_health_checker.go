package infrastructure

import (
	"context"

	"auraweather.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	databaseChecker ports.HealthChecker
	providerChecker ports.HealthChecker
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker ports.HealthChecker
	ProviderChecker ports.HealthChecker
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		databaseChecker: config.DatabaseChecker,
		providerChecker: config.ProviderChecker,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.databaseChecker != nil {
		results["database"] = s.databaseChecker.Check(ctx)
	}

	if s.providerChecker != nil {
		results["weatherProvider"] = s.providerChecker.Check(ctx)
	}

	return results
}
