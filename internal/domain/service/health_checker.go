package service

import "context"

// HealthChecker probes one backing dependency for the health endpoint.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
