// Package service runs long-lived subsystems (audio output, telemetry server)
// in dependency order with rollback on failure.
package service

// Service defines the lifecycle interface for infrastructure subsystems
//
// Lifecycle:
//  1. Construction
//  2. Init(args...) - configuration from parsed flags and config file
//  3. Start() - open devices, bind listeners, launch goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must Init before this one
	Dependencies() []string

	// Init configures the service from optional service-specific args
	Init(args ...any) error

	// Start begins service operation, called after all services have initialized
	Start() error

	// Stop halts service operation, must be idempotent
	Stop() error
}
