package ecs

import "errors"

// Sentinel errors returned by registry and system operations. All of these
// signal contract violations by the caller, not transient conditions, so
// they are never retried internally.
var (
	// ErrCapacityExceeded is returned when a new component type would be
	// assigned an id beyond the signature's bit capacity.
	ErrCapacityExceeded = errors.New("ecs: component type capacity exceeded")

	// ErrComponentNotPresent is returned by GetComponent when the entity's
	// signature does not carry the requested component type.
	ErrComponentNotPresent = errors.New("ecs: component not present on entity")

	// ErrSystemNotRegistered is returned by GetSystem and RemoveSystem for
	// a system type that was never added to the registry.
	ErrSystemNotRegistered = errors.New("ecs: system not registered")

	// ErrEntityNotAlive is returned for operations on an entity that was
	// destroyed or never dispatched by this registry.
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
)
