package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	ErrMsgBountyNotFound     = "bounty not found"
	ErrMsgBountyNotAvailable = "bounty not available"
	ErrMsgBountyNotActive    = "bounty not active"
	ErrMsgBountyNotReady     = "bounty not ready"
	ErrMsgBountyLocked       = "bounty is locked"
	ErrMsgRewardUnavailable  = "reward option unavailable"
	ErrMsgDeliveryFailed     = "reward delivery failed"
	ErrMsgCatalogInvalid     = "catalog document invalid"
	ErrMsgInvalidInput       = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the engine.
// Wrap with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrBountyNotFound     = errors.New(ErrMsgBountyNotFound)
	ErrBountyNotAvailable = errors.New(ErrMsgBountyNotAvailable)
	ErrBountyNotActive    = errors.New(ErrMsgBountyNotActive)
	ErrBountyNotReady     = errors.New(ErrMsgBountyNotReady)
	ErrBountyLocked       = errors.New(ErrMsgBountyLocked)
	ErrRewardUnavailable  = errors.New(ErrMsgRewardUnavailable)
	ErrDeliveryFailed     = errors.New(ErrMsgDeliveryFailed)
	ErrCatalogInvalid     = errors.New(ErrMsgCatalogInvalid)
	ErrInvalidInput       = errors.New(ErrMsgInvalidInput)
)
