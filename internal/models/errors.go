package models

import "errors"

var (
	// ErrInvalidConfiguration is returned when a scenario or config value
	// would make a run meaningless (zero drivers, negative horizon, ...).
	// It is surfaced before any event is scheduled.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidParameter is returned by the variate generator for a
	// non-positive rate. Configuration validation should make this unreachable.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEmptyQueue indicates the run loop tried to pop an exhausted event
	// queue. This is a scheduler bug, not a user error.
	ErrEmptyQueue = errors.New("event queue is empty")
)
