package engine

import "errors"

// Typed failures returned by engine operations. The facade maps them to
// HTTP status codes with errors.Is; nothing is raised across the boundary.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrAlreadyPaid       = errors.New("bill already paid")
	ErrNothingToBill     = errors.New("no orders to bill")
	ErrInvalidAmount     = errors.New("invalid amount")
)
