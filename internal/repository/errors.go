package repository

import "errors"

var (
	// ErrStationNotFound represents missing station rows.
	ErrStationNotFound = errors.New("station not found")
	// ErrUserNotFound represents missing user rows.
	ErrUserNotFound = errors.New("user not found")
	// ErrReservationConflict means the requested slot overlaps a
	// non-terminal reservation on the same station.
	ErrReservationConflict = errors.New("reservation slot conflict")
)
