package carRepo

import (
	"errors"

	"drivehub/models"
)

// ErrNotFound is returned when no car matches the given id.
var ErrNotFound = errors.New("car not found")

// CarRepository defines persistence operations for cars consumed by the
// booking lifecycle. Car CRUD itself is owned by another service.
type CarRepository interface {
	GetByID(id string) (*models.Car, error)
	// SetAvailability unconditionally writes the availability flag.
	// Used on the cancellation path where the release is best-effort.
	SetAvailability(id, state string) error
}
