package service

import "errors"

// Domain errors returned by [RecordService] methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrEmptyPlate is returned when a write arrives with a plate that
	// is empty after normalization.
	ErrEmptyPlate = errors.New("plate is empty")

	// ErrVehicleNotFound is returned when an operation targets a vehicle
	// ID that is not in the record set.
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrEntryNotFound is returned when a delete targets an entry ID the
	// vehicle does not hold.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrPlateTaken is returned when a rename would give a vehicle the
	// same normalized plate as another existing vehicle. The rename is
	// rejected instead of silently producing two vehicles with one
	// identity.
	ErrPlateTaken = errors.New("plate already belongs to another vehicle")
)
