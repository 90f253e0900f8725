package service

import (
	"context"

	"github.com/goatgarage/go-vehicle-logbook/models"
)

// RecordService is the single owner of the in-memory vehicle set. All
// mutations go through it, and it alone talks to the durable repository.
type RecordService interface {
	// FindVehicle resolves a plate (normalized first) to an existing
	// vehicle.
	FindVehicle(plate string) (*models.Vehicle, bool)

	// VehicleByID resolves a vehicle by its surrogate ID.
	VehicleByID(id string) (*models.Vehicle, bool)

	// UpsertEntry is the single write path for new entries: it appends
	// to the vehicle matching the normalized plate, or creates a new
	// vehicle around the entry when no such plate is recorded yet. For
	// an existing vehicle the stored type wins and vtype is ignored.
	UpsertEntry(ctx context.Context, plate string, vtype models.VehicleType, entry *models.Entry) (*models.Vehicle, error)

	// DeleteEntry removes an entry by ID. Deleting a vehicle's only
	// entry also deletes the vehicle; the return value reports whether
	// that cascade happened.
	DeleteEntry(ctx context.Context, vehicleID, entryID string) (vehicleRemoved bool, err error)

	// DeleteVehicle removes a vehicle and all its entries.
	DeleteVehicle(ctx context.Context, vehicleID string) error

	// UpdateVehicle renormalizes and rewrites a vehicle's plate and
	// type. Renaming onto a plate held by another vehicle is rejected
	// with ErrPlateTaken.
	UpdateVehicle(ctx context.Context, vehicleID, plate string, vtype models.VehicleType) error

	// Vehicles returns a snapshot of all vehicles for display code to
	// filter and group.
	Vehicles() []*models.Vehicle
}
