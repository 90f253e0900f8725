package store

import (
	"context"

	"github.com/goatgarage/go-vehicle-logbook/models"
)

// VehicleRepository is the durable object store behind the in-memory
// record service. The service treats its own state as authoritative for
// the session; the repository only has to make a best-effort attempt at
// keeping the database in step.
type VehicleRepository interface {
	// InsertVehicle persists a new vehicle row. Entries are persisted
	// separately through InsertEntry.
	InsertVehicle(ctx context.Context, vehicle *models.Vehicle) error

	// InsertEntry persists one entry under an existing vehicle.
	InsertEntry(ctx context.Context, vehicleID string, entry *models.Entry) error

	// DeleteEntry removes one entry row by its surrogate ID.
	DeleteEntry(ctx context.Context, entryID string) error

	// DeleteVehicle removes a vehicle and, via cascade, all its entries.
	DeleteVehicle(ctx context.Context, vehicleID string) error

	// UpdateVehicle rewrites the plate and type of an existing vehicle.
	UpdateVehicle(ctx context.Context, vehicleID, plate, vtype string) error

	// LoadAll reads every vehicle with its entries, used once at startup
	// to warm the in-memory record service.
	LoadAll(ctx context.Context) ([]*models.Vehicle, error)
}
