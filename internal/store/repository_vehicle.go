package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/goatgarage/go-vehicle-logbook/internal/logger"
	"github.com/goatgarage/go-vehicle-logbook/models"
)

// vehicleRepository is the SQLite-backed implementation of
// [VehicleRepository]. It executes all logbook CRUD operations against the
// "vehicles" and "entries" tables using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (vehicle_id, entry_id, plate).
type vehicleRepository struct {
	*DB
	logger *logger.Logger
}

// NewVehicleRepository constructs a [VehicleRepository] backed by the
// provided database connection and logger.
func NewVehicleRepository(db *DB, logger *logger.Logger) VehicleRepository {
	return &vehicleRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *vehicleRepository) InsertVehicle(ctx context.Context, vehicle *models.Vehicle) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertVehicleQuery(vehicle)
	if err != nil {
		log.Err(err).
			Str("func", "vehicleRepository.InsertVehicle").
			Str("vehicle_id", vehicle.ID).
			Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vehicleRepository.InsertVehicle").
			Str("vehicle_id", vehicle.ID).
			Str("plate", vehicle.Plate).
			Msg("failed to insert vehicle")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNothingPersisted
	}

	return nil
}

func (r *vehicleRepository) InsertEntry(ctx context.Context, vehicleID string, entry *models.Entry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertEntryQuery(vehicleID, entry)
	if err != nil {
		log.Err(err).
			Str("func", "vehicleRepository.InsertEntry").
			Str("entry_id", entry.ID).
			Msg("failed to build insert query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vehicleRepository.InsertEntry").
			Str("vehicle_id", vehicleID).
			Str("entry_id", entry.ID).
			Msg("failed to insert entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrNothingPersisted
	}

	return nil
}

func (r *vehicleRepository) DeleteEntry(ctx context.Context, entryID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(entryID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vehicleRepository.DeleteEntry").
			Str("entry_id", entryID).
			Msg("failed to delete entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrEntryNotFound
	}

	return nil
}

func (r *vehicleRepository) DeleteVehicle(ctx context.Context, vehicleID string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteVehicleQuery(vehicleID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vehicleRepository.DeleteVehicle").
			Str("vehicle_id", vehicleID).
			Msg("failed to delete vehicle")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

func (r *vehicleRepository) UpdateVehicle(ctx context.Context, vehicleID, plate, vtype string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateVehicleQuery(vehicleID, plate, vtype)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "vehicleRepository.UpdateVehicle").
			Str("vehicle_id", vehicleID).
			Str("plate", plate).
			Msg("failed to update vehicle")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrVehicleNotFound
	}

	return nil
}

func (r *vehicleRepository) LoadAll(ctx context.Context) ([]*models.Vehicle, error) {
	log := logger.FromContext(ctx)

	vehicles, byID, err := r.loadVehicles(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, selectAllEntries)
	if err != nil {
		log.Err(err).
			Str("func", "vehicleRepository.LoadAll").
			Msg("failed to query entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry models.Entry
		var vehicleID string
		var photo []byte

		if scanErr := rows.Scan(&entry.ID, &vehicleID, &entry.Category, &entry.Note, &photo, &entry.CreatedAt); scanErr != nil {
			log.Err(scanErr).
				Str("func", "vehicleRepository.LoadAll").
				Msg("failed to scan entry row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		entry.Photo = photo

		vehicle, ok := byID[vehicleID]
		if !ok {
			// Orphan entry rows cannot happen with the cascade in place;
			// skip rather than fail the whole load.
			log.Warn().
				Str("func", "vehicleRepository.LoadAll").
				Str("entry_id", entry.ID).
				Str("vehicle_id", vehicleID).
				Msg("entry references unknown vehicle, skipping")
			continue
		}
		vehicle.Entries = append(vehicle.Entries, &entry)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "vehicleRepository.LoadAll").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return vehicles, nil
}

func (r *vehicleRepository) loadVehicles(ctx context.Context) ([]*models.Vehicle, map[string]*models.Vehicle, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, selectAllVehicles)
	if err != nil {
		log.Err(err).
			Str("func", "vehicleRepository.loadVehicles").
			Msg("failed to query vehicles")
		return nil, nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	vehicles := make([]*models.Vehicle, 0, 50)
	byID := make(map[string]*models.Vehicle, 50)

	for rows.Next() {
		var vehicle models.Vehicle
		var rawType sql.NullString

		if scanErr := rows.Scan(&vehicle.ID, &vehicle.Plate, &rawType); scanErr != nil {
			log.Err(scanErr).
				Str("func", "vehicleRepository.loadVehicles").
				Msg("failed to scan vehicle row")
			return nil, nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		vehicle.Type = models.ParseVehicleType(rawType.String)
		vehicles = append(vehicles, &vehicle)
		byID[vehicle.ID] = &vehicle
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return vehicles, byID, nil
}
