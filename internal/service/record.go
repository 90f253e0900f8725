package service

import (
	"context"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/goatgarage/go-vehicle-logbook/internal/logger"
	"github.com/goatgarage/go-vehicle-logbook/internal/store"
	"github.com/goatgarage/go-vehicle-logbook/models"
)

// recordService keeps the authoritative vehicle set in memory and mirrors
// every mutation to the repository on a best-effort basis: a durable write
// is retried once, then logged and tolerated. The session never loses an
// accepted mutation to a storage hiccup; it may lose it to a crash, which
// the log makes visible.
type recordService struct {
	repository store.VehicleRepository
	logger     *logger.Logger

	mu       sync.Mutex
	vehicles []*models.Vehicle
	byID     map[string]*models.Vehicle
	byPlate  map[string]*models.Vehicle
}

// NewRecordService builds a RecordService warmed from the repository.
// A failed initial load is fatal: starting with an empty set over a
// populated database would re-create duplicates on the first write.
func NewRecordService(ctx context.Context, repository store.VehicleRepository, log *logger.Logger) (RecordService, error) {
	loaded, err := repository.LoadAll(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewRecordService").Msg("failed to load vehicles from repository")
		return nil, err
	}

	s := &recordService{
		repository: repository,
		logger:     log,
		vehicles:   loaded,
		byID:       make(map[string]*models.Vehicle, len(loaded)),
		byPlate:    make(map[string]*models.Vehicle, len(loaded)),
	}
	for _, v := range loaded {
		s.byID[v.ID] = v
		s.byPlate[v.Plate] = v
	}

	log.Debug().Int("vehicles", len(loaded)).Msg("record service warmed from repository")
	return s, nil
}

func (s *recordService) FindVehicle(plate string) (*models.Vehicle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.byPlate[models.NormalizePlate(plate)]
	return v, ok
}

func (s *recordService) VehicleByID(id string) (*models.Vehicle, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.byID[id]
	return v, ok
}

func (s *recordService) UpsertEntry(ctx context.Context, plate string, vtype models.VehicleType, entry *models.Entry) (*models.Vehicle, error) {
	normalized := models.NormalizePlate(plate)
	if normalized == "" {
		return nil, ErrEmptyPlate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.byPlate[normalized]; ok {
		// Existing vehicle: its stored type wins over the argument.
		existing.Entries = append(existing.Entries, entry)
		s.persist(ctx, "insert entry", func(ctx context.Context) error {
			return s.repository.InsertEntry(ctx, existing.ID, entry)
		})
		return existing, nil
	}

	vehicle := models.NewVehicle(normalized, vtype)
	vehicle.Entries = append(vehicle.Entries, entry)

	s.vehicles = append(s.vehicles, vehicle)
	s.byID[vehicle.ID] = vehicle
	s.byPlate[vehicle.Plate] = vehicle

	s.persist(ctx, "insert vehicle", func(ctx context.Context) error {
		if err := s.repository.InsertVehicle(ctx, vehicle); err != nil {
			return err
		}
		return s.repository.InsertEntry(ctx, vehicle.ID, entry)
	})

	return vehicle, nil
}

func (s *recordService) DeleteEntry(ctx context.Context, vehicleID, entryID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicle, ok := s.byID[vehicleID]
	if !ok {
		return false, ErrVehicleNotFound
	}

	if !vehicle.RemoveEntry(entryID) {
		return false, ErrEntryNotFound
	}

	if len(vehicle.Entries) > 0 {
		s.persist(ctx, "delete entry", func(ctx context.Context) error {
			return s.repository.DeleteEntry(ctx, entryID)
		})
		return false, nil
	}

	// Last entry gone: the vehicle has no meaningful recent-activity
	// time anymore and is removed with it. The DB cascade drops the
	// entry row together with the vehicle.
	s.removeVehicleLocked(vehicle)
	s.persist(ctx, "delete vehicle", func(ctx context.Context) error {
		return s.repository.DeleteVehicle(ctx, vehicle.ID)
	})

	return true, nil
}

func (s *recordService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	vehicle, ok := s.byID[vehicleID]
	if !ok {
		return ErrVehicleNotFound
	}

	s.removeVehicleLocked(vehicle)
	s.persist(ctx, "delete vehicle", func(ctx context.Context) error {
		return s.repository.DeleteVehicle(ctx, vehicle.ID)
	})

	return nil
}

func (s *recordService) UpdateVehicle(ctx context.Context, vehicleID, plate string, vtype models.VehicleType) error {
	normalized := models.NormalizePlate(plate)
	if normalized == "" {
		return ErrEmptyPlate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	vehicle, ok := s.byID[vehicleID]
	if !ok {
		return ErrVehicleNotFound
	}

	if other, taken := s.byPlate[normalized]; taken && other.ID != vehicle.ID {
		return ErrPlateTaken
	}

	delete(s.byPlate, vehicle.Plate)
	vehicle.Plate = normalized
	vehicle.Type = vtype
	s.byPlate[normalized] = vehicle

	s.persist(ctx, "update vehicle", func(ctx context.Context) error {
		return s.repository.UpdateVehicle(ctx, vehicle.ID, vehicle.Plate, vehicle.Type.String())
	})

	return nil
}

func (s *recordService) Vehicles() []*models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out
}

func (s *recordService) removeVehicleLocked(vehicle *models.Vehicle) {
	delete(s.byID, vehicle.ID)
	delete(s.byPlate, vehicle.Plate)
	for i, v := range s.vehicles {
		if v.ID == vehicle.ID {
			s.vehicles = append(s.vehicles[:i], s.vehicles[i+1:]...)
			break
		}
	}
}

// persist attempts a durable write with one retry. Failures are logged and
// otherwise swallowed: in-memory state has already been updated and stays
// authoritative for the session.
func (s *recordService) persist(ctx context.Context, op string, fn func(context.Context) error) {
	backoff := retry.WithMaxRetries(1, retry.NewFibonacci(100*time.Millisecond))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		return retry.RetryableError(fn(ctx))
	})
	if err != nil {
		s.logger.Err(err).
			Str("func", "recordService.persist").
			Str("op", op).
			Msg("durable write failed, in-memory state kept")
	}
}
