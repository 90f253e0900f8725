package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/goatgarage/go-vehicle-logbook/models"
)

const (
	selectAllVehicles = `SELECT id, plate, type
		FROM vehicles;`

	selectAllEntries = `SELECT id, vehicle_id, category, note, photo, created_at
		FROM entries
		ORDER BY created_at;`
)

func buildInsertVehicleQuery(vehicle *models.Vehicle) (string, []any, error) {
	return sq.Insert("vehicles").
		Columns("id", "plate", "type").
		Values(vehicle.ID, vehicle.Plate, vehicle.Type.String()).
		ToSql()
}

func buildInsertEntryQuery(vehicleID string, entry *models.Entry) (string, []any, error) {
	return sq.Insert("entries").
		Columns("id", "vehicle_id", "category", "note", "photo", "created_at").
		Values(entry.ID, vehicleID, entry.Category, entry.Note, entry.Photo, entry.CreatedAt).
		ToSql()
}

func buildDeleteEntryQuery(entryID string) (string, []any, error) {
	return sq.Delete("entries").
		Where(sq.Eq{"id": entryID}).
		ToSql()
}

func buildDeleteVehicleQuery(vehicleID string) (string, []any, error) {
	return sq.Delete("vehicles").
		Where(sq.Eq{"id": vehicleID}).
		ToSql()
}

func buildUpdateVehicleQuery(vehicleID, plate, vtype string) (string, []any, error) {
	return sq.Update("vehicles").
		Set("plate", plate).
		Set("type", vtype).
		Where(sq.Eq{"id": vehicleID}).
		ToSql()
}
