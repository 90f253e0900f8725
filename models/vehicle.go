package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// NormalizePlate trims leading and trailing whitespace and upper-cases the
// plate. Internal formatting is deliberately preserved: "B1234AB" and
// "B 1234 AB" are two distinct plates.
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

// Vehicle is the aggregate of a normalized plate, a type and the entries
// recorded against it. Entries are owned exclusively by the vehicle;
// their slice order carries no meaning, display order is always recomputed
// from entry timestamps.
type Vehicle struct {
	ID      string
	Plate   string // always stored normalized
	Type    VehicleType
	Entries []*Entry
}

// NewVehicle creates a Vehicle with a normalized plate and no entries.
// A vehicle without entries must not survive outside the single write path
// that appends the first entry right after creation.
func NewVehicle(plate string, vtype VehicleType) *Vehicle {
	return &Vehicle{
		ID:    uuid.NewString(),
		Plate: NormalizePlate(plate),
		Type:  vtype,
	}
}

// MostRecentEntryTime returns the timestamp of the newest entry, or the
// current time when the vehicle has no entries. The empty case must not
// happen in steady state because a vehicle losing its last entry is
// deleted with it.
func (v *Vehicle) MostRecentEntryTime() time.Time {
	if len(v.Entries) == 0 {
		return time.Now()
	}
	most := v.Entries[0].CreatedAt
	for _, e := range v.Entries[1:] {
		if e.CreatedAt.After(most) {
			most = e.CreatedAt
		}
	}
	return most
}

// DayBucket returns the calendar start of day, in loc, of the most recent
// entry time. Vehicles sharing a bucket are grouped together on the
// dashboard.
func (v *Vehicle) DayBucket(loc *time.Location) time.Time {
	return StartOfDay(v.MostRecentEntryTime(), loc)
}

// EntryByID finds an entry by its surrogate ID.
func (v *Vehicle) EntryByID(id string) (*Entry, bool) {
	for _, e := range v.Entries {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// RemoveEntry deletes the entry with the given ID and reports whether it
// was present.
func (v *Vehicle) RemoveEntry(id string) bool {
	for i, e := range v.Entries {
		if e.ID == id {
			v.Entries = append(v.Entries[:i], v.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// StartOfDay truncates t to midnight in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
