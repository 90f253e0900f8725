package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goatgarage/go-vehicle-logbook/models"
)

func entryAt(category, note string, at time.Time) *models.Entry {
	return models.NewEntry(category, note, at)
}

func TestEntriesMatching_EmptyQueryIsIdentity(t *testing.T) {
	entries := []*models.Entry{
		entryAt("Oil", "", time.Now()),
		entryAt("Brakes", "front pads", time.Now()),
	}

	got := EntriesMatching(entries, "")
	assert.Equal(t, entries, got)
}

func TestEntriesMatching_Idempotent(t *testing.T) {
	entries := []*models.Entry{
		entryAt("Oil change", "synthetic", time.Now()),
		entryAt("Brakes", "front pads", time.Now()),
		entryAt("Wash", "", time.Now()),
	}

	once := EntriesMatching(entries, "oil")
	twice := EntriesMatching(once, "oil")
	assert.Equal(t, once, twice)
}

func TestEntriesMatching_SearchesCategoryAndNote(t *testing.T) {
	byCategory := entryAt("Oil change", "", time.Now())
	byNote := entryAt("Service", "changed oil filter", time.Now())
	neither := entryAt("Wash", "exterior only", time.Now())

	got := EntriesMatching([]*models.Entry{byCategory, byNote, neither}, "OIL")

	require.Len(t, got, 2)
	assert.Contains(t, got, byCategory)
	assert.Contains(t, got, byNote)
}

func TestEntriesInRange_InactivePassesEverything(t *testing.T) {
	entries := []*models.Entry{
		entryAt("Oil", "", time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
		entryAt("Brakes", "", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
	}

	// Bounds that would exclude everything are ignored while inactive.
	r := DateRange{
		Start: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2030, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	got := EntriesInRange(entries, r)
	assert.Equal(t, entries, got)
}

func TestEntriesInRange_InclusiveBounds(t *testing.T) {
	start := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 22, 0, 0, 0, 0, time.UTC)

	onStart := entryAt("A", "", start)
	inside := entryAt("B", "", start.Add(24*time.Hour))
	onEnd := entryAt("C", "", end)
	before := entryAt("D", "", start.Add(-time.Second))
	after := entryAt("E", "", end.Add(time.Second))

	got := EntriesInRange(
		[]*models.Entry{onStart, inside, onEnd, before, after},
		DateRange{Start: start, End: end, Active: true},
	)

	assert.Equal(t, []*models.Entry{onStart, inside, onEnd}, got)
}

func TestVehiclesMatching_PlateSubstring(t *testing.T) {
	v1 := models.NewVehicle("B 1234 AB", models.TypeCar)
	v2 := models.NewVehicle("XYZ789", models.TypeBike)

	got := VehiclesMatching([]*models.Vehicle{v1, v2}, "1234")
	assert.Equal(t, []*models.Vehicle{v1}, got)

	got = VehiclesMatching([]*models.Vehicle{v1, v2}, "xyz")
	assert.Equal(t, []*models.Vehicle{v2}, got)

	got = VehiclesMatching([]*models.Vehicle{v1, v2}, "")
	assert.Len(t, got, 2)
}

func TestVehiclesOfType(t *testing.T) {
	car := models.NewVehicle("B 1 A", models.TypeCar)
	bike := models.NewVehicle("B 2 B", models.TypeBike)
	truck := models.NewVehicle("B 3 C", models.ParseVehicleType("Truck"))

	all := []*models.Vehicle{car, bike, truck}

	assert.Equal(t, []*models.Vehicle{car}, VehiclesOfType(all, models.TypeCar))
	assert.Equal(t, []*models.Vehicle{bike}, VehiclesOfType(all, models.TypeBike))
	// Zero type is the "all types" wildcard.
	assert.Equal(t, all, VehiclesOfType(all, models.VehicleType{}))
}

func TestFiltersCommute(t *testing.T) {
	start := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)
	r := DateRange{Start: start, End: start.Add(48 * time.Hour), Active: true}

	entries := []*models.Entry{
		entryAt("Oil change", "", start.Add(time.Hour)),
		entryAt("Oil change", "", start.Add(100 * time.Hour)),
		entryAt("Wash", "", start.Add(2 * time.Hour)),
	}

	dateThenText := EntriesMatching(EntriesInRange(entries, r), "oil")
	textThenDate := EntriesInRange(EntriesMatching(entries, "oil"), r)

	assert.Equal(t, dateThenText, textThenDate)
}
