package filter

import (
	"strings"
	"time"

	"github.com/goatgarage/go-vehicle-logbook/models"
)

// DateRange is an inclusive timestamp window with an explicit activation
// toggle. The toggle, not the presence of bounds, decides whether the
// range applies: an inactive range passes everything regardless of the
// stored Start/End values.
type DateRange struct {
	Start  time.Time
	End    time.Time
	Active bool
}

// EntriesInRange keeps entries whose timestamp satisfies
// Start <= CreatedAt <= End. When r.Active is false the input is returned
// unchanged.
func EntriesInRange(entries []*models.Entry, r DateRange) []*models.Entry {
	if !r.Active {
		return entries
	}

	out := make([]*models.Entry, 0, len(entries))
	for _, e := range entries {
		if e.CreatedAt.Before(r.Start) || e.CreatedAt.After(r.End) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// EntriesMatching keeps entries whose category or note contains query,
// case-insensitively. An empty query passes everything.
func EntriesMatching(entries []*models.Entry, query string) []*models.Entry {
	if query == "" {
		return entries
	}

	q := strings.ToLower(query)
	out := make([]*models.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Category), q) ||
			strings.Contains(strings.ToLower(e.Note), q) {
			out = append(out, e)
		}
	}
	return out
}

// VehiclesMatching keeps vehicles whose plate contains query,
// case-insensitively. An empty query passes everything.
func VehiclesMatching(vehicles []*models.Vehicle, query string) []*models.Vehicle {
	if query == "" {
		return vehicles
	}

	q := strings.ToLower(query)
	out := make([]*models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if strings.Contains(strings.ToLower(v.Plate), q) {
			out = append(out, v)
		}
	}
	return out
}

// VehiclesOfType keeps vehicles of the given type. The zero VehicleType
// means "all types" and passes everything.
func VehiclesOfType(vehicles []*models.Vehicle, t models.VehicleType) []*models.Vehicle {
	if t.IsZero() {
		return vehicles
	}

	out := make([]*models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if v.Type == t {
			out = append(out, v)
		}
	}
	return out
}
