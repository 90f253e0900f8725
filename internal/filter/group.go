package filter

import (
	"sort"
	"time"

	"github.com/goatgarage/go-vehicle-logbook/models"
)

// VehicleGroup is one dashboard section: all vehicles whose most recent
// activity falls on the same calendar day.
type VehicleGroup struct {
	Day      time.Time
	Vehicles []*models.Vehicle
}

// EntryGroup is one detail-view section: all of a vehicle's entries
// recorded on the same calendar day.
type EntryGroup struct {
	Day     time.Time
	Entries []*models.Entry
}

// GroupVehiclesByDay buckets vehicles by the start of day (in loc) of
// their most recent entry time. Groups are ordered newest day first;
// within a group, vehicles are ordered by most recent entry time
// descending. An empty input yields an empty result, never a single
// empty bucket.
func GroupVehiclesByDay(vehicles []*models.Vehicle, loc *time.Location) []VehicleGroup {
	if len(vehicles) == 0 {
		return nil
	}

	// Most-recent times are captured once so sorting and bucketing see
	// consistent values even for entry-less vehicles, whose derived time
	// falls back to "now".
	recent := make(map[*models.Vehicle]time.Time, len(vehicles))
	buckets := make(map[time.Time][]*models.Vehicle)
	for _, v := range vehicles {
		t := v.MostRecentEntryTime()
		recent[v] = t
		day := models.StartOfDay(t, loc)
		buckets[day] = append(buckets[day], v)
	}

	groups := make([]VehicleGroup, 0, len(buckets))
	for day, vs := range buckets {
		sort.SliceStable(vs, func(i, j int) bool {
			return recent[vs[i]].After(recent[vs[j]])
		})
		groups = append(groups, VehicleGroup{Day: day, Vehicles: vs})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Day.After(groups[j].Day)
	})

	return groups
}

// GroupEntriesByDay buckets one vehicle's entries by the start of day (in
// loc) of each entry's own timestamp. Groups are ordered newest day
// first; within a group, entries are ordered by timestamp descending.
// An empty input yields an empty result.
func GroupEntriesByDay(entries []*models.Entry, loc *time.Location) []EntryGroup {
	if len(entries) == 0 {
		return nil
	}

	buckets := make(map[time.Time][]*models.Entry)
	for _, e := range entries {
		day := models.StartOfDay(e.CreatedAt, loc)
		buckets[day] = append(buckets[day], e)
	}

	groups := make([]EntryGroup, 0, len(buckets))
	for day, es := range buckets {
		sort.SliceStable(es, func(i, j int) bool {
			return es[i].CreatedAt.After(es[j].CreatedAt)
		})
		groups = append(groups, EntryGroup{Day: day, Entries: es})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Day.After(groups[j].Day)
	})

	return groups
}
