package models

import (
	"time"

	"github.com/google/uuid"
)

// Entry is a single maintenance note attached to a vehicle.
//
// An entry has no natural key, so a surrogate ID is assigned at creation
// time. All delete and lookup operations address entries by that ID, which
// stays stable across persistence round-trips.
type Entry struct {
	// ID is the surrogate identifier assigned at creation time.
	ID string

	// Category is a short free-text label for the kind of work done
	// (e.g. "Oil change"). Non-empty in practice, not enforced here.
	Category string

	// Note is the free-text body of the entry. May be empty.
	Note string

	// Photo is an optional image attached to the entry. The entry owns
	// the bytes exclusively.
	Photo []byte

	// CreatedAt is set once when the entry is created and never changes.
	CreatedAt time.Time
}

// NewEntry creates an Entry with a fresh surrogate ID.
func NewEntry(category, note string, createdAt time.Time) *Entry {
	return &Entry{
		ID:        uuid.NewString(),
		Category:  category,
		Note:      note,
		CreatedAt: createdAt,
	}
}
