// Package filter holds the pure transforms behind every list the
// application displays: day-bucketed grouping of vehicles and entries,
// date-range filtering, and free-text filtering. All functions are
// deterministic and side-effect-free so they can be recomputed on every
// UI refresh.
package filter
