// Package calendar persists roster shifts as calendar events in MySQL.
//
// It provides the Store adapter used by the reconciliation driver and a
// small read-only HTTP surface for inspecting a month's events.
//
// # Concurrency
//
// Every event carries a revision counter. Updates must present the
// revision they read; a mismatch means someone else changed the event
// in between and the update is rejected with ErrRevisionConflict.
package calendar
