// Package model defines the core domain types shared across the application.
package model

import "time"

// PlayerReference identifies a player mentioned in a log line.
// At least one of Nickname or AccountName is set when a reference
// is returned by the extractors; a nil *PlayerReference means no
// reference was found at all.
type PlayerReference struct {
	Nickname    string
	AccountName string
}

// HasAccount reports whether the reference carries an account name.
func (r *PlayerReference) HasAccount() bool {
	return r != nil && r.AccountName != ""
}

// Display returns the most human-readable form of the reference.
func (r *PlayerReference) Display() string {
	if r == nil {
		return ""
	}
	if r.Nickname != "" {
		return r.Nickname
	}
	return r.AccountName
}

// Player is a persisted group member record.
type Player struct {
	FirstSeen   time.Time
	LastSeen    time.Time
	AccountName string
	Nickname    string
	IsInGroup   bool
}
