// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"time"

	"github.com/MKhiriev/go-pantry-keeper/models"
)

// State is the in-memory session aggregate. Values are never modified in
// place: [Reduce] returns a new State and clones every map or slice it
// changes, so a State obtained earlier stays valid.
type State struct {
	User        *models.Profile
	Session     *models.AuthSession
	Households  map[string]models.Household
	Inventories map[string]models.Inventory
	Products    map[string]models.Product
	Tasks       map[string]models.Task
	Drafts      []models.Draft
	Messages    []models.UserMessage
	Preferences models.Preferences
}

// Default returns the state of a fresh process and of a logged out user.
func Default() State {
	return State{
		Households:  map[string]models.Household{},
		Inventories: map[string]models.Inventory{},
		Products:    map[string]models.Product{},
		Tasks:       map[string]models.Task{},
		Preferences: models.DefaultPreferences(),
	}
}

// Status is the effective lifecycle state derived from a [State].
type Status int

const (
	// StatusAnonymous means there is no session.
	StatusAnonymous Status = iota
	// StatusAuthenticated means the session is valid.
	StatusAuthenticated
	// StatusExpired means the session token has expired. Refreshing or
	// logging out is up to the caller.
	StatusExpired
)

func (s Status) String() string {
	switch s {
	case StatusAnonymous:
		return "anonymous"
	case StatusAuthenticated:
		return "authenticated"
	case StatusExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// StatusOf derives the lifecycle status of state at now.
func StatusOf(state State, now time.Time) Status {
	switch {
	case state.Session == nil:
		return StatusAnonymous
	case state.Session.Expired(now):
		return StatusExpired
	default:
		return StatusAuthenticated
	}
}
