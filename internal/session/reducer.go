// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"
	"maps"
	"slices"

	"dario.cat/mergo"

	"github.com/MKhiriev/go-pantry-keeper/models"
)

// Reduce returns the state that results from applying action to state.
//
// Reduce is pure: it performs no I/O, reads no clock and never modifies
// state. On error the unchanged state is returned with it.
func Reduce(state State, action Action) (State, error) {
	next := state

	switch a := action.(type) {
	case SetSession:
		s := a.Session
		next.Session = &s

	case SetUser:
		u := a.User
		next.User = &u

	case UpdateProfile:
		var merged models.Profile
		if state.User != nil {
			merged = *state.User
		}
		if err := mergo.Merge(&merged, a.Patch, mergo.WithOverride); err != nil {
			return state, fmt.Errorf("update profile: %w", err)
		}
		next.User = &merged

	case Logout:
		return Default(), nil

	case UpsertHouseholds:
		next.Households = upsert(state.Households, a.Households, func(h models.Household) string { return h.ID })

	case RemoveHousehold:
		if _, ok := state.Households[a.ID]; !ok {
			return state, nil
		}
		next.Households = maps.Clone(state.Households)
		delete(next.Households, a.ID)
		next.Inventories = removeWhere(state.Inventories, func(i models.Inventory) bool { return i.HouseholdID == a.ID })
		next.Tasks = removeWhere(state.Tasks, func(t models.Task) bool { return t.HouseholdID == a.ID })

	case UpsertInventories:
		next.Inventories = upsert(state.Inventories, a.Inventories, func(i models.Inventory) string { return i.ID })

	case UpsertProducts:
		next.Products = upsert(state.Products, a.Products, func(p models.Product) string { return p.ID })

	case UpsertTasks:
		next.Tasks = upsert(state.Tasks, a.Tasks, func(t models.Task) string { return t.ID })

	case RemoveTask:
		if _, ok := state.Tasks[a.ID]; !ok {
			return state, nil
		}
		next.Tasks = maps.Clone(state.Tasks)
		delete(next.Tasks, a.ID)

	case AddDraft:
		next.Drafts = slices.DeleteFunc(slices.Clone(state.Drafts), func(d models.Draft) bool { return d.ID == a.Draft.ID })
		next.Drafts = append(next.Drafts, a.Draft)

	case RemoveDraft:
		next.Drafts = slices.DeleteFunc(slices.Clone(state.Drafts), func(d models.Draft) bool { return d.ID == a.ID })

	case PushMessage:
		next.Messages = append(slices.Clone(state.Messages), a.Message)

	case RemoveMessage:
		next.Messages = slices.DeleteFunc(slices.Clone(state.Messages), func(m models.UserMessage) bool { return m.ID == a.ID })

	case SetPreferences:
		next.Preferences = a.Preferences

	default:
		if action == nil {
			return state, fmt.Errorf("%w: nil action", ErrUnhandledAction)
		}
		return state, fmt.Errorf("%w: %s", ErrUnhandledAction, action.Type())
	}

	return next, nil
}

// upsert returns a copy of m with items inserted or replaced by key.
func upsert[T any](m map[string]T, items []T, key func(T) string) map[string]T {
	out := make(map[string]T, len(m)+len(items))
	maps.Copy(out, m)
	for _, item := range items {
		out[key(item)] = item
	}
	return out
}

// removeWhere returns m without the entries matching drop. m itself is
// returned when nothing matches.
func removeWhere[T any](m map[string]T, drop func(T) bool) map[string]T {
	var out map[string]T
	for k, v := range m {
		if !drop(v) {
			continue
		}
		if out == nil {
			out = maps.Clone(m)
		}
		delete(out, k)
	}
	if out == nil {
		return m
	}
	return out
}
