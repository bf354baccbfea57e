// Package session is the in-memory session state machine: a pure
// [Reduce] over a closed set of actions and a [Container] that serializes
// dispatches.
//
// The effective lifecycle (anonymous, authenticated, expired) is derived
// from the state with [StatusOf] rather than stored.
package session
