// Package store keeps page view sessions and publishes their changes.
//
// Each session wraps a [page.View]: the editable state, panel state and
// document title of one browser tab showing the examples page. Sessions are
// created when the page loads, discarded when the page unloads, and expired
// by [MemoryStore.Sweep] when a tab disappears without saying goodbye.
//
// The main components are:
//
//   - [Store]: Interface defining session operations and subscriptions
//   - [MemoryStore]: In-memory implementation of Store
//   - [Snapshot]: Serialisable copy of a session's state
//
// Subscribers receive snapshots via channels with non-blocking sends (slow
// subscribers miss updates rather than block the request path).
//
// Users of the exampleboard library should not need to interact with this
// package directly.
package store
