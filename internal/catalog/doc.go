// Package catalog holds the static catalog of example applications.
//
// The catalog is an ordered list of sections, each holding an ordered list of
// apps. It is constructed once at startup and is read-only afterwards, so it
// can be shared between request goroutines without locking.
//
// Users of the exampleboard library should not need to interact with this
// package directly. The catalog is built by [exampleboard.New].
package catalog
