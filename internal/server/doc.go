// Package server provides the HTTP server for the examples page and its
// session API.
//
// This package is internal to ExampleBoard and handles all HTTP concerns:
//
//   - Page serving: Server-rendered examples page at "/examples/{id}", with a
//     public Cache-Control policy since the page holds no per-visitor state
//   - Catalog API: JSON at "/api/examples" and "/api/examples/{id}"
//   - Session API: Per page view state under "/api/sessions", rate limited per
//     client IP, with Server-Sent Events at "/api/sessions/{sid}/events"
//   - Static assets: Embedded script and style under "/assets/"
//
// Responses are gzip compressed when the client accepts it, except event
// streams. The server supports graceful shutdown via context cancellation,
// with a 5-second timeout for in-flight requests.
//
// Users of the exampleboard library should not need to interact with this
// package directly. The server is started automatically by
// [exampleboard.ExampleBoard.Start].
package server
