// Package exampleboard serves an interactive examples page: a menu of
// sample applications grouped into sections, next to a live editor seeded
// with the selected app's source files.
//
// ExampleBoard is designed as an SDK-first library. The catalog is built in
// code (or loaded from YAML by the exampleboard CLI) using immutable types
// and the functional options pattern.
//
// # Quick Start
//
// Create apps, group them into sections and start serving:
//
//	hello, _ := exampleboard.NewApp("hello-world", "Hello World",
//	    exampleboard.WithIcon("🌎"),
//	    exampleboard.WithInput("app.tsx", helloSource),
//	)
//	intro, _ := exampleboard.NewSection("introduction", "Introduction", hello)
//	eb, _ := exampleboard.New(exampleboard.WithSection(intro))
//
//	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
//	defer stop()
//
//	eb.Start(ctx) // blocks until context is cancelled
//
// # Routes
//
// Each app has a shareable address, /examples/<id>. The page is rendered on
// the server with the selected app's title ("<title> - Qwik") and a public
// Cache-Control policy. Unknown IDs still render: the title falls back to
// "Example" and the editor starts empty.
//
// Menu clicks are handled in the browser. The page creates a session through
// the JSON API, posts selections to it and replaces (not pushes) the address
// bar entry with the new app's path.
//
// # Architecture
//
// ExampleBoard consists of several internal packages (under internal/):
//
//   - internal/catalog: Immutable catalog with deep-copying lookup
//   - internal/page: Page view state, route sync observer, menu and head metadata
//   - internal/store: In-memory page view sessions with pub/sub for live updates
//   - internal/sweeper: Background expiry of idle sessions
//   - internal/server: HTTP server with the page, JSON API and Server-Sent Events
//   - web: Embedded template, script and style
//
// The internal packages are not part of the public API and may change
// without notice.
package exampleboard
