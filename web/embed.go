// Package web provides the embedded page template and static assets.
//
// Embedding keeps the server a single binary with no asset files to deploy.
// The server package parses templates/ and serves assets/ under "/assets/".
package web

import "embed"

// Files holds the examples page template and its static assets.
//
// The filesystem structure is:
//
//	templates/
//	  examples.html.tmpl - Examples page: menu, editor mount point, panel toggle
//	assets/
//	  examples.js        - Menu clicks, session sync and panel toggling
//	  examples.css       - Page layout
//
//go:embed templates/* assets/*
var Files embed.FS
