// Package page models a single examples page view.
//
// A [View] holds the editable state passed to the live editor and the panel
// state used for small-screen layouts. Changing the selected app ID runs the
// registered observers synchronously; the built-in observer reloads the file
// list from the catalog and updates the document title.
//
// The package also derives the menu, head metadata and editor props that the
// server renders into the page.
package page
