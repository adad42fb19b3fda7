package page

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/jpalmerr/exampleboard/internal/catalog"
)

// fallbackHeadTitle is the page title used when the route ID is unknown.
const fallbackHeadTitle = "Example"

// HeadMeta is the document head metadata for an examples page.
type HeadMeta struct {
	Title string `json:"title"`
}

// Head returns the head metadata for the app named by the route ID.
func Head(lookup Lookuper, id string) HeadMeta {
	app, ok := lookup.Lookup(id)
	if !ok || app.Title == "" {
		return HeadMeta{Title: fallbackHeadTitle}
	}
	return HeadMeta{Title: app.Title}
}

// MenuEntry is one clickable app in the examples menu.
type MenuEntry struct {
	ID              string
	Title           string
	Icon            string
	Description     string
	DescriptionHTML template.HTML
	Href            string
	Selected        bool
}

// MenuSection is a titled group of menu entries.
type MenuSection struct {
	ID      string
	Title   string
	Entries []MenuEntry
}

// markdown renders app descriptions. Raw HTML in descriptions is dropped,
// and links are flattened to their text since each menu entry is already
// a link.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
	goldmark.WithParserOptions(
		parser.WithASTTransformers(util.Prioritized(unlinkTransformer{}, 999)),
	),
)

// unlinkTransformer replaces link nodes with their content.
type unlinkTransformer struct{}

func (unlinkTransformer) Transform(doc *ast.Document, reader text.Reader, _ parser.Context) {
	var links []ast.Node
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindLink, ast.KindAutoLink:
			links = append(links, n)
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})

	source := reader.Source()
	for _, n := range links {
		parent := n.Parent()
		if parent == nil {
			continue
		}
		if auto, ok := n.(*ast.AutoLink); ok {
			parent.ReplaceChild(parent, n, ast.NewString(auto.Label(source)))
			continue
		}
		for c := n.FirstChild(); c != nil; {
			next := c.NextSibling()
			parent.InsertBefore(parent, n, c)
			c = next
		}
		parent.RemoveChild(parent, n)
	}
}

// BuildMenu lists every app in sections, marking the one equal to selectedID.
func BuildMenu(sections []catalog.Section, selectedID string) []MenuSection {
	menu := make([]MenuSection, 0, len(sections))
	for _, s := range sections {
		entries := make([]MenuEntry, 0, len(s.Apps))
		for _, app := range s.Apps {
			entries = append(entries, MenuEntry{
				ID:              app.ID,
				Title:           app.Title,
				Icon:            app.Icon,
				Description:     app.Description,
				DescriptionHTML: renderDescription(app.Description),
				Href:            ExamplePath(app.ID),
				Selected:        app.ID == selectedID,
			})
		}
		menu = append(menu, MenuSection{ID: s.ID, Title: s.Title, Entries: entries})
	}
	return menu
}

func renderDescription(md string) template.HTML {
	if md == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(md), &buf); err != nil {
		// plain text is still useful
		return template.HTML(template.HTMLEscapeString(md))
	}
	return template.HTML(buf.String())
}

// ReplProps is the input handed to the live editor widget.
type ReplProps struct {
	Input                  EditableState `json:"input"`
	EnableSSROutput        bool          `json:"enableSsrOutput"`
	EnableClientOutput     bool          `json:"enableClientOutput"`
	EnableHTMLOutput       bool          `json:"enableHtmlOutput"`
	EnableCopyToPlayground bool          `json:"enableCopyToPlayground"`
	EnableDownload         bool          `json:"enableDownload"`
	EnableInputDelete      bool          `json:"enableInputDelete"`
}

// NewReplProps wraps state with the flag set used on the examples page:
// no SSR, client or HTML output, copy-to-playground and download enabled,
// input deletion disabled.
func NewReplProps(state EditableState) ReplProps {
	return ReplProps{
		Input:                  state,
		EnableCopyToPlayground: true,
		EnableDownload:         true,
	}
}
