package page

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jpalmerr/exampleboard/internal/catalog"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Section{
		{
			ID:    "introduction",
			Title: "Introduction",
			Apps: []catalog.App{
				{
					ID:          "hello-world",
					Title:       "Hello World",
					Description: "The *simplest* app.",
					Icon:        "🌎",
					Inputs:      []catalog.Input{{Path: "app.tsx", Code: "..."}},
				},
				{
					ID:     "counter",
					Title:  "Counter",
					Icon:   "🔢",
					Inputs: []catalog.Input{{Path: "app.tsx", Code: "count"}},
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return cat
}

func TestNewView_LoadsFilesForRouteID(t *testing.T) {
	v := NewView(testCatalog(t), "hello-world")

	got := v.State()
	want := EditableState{
		AppID:         "hello-world",
		BuildMode:     "development",
		EntryStrategy: "hook",
		Files:         []catalog.Input{{Path: "app.tsx", Code: "..."}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("State() = %+v, want %+v", got, want)
	}
}

func TestNewView_UnknownRouteID(t *testing.T) {
	doc := &TitleRecorder{}
	v := NewView(testCatalog(t), "does-not-exist", WithDocument(doc))

	files := v.State().Files
	if files == nil || len(files) != 0 {
		t.Errorf("State().Files = %#v, want empty slice", files)
	}
	if doc.Title() != "undefined - Qwik" {
		t.Errorf("document title = %q, want %q", doc.Title(), "undefined - Qwik")
	}
}

func TestView_DocumentTitle(t *testing.T) {
	doc := &TitleRecorder{}
	v := NewView(testCatalog(t), "hello-world", WithDocument(doc))
	if doc.Title() != "Hello World - Qwik" {
		t.Errorf("document title = %q, want %q", doc.Title(), "Hello World - Qwik")
	}

	if err := v.SetAppID("counter"); err != nil {
		t.Fatalf("SetAppID() error = %v", err)
	}
	if doc.Title() != "Counter - Qwik" {
		t.Errorf("document title = %q, want %q", doc.Title(), "Counter - Qwik")
	}
}

func TestView_CustomBrand(t *testing.T) {
	doc := &TitleRecorder{}
	NewView(testCatalog(t), "counter", WithDocument(doc), WithBrand("Docs"))
	if doc.Title() != "Counter - Docs" {
		t.Errorf("document title = %q, want %q", doc.Title(), "Counter - Docs")
	}
}

func TestView_NoDocumentSkipsTitle(t *testing.T) {
	// must not panic without a document
	v := NewView(testCatalog(t), "hello-world")
	if err := v.SetAppID("counter"); err != nil {
		t.Fatalf("SetAppID() error = %v", err)
	}
	if len(v.State().Files) != 1 {
		t.Errorf("len(Files) = %d, want 1", len(v.State().Files))
	}
}

func TestView_SyncIsIdempotent(t *testing.T) {
	v := NewView(testCatalog(t), "hello-world")
	_ = v.SetAppID("counter")
	first := v.State().Files

	_ = v.SetAppID("hello-world")
	_ = v.SetAppID("counter")
	second := v.State().Files

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Files after resync = %+v, want %+v", second, first)
	}
}

func TestView_ObserversRunInOrderOncePerChange(t *testing.T) {
	v := NewView(testCatalog(t), "hello-world")

	var calls []string
	v.OnAppIDChange(func(prev, next string) { calls = append(calls, "a:"+prev+">"+next) })
	v.OnAppIDChange(func(prev, next string) { calls = append(calls, "b:"+prev+">"+next) })

	_ = v.SetAppID("counter")
	_ = v.SetAppID("counter")

	want := []string{"a:hello-world>counter", "b:hello-world>counter"}
	if !reflect.DeepEqual(calls, want) {
		t.Errorf("observer calls = %v, want %v", calls, want)
	}
}

func TestView_RejectsReentrantUpdate(t *testing.T) {
	v := NewView(testCatalog(t), "hello-world")

	var nestedErr error
	v.OnAppIDChange(func(_, _ string) {
		nestedErr = v.SetAppID("hello-world")
	})

	if err := v.SetAppID("counter"); err != nil {
		t.Fatalf("SetAppID() error = %v", err)
	}
	if !errors.Is(nestedErr, ErrReentrantUpdate) {
		t.Errorf("nested SetAppID() error = %v, want ErrReentrantUpdate", nestedErr)
	}
	if v.State().AppID != "counter" {
		t.Errorf("AppID = %q, want counter", v.State().AppID)
	}
}

func TestView_SelectReplacesPath(t *testing.T) {
	v := NewView(testCatalog(t), "hello-world")

	nav, err := v.Select("counter")
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}

	if nav.ReplacePath != "/examples/counter" {
		t.Errorf("ReplacePath = %q, want /examples/counter", nav.ReplacePath)
	}
	if nav.PushHistory {
		t.Error("PushHistory = true, want false")
	}
	if got := v.State().AppID; got != "counter" {
		t.Errorf("AppID = %q, want counter", got)
	}
	if got := v.State().Files[0].Code; got != "count" {
		t.Errorf("Files[0].Code = %q, want count", got)
	}
}

func TestView_SelectKeepsActivePanel(t *testing.T) {
	v := NewView(testCatalog(t), "hello-world")
	_, _ = v.Select("counter")

	if got := v.Panel().Active; got != PanelExamples {
		t.Errorf("Panel().Active = %q, want %q", got, PanelExamples)
	}
}

func TestView_SelectSwitchesPanelWhenEnabled(t *testing.T) {
	v := NewView(testCatalog(t), "hello-world", WithSwitchToInputOnSelect(true))
	_, _ = v.Select("counter")

	if got := v.Panel().Active; got != PanelInput {
		t.Errorf("Panel().Active = %q, want %q", got, PanelInput)
	}
}

func TestView_SetPanel(t *testing.T) {
	v := NewView(testCatalog(t), "hello-world")

	if err := v.SetPanel(PanelConsole); err != nil {
		t.Fatalf("SetPanel() error = %v", err)
	}
	if got := v.Panel().Active; got != PanelConsole {
		t.Errorf("Panel().Active = %q, want Console", got)
	}

	if err := v.SetPanel(Panel("Sidebar")); !errors.Is(err, ErrUnknownPanel) {
		t.Errorf("SetPanel(Sidebar) error = %v, want ErrUnknownPanel", err)
	}
	if got := v.Panel().Active; got != PanelConsole {
		t.Errorf("Panel().Active after bad SetPanel = %q, want Console", got)
	}
}

func TestView_StateIsCopy(t *testing.T) {
	v := NewView(testCatalog(t), "hello-world")
	s := v.State()
	s.Files[0].Code = "mutated"

	if v.State().Files[0].Code == "mutated" {
		t.Error("State() shares files with the view")
	}
}

func TestPanels_Order(t *testing.T) {
	want := []Panel{"Examples", "Input", "Output", "Console"}
	if got := Panels(); !reflect.DeepEqual(got, want) {
		t.Errorf("Panels() = %v, want %v", got, want)
	}
}

func TestParsePanel(t *testing.T) {
	tests := []struct {
		in      string
		want    Panel
		wantErr bool
	}{
		{"Examples", PanelExamples, false},
		{"Output", PanelOutput, false},
		{"output", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParsePanel(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePanel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParsePanel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExamplePath(t *testing.T) {
	if got := ExamplePath("hello-world"); got != "/examples/hello-world" {
		t.Errorf("ExamplePath() = %q", got)
	}
}
