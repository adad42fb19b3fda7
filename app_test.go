package exampleboard

import "testing"

func TestNewApp(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		title   string
		opts    []AppOption
		wantErr bool
	}{
		{name: "minimal", id: "hello-world", title: "Hello World"},
		{name: "with options", id: "counter", title: "Counter", opts: []AppOption{
			WithIcon("🔢"),
			WithDescription("Click to count."),
			WithInput("app.tsx", "export default 1"),
		}},
		{name: "empty id", id: "", title: "Hello", wantErr: true},
		{name: "whitespace id", id: "  ", title: "Hello", wantErr: true},
		{name: "id with slash", id: "a/b", title: "Hello", wantErr: true},
		{name: "empty title", id: "hello", title: "", wantErr: true},
		{name: "empty input path", id: "hello", title: "Hello", opts: []AppOption{
			WithInput("", "code"),
		}, wantErr: true},
		{name: "duplicate input path", id: "hello", title: "Hello", opts: []AppOption{
			WithInput("app.tsx", "a"),
			WithInput("app.tsx", "b"),
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, err := NewApp(tt.id, tt.title, tt.opts...)
			if tt.wantErr {
				if err == nil {
					t.Fatal("NewApp() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewApp() error = %v", err)
			}
			if app.ID() != tt.id {
				t.Errorf("ID() = %q, want %q", app.ID(), tt.id)
			}
			if app.Title() != tt.title {
				t.Errorf("Title() = %q, want %q", app.Title(), tt.title)
			}
		})
	}
}

func TestNewApp_Getters(t *testing.T) {
	app, err := NewApp("counter", "Counter",
		WithIcon("🔢"),
		WithDescription("Click *fast*."),
		WithInputs(
			Input{Path: "app.tsx", Code: "a"},
			Input{Path: "root.tsx", Code: "b"},
		),
	)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	if app.Icon() != "🔢" {
		t.Errorf("Icon() = %q", app.Icon())
	}
	if app.Description() != "Click *fast*." {
		t.Errorf("Description() = %q", app.Description())
	}
	inputs := app.Inputs()
	if len(inputs) != 2 || inputs[0].Path != "app.tsx" || inputs[1].Path != "root.tsx" {
		t.Errorf("Inputs() = %+v, want app.tsx then root.tsx", inputs)
	}
}

func TestExampleApp_InputsIsCopy(t *testing.T) {
	app, err := NewApp("hello", "Hello", WithInput("app.tsx", "original"))
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	inputs := app.Inputs()
	inputs[0].Code = "mutated"

	if got := app.Inputs()[0].Code; got != "original" {
		t.Errorf("Inputs()[0].Code = %q after caller mutation, want %q", got, "original")
	}
}

func TestExampleApp_NoInputs(t *testing.T) {
	app, err := NewApp("empty", "Empty")
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	if got := app.Inputs(); len(got) != 0 {
		t.Errorf("Inputs() = %+v, want empty", got)
	}
}
