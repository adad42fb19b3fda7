package exampleboard

import (
	"testing"
	"testing/fstest"
)

func TestInputsFromFS(t *testing.T) {
	fsys := fstest.MapFS{
		"hello/app.tsx":            {Data: []byte("export const App = 1;")},
		"hello/root.tsx":           {Data: []byte("root")},
		"hello/components/btn.tsx": {Data: []byte("btn")},
		"hello/.DS_Store":          {Data: []byte("junk")},
		"hello/.cache/tmp.txt":     {Data: []byte("junk")},
		"other/ignored.tsx":        {Data: []byte("other")},
	}

	inputs, err := InputsFromFS(fsys, "hello")
	if err != nil {
		t.Fatalf("InputsFromFS() error = %v", err)
	}

	want := []string{"app.tsx", "components/btn.tsx", "root.tsx"}
	if len(inputs) != len(want) {
		t.Fatalf("InputsFromFS() returned %d inputs, want %d: %+v", len(inputs), len(want), inputs)
	}
	for i, path := range want {
		if inputs[i].Path != path {
			t.Errorf("inputs[%d].Path = %q, want %q", i, inputs[i].Path, path)
		}
	}
	if inputs[0].Code != "export const App = 1;" {
		t.Errorf("inputs[0].Code = %q", inputs[0].Code)
	}
}

func TestInputsFromFS_SingleFile(t *testing.T) {
	fsys := fstest.MapFS{
		"hello/app.tsx": {Data: []byte("code")},
	}

	inputs, err := InputsFromFS(fsys, "hello/app.tsx")
	if err != nil {
		t.Fatalf("InputsFromFS() error = %v", err)
	}
	if len(inputs) != 1 || inputs[0].Path != "app.tsx" {
		t.Errorf("InputsFromFS() = %+v, want single app.tsx", inputs)
	}
}

func TestInputsFromFS_MissingDir(t *testing.T) {
	if _, err := InputsFromFS(fstest.MapFS{}, "missing"); err == nil {
		t.Error("InputsFromFS() expected error for missing dir, got nil")
	}
}
