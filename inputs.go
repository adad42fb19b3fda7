package exampleboard

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
)

// InputsFromFS reads every regular file under dir in fsys as an [Input].
//
// Paths are relative to dir and use forward slashes. Files are returned in
// lexical path order. Hidden files and directories (leading ".") are skipped.
//
// Example:
//
//	inputs, err := exampleboard.InputsFromFS(os.DirFS("examples"), "hello-world")
//	app, err := exampleboard.NewApp("hello-world", "Hello World",
//	    exampleboard.WithInputs(inputs...),
//	)
func InputsFromFS(fsys fs.FS, dir string) ([]Input, error) {
	var inputs []Input
	err := fs.WalkDir(fsys, dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if p != dir && path.Base(p)[0] == '.' {
			if d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return err
		}
		rel := p
		switch {
		case p == dir:
			rel = path.Base(p)
		case dir != ".":
			rel = p[len(dir)+1:]
		}
		inputs = append(inputs, Input{Path: rel, Code: string(data)})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reading inputs from %s: %w", dir, err)
	}

	sort.Slice(inputs, func(i, j int) bool { return inputs[i].Path < inputs[j].Path })
	return inputs, nil
}
