package exampleboard

import "github.com/jpalmerr/exampleboard/internal/page"

// Panel names one of the mutually exclusive panels shown on small screens.
//
// Panel is a string type so it serialises and logs as its name.
type Panel string

const (
	// PanelExamples shows the examples menu. It is active when a page loads.
	PanelExamples Panel = "Examples"

	// PanelInput shows the editor's source files.
	PanelInput Panel = "Input"

	// PanelOutput shows the rendered result.
	PanelOutput Panel = "Output"

	// PanelConsole shows console output.
	PanelConsole Panel = "Console"
)

// String returns the panel name.
// This implements the fmt.Stringer interface.
func (p Panel) String() string {
	return string(p)
}

// Panels returns the fixed, ordered set of panels.
func Panels() []Panel {
	internal := page.Panels()
	out := make([]Panel, len(internal))
	for i, p := range internal {
		out[i] = Panel(p)
	}
	return out
}
