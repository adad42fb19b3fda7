package page

import (
	"errors"
	"fmt"

	"github.com/jpalmerr/exampleboard/internal/catalog"
)

const (
	defaultBuildMode     = "development"
	defaultEntryStrategy = "hook"
)

// EditableState is the per-view record handed to the live editor.
//
// The JSON field names match the editor's input contract.
type EditableState struct {
	AppID         string          `json:"appId"`
	BuildID       int             `json:"buildId"`
	BuildMode     string          `json:"buildMode"`
	EntryStrategy string          `json:"entryStrategy"`
	Files         []catalog.Input `json:"files"`
	Version       string          `json:"version"`
}

// Panel names one of the mutually exclusive panels shown on small screens.
type Panel string

const (
	PanelExamples Panel = "Examples"
	PanelInput    Panel = "Input"
	PanelOutput   Panel = "Output"
	PanelConsole  Panel = "Console"
)

// ErrUnknownPanel is returned when a panel name is not one of [Panels].
var ErrUnknownPanel = errors.New("unknown panel")

// Panels returns the fixed, ordered set of panel names.
func Panels() []Panel {
	return []Panel{PanelExamples, PanelInput, PanelOutput, PanelConsole}
}

// ParsePanel converts a panel name into a [Panel]. Matching is exact.
func ParsePanel(s string) (Panel, error) {
	for _, p := range Panels() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPanel, s)
}

// String implements fmt.Stringer.
func (p Panel) String() string {
	return string(p)
}

// PanelState tracks which panel is currently visible.
type PanelState struct {
	Active Panel   `json:"active"`
	List   []Panel `json:"list"`
}

func newPanelState() PanelState {
	return PanelState{Active: PanelExamples, List: Panels()}
}

func (p PanelState) clone() PanelState {
	list := make([]Panel, len(p.List))
	copy(list, p.List)
	return PanelState{Active: p.Active, List: list}
}

func (s EditableState) clone() EditableState {
	cp := s
	cp.Files = catalog.CopyInputs(s.Files)
	return cp
}
