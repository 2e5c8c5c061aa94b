// Package selectable provides a reusable select/unselect/toggle capability
// over a set of named targets, independent of what the targets represent.
//
// Components compose the capability by holding a State and forwarding their
// selection surface to it, never by embedding component behavior here.
package selectable

import "sort"

// Mode controls how many targets may be selected at once.
type Mode string

const (
	// ModeNone disables selection entirely; all mutating calls are no-ops.
	ModeNone Mode = ""
	// ModeSingle allows at most one selected target; selecting a target
	// unselects the previous one.
	ModeSingle Mode = "single"
	// ModeMultiple allows any number of selected targets.
	ModeMultiple Mode = "multiple"
)

// Target describes one selectable name and whether its own configuration
// marks it selected.
type Target struct {
	Name     string
	Selected bool
}

// State tracks the selected subset of a named target set. The zero value is
// unusable; construct with NewState.
//
// State is not internally synchronized: like the models that compose it, it
// assumes the sequential update/query cycle of a UI render loop.
type State struct {
	mode     Mode
	known    map[string]bool
	selected map[string]bool
}

// NewState creates selection state with the given mode and no known targets.
func NewState(mode Mode) *State {
	return &State{
		mode:     mode,
		known:    make(map[string]bool),
		selected: make(map[string]bool),
	}
}

// Mode returns the current selection mode.
func (s *State) Mode() Mode {
	return s.mode
}

// SetMode changes the selection mode. Narrowing to single keeps only one of
// the currently selected names (the lexicographically first, for
// determinism); disabling clears the selection.
func (s *State) SetMode(mode Mode) {
	s.mode = mode
	switch mode {
	case ModeNone:
		s.selected = make(map[string]bool)
	case ModeSingle:
		if len(s.selected) > 1 {
			keep := ""
			for name := range s.selected {
				if keep == "" || name < keep {
					keep = name
				}
			}
			s.selected = map[string]bool{keep: true}
		}
	}
}

// Refresh replaces the known target set after an option update. Previously
// selected names absent from the new set are dropped; targets whose own
// configuration marks them selected join the selection; everything else keeps
// its previous state. In single mode the first selected target in list order
// wins.
func (s *State) Refresh(targets []Target) {
	known := make(map[string]bool, len(targets))
	selected := make(map[string]bool)

	for _, target := range targets {
		if target.Name == "" {
			continue
		}
		known[target.Name] = true
		if s.mode == ModeNone {
			continue
		}
		if target.Selected || s.selected[target.Name] {
			if s.mode == ModeSingle && len(selected) > 0 {
				continue
			}
			selected[target.Name] = true
		}
	}

	s.known = known
	s.selected = selected
}

// Select marks a target selected. Unknown names and ModeNone are no-ops.
// In single mode any previous selection is replaced.
func (s *State) Select(name string) {
	if s.mode == ModeNone || !s.known[name] {
		return
	}
	if s.mode == ModeSingle {
		s.selected = make(map[string]bool)
	}
	s.selected[name] = true
}

// Unselect removes a target from the selection. Safe for unknown names.
func (s *State) Unselect(name string) {
	delete(s.selected, name)
}

// ToggleSelected flips a target's selection state. Unknown names and
// ModeNone are no-ops.
func (s *State) ToggleSelected(name string) {
	if s.mode == ModeNone || !s.known[name] {
		return
	}
	if s.selected[name] {
		s.Unselect(name)
	} else {
		s.Select(name)
	}
}

// IsSelected reports whether a target is currently selected. Unknown names
// report false, never an error.
func (s *State) IsSelected(name string) bool {
	return s.selected[name]
}

// SelectedNames returns the currently selected names, sorted.
func (s *State) SelectedNames() []string {
	names := make([]string, 0, len(s.selected))
	for name := range s.selected {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
