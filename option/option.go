// Package option declares the option tree for the geo chart component: the
// root GeoOption supplied by the hosting configuration system, per-region
// option fragments, and the style/label sub-options they share.
//
// Style and label fields are pointer-typed so that "unset" is representable;
// resolution across an ordered fallback chain picks the first source that sets
// a field (see Resolve helpers in style.go). Options are plain data: they
// carry no behavior beyond cloning, validation, and formatter evaluation.
package option

import (
	"github.com/c360/geochart/errors"
)

// Selection modes accepted by GeoOption.SelectedMode. An empty mode disables
// selection entirely.
const (
	SelectedModeNone     = ""
	SelectedModeSingle   = "single"
	SelectedModeMultiple = "multiple"
)

// GeoOption is the root option block for one geo component. It is supplied
// wholesale by the hosting chart configuration on every update; the model
// layer never patches it incrementally.
type GeoOption struct {
	// Map selects which registered geometry set to resolve against.
	// Required, non-empty for meaningful resolution.
	Map string `json:"map" yaml:"map"`

	// NameMap renames raw geometry names to display names during resolution.
	NameMap map[string]string `json:"nameMap,omitempty" yaml:"nameMap,omitempty"`

	// Regions is the user-supplied, possibly partial list of per-region
	// option fragments. Entries naming regions unknown to the registry are
	// dropped during resolution.
	Regions []RegionOption `json:"regions,omitempty" yaml:"regions,omitempty"`

	// SelectedMode configures the selection capability: "", "single" or
	// "multiple".
	SelectedMode string `json:"selectedMode,omitempty" yaml:"selectedMode,omitempty"`

	// View state consumed by interactive pan/zoom handlers. Passive: no
	// invariants beyond type, the rendering layer clamps as needed.
	Roam           string      `json:"roam,omitempty" yaml:"roam,omitempty"`
	Zoom           float64     `json:"zoom,omitempty" yaml:"zoom,omitempty"`
	Center         []float64   `json:"center,omitempty" yaml:"center,omitempty"`
	BoundingCoords [][]float64 `json:"boundingCoords,omitempty" yaml:"boundingCoords,omitempty"`
	AspectScale    float64     `json:"aspectScale,omitempty" yaml:"aspectScale,omitempty"`

	// Layout relative to the chart viewport.
	Left   string `json:"left,omitempty" yaml:"left,omitempty"`
	Top    string `json:"top,omitempty" yaml:"top,omitempty"`
	Right  string `json:"right,omitempty" yaml:"right,omitempty"`
	Bottom string `json:"bottom,omitempty" yaml:"bottom,omitempty"`

	Show   *bool `json:"show,omitempty" yaml:"show,omitempty"`
	Silent *bool `json:"silent,omitempty" yaml:"silent,omitempty"`
	ZLevel int   `json:"zlevel,omitempty" yaml:"zlevel,omitempty"`
	Z      int   `json:"z,omitempty" yaml:"z,omitempty"`

	// Default styling inherited by regions that lack their own.
	ItemStyle *ItemStyle `json:"itemStyle,omitempty" yaml:"itemStyle,omitempty"`
	Label     *Label     `json:"label,omitempty" yaml:"label,omitempty"`
	Emphasis  *Emphasis  `json:"emphasis,omitempty" yaml:"emphasis,omitempty"`
}

// RegionOption is a user-supplied option fragment for one named region.
// Name is the join key against the registry; duplicates are allowed and
// resolve last-writer-wins.
type RegionOption struct {
	Name      string     `json:"name" yaml:"name"`
	ItemStyle *ItemStyle `json:"itemStyle,omitempty" yaml:"itemStyle,omitempty"`
	Label     *Label     `json:"label,omitempty" yaml:"label,omitempty"`
	Emphasis  *Emphasis  `json:"emphasis,omitempty" yaml:"emphasis,omitempty"`
	Selected  *bool      `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// Emphasis groups the style and label overrides applied in the emphasis
// (hover/highlight) interaction state.
type Emphasis struct {
	ItemStyle *ItemStyle `json:"itemStyle,omitempty" yaml:"itemStyle,omitempty"`
	Label     *Label     `json:"label,omitempty" yaml:"label,omitempty"`
}

// Clone returns a deep copy of the option. Clones share no mutable state with
// the original, which is what lets each resolution pass own its fragments
// outright. Formatter functions are carried over by reference; they are
// expected to be stateless.
func (o *GeoOption) Clone() *GeoOption {
	if o == nil {
		return nil
	}
	clone := *o
	clone.NameMap = cloneStringMap(o.NameMap)
	clone.Center = cloneFloats(o.Center)
	clone.BoundingCoords = cloneFloatPairs(o.BoundingCoords)
	clone.Show = cloneBool(o.Show)
	clone.Silent = cloneBool(o.Silent)
	clone.ItemStyle = o.ItemStyle.Clone()
	clone.Label = o.Label.Clone()
	clone.Emphasis = o.Emphasis.Clone()
	if o.Regions != nil {
		clone.Regions = make([]RegionOption, len(o.Regions))
		for i := range o.Regions {
			clone.Regions[i] = o.Regions[i].Clone()
		}
	}
	return &clone
}

// Clone returns a deep copy of the region fragment.
func (r RegionOption) Clone() RegionOption {
	clone := r
	clone.ItemStyle = r.ItemStyle.Clone()
	clone.Label = r.Label.Clone()
	clone.Emphasis = r.Emphasis.Clone()
	clone.Selected = cloneBool(r.Selected)
	return clone
}

// Clone returns a deep copy of the emphasis block.
func (e *Emphasis) Clone() *Emphasis {
	if e == nil {
		return nil
	}
	return &Emphasis{
		ItemStyle: e.ItemStyle.Clone(),
		Label:     e.Label.Clone(),
	}
}

// Validate checks the option for structurally invalid values. Render-path
// concerns (out-of-range zoom, odd centers) are deliberately not errors; only
// values that would corrupt model bookkeeping are rejected.
func (o *GeoOption) Validate() error {
	if o == nil {
		return errors.WrapInvalid(errors.ErrMissingOption, "GeoOption", "Validate", "nil option check")
	}
	switch o.SelectedMode {
	case SelectedModeNone, SelectedModeSingle, SelectedModeMultiple:
	default:
		return errors.WrapInvalid(errors.ErrInvalidOption, "GeoOption", "Validate", "selectedMode check")
	}
	if len(o.Center) != 0 && len(o.Center) != 2 {
		return errors.WrapInvalid(errors.ErrInvalidOption, "GeoOption", "Validate", "center length check")
	}
	for _, pair := range o.BoundingCoords {
		if len(pair) != 2 {
			return errors.WrapInvalid(errors.ErrInvalidOption, "GeoOption", "Validate", "boundingCoords shape check")
		}
	}
	return nil
}

func cloneStringMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	clone := make(map[string]string, len(m))
	for k, v := range m {
		clone[k] = v
	}
	return clone
}

func cloneFloats(s []float64) []float64 {
	if s == nil {
		return nil
	}
	clone := make([]float64, len(s))
	copy(clone, s)
	return clone
}

func cloneFloatPairs(s [][]float64) [][]float64 {
	if s == nil {
		return nil
	}
	clone := make([][]float64, len(s))
	for i, pair := range s {
		clone[i] = cloneFloats(pair)
	}
	return clone
}

func cloneBool(b *bool) *bool {
	if b == nil {
		return nil
	}
	v := *b
	return &v
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

// Bool returns a pointer to v, for literal option construction.
func Bool(v bool) *bool { return &v }

// String returns a pointer to v, for literal option construction.
func String(v string) *string { return &v }

// Float returns a pointer to v, for literal option construction.
func Float(v float64) *float64 { return &v }
