// Package model implements the runtime model for the geo chart component:
// GeoModel owns the option tree, resolves regions through the geodata
// registry on every option update, rebuilds a name-keyed index of per-region
// models, and exposes lookup, label formatting, and selection to renderers.
package model

import (
	"github.com/c360/geochart/option"
)

// Status names an interaction state a region can be rendered in.
type Status string

const (
	// StatusNormal is the resting render state.
	StatusNormal Status = "normal"
	// StatusEmphasis is the highlighted (hover/focus) render state.
	StatusEmphasis Status = "emphasis"
)

// RegionModel is a read view over one resolved region. Fields unset on the
// region's own option fragment fall back to the component option and then to
// the global defaults, in that order.
//
// A RegionModel is built once per resolution pass and its content is fixed
// for the pass's duration; the next option update discards it wholesale.
type RegionModel struct {
	name   string
	own    *option.RegionOption
	parent *option.GeoOption
	global *option.GeoOption
}

func newRegionModel(name string, own *option.RegionOption, parent, global *option.GeoOption) *RegionModel {
	return &RegionModel{name: name, own: own, parent: parent, global: global}
}

// Name returns the region's resolved display name.
func (m *RegionModel) Name() string {
	return m.name
}

// HasOwnOption reports whether the region carries its own option fragment.
// Fallback models returned for unknown names report false.
func (m *RegionModel) HasOwnOption() bool {
	return m.own != nil
}

// Option returns a copy of the region's own option fragment, or an empty
// fragment for fallback models.
func (m *RegionModel) Option() option.RegionOption {
	if m.own == nil {
		return option.RegionOption{Name: m.name}
	}
	return m.own.Clone()
}

// ItemStyle resolves the item style for the given status across the fallback
// chain, first-match-wins per field.
func (m *RegionModel) ItemStyle(status Status) option.ItemStyle {
	if status == StatusEmphasis {
		return option.ResolveItemStyle(
			emphasisItemStyle(m.ownEmphasis()),
			emphasisItemStyle(m.parent.Emphasis),
			emphasisItemStyle(m.global.Emphasis),
		)
	}
	return option.ResolveItemStyle(m.ownItemStyle(), m.parent.ItemStyle, m.global.ItemStyle)
}

// Label resolves the label option for the given status across the fallback
// chain, first-match-wins per field.
func (m *RegionModel) Label(status Status) option.Label {
	if status == StatusEmphasis {
		return option.ResolveLabel(
			emphasisLabel(m.ownEmphasis()),
			emphasisLabel(m.parent.Emphasis),
			emphasisLabel(m.global.Emphasis),
		)
	}
	return option.ResolveLabel(m.ownLabel(), m.parent.Label, m.global.Label)
}

// FormattedLabel evaluates the resolved label formatter for the given status.
// The second return value is false when no formatter is configured anywhere in
// the chain, or the configured one is unusable; callers then apply their own
// default rendering. Function formatters receive the status only for
// non-normal states.
func (m *RegionModel) FormattedLabel(status Status) (string, bool) {
	label := m.Label(status)

	params := option.LabelParams{Name: m.name}
	if status != StatusNormal {
		params.Status = string(status)
	}
	return label.Formatter.Format(params)
}

// SelectedByOption reports whether the region's own option fragment marks it
// selected. Live selection state lives on the GeoModel, not here.
func (m *RegionModel) SelectedByOption() bool {
	return m.own != nil && m.own.Selected != nil && *m.own.Selected
}

func (m *RegionModel) ownItemStyle() *option.ItemStyle {
	if m.own == nil {
		return nil
	}
	return m.own.ItemStyle
}

func (m *RegionModel) ownLabel() *option.Label {
	if m.own == nil {
		return nil
	}
	return m.own.Label
}

func (m *RegionModel) ownEmphasis() *option.Emphasis {
	if m.own == nil {
		return nil
	}
	return m.own.Emphasis
}

func emphasisItemStyle(e *option.Emphasis) *option.ItemStyle {
	if e == nil {
		return nil
	}
	return e.ItemStyle
}

func emphasisLabel(e *option.Emphasis) *option.Label {
	if e == nil {
		return nil
	}
	return e.Label
}
