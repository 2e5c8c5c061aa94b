package option

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/c360/geochart/errors"
)

// ItemStyle describes how a region area is drawn. All fields are optional;
// nil means "not set here, consult the next fallback source".
type ItemStyle struct {
	AreaColor   *string  `json:"areaColor,omitempty" yaml:"areaColor,omitempty"`
	BorderColor *string  `json:"borderColor,omitempty" yaml:"borderColor,omitempty"`
	BorderWidth *float64 `json:"borderWidth,omitempty" yaml:"borderWidth,omitempty"`
	Opacity     *float64 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
	ShadowBlur  *float64 `json:"shadowBlur,omitempty" yaml:"shadowBlur,omitempty"`
	ShadowColor *string  `json:"shadowColor,omitempty" yaml:"shadowColor,omitempty"`
}

// Clone returns a deep copy of the style.
func (s *ItemStyle) Clone() *ItemStyle {
	if s == nil {
		return nil
	}
	return &ItemStyle{
		AreaColor:   cloneString(s.AreaColor),
		BorderColor: cloneString(s.BorderColor),
		BorderWidth: cloneFloat(s.BorderWidth),
		Opacity:     cloneFloat(s.Opacity),
		ShadowBlur:  cloneFloat(s.ShadowBlur),
		ShadowColor: cloneString(s.ShadowColor),
	}
}

// Label describes how a region name label is rendered.
type Label struct {
	Show      *bool      `json:"show,omitempty" yaml:"show,omitempty"`
	Color     *string    `json:"color,omitempty" yaml:"color,omitempty"`
	FontSize  *float64   `json:"fontSize,omitempty" yaml:"fontSize,omitempty"`
	Position  *string    `json:"position,omitempty" yaml:"position,omitempty"`
	Formatter *Formatter `json:"formatter,omitempty" yaml:"formatter,omitempty"`
}

// Clone returns a deep copy of the label option.
func (l *Label) Clone() *Label {
	if l == nil {
		return nil
	}
	return &Label{
		Show:      cloneBool(l.Show),
		Color:     cloneString(l.Color),
		FontSize:  cloneFloat(l.FontSize),
		Position:  cloneString(l.Position),
		Formatter: l.Formatter.Clone(),
	}
}

// LabelParams is passed to function-valued formatters. Status is populated
// only for non-normal interaction states.
type LabelParams struct {
	Name   string
	Status string
}

// FormatterFunc computes a label for a region. Implementations must be
// stateless: they are shared by reference across cloned option passes.
type FormatterFunc func(params LabelParams) string

// Formatter is a label formatter that is either a template string or a
// function. In configuration documents it appears as a plain string; function
// formatters can only be set programmatically by host code.
//
// The template form substitutes the region name for the first occurrence of
// the literal placeholder "{a}". Only the first occurrence is substituted;
// later occurrences pass through untouched. Longstanding consumer behavior
// depends on the single substitution, so it is kept as-is.
type Formatter struct {
	Template string        `json:"-" yaml:"-"`
	Func     FormatterFunc `json:"-" yaml:"-"`
}

// TemplateFormatter builds a Formatter from a template string.
func TemplateFormatter(template string) *Formatter {
	return &Formatter{Template: template}
}

// FuncFormatter builds a Formatter from a function.
func FuncFormatter(fn FormatterFunc) *Formatter {
	return &Formatter{Func: fn}
}

// Clone returns a copy of the formatter. The function, if any, is shared by
// reference.
func (f *Formatter) Clone() *Formatter {
	if f == nil {
		return nil
	}
	clone := *f
	return &clone
}

// Format evaluates the formatter for the given params. The second return value
// reports whether the formatter produced a label at all; false means the
// caller should fall through to its default rendering. An empty produced
// string is a valid result, distinct from "no label".
func (f *Formatter) Format(params LabelParams) (string, bool) {
	if f == nil {
		return "", false
	}
	if f.Func != nil {
		return f.Func(params), true
	}
	if f.Template != "" {
		return strings.Replace(f.Template, "{a}", params.Name, 1), true
	}
	return "", false
}

// MarshalJSON encodes the formatter as its template string. Function
// formatters are not serializable and encode as null.
func (f *Formatter) MarshalJSON() ([]byte, error) {
	if f.Func != nil {
		return []byte("null"), nil
	}
	return json.Marshal(f.Template)
}

// UnmarshalJSON accepts a plain string template.
func (f *Formatter) UnmarshalJSON(data []byte) error {
	var template string
	if err := json.Unmarshal(data, &template); err != nil {
		return errors.WrapInvalid(err, "Formatter", "UnmarshalJSON", "template decode")
	}
	f.Template = template
	f.Func = nil
	return nil
}

// MarshalYAML encodes the formatter as its template string.
func (f *Formatter) MarshalYAML() (any, error) {
	return f.Template, nil
}

// UnmarshalYAML accepts a plain string template.
func (f *Formatter) UnmarshalYAML(value *yaml.Node) error {
	var template string
	if err := value.Decode(&template); err != nil {
		return errors.WrapInvalid(err, "Formatter", "UnmarshalYAML", "template decode")
	}
	f.Template = template
	f.Func = nil
	return nil
}

// ResolveItemStyle flattens an ordered fallback chain of style sources into a
// single style. For each field the first source that sets it wins; nil sources
// are skipped. Fields no source sets stay nil in the result.
func ResolveItemStyle(sources ...*ItemStyle) ItemStyle {
	var resolved ItemStyle
	for _, src := range sources {
		if src == nil {
			continue
		}
		if resolved.AreaColor == nil {
			resolved.AreaColor = cloneString(src.AreaColor)
		}
		if resolved.BorderColor == nil {
			resolved.BorderColor = cloneString(src.BorderColor)
		}
		if resolved.BorderWidth == nil {
			resolved.BorderWidth = cloneFloat(src.BorderWidth)
		}
		if resolved.Opacity == nil {
			resolved.Opacity = cloneFloat(src.Opacity)
		}
		if resolved.ShadowBlur == nil {
			resolved.ShadowBlur = cloneFloat(src.ShadowBlur)
		}
		if resolved.ShadowColor == nil {
			resolved.ShadowColor = cloneString(src.ShadowColor)
		}
	}
	return resolved
}

// ResolveLabel flattens an ordered fallback chain of label sources into a
// single label, first-match-wins per field.
func ResolveLabel(sources ...*Label) Label {
	var resolved Label
	for _, src := range sources {
		if src == nil {
			continue
		}
		if resolved.Show == nil {
			resolved.Show = cloneBool(src.Show)
		}
		if resolved.Color == nil {
			resolved.Color = cloneString(src.Color)
		}
		if resolved.FontSize == nil {
			resolved.FontSize = cloneFloat(src.FontSize)
		}
		if resolved.Position == nil {
			resolved.Position = cloneString(src.Position)
		}
		if resolved.Formatter == nil {
			resolved.Formatter = src.Formatter.Clone()
		}
	}
	return resolved
}
