// Package config handles chart configuration documents for the geochart
// module: JSON or YAML documents holding one or more named geo option
// blocks, supplied wholesale by the hosting system on each change.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/c360/geochart/errors"
	"github.com/c360/geochart/option"
)

// Supported document formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Document is one chart configuration document. The Geo map is keyed by
// component instance name.
type Document struct {
	Version string                       `json:"version,omitempty" yaml:"version,omitempty"`
	Geo     map[string]*option.GeoOption `json:"geo" yaml:"geo"`
}

// Parse decodes a document from raw bytes in the given format.
func Parse(data []byte, format string) (*Document, error) {
	var doc Document

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapInvalid(err, "Document", "Parse", "JSON decode")
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapInvalid(err, "Document", "Parse", "YAML decode")
		}
	default:
		msg := fmt.Errorf("%w: %s", errors.ErrUnsupportedFile, format)
		return nil, errors.WrapInvalid(msg, "Document", "Parse", "format check")
	}

	return &doc, nil
}

// Load reads a document from disk, choosing the format by file extension
// (.json, .yaml, .yml).
func Load(path string) (*Document, error) {
	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		format = FormatJSON
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		msg := fmt.Errorf("%w: %s", errors.ErrUnsupportedFile, path)
		return nil, errors.WrapInvalid(msg, "Document", "Load", "extension check")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrConfigNotFound, "Document", "Load", "file read")
		}
		return nil, errors.Wrap(err, "Document", "Load", "file read")
	}

	return Parse(data, format)
}

// Validate checks every geo option block in the document.
func (d *Document) Validate() error {
	if d == nil {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "Document", "Validate", "nil document check")
	}
	for name, opt := range d.Geo {
		if opt == nil {
			msg := fmt.Errorf("%w: geo component %q is empty", errors.ErrInvalidConfig, name)
			return errors.WrapInvalid(msg, "Document", "Validate", "component check")
		}
		if err := opt.Validate(); err != nil {
			return errors.Wrap(err, "Document", "Validate", fmt.Sprintf("geo component %q", name))
		}
	}
	return nil
}

// Clone creates a deep copy of the document.
func (d *Document) Clone() *Document {
	if d == nil {
		return &Document{}
	}
	clone := &Document{Version: d.Version}
	if d.Geo != nil {
		clone.Geo = make(map[string]*option.GeoOption, len(d.Geo))
		for name, opt := range d.Geo {
			clone.Geo[name] = opt.Clone()
		}
	}
	return clone
}

// SafeDocument provides thread-safe access to a document, swapping it
// atomically on update so readers see either the old document or the new
// one, never a half-applied change.
type SafeDocument struct {
	mu  sync.RWMutex
	doc *Document
}

// NewSafeDocument creates a new thread-safe document wrapper.
func NewSafeDocument(doc *Document) *SafeDocument {
	if doc == nil {
		doc = &Document{}
	}
	return &SafeDocument{doc: doc}
}

// Get returns a deep copy of the current document.
func (sd *SafeDocument) Get() *Document {
	sd.mu.RLock()
	defer sd.mu.RUnlock()
	return sd.doc.Clone()
}

// Update atomically replaces the document after validation.
func (sd *SafeDocument) Update(doc *Document) error {
	if doc == nil {
		return errors.WrapInvalid(errors.ErrInvalidConfig, "SafeDocument", "Update", "nil document check")
	}
	if err := doc.Validate(); err != nil {
		return errors.Wrap(err, "SafeDocument", "Update", "document validation")
	}

	sd.mu.Lock()
	defer sd.mu.Unlock()
	sd.doc = doc
	return nil
}
