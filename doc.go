// Package geochart provides the option schema and runtime model for a
// geographic "region" chart component.
//
// # Architecture
//
// The module is an in-process model boundary between a hosting chart
// configuration system and a rendering layer:
//
//	┌─────────────────────────────────────┐
//	│        Chart configuration          │  GeoOption documents
//	│   (wholesale option updates)        │  (JSON or YAML)
//	└─────────────────────────────────────┘
//	           ↓ UpdateOption
//	┌─────────────────────────────────────┐
//	│           model.GeoModel            │  Resolution, indexing,
//	│  (region index, selection, labels)  │  label formatting
//	└─────────────────────────────────────┘
//	           ↓ Resolve
//	┌─────────────────────────────────────┐
//	│         geodata registry            │  Named regions, polygon
//	│   (map records, name remapping)     │  geometry, bounding rects
//	└─────────────────────────────────────┘
//
// On every option update the model resolves the user-supplied region list
// against the geodata registry, rebuilds its name-keyed region index from
// scratch, and refreshes selection bookkeeping. Renderers then query per-region
// models, formatted labels, and selection state by name in O(1).
//
// # Packages
//
//   - option: option tree declarations, defaults, merge and clone helpers
//   - geodata: map registry and region resolution
//   - model: GeoModel, per-region models, region index, label formatting
//   - selectable: generic select/unselect/toggle capability over named targets
//   - config: chart configuration documents (JSON/YAML) and safe swapping
//   - metric: Prometheus metrics for resolve passes, rebuilds, and lookups
//   - errors: classified errors and the ResolutionError surfaced by resolution
//
// The model layer deliberately prefers inert fallbacks over raised errors:
// unknown region names yield empty fallback models, unknown map ids resolve to
// empty region lists, and malformed label formatters yield no label. Only
// registry source failures surface as errors, as a distinct ResolutionError.
//
// Geometry parsing, map projection, and drawing are out of scope; the geodata
// registry accepts already-built polygon geometry from host code.
package geochart
