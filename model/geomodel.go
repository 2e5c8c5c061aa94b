package model

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/c360/geochart/errors"
	"github.com/c360/geochart/geodata"
	"github.com/c360/geochart/metric"
	"github.com/c360/geochart/option"
	"github.com/c360/geochart/selectable"
)

// GeoModel is the runtime model for one geo chart component. It owns the
// component's option tree, the resolved region list, the name-keyed region
// index, and the selection state, and rebuilds all of them on every option
// update.
//
// Option updates and queries are expected to be sequential, as in a UI
// render/update cycle. The internal lock only guards the swap of a fully
// built pass, so readers observe either the previous pass or the new one,
// never a partially built index.
type GeoModel struct {
	name    string
	logger  *slog.Logger
	metrics *metric.Metrics
	global  *option.GeoOption

	mu        sync.RWMutex
	opt       *option.GeoOption
	filled    []option.RegionOption
	index     map[string]*RegionModel
	selection *selectable.State
	revision  string
}

// Option configures a GeoModel at construction time.
type Option func(*GeoModel)

// WithLogger sets the logger used for per-pass diagnostics.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(g *GeoModel) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithMetrics attaches model metrics. Without it the model records nothing.
func WithMetrics(metrics *metric.Metrics) Option {
	return func(g *GeoModel) {
		g.metrics = metrics
	}
}

// New creates a GeoModel for the given component name and runs the first
// resolution pass over opt. The option is cloned; the caller keeps ownership
// of its copy.
func New(name string, opt *option.GeoOption, opts ...Option) (*GeoModel, error) {
	g := &GeoModel{
		name:      name,
		logger:    slog.Default(),
		global:    option.Defaults(),
		selection: selectable.NewState(selectable.ModeNone),
	}
	for _, o := range opts {
		o(g)
	}

	if err := g.UpdateOption(opt); err != nil {
		return nil, err
	}
	return g, nil
}

// Name returns the component instance name.
func (g *GeoModel) Name() string {
	return g.name
}

// UpdateOption replaces the component's option tree wholesale, resolves the
// region list against the geodata registry, rebuilds the region index, and
// refreshes selection bookkeeping.
//
// On resolution failure the previous pass stays in place and the error is
// returned for the hosting configuration system to report. An unknown map id
// is not a failure; it resolves to an empty region set.
func (g *GeoModel) UpdateOption(opt *option.GeoOption) error {
	if err := opt.Validate(); err != nil {
		return errors.Wrap(err, "GeoModel", "UpdateOption", "option validation")
	}

	next := opt.Clone()

	filled, err := geodata.Resolve(next.Map, next.Regions, next.NameMap)
	if err != nil {
		if g.metrics != nil {
			g.metrics.RecordResolveFailure(g.name, next.Map)
		}
		return errors.Wrap(err, "GeoModel", "UpdateOption", "region resolution")
	}

	start := time.Now()
	index := buildIndex(filled, next, g.global)
	revision := uuid.NewString()

	mode := selectable.Mode(next.SelectedMode)
	targets := make([]selectable.Target, len(filled))
	for i := range filled {
		targets[i] = selectable.Target{
			Name:     filled[i].Name,
			Selected: filled[i].Selected != nil && *filled[i].Selected,
		}
	}

	g.mu.Lock()
	g.opt = next
	g.filled = filled
	g.index = index
	g.selection.SetMode(mode)
	g.selection.Refresh(targets)
	g.revision = revision
	g.mu.Unlock()

	if g.metrics != nil {
		g.metrics.RecordResolvePass(g.name, next.Map, len(filled))
		g.metrics.RecordIndexRebuild(g.name, time.Since(start))
	}
	g.logger.Debug("geo option updated",
		"component", g.name,
		"map", next.Map,
		"regions", len(filled),
		"revision", revision)

	return nil
}

// buildIndex constructs the name-keyed region index for one resolution pass.
// Later same-named entries overwrite earlier ones; entries without a name are
// skipped (they stay in the positional list but cannot be looked up). The
// index is built fully on every pass; there is no incremental update path.
func buildIndex(filled []option.RegionOption, parent, global *option.GeoOption) map[string]*RegionModel {
	index := make(map[string]*RegionModel, len(filled))
	for i := range filled {
		name := filled[i].Name
		if name == "" {
			continue
		}
		index[name] = newRegionModel(name, &filled[i], parent, global)
	}
	return index
}

// Option returns a copy of the current component option tree.
func (g *GeoModel) Option() *option.GeoOption {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.opt.Clone()
}

// Revision identifies the current resolution pass. It changes on every
// successful UpdateOption.
func (g *GeoModel) Revision() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.revision
}

// Regions returns a copy of the resolved region list in resolution order,
// for positional iteration by renderers.
func (g *GeoModel) Regions() []option.RegionOption {
	g.mu.RLock()
	defer g.mu.RUnlock()

	regions := make([]option.RegionOption, len(g.filled))
	for i := range g.filled {
		regions[i] = g.filled[i].Clone()
	}
	return regions
}

// RegionModel returns the model for the named region. Unknown names yield a
// fresh fallback model with no option fragment of its own, so styling and
// label reads still resolve through the component and global defaults;
// callers never branch on region existence.
func (g *GeoModel) RegionModel(name string) *RegionModel {
	g.mu.RLock()
	m, ok := g.index[name]
	opt := g.opt
	g.mu.RUnlock()

	if ok {
		if g.metrics != nil {
			g.metrics.RecordRegionLookup(g.name, metric.LookupHit)
		}
		return m
	}

	if g.metrics != nil {
		g.metrics.RecordRegionLookup(g.name, metric.LookupMiss)
	}
	return newRegionModel(name, nil, opt, g.global)
}

// FormattedLabel evaluates the named region's label formatter for the given
// status. False means no formatter applies and the caller should use its
// default rendering; it is never an error.
func (g *GeoModel) FormattedLabel(name string, status Status) (string, bool) {
	return g.RegionModel(name).FormattedLabel(status)
}

// SetZoom sets the zoom scalar directly. No validation: the rendering layer
// is responsible for clamping.
func (g *GeoModel) SetZoom(zoom float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.opt.Zoom = zoom
}

// Zoom returns the current zoom, falling back to the global default when the
// option leaves it unset.
func (g *GeoModel) Zoom() float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.opt.Zoom != 0 {
		return g.opt.Zoom
	}
	return g.global.Zoom
}

// SetCenter sets the view center directly. No validation.
func (g *GeoModel) SetCenter(center []float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.opt.Center = append([]float64(nil), center...)
}

// Center returns a copy of the current view center, or nil when unset.
func (g *GeoModel) Center() []float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.opt.Center == nil {
		return nil
	}
	return append([]float64(nil), g.opt.Center...)
}

// Select marks the named region selected, honoring the configured selection
// mode. Delegates to the composed selection state; the region index is never
// mutated by selection changes.
func (g *GeoModel) Select(name string) {
	g.mu.Lock()
	g.selection.Select(name)
	g.mu.Unlock()
	g.recordSelection("select")
}

// Unselect removes the named region from the selection.
func (g *GeoModel) Unselect(name string) {
	g.mu.Lock()
	g.selection.Unselect(name)
	g.mu.Unlock()
	g.recordSelection("unselect")
}

// ToggleSelected flips the named region's selection state.
func (g *GeoModel) ToggleSelected(name string) {
	g.mu.Lock()
	g.selection.ToggleSelected(name)
	g.mu.Unlock()
	g.recordSelection("toggle")
}

// IsSelected reports whether the named region is selected. Unknown names
// report false.
func (g *GeoModel) IsSelected(name string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.selection.IsSelected(name)
}

// SelectedNames returns the currently selected region names, sorted.
func (g *GeoModel) SelectedNames() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.selection.SelectedNames()
}

func (g *GeoModel) recordSelection(operation string) {
	if g.metrics != nil {
		g.metrics.RecordSelectionChange(g.name, operation)
	}
}
