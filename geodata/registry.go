package geodata

import (
	"fmt"
	"sort"
	"sync"

	"github.com/c360/geochart/errors"
)

// Provider loads the regions of a map on first use. It allows heavyweight
// geometry to stay unloaded until a chart actually references the map.
type Provider func() ([]Region, error)

// Global map registry
var (
	registryMu sync.RWMutex
	records    = make(map[string]*record)
)

type record struct {
	name     string
	regions  []Region
	provider Provider
	loaded   bool
}

// RegisterMap registers a map with eagerly supplied region geometry.
// Returns an error if the name is empty, already registered, or any region is
// structurally invalid.
func RegisterMap(name string, regions []Region) error {
	if name == "" {
		return errors.WrapInvalid(errors.ErrInvalidGeometry, "Registry", "RegisterMap", "map name validation")
	}
	if err := validateRegions(regions); err != nil {
		return errors.Wrap(err, "Registry", "RegisterMap", "region validation")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := records[name]; exists {
		msg := fmt.Errorf("%w: %s", errors.ErrDuplicateMap, name)
		return errors.WrapInvalid(msg, "Registry", "RegisterMap", "duplicate map check")
	}

	records[name] = &record{name: name, regions: regions, loaded: true}
	return nil
}

// RegisterMapProvider registers a map whose regions are loaded lazily on first
// access. Provider failures surface later, from Resolve or MapRegions, as a
// ResolutionError.
func RegisterMapProvider(name string, provider Provider) error {
	if name == "" {
		return errors.WrapInvalid(errors.ErrInvalidGeometry, "Registry", "RegisterMapProvider", "map name validation")
	}
	if provider == nil {
		return errors.WrapInvalid(errors.ErrInvalidGeometry, "Registry", "RegisterMapProvider", "provider validation")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, exists := records[name]; exists {
		msg := fmt.Errorf("%w: %s", errors.ErrDuplicateMap, name)
		return errors.WrapInvalid(msg, "Registry", "RegisterMapProvider", "duplicate map check")
	}

	records[name] = &record{name: name, provider: provider}
	return nil
}

// HasMap reports whether a map is registered under the given name.
func HasMap(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()

	_, exists := records[name]
	return exists
}

// ListMaps returns the names of all registered maps, sorted.
func ListMaps() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MapRegions returns the regions of a registered map in registration order,
// loading them through the provider if necessary. The returned slice is a
// copy; the polygon geometry inside it is shared and read-only.
//
// An unregistered name yields ErrMapNotRegistered. A failing or malformed
// provider yields a ResolutionError.
func MapRegions(name string) ([]Region, error) {
	rec, err := lookupLoaded(name)
	if err != nil {
		return nil, err
	}

	regions := make([]Region, len(rec.regions))
	copy(regions, rec.regions)
	return regions, nil
}

// RegionNames returns the region names of a map in registration order.
func RegionNames(name string) ([]string, error) {
	rec, err := lookupLoaded(name)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(rec.regions))
	for i, region := range rec.regions {
		names[i] = region.Name
	}
	return names, nil
}

// UnregisterMap removes a map from the registry.
func UnregisterMap(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(records, name)
}

// ClearRegistry removes all registered maps.
// This is primarily useful for testing.
func ClearRegistry() {
	registryMu.Lock()
	defer registryMu.Unlock()
	records = make(map[string]*record)
}

// lookupLoaded fetches a record and ensures its provider has run.
func lookupLoaded(name string) (*record, error) {
	registryMu.RLock()
	rec, exists := records[name]
	registryMu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", errors.ErrMapNotRegistered, name)
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if rec.loaded {
		return rec, nil
	}

	regions, err := rec.provider()
	if err != nil {
		return nil, errors.NewResolutionError(name, "provider", err)
	}
	if err := validateRegions(regions); err != nil {
		return nil, errors.NewResolutionError(name, "provider", err)
	}

	rec.regions = regions
	rec.loaded = true
	return rec, nil
}

// validateRegions rejects region sets the resolution path could not serve:
// empty region names cannot be indexed and ringless polygons cannot be drawn.
func validateRegions(regions []Region) error {
	for i, region := range regions {
		if region.Name == "" {
			return fmt.Errorf("%w: region %d has no name", errors.ErrInvalidGeometry, i)
		}
		for _, poly := range region.Polygons {
			if len(poly.Exterior) < 3 {
				return fmt.Errorf("%w: region %q has a degenerate ring", errors.ErrInvalidGeometry, region.Name)
			}
		}
	}
	return nil
}
