// Package testutil provides shared fixtures for geochart package tests:
// small synthetic map records that exercise the registry and resolution
// paths without real geometry data.
package testutil

import (
	"testing"

	"github.com/c360/geochart/geodata"
)

// TestWorldMap is the map name used by RegisterTestWorld.
const TestWorldMap = "testworld"

// TestWorldRegionNames lists the regions of the testworld map in
// registration order.
var TestWorldRegionNames = []string{"Alpha", "Beta", "Gamma"}

// SquareRegion builds a region whose geometry is a single axis-aligned square
// with origin (x, y) and the given side length.
func SquareRegion(name string, x, y, side float64) geodata.Region {
	return geodata.Region{
		Name: name,
		Polygons: []geodata.Polygon{
			{
				Exterior: []geodata.Point{
					{X: x, Y: y},
					{X: x + side, Y: y},
					{X: x + side, Y: y + side},
					{X: x, Y: y + side},
				},
			},
		},
	}
}

// TestWorldRegions returns a fresh copy of the testworld region set: three
// unit squares laid out left to right.
func TestWorldRegions() []geodata.Region {
	regions := make([]geodata.Region, len(TestWorldRegionNames))
	for i, name := range TestWorldRegionNames {
		regions[i] = SquareRegion(name, float64(i*2), 0, 1)
	}
	return regions
}

// RegisterTestWorld registers the testworld map for the duration of the test
// and unregisters it on cleanup.
func RegisterTestWorld(t *testing.T) {
	t.Helper()

	if err := geodata.RegisterMap(TestWorldMap, TestWorldRegions()); err != nil {
		t.Fatalf("registering %s: %v", TestWorldMap, err)
	}
	t.Cleanup(func() { geodata.UnregisterMap(TestWorldMap) })
}
