package geodata_test

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/geochart/errors"
	"github.com/c360/geochart/geodata"
	"github.com/c360/geochart/option"
	"github.com/c360/geochart/testutil"
)

func regionNames(regions []option.RegionOption) []string {
	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = r.Name
	}
	return names
}

func TestResolveCompleteness(t *testing.T) {
	testutil.RegisterTestWorld(t)

	// User mentions only one of three registry regions.
	filled, err := geodata.Resolve(testutil.TestWorldMap, []option.RegionOption{
		{Name: "Beta", ItemStyle: &option.ItemStyle{AreaColor: option.String("#fff")}},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, testutil.TestWorldRegionNames, regionNames(filled),
		"every registry region appears exactly once, in registry order")
	assert.Nil(t, filled[0].ItemStyle, "unmentioned regions carry only their name")
	require.NotNil(t, filled[1].ItemStyle)
	assert.Equal(t, "#fff", *filled[1].ItemStyle.AreaColor, "user overrides carry through by name")
	assert.Nil(t, filled[2].ItemStyle)
}

func TestResolveDropsUnknownUserRegions(t *testing.T) {
	testutil.RegisterTestWorld(t)

	filled, err := geodata.Resolve(testutil.TestWorldMap, []option.RegionOption{
		{Name: "Atlantis", ItemStyle: &option.ItemStyle{AreaColor: option.String("#00f")}},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, testutil.TestWorldRegionNames, regionNames(filled))
	for _, r := range filled {
		assert.Nil(t, r.ItemStyle, "fragments for nonexistent geometry are dropped silently")
	}
}

func TestResolveNameMap(t *testing.T) {
	testutil.RegisterTestWorld(t)

	nameMap := map[string]string{"Alpha": "First"}
	// The user fragment matches the post-remap name, not the raw one.
	filled, err := geodata.Resolve(testutil.TestWorldMap, []option.RegionOption{
		{Name: "First", Selected: option.Bool(true)},
		{Name: "Alpha", Selected: option.Bool(false)},
	}, nameMap)
	require.NoError(t, err)

	assert.Equal(t, []string{"First", "Beta", "Gamma"}, regionNames(filled))
	require.NotNil(t, filled[0].Selected)
	assert.True(t, *filled[0].Selected, "post-remap name wins the match")
}

func TestResolveDuplicateNamesLastWriterWins(t *testing.T) {
	testutil.RegisterTestWorld(t)

	filled, err := geodata.Resolve(testutil.TestWorldMap, []option.RegionOption{
		{Name: "Gamma", ItemStyle: &option.ItemStyle{AreaColor: option.String("#111")}},
		{Name: "Gamma", ItemStyle: &option.ItemStyle{AreaColor: option.String("#222")}},
	}, nil)
	require.NoError(t, err)

	require.NotNil(t, filled[2].ItemStyle)
	assert.Equal(t, "#222", *filled[2].ItemStyle.AreaColor)
}

func TestResolveSkipsUnnamedFragments(t *testing.T) {
	testutil.RegisterTestWorld(t)

	filled, err := geodata.Resolve(testutil.TestWorldMap, []option.RegionOption{
		{ItemStyle: &option.ItemStyle{AreaColor: option.String("#333")}},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, testutil.TestWorldRegionNames, regionNames(filled))
}

func TestResolveUnknownMapYieldsEmptyList(t *testing.T) {
	filled, err := geodata.Resolve("no-such-map", []option.RegionOption{{Name: "Alpha"}}, nil)
	require.NoError(t, err, "an unregistered map is not a fatal error")
	assert.Empty(t, filled)
	assert.NotNil(t, filled)
}

func TestResolvePropagatesProviderFailure(t *testing.T) {
	boom := stderrors.New("bad source")
	require.NoError(t, geodata.RegisterMapProvider("doomed", func() ([]geodata.Region, error) {
		return nil, boom
	}))
	t.Cleanup(func() { geodata.UnregisterMap("doomed") })

	_, err := geodata.Resolve("doomed", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.IsResolution(err))
}

func TestResolveIdempotent(t *testing.T) {
	testutil.RegisterTestWorld(t)

	user := []option.RegionOption{
		{Name: "Beta", ItemStyle: &option.ItemStyle{AreaColor: option.String("#fff")}, Selected: option.Bool(true)},
	}
	nameMap := map[string]string{"Gamma": "Third"}

	first, err := geodata.Resolve(testutil.TestWorldMap, user, nameMap)
	require.NoError(t, err)
	second, err := geodata.Resolve(testutil.TestWorldMap, user, nameMap)
	require.NoError(t, err)

	assert.Equal(t, first, second, "same inputs, structurally identical output")
}

func TestResolveClonesUserFragments(t *testing.T) {
	testutil.RegisterTestWorld(t)

	user := []option.RegionOption{
		{Name: "Alpha", ItemStyle: &option.ItemStyle{AreaColor: option.String("#fff")}},
	}

	filled, err := geodata.Resolve(testutil.TestWorldMap, user, nil)
	require.NoError(t, err)

	*filled[0].ItemStyle.AreaColor = "#000"
	assert.Equal(t, "#fff", *user[0].ItemStyle.AreaColor,
		"resolved entries must not alias the user's fragments")
}
