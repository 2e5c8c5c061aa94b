package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/geochart/config"
	"github.com/c360/geochart/model"
	"github.com/c360/geochart/option"
	"github.com/c360/geochart/testutil"
)

func TestFromDocument(t *testing.T) {
	testutil.RegisterTestWorld(t)

	doc := &config.Document{
		Version: "1.0.0",
		Geo: map[string]*option.GeoOption{
			"main": {
				Map:          testutil.TestWorldMap,
				SelectedMode: option.SelectedModeMultiple,
			},
			"inset": {
				Map:  testutil.TestWorldMap,
				Zoom: 4,
			},
		},
	}

	models, err := model.FromDocument(doc)
	require.NoError(t, err)
	require.Len(t, models, 2)

	main := models["main"]
	require.NotNil(t, main)
	assert.Equal(t, "main", main.Name())
	assert.Len(t, main.Regions(), 3)

	inset := models["inset"]
	require.NotNil(t, inset)
	assert.Equal(t, 4.0, inset.Zoom())

	// Models are independent instances.
	main.Select("Alpha")
	assert.False(t, inset.IsSelected("Alpha"))
}

func TestFromDocumentInvalidDocument(t *testing.T) {
	doc := &config.Document{
		Geo: map[string]*option.GeoOption{
			"bad": {Map: "whatever", SelectedMode: "several"},
		},
	}

	_, err := model.FromDocument(doc)
	assert.Error(t, err)
}

func TestFromDocumentParsedYAML(t *testing.T) {
	testutil.RegisterTestWorld(t)

	doc, err := config.Parse([]byte(`
version: "1.0.0"
geo:
  world:
    map: testworld
    selectedMode: single
    label:
      formatter: "{a} area"
    regions:
      - name: Beta
        selected: true
        itemStyle:
          areaColor: "#fff"
`), config.FormatYAML)
	require.NoError(t, err)

	models, err := model.FromDocument(doc)
	require.NoError(t, err)

	g := models["world"]
	require.NotNil(t, g)
	assert.True(t, g.IsSelected("Beta"))

	got, ok := g.FormattedLabel("Beta", model.StatusNormal)
	require.True(t, ok)
	assert.Equal(t, "Beta area", got)

	style := g.RegionModel("Beta").ItemStyle(model.StatusNormal)
	require.NotNil(t, style.AreaColor)
	assert.Equal(t, "#fff", *style.AreaColor)
}
