package option

// Defaults returns the global default option block. It is the last source in
// every fallback chain: fields that neither a region fragment nor the
// component option set resolve here.
//
// Each call returns a fresh copy so callers can never mutate shared defaults.
func Defaults() *GeoOption {
	return &GeoOption{
		Show:        Bool(true),
		Silent:      Bool(false),
		Left:        "center",
		Top:         "center",
		Zoom:        1,
		AspectScale: 0.75,
		ItemStyle: &ItemStyle{
			AreaColor:   String("#eee"),
			BorderColor: String("#444"),
			BorderWidth: Float(0.5),
		},
		Label: &Label{
			Show:  Bool(false),
			Color: String("#000"),
		},
		Emphasis: &Emphasis{
			ItemStyle: &ItemStyle{
				AreaColor: String("rgba(255,215,0,0.8)"),
			},
			Label: &Label{
				Show:  Bool(true),
				Color: String("rgb(100,0,0)"),
			},
		},
	}
}
