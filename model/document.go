package model

import (
	"github.com/c360/geochart/config"
	"github.com/c360/geochart/errors"
)

// FromDocument builds one GeoModel per geo component block in a chart
// configuration document, keyed by component instance name. The shared
// construction options (logger, metrics) apply to every model.
//
// Construction stops at the first component that fails, so a partially
// invalid document never yields a partial model set.
func FromDocument(doc *config.Document, opts ...Option) (map[string]*GeoModel, error) {
	if err := doc.Validate(); err != nil {
		return nil, errors.Wrap(err, "GeoModel", "FromDocument", "document validation")
	}

	models := make(map[string]*GeoModel, len(doc.Geo))
	for name, opt := range doc.Geo {
		m, err := New(name, opt, opts...)
		if err != nil {
			return nil, errors.Wrap(err, "GeoModel", "FromDocument", "component "+name)
		}
		models[name] = m
	}
	return models, nil
}
