// Package poi provides a pluggable registry of point-of-interest providers.
//
// The original app (app/pois/providerbase.py) registered providers through a
// metaclass that appended every CategoryProvider subclass to a global list
// as soon as it was defined. Go has no metaclasses, so providers register
// themselves explicitly from an init() func instead - a constructor registry
// keyed by name.
package poi

import (
	"context"
	"fmt"

	"github.com/fabio-scala/poitour-backend/internal/models"
)

// BoundingBox constrains a provider lookup to a geographic area.
type BoundingBox struct {
	MinLat, MinLng float64
	MaxLat, MaxLng float64
}

// Contains reports whether loc falls within the box.
func (b BoundingBox) Contains(loc models.Location) bool {
	return loc.Lat >= b.MinLat && loc.Lat <= b.MaxLat &&
		loc.Lng >= b.MinLng && loc.Lng <= b.MaxLng
}

// ProviderConfig carries the per-provider settings (base URL, API key, OSM
// endpoint), the same fields as internal/config's POIConfig; nothing in the
// repository builds one from a loaded Config.
type ProviderConfig struct {
	BaseURL    string
	APIKey     string
	OSMBaseURL string
}

// Provider fetches POI candidates for a category within a bounding box.
type Provider interface {
	// Categories returns the categories this provider can serve.
	Categories() []Category
	// Fetch returns the POIs of category within bbox.
	Fetch(ctx context.Context, bbox BoundingBox, category string) ([]models.POI, error)
}

// Category mirrors app/pois/providerbase.py's Category: a POI grouping
// shown to API consumers, independent of which provider ultimately serves
// it.
type Category struct {
	ID          string
	Name        string
	DisplayName string
	Description string
}

type constructor func(ProviderConfig) (Provider, error)

var registry = map[string]constructor{}

// Register adds a provider constructor under name. Called from each
// provider's init().
func Register(name string, ctor constructor) {
	registry[name] = ctor
}

// New instantiates the provider registered under name.
func New(name string, cfg ProviderConfig) (Provider, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("poi: no provider registered as %q", name)
	}
	return ctor(cfg)
}

// Registered lists the provider names currently registered, for
// diagnostics and the /pois handler.
func Registered() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
