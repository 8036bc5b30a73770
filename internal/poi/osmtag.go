package poi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fabio-scala/poitour-backend/internal/models"
)

func init() {
	Register("osmtag", newOSMTagProvider)
}

const osmtagDefaultBaseURL = "https://overpass-api.de/api/interpreter"

// tagCategories mirrors the essential shape of app/pois/providers/osm_tag.py's
// config-driven category list, minus the SQL-specific include/exclude tree:
// each category is simply an OSM key=value tag pair queried directly
// against an Overpass endpoint instead of a local OSM database mirror.
var tagCategories = map[string]Category{
	"restaurant": {ID: "restaurant", Name: "amenity=restaurant", DisplayName: "Restaurants"},
	"viewpoint":  {ID: "viewpoint", Name: "tourism=viewpoint", DisplayName: "Viewpoints"},
	"museum":     {ID: "museum", Name: "tourism=museum", DisplayName: "Museums"},
}

// osmTagProvider is grounded on app/pois/providers/osm_tag.py, replacing its
// EOSMDBOne Postgres queries with Overpass API requests over net/http.
type osmTagProvider struct {
	baseURL string
	client  *http.Client
}

func newOSMTagProvider(cfg ProviderConfig) (Provider, error) {
	baseURL := cfg.OSMBaseURL
	if baseURL == "" {
		baseURL = osmtagDefaultBaseURL
	}
	return &osmTagProvider{baseURL: baseURL, client: &http.Client{Timeout: 15 * time.Second}}, nil
}

func (p *osmTagProvider) Categories() []Category {
	cats := make([]Category, 0, len(tagCategories))
	for _, c := range tagCategories {
		cats = append(cats, c)
	}
	return cats
}

type overpassElement struct {
	Type string            `json:"type"`
	ID   int64             `json:"id"`
	Lat  float64           `json:"lat"`
	Lon  float64           `json:"lon"`
	Tags map[string]string `json:"tags"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

func (p *osmTagProvider) Fetch(ctx context.Context, bbox BoundingBox, category string) ([]models.POI, error) {
	cat, ok := tagCategories[category]
	if !ok {
		return nil, fmt.Errorf("poi: osmtag: unknown category %q", category)
	}
	kv := strings.SplitN(cat.Name, "=", 2)
	if len(kv) != 2 {
		return nil, fmt.Errorf("poi: osmtag: malformed tag %q", cat.Name)
	}

	query := fmt.Sprintf(
		`[out:json];node[%q=%q](%f,%f,%f,%f);out;`,
		kv[0], kv[1], bbox.MinLat, bbox.MinLng, bbox.MaxLat, bbox.MaxLng,
	)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, strings.NewReader(url.Values{"data": {query}}.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("poi: osmtag request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("poi: osmtag request: status %d", resp.StatusCode)
	}

	var parsed overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("poi: osmtag decode: %w", err)
	}

	points := make([]models.POI, 0, len(parsed.Elements))
	for _, el := range parsed.Elements {
		name := el.Tags["name"]
		if name == "" {
			name = fmt.Sprintf("%s ohne Namen", cat.DisplayName)
		}
		points = append(points, models.POI{
			ID:       fmt.Sprintf("node/%d", el.ID),
			Name:     name,
			Category: category,
			Location: models.Location{Lat: el.Lat, Lng: el.Lon},
		})
	}
	return points, nil
}
