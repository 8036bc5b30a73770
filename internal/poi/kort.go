package poi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/fabio-scala/poitour-backend/internal/models"
)

func init() {
	Register("kort", newKortProvider)
}

const kortDefaultBaseURL = "http://play.kort.ch/server/webservices/mission/position/"

// kortProvider is grounded on app/pois/providers/kort.py: a single flat
// category backed by one HTTP GET per bounding-box lookup.
type kortProvider struct {
	baseURL string
	client  *http.Client
}

func newKortProvider(cfg ProviderConfig) (Provider, error) {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = kortDefaultBaseURL
	}
	return &kortProvider{baseURL: baseURL, client: &http.Client{Timeout: 10 * time.Second}}, nil
}

func (p *kortProvider) Categories() []Category {
	return []Category{{
		ID:          "kort",
		Name:        "Kort",
		DisplayName: "Kort POIs",
	}}
}

type kortPoint struct {
	Title       string `json:"title"`
	Longitude   string `json:"longitude"`
	Latitude    string `json:"latitude"`
	OSMID       string `json:"osm_id"`
	OSMType     string `json:"osm_type"`
	Description string `json:"description"`
}

type kortResponse struct {
	Return []kortPoint `json:"return"`
}

func (p *kortProvider) Fetch(ctx context.Context, bbox BoundingBox, category string) ([]models.POI, error) {
	if category != "kort" {
		return nil, nil
	}
	centerLat := (bbox.MinLat + bbox.MaxLat) / 2
	centerLng := (bbox.MinLng + bbox.MaxLng) / 2
	radiusM := haversineMeters(bbox.MinLat, bbox.MinLng, bbox.MaxLat, bbox.MaxLng) / 2

	url := fmt.Sprintf("%s%f,%f?lang=de&radius=%f", p.baseURL, centerLat, centerLng, radiusM)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("poi: kort request: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("poi: kort request: status %d", resp.StatusCode)
	}

	var parsed kortResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("poi: kort decode: %w", err)
	}

	points := make([]models.POI, 0, len(parsed.Return))
	for _, kp := range parsed.Return {
		lon, err := strconv.ParseFloat(kp.Longitude, 64)
		if err != nil {
			continue
		}
		lat, err := strconv.ParseFloat(kp.Latitude, 64)
		if err != nil {
			continue
		}
		points = append(points, models.POI{
			ID:       kp.OSMType + "/" + kp.OSMID,
			Name:     fmt.Sprintf("Kort %q", kp.Title),
			Category: "kort",
			Location: models.Location{Lat: lat, Lng: lon},
		})
	}
	return points, nil
}
