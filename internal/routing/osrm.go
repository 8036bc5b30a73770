package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/fabio-scala/poitour-backend/internal/matrix"
	"github.com/fabio-scala/poitour-backend/internal/models"
)

// OSRMClient is grounded on app/routing/osrm.py's OsrmService: a thin
// wrapper around OSRM's table (distance matrix) and viaroute (routing)
// HTTP APIs.
type OSRMClient struct {
	baseURL string
	client  *http.Client
}

// NewOSRMClient builds a client against an OSRM-compatible server at
// baseURL (including scheme, no trailing slash).
func NewOSRMClient(baseURL string) *OSRMClient {
	return &OSRMClient{baseURL: strings.TrimRight(baseURL, "/"), client: &http.Client{Timeout: 20 * time.Second}}
}

type tableResponse struct {
	DistanceTable [][]float64 `json:"distance_table"`
}

// Matrix calls OSRM's table API, mirroring OsrmService.distance_matrix.
func (c *OSRMClient) Matrix(ctx context.Context, points []models.Location) (*matrix.Matrix, error) {
	if len(points) == 0 {
		return matrix.New(0), nil
	}

	locs := make([]string, len(points))
	for i, p := range points {
		locs[i] = fmt.Sprintf("loc=%f,%f", p.Lat, p.Lng)
	}
	url := fmt.Sprintf("%s/table?%s", c.baseURL, strings.Join(locs, "&"))

	var parsed tableResponse
	if err := c.getJSON(ctx, url, &parsed); err != nil {
		return nil, fmt.Errorf("routing: matrix: %w", err)
	}
	return matrix.NewFromRows(parsed.DistanceTable)
}

type viarouteResponse struct {
	RouteGeometry string `json:"route_geometry"`
	RouteSummary  struct {
		TotalTime int `json:"total_time"`
	} `json:"route_summary"`
}

// Route calls OSRM's viaroute API and decodes its polyline geometry,
// mirroring Tour.calculate's use of OsrmService.viaroute.
func (c *OSRMClient) Route(ctx context.Context, points []models.Location) ([]models.Location, float64, error) {
	if len(points) == 0 {
		return nil, 0, nil
	}

	locs := make([]string, len(points))
	for i, p := range points {
		locs[i] = fmt.Sprintf("loc=%f,%f", p.Lat, p.Lng)
	}
	url := fmt.Sprintf("%s/viaroute?%s&z=0", c.baseURL, strings.Join(locs, "&"))

	var parsed viarouteResponse
	if err := c.getJSON(ctx, url, &parsed); err != nil {
		return nil, 0, fmt.Errorf("routing: route: %w", err)
	}

	geometry := decodePolyline(parsed.RouteGeometry)
	return geometry, float64(parsed.RouteSummary.TotalTime), nil
}

func (c *OSRMClient) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodePolyline implements Google's encoded polyline algorithm at the
// default precision of 5 decimal digits. No polyline-decoding library was
// found anywhere in the retrieved example pack, so this stays on the
// standard library (see DESIGN.md).
func decodePolyline(encoded string) []models.Location {
	var points []models.Location
	index, lat, lng := 0, 0, 0

	for index < len(encoded) {
		lat += decodePolylineValue(encoded, &index)
		lng += decodePolylineValue(encoded, &index)
		points = append(points, models.Location{
			Lat: float64(lat) / 1e5,
			Lng: float64(lng) / 1e5,
		})
	}
	return points
}

func decodePolylineValue(encoded string, index *int) int {
	shift, result := uint(0), 0
	for {
		b := int(encoded[*index]) - 63
		*index++
		result |= (b & 0x1f) << shift
		shift += 5
		if b < 0x20 {
			break
		}
	}
	if result&1 != 0 {
		return ^(result >> 1)
	}
	return result >> 1
}
