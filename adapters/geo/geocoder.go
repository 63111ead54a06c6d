// Package geo resolves a free-text birth place to optional coordinates.
// Strictly best-effort enrichment: the chart derivation never reads
// coordinates, and every failure here is ignored upstream.
package geo

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tidwall/gjson"

	"selfchart/domain/chart"
)

const requestTimeout = 5 * time.Second

// Geocoder looks up coordinates for a place string against a
// Nominatim-style JSON search endpoint.
type Geocoder struct {
	baseURL string
	client  *http.Client
}

// NewGeocoder creates a geocoder against the given search endpoint.
func NewGeocoder(baseURL string) *Geocoder {
	return &Geocoder{
		baseURL: baseURL,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// Enrich fills Latitude/Longitude on the birth record when they are absent
// and the place resolves. The record is returned unchanged on any failure.
func (g *Geocoder) Enrich(ctx context.Context, birth chart.BirthRecord) chart.BirthRecord {
	if birth.Place == "" || (birth.Latitude != nil && birth.Longitude != nil) {
		return birth
	}

	lat, lon, err := g.Lookup(ctx, birth.Place)
	if err != nil {
		return birth
	}
	birth.Latitude = &lat
	birth.Longitude = &lon
	return birth
}

// Lookup resolves a place to coordinates.
func (g *Geocoder) Lookup(ctx context.Context, place string) (float64, float64, error) {
	endpoint := fmt.Sprintf("%s?format=json&limit=1&q=%s", g.baseURL, url.QueryEscape(place))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, 0, err
	}

	first := gjson.GetBytes(body, "0")
	if !first.Exists() {
		return 0, 0, fmt.Errorf("no results for place %q", place)
	}

	lat := first.Get("lat")
	lon := first.Get("lon")
	if !lat.Exists() || !lon.Exists() {
		return 0, 0, fmt.Errorf("result for %q missing coordinates", place)
	}
	return lat.Float(), lon.Float(), nil
}
