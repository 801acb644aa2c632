package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/mmcloughlin/geohash"

	"github.com/caronalabs/carona/internal/pkg/database"
	"github.com/caronalabs/carona/internal/pkg/logger"
	"github.com/caronalabs/carona/internal/pkg/models"
	"github.com/caronalabs/carona/services/location"
)

// geohash precision 9 resolves to roughly 5 meters, close enough to
// treat two lookups of the same point as the same cache entry.
const cacheGeohashPrecision = 9

// MapsGW calls the external maps API for reverse geocoding and route
// distances, caching results in Redis.
type MapsGW struct {
	cfg         models.MapsConfig
	httpClient  *http.Client
	redisClient *database.RedisClient
}

// NewMapsGW creates a new maps gateway
func NewMapsGW(cfg models.MapsConfig, redisClient *database.RedisClient) *MapsGW {
	return &MapsGW{
		cfg:         cfg,
		httpClient:  &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second},
		redisClient: redisClient,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress  string `json:"formatted_address"`
		AddressComponents []struct {
			LongName string   `json:"long_name"`
			Types    []string `json:"types"`
		} `json:"address_components"`
	} `json:"results"`
}

type distanceMatrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int    `json:"value"`
				Text  string `json:"text"`
			} `json:"distance"`
			Duration struct {
				Text string `json:"text"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// ReverseGeocode resolves coordinates into a city and formatted address
func (g *MapsGW) ReverseGeocode(ctx context.Context, latitude, longitude float64) (*models.GeocodedLocation, error) {
	cacheKey := fmt.Sprintf("geocode:%s", geohash.EncodeWithPrecision(latitude, longitude, cacheGeohashPrecision))

	if cached, err := g.redisClient.Get(ctx, cacheKey); err == nil {
		var loc models.GeocodedLocation
		if err := json.Unmarshal([]byte(cached), &loc); err == nil {
			return &loc, nil
		}
	}

	endpoint := fmt.Sprintf("%s/maps/api/geocode/json?latlng=%f,%f&key=%s",
		g.cfg.BaseURL, latitude, longitude, g.cfg.APIKey)

	var resp geocodeResponse
	if err := g.get(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to reverse geocode: %w", err)
	}

	if resp.Status != "OK" || len(resp.Results) == 0 {
		return nil, fmt.Errorf("geocode lookup returned status %s", resp.Status)
	}

	result := resp.Results[0]
	loc := &models.GeocodedLocation{
		FormattedAddress: result.FormattedAddress,
	}
	for _, component := range result.AddressComponents {
		for _, t := range component.Types {
			if t == "locality" || t == "administrative_area_level_2" {
				loc.City = component.LongName
			}
		}
		if loc.City != "" {
			break
		}
	}

	g.cache(ctx, cacheKey, loc)
	return loc, nil
}

// Distance resolves the route distance in meters between two addresses
func (g *MapsGW) Distance(ctx context.Context, origin, destination string) (*models.DistanceResult, error) {
	cacheKey := fmt.Sprintf("distance:%s|%s", origin, destination)

	if cached, err := g.redisClient.Get(ctx, cacheKey); err == nil {
		var result models.DistanceResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return &result, nil
		}
	}

	endpoint := fmt.Sprintf("%s/maps/api/distancematrix/json?origins=%s&destinations=%s&key=%s",
		g.cfg.BaseURL, url.QueryEscape(origin), url.QueryEscape(destination), g.cfg.APIKey)

	var resp distanceMatrixResponse
	if err := g.get(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("failed to get route distance: %w", err)
	}

	if resp.Status != "OK" || len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return nil, fmt.Errorf("distance lookup returned status %s", resp.Status)
	}

	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" {
		return nil, location.ErrNoRoute
	}

	result := &models.DistanceResult{
		Distance: element.Distance.Value,
		Duration: element.Duration.Text,
	}

	g.cache(ctx, cacheKey, result)
	return result, nil
}

func (g *MapsGW) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("maps API returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// cache failures are logged and ignored, the lookup already succeeded
func (g *MapsGW) cache(ctx context.Context, key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	ttl := time.Duration(g.cfg.CacheTTL) * time.Minute
	if err := g.redisClient.Set(ctx, key, data, ttl); err != nil {
		logger.Warn("Failed to cache maps lookup", logger.String("key", key), logger.Err(err))
	}
}
