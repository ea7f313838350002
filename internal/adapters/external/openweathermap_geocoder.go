package external

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

const defaultGeocodingBaseURL = "http://api.openweathermap.org/geo/1.0"

// OpenWeatherMapGeocoder implements the Geocoder port with the OpenWeatherMap direct geocoding API
type OpenWeatherMapGeocoder struct {
	openWeatherMapClient
}

type geocodingMatch struct {
	Name    string   `json:"name"`
	State   string   `json:"state"`
	Country string   `json:"country"`
	Lat     *float64 `json:"lat"`
	Lon     *float64 `json:"lon"`
}

func NewOpenWeatherMapGeocoder(params OpenWeatherMapParams) *OpenWeatherMapGeocoder {
	return &OpenWeatherMapGeocoder{
		openWeatherMapClient: newOpenWeatherMapClient("geocoding", defaultGeocodingBaseURL, params),
	}
}

// Resolve asks for a single match and returns it
func (g *OpenWeatherMapGeocoder) Resolve(ctx context.Context, query string) (*ports.Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.NewValidationError("location cannot be empty")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", "1")

	var matches []geocodingMatch
	if err := g.getJSON(ctx, "/direct", params, &matches); err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no location matches %q", query))
	}

	match := matches[0]
	if match.Name == "" || match.Country == "" || match.Lat == nil || match.Lon == nil {
		return nil, errors.NewMalformedResponseError("geocoding match is missing name, country or coordinates", nil)
	}

	place := &ports.Place{
		Name:    match.Name,
		Country: match.Country,
		Coordinates: ports.Coordinates{
			Latitude:  *match.Lat,
			Longitude: *match.Lon,
		},
	}
	if state := strings.TrimSpace(match.State); state != "" {
		place.State = &state
	}
	return place, nil
}

func (g *OpenWeatherMapGeocoder) GetProviderName() string {
	return "openweathermap-geocoding"
}
