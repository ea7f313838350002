package weather

import (
	"context"
	"fmt"

	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
	"weatherdash.app/pkg/validation"
)

type UseCase struct {
	geocoder ports.Geocoder
	fetcher  ports.WeatherFetcher
	cache    ports.PlaceCache
	config   ports.ConfigProvider
	logger   ports.Logger
}

type UseCaseDependencies struct {
	Geocoder ports.Geocoder
	Fetcher  ports.WeatherFetcher
	Cache    ports.PlaceCache
	Config   ports.ConfigProvider
	Logger   ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Geocoder == nil {
		return nil, errors.NewValidationError("geocoder is required")
	}
	if deps.Fetcher == nil {
		return nil, errors.NewValidationError("weather fetcher is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		geocoder: deps.Geocoder,
		fetcher:  deps.Fetcher,
		cache:    deps.Cache,
		config:   deps.Config,
		logger:   deps.Logger,
	}, nil
}

// ResolvePlace geocodes a free-text location to the first matching place
func (uc *UseCase) ResolvePlace(ctx context.Context, query string) (*Place, error) {
	query, ok := validation.TrimAndValidate(query)
	if !ok {
		return nil, errors.NewValidationError("location cannot be empty")
	}

	uc.logger.Debug("Resolving location", ports.F("query", query))

	place, err := uc.resolveWithCache(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("resolve location %q: %w", query, err)
	}

	uc.logger.Debug("Location resolved",
		ports.F("query", query),
		ports.F("city", place.City),
		ports.F("country", place.Country))
	return place, nil
}

func (uc *UseCase) resolveWithCache(ctx context.Context, query string) (*Place, error) {
	weatherConfig := uc.config.GetWeatherConfig()
	if !weatherConfig.EnableCache {
		return uc.geocode(ctx, query)
	}

	cacheKey := "geocode:" + validation.NormalizeKey(query)
	cached, err := uc.cache.Get(ctx, cacheKey)
	if err == nil && cached != nil {
		if place, err := toValidPlace(cached); err == nil {
			uc.logger.Debug("Location found in cache", ports.F("query", query))
			return place, nil
		}
	}

	raw, err := uc.geocoder.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}
	place, err := toValidPlace(raw)
	if err != nil {
		return nil, err
	}

	if cacheErr := uc.cache.Set(ctx, cacheKey, raw, weatherConfig.GeocodeCacheTTL); cacheErr != nil {
		uc.logger.Warn("Failed to cache location",
			ports.F("query", query),
			ports.F("error", cacheErr))
	}

	return place, nil
}

func (uc *UseCase) geocode(ctx context.Context, query string) (*Place, error) {
	raw, err := uc.geocoder.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}
	return toValidPlace(raw)
}

// FetchSnapshot retrieves a forecast for coordinates. Unknown units default to imperial.
func (uc *UseCase) FetchSnapshot(ctx context.Context, coords Coordinates, units Units) (*Snapshot, error) {
	units = units.OrDefault()

	data, err := uc.fetcher.Fetch(ctx, ports.Coordinates{
		Latitude:  coords.Latitude,
		Longitude: coords.Longitude,
	}, units.String())
	if err != nil {
		return nil, fmt.Errorf("fetch forecast: %w", err)
	}

	snapshot, err := NewSnapshot(data)
	if err != nil {
		return nil, err
	}
	if snapshot.Units != units {
		return nil, errors.NewMalformedResponseError(
			fmt.Sprintf("requested %s units, got %s", units, snapshot.Units), nil)
	}

	uc.logger.Debug("Forecast retrieved",
		ports.F("units", units.String()),
		ports.F("timezone", snapshot.Location.String()),
		ports.F("temperature", snapshot.Current.Temperature))
	return snapshot, nil
}

// toValidPlace converts a geocoder match, rejecting one that cannot be shown
func toValidPlace(place *ports.Place) (*Place, error) {
	domainPlace := &Place{
		City:    place.Name,
		Region:  place.State,
		Country: place.Country,
		Coordinates: Coordinates{
			Longitude: place.Coordinates.Longitude,
			Latitude:  place.Coordinates.Latitude,
		},
	}
	if err := domainPlace.IsValid(); err != nil {
		return nil, errors.NewMalformedResponseError("invalid place from geocoder: "+err.Error(), nil)
	}
	return domainPlace, nil
}
