package external

import (
	"context"
	stderrors "errors"
	"fmt"

	"golang.org/x/time/rate"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/errors"
)

// NewSharedLimiter creates a limiter for one API key. Both OpenWeatherMap
// adapters draw from it since the provider meters calls per key.
func NewSharedLimiter(rps float64, burst int) *rate.Limiter {
	return rate.NewLimiter(rate.Limit(rps), burst)
}

// RateLimitedGeocoder wraps a Geocoder with rate limiting
type RateLimitedGeocoder struct {
	geocoder ports.Geocoder
	limiter  *rate.Limiter
}

func NewRateLimitedGeocoder(geocoder ports.Geocoder, limiter *rate.Limiter) ports.Geocoder {
	return &RateLimitedGeocoder{
		geocoder: geocoder,
		limiter:  limiter,
	}
}

// Resolve waits for limiter permission or context cancellation before forwarding
func (r *RateLimitedGeocoder) Resolve(ctx context.Context, query string) (*ports.Place, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, waitError(ctx, err)
	}
	return r.geocoder.Resolve(ctx, query)
}

func (r *RateLimitedGeocoder) GetProviderName() string {
	return fmt.Sprintf("%s [rate limited]", r.geocoder.GetProviderName())
}

// RateLimitedWeatherFetcher wraps a WeatherFetcher with rate limiting
type RateLimitedWeatherFetcher struct {
	fetcher ports.WeatherFetcher
	limiter *rate.Limiter
}

func NewRateLimitedWeatherFetcher(fetcher ports.WeatherFetcher, limiter *rate.Limiter) ports.WeatherFetcher {
	return &RateLimitedWeatherFetcher{
		fetcher: fetcher,
		limiter: limiter,
	}
}

// Fetch waits for limiter permission or context cancellation before forwarding
func (r *RateLimitedWeatherFetcher) Fetch(ctx context.Context, coords ports.Coordinates, units string) (*ports.ForecastData, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, waitError(ctx, err)
	}
	return r.fetcher.Fetch(ctx, coords, units)
}

func (r *RateLimitedWeatherFetcher) GetProviderName() string {
	return fmt.Sprintf("%s [rate limited]", r.fetcher.GetProviderName())
}

// waitError reports a canceled caller as is. Any other failure means the
// deadline expired or would expire before a token frees up.
func waitError(ctx context.Context, err error) error {
	if stderrors.Is(ctx.Err(), context.Canceled) {
		return fmt.Errorf("rate limit wait: %w", ctx.Err())
	}
	return errors.NewTimeoutError("rate limit wait exceeded deadline", err)
}

var (
	_ ports.Geocoder       = (*RateLimitedGeocoder)(nil)
	_ ports.WeatherFetcher = (*RateLimitedWeatherFetcher)(nil)
)
