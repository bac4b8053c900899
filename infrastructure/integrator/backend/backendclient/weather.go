package backendclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
)

func (c *BackendClient) WeatherByCity(ctx context.Context, city, country string) (*backenddomain.WeatherData, error) {
	params := url.Values{}
	params.Set("city", city)
	if country != "" {
		params.Set("country", country)
	}

	var response backenddomain.WeatherData
	if err := c.do(ctx, http.MethodGet, "/weather/city?"+params.Encode(), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

func (c *BackendClient) WeatherByCoordinates(ctx context.Context, lat, lon float64) (*backenddomain.WeatherData, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	var response backenddomain.WeatherData
	if err := c.do(ctx, http.MethodGet, "/weather/current?"+params.Encode(), nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
