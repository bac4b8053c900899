package automating

import (
	"context"
	"fmt"
	"strings"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
	"github.com/vfg2006/weathertrigger-console/pkg/requestcache"
)

// WeatherByCity consulta o clima atual de uma cidade; country é opcional
func (s *Service) WeatherByCity(ctx context.Context, city, country string) (*backenddomain.WeatherData, error) {
	city = strings.TrimSpace(city)
	country = strings.TrimSpace(country)
	if city == "" {
		return nil, NewRuleError(ErrInvalidLocation, apiErrors.ErrMissingRequiredData, "City is required")
	}

	key := fmt.Sprintf("weather-city-%s-%s", strings.ToLower(city), strings.ToLower(country))
	data, err := requestcache.Get(ctx, s.cache, key, func(ctx context.Context) (*backenddomain.WeatherData, error) {
		return s.backend.WeatherByCity(ctx, city, country)
	}, requestcache.Options{TTL: s.weatherTTL})
	if err != nil {
		s.logger.WithError(err).WithField("city", city).Warn("Erro ao consultar clima da cidade")
		return nil, err
	}
	return data, nil
}

func (s *Service) WeatherByCoordinates(ctx context.Context, lat, lon float64) (*backenddomain.WeatherData, error) {
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return nil, NewRuleError(ErrInvalidLocation, apiErrors.ErrInvalidFormat, "Invalid coordinates")
	}

	// quatro casas decimais separam pontos a ~11 m, suficiente para o clima
	key := fmt.Sprintf("weather-coords-%.4f-%.4f", lat, lon)
	data, err := requestcache.Get(ctx, s.cache, key, func(ctx context.Context) (*backenddomain.WeatherData, error) {
		return s.backend.WeatherByCoordinates(ctx, lat, lon)
	}, requestcache.Options{TTL: s.weatherTTL})
	if err != nil {
		s.logger.WithError(err).WithFields(log.Fields{"lat": lat, "lon": lon}).Warn("Erro ao consultar clima por coordenadas")
		return nil, err
	}
	return data, nil
}
