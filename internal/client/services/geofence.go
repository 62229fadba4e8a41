package services

import (
	"context"
	"fmt"

	"github.com/fitquest/fitquest/internal/client/api"
	"github.com/fitquest/fitquest/internal/client/models"
	"github.com/fitquest/fitquest/internal/logging"
)

// GeofenceService checks the user's position against the zones published by
// the geofencing service.
type GeofenceService interface {
	// Nearby returns the fences containing the given point.
	Nearby(ctx context.Context, lat, lon float64) ([]models.Geofence, error)
}

type geofenceService struct {
	client api.Client
	log    logging.Logger
}

func NewGeofenceService(client api.Client, log logging.Logger) GeofenceService {
	return &geofenceService{client: client, log: log}
}

func (s *geofenceService) Nearby(ctx context.Context, lat, lon float64) ([]models.Geofence, error) {
	fences, err := s.client.Geofences(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching geofences: %w", err)
	}

	inside := make([]models.Geofence, 0)
	for _, f := range fences {
		if f.Contains(lat, lon) {
			inside = append(inside, f)
		}
	}

	s.log.Debug(ctx, "geofence check", "fences", len(fences), "inside", len(inside))
	return inside, nil
}
