package service

import (
	"context"

	"github.com/kirkespor-api/internal/models"
	"github.com/kirkespor-api/internal/repository"
	"github.com/rs/zerolog"
)

// settingsService is the concrete implementation of SettingsService
type settingsService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newSettingsService creates a new SettingsService
func newSettingsService(repos *repository.Repositories, log zerolog.Logger) *settingsService {
	return &settingsService{
		repos: repos,
		log:   log.With().Str("service", "settings").Logger(),
	}
}

// Get returns the settings singleton, or the default shape if none exists
func (s *settingsService) Get(ctx context.Context) (*models.Settings, error) {
	return s.repos.Settings.Get(ctx)
}

// Replace upserts the settings singleton wholesale
func (s *settingsService) Replace(ctx context.Context, update *models.SettingsUpdate) (*models.Settings, error) {
	settings := &models.Settings{InboxWidth: update.InboxWidth}
	if err := s.repos.Settings.Replace(ctx, settings); err != nil {
		return nil, err
	}

	s.log.Info().Int("inbox_width", settings.InboxWidth).Msg("Settings replaced")
	return settings, nil
}
