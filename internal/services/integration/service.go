package integration

import (
	"errors"
	"net/url"
	"strings"
	"sync"

	"fraudeye/internal/models"
)

// Defaults shown to a fresh session.
const (
	DefaultCallbackURL = "https://api.mybank.com/v1/fraud-callback"
	DefaultAPIKey      = "sk_live_51Mz..."
)

var ErrInvalidCallbackURL = errors.New("callback_url must be an absolute http(s) URL")

// Service holds the client bank's sandbox configuration for the session.
type Service struct {
	mu  sync.RWMutex
	cfg models.IntegrationConfig
}

func NewService() *Service {
	return &Service{cfg: models.IntegrationConfig{
		CallbackURL: DefaultCallbackURL,
		APIKey:      DefaultAPIKey,
	}}
}

func (s *Service) Get() models.IntegrationConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// Update replaces the non-empty fields of update and returns the result.
func (s *Service) Update(update models.IntegrationConfig) (models.IntegrationConfig, error) {
	callback := strings.TrimSpace(update.CallbackURL)
	if callback != "" {
		u, err := url.Parse(callback)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return models.IntegrationConfig{}, ErrInvalidCallbackURL
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if callback != "" {
		s.cfg.CallbackURL = callback
	}
	if key := strings.TrimSpace(update.APIKey); key != "" {
		s.cfg.APIKey = key
	}
	return s.cfg, nil
}
