package integration

import (
	"testing"

	"fraudeye/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Defaults(t *testing.T) {
	cfg := NewService().Get()
	assert.Equal(t, DefaultCallbackURL, cfg.CallbackURL)
	assert.Equal(t, "sk_live_...", cfg.Masked().APIKey)
}

func TestService_Update(t *testing.T) {
	svc := NewService()

	got, err := svc.Update(models.IntegrationConfig{CallbackURL: " https://hooks.example.com/fraud "})
	require.NoError(t, err)
	assert.Equal(t, "https://hooks.example.com/fraud", got.CallbackURL)
	assert.Equal(t, DefaultAPIKey, got.APIKey)

	got, err = svc.Update(models.IntegrationConfig{APIKey: "sk_test_abcdef123456"})
	require.NoError(t, err)
	assert.Equal(t, "https://hooks.example.com/fraud", got.CallbackURL)
	assert.Equal(t, "sk_test_...", got.Masked().APIKey)
	assert.Equal(t, got, svc.Get())
}

func TestService_UpdateRejectsBadURL(t *testing.T) {
	svc := NewService()

	for _, raw := range []string{"not a url", "ftp://example.com", "/relative/path"} {
		t.Run(raw, func(t *testing.T) {
			_, err := svc.Update(models.IntegrationConfig{CallbackURL: raw, APIKey: "sk_new"})
			assert.ErrorIs(t, err, ErrInvalidCallbackURL)
		})
	}
	assert.Equal(t, DefaultAPIKey, svc.Get().APIKey)
}
