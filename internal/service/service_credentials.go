package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pantry-keeper/internal/cache"
	"github.com/MKhiriev/go-pantry-keeper/internal/crypto"
	"github.com/MKhiriev/go-pantry-keeper/internal/logger"
	"github.com/MKhiriev/go-pantry-keeper/models"
)

type credentialService struct {
	store  *cache.NamespacedStore
	hasher crypto.HashService
	logger *logger.Logger
}

// NewCredentialService returns a [CredentialService]. Credentials are a
// sensitive resource, so the store encrypts them.
func NewCredentialService(store *cache.NamespacedStore, hasher crypto.HashService, log *logger.Logger) CredentialService {
	return &credentialService{
		store:  store,
		hasher: hasher,
		logger: log,
	}
}

func (c *credentialService) Save(ctx context.Context, userID string, creds models.APICredentials) (string, error) {
	if creds.APIKey == "" {
		return "", fmt.Errorf("%w: empty api key", ErrInvalidDataProvided)
	}

	view, err := c.userView(userID)
	if err != nil {
		return "", err
	}

	fingerprint, err := c.Fingerprint(creds.APIKey)
	if err != nil {
		return "", err
	}

	if err := view.SetJSON(ctx, view.Key(cache.ResourceCredentials), creds); err != nil {
		return "", fmt.Errorf("save credentials: %w", err)
	}

	c.logger.Info().
		Str("func", "credentialService.Save").
		Str("provider", creds.Provider).
		Msg("api credentials stored")
	return fingerprint, nil
}

func (c *credentialService) Load(ctx context.Context, userID string) (models.APICredentials, bool, error) {
	view, err := c.userView(userID)
	if err != nil {
		return models.APICredentials{}, false, err
	}

	var creds models.APICredentials
	ok, err := view.GetJSON(ctx, view.Key(cache.ResourceCredentials), &creds)
	if err != nil {
		return models.APICredentials{}, false, fmt.Errorf("load credentials: %w", err)
	}
	return creds, ok, nil
}

func (c *credentialService) Fingerprint(apiKey string) (string, error) {
	return c.hasher.Hash(apiKey)
}

func (c *credentialService) Matches(apiKey, fingerprint string) (bool, error) {
	return c.hasher.Verify(apiKey, fingerprint)
}

func (c *credentialService) userView(userID string) (*cache.NamespacedStore, error) {
	if strings.TrimSpace(userID) == "" || userID == cache.AnonymousOwner {
		return nil, ErrMissingUser
	}
	return c.store.ForUser(userID)
}
