package service

import (
	"context"

	"github.com/MKhiriev/go-pantry-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// BarcodeService keeps the per-user set of scanned codes.
type BarcodeService interface {
	// RecordScans normalizes rawCodes, merges them into the persisted set
	// of userID and returns the size of the resulting set. The set never
	// shrinks except through Clear.
	// Returns ErrMissingUser for an empty or anonymous user and
	// ErrEmptyBatch if no code survives normalization.
	RecordScans(ctx context.Context, userID string, rawCodes []string) (int, error)

	// Scans returns the persisted set of userID in ascending order.
	Scans(ctx context.Context, userID string) ([]string, error)

	// Clear deletes the persisted set of userID.
	Clear(ctx context.Context, userID string) error
}

// CredentialService stores external-API credentials encrypted in the cache
// and fingerprints them for comparison without keeping a second copy.
type CredentialService interface {
	// Save stores creds for userID and returns the fingerprint of the API
	// key.
	Save(ctx context.Context, userID string, creds models.APICredentials) (string, error)

	// Load returns the stored credentials of userID. ok is false if there
	// are none.
	Load(ctx context.Context, userID string) (creds models.APICredentials, ok bool, err error)

	// Fingerprint returns the one-way digest of apiKey.
	Fingerprint(apiKey string) (string, error)

	// Matches reports whether apiKey has the given fingerprint.
	Matches(apiKey, fingerprint string) (bool, error)
}

// SessionService applies the session actions that also touch persistent
// storage: login, scans, logout and restoring the previous session at
// start-up.
type SessionService interface {
	// Login stores the session and profile of a successful sign-in and
	// makes the user current.
	Login(ctx context.Context, profile models.Profile, accessToken, refreshToken string) error

	// Restore loads the session of the current user persisted by a
	// previous run. Corrupted entries are dropped and the session starts
	// anonymous.
	Restore(ctx context.Context) error

	// RecordScans records scans for the signed-in user. Returns
	// ErrNotAuthenticated if there is no session.
	RecordScans(ctx context.Context, rawCodes []string) (int, error)

	// Logout forgets the session of the signed-in user and resets the
	// in-memory state. Per-user caches such as scans are kept.
	Logout(ctx context.Context) error

	// Wipe resets the whole cache to its defaults and logs out.
	Wipe(ctx context.Context) error
}
