package service

import (
	"github.com/MKhiriev/go-pantry-keeper/internal/cache"
	"github.com/MKhiriev/go-pantry-keeper/internal/crypto"
	"github.com/MKhiriev/go-pantry-keeper/internal/logger"
	"github.com/MKhiriev/go-pantry-keeper/internal/session"
)

// Services groups the services built on the namespaced cache.
type Services struct {
	Barcodes    BarcodeService
	Credentials CredentialService
	Session     SessionService
}

// NewServices wires the services around one store and one session
// container.
func NewServices(store *cache.NamespacedStore, hasher crypto.HashService, container *session.Container, log *logger.Logger) *Services {
	barcodes := NewBarcodeService(store, DefaultNormalizer(), log)

	return &Services{
		Barcodes:    barcodes,
		Credentials: NewCredentialService(store, hasher, log),
		Session:     NewSessionService(store, container, barcodes, log),
	}
}
