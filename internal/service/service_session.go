// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pantry-keeper/internal/cache"
	"github.com/MKhiriev/go-pantry-keeper/internal/logger"
	"github.com/MKhiriev/go-pantry-keeper/internal/session"
	"github.com/MKhiriev/go-pantry-keeper/models"
)

type sessionService struct {
	store     *cache.NamespacedStore
	container *session.Container
	barcodes  BarcodeService
	logger    *logger.Logger
}

// NewSessionService returns a [SessionService]. Storage is written before
// the matching action is dispatched, so a failed write leaves the
// in-memory state untouched.
func NewSessionService(store *cache.NamespacedStore, container *session.Container, barcodes BarcodeService, log *logger.Logger) SessionService {
	return &sessionService{
		store:     store,
		container: container,
		barcodes:  barcodes,
		logger:    log,
	}
}

func (s *sessionService) Login(ctx context.Context, profile models.Profile, accessToken, refreshToken string) error {
	auth, err := models.NewAuthSession(accessToken, refreshToken)
	if err != nil {
		return err
	}

	if profile.ID == "" {
		profile.ID = auth.UserID
	}
	if profile.ID != auth.UserID {
		return fmt.Errorf("%w: profile does not belong to the token subject", ErrInvalidDataProvided)
	}

	// switching users signs the previous one out first, so none of their
	// state reaches the new aggregate
	if current := s.container.State().Session; current != nil && current.UserID != auth.UserID {
		if err := s.Logout(ctx); err != nil {
			return fmt.Errorf("sign out previous user: %w", err)
		}
	}

	view, err := s.store.ForUser(auth.UserID)
	if err != nil {
		return err
	}
	if err := view.SetJSON(ctx, view.Key(cache.ResourceSession), auth); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}
	if err := view.SetJSON(ctx, view.Key(cache.ResourceUser), profile); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	if err := s.setCurrentOwner(ctx, view.Owner()); err != nil {
		return err
	}

	if err := s.container.Dispatch(session.SetSession{Session: auth}); err != nil {
		return err
	}
	if err := s.container.Dispatch(session.SetUser{User: profile}); err != nil {
		return err
	}

	s.logger.Info().Str("func", "sessionService.Login").Msg("user signed in")
	return nil
}

func (s *sessionService) Restore(ctx context.Context) error {
	owner, ok, err := s.store.GetItem(ctx, s.store.Key(cache.ResourceCurrentUser))
	if err != nil {
		return fmt.Errorf("read current user: %w", err)
	}
	if !ok || owner == cache.AnonymousOwner {
		return nil
	}

	view, err := s.store.ForOwner(owner)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "sessionService.Restore").Msg("dropping malformed current user marker")
		return s.setCurrentOwner(ctx, cache.AnonymousOwner)
	}

	var auth models.AuthSession
	ok, err = view.GetJSON(ctx, view.Key(cache.ResourceSession), &auth)
	if err != nil {
		return s.dropCorrupted(ctx, view, err)
	}
	if !ok {
		return s.setCurrentOwner(ctx, cache.AnonymousOwner)
	}

	profile := models.Profile{ID: auth.UserID}
	if _, err := view.GetJSON(ctx, view.Key(cache.ResourceUser), &profile); err != nil {
		return s.dropCorrupted(ctx, view, err)
	}

	if err := s.container.Dispatch(session.SetSession{Session: auth}); err != nil {
		return err
	}
	if err := s.container.Dispatch(session.SetUser{User: profile}); err != nil {
		return err
	}

	s.logger.Info().Str("func", "sessionService.Restore").Msg("previous session restored")
	return nil
}

func (s *sessionService) RecordScans(ctx context.Context, rawCodes []string) (int, error) {
	state := s.container.State()
	if state.Session == nil {
		return 0, ErrNotAuthenticated
	}
	return s.barcodes.RecordScans(ctx, state.Session.UserID, rawCodes)
}

func (s *sessionService) Logout(ctx context.Context) error {
	if current := s.container.State().Session; current != nil {
		view, err := s.store.ForUser(current.UserID)
		if err != nil {
			return err
		}
		if err := s.forget(ctx, view); err != nil {
			return err
		}
	}

	if err := s.setCurrentOwner(ctx, cache.AnonymousOwner); err != nil {
		return err
	}

	s.logger.Info().Str("func", "sessionService.Logout").Msg("user signed out")
	return s.container.Dispatch(session.Logout{})
}

func (s *sessionService) Wipe(ctx context.Context) error {
	if err := s.store.ResetToDefaults(ctx); err != nil {
		return err
	}
	return s.container.Dispatch(session.Logout{})
}

// dropCorrupted treats an undecryptable session as a cache miss: the
// entries are deleted and the process continues anonymously. Any other
// error, a missing device key in particular, is returned.
func (s *sessionService) dropCorrupted(ctx context.Context, view *cache.NamespacedStore, cause error) error {
	if !errors.Is(cause, cache.ErrCorrupted) {
		return cause
	}

	s.logger.Warn().Err(cause).Str("func", "sessionService.Restore").Msg("dropping corrupted session")
	if err := s.forget(ctx, view); err != nil {
		return err
	}
	return s.setCurrentOwner(ctx, cache.AnonymousOwner)
}

// forget deletes the sensitive entries of view.
func (s *sessionService) forget(ctx context.Context, view *cache.NamespacedStore) error {
	for _, r := range []cache.Resource{cache.ResourceSession, cache.ResourceUser, cache.ResourceCredentials} {
		if err := view.RemoveItem(ctx, view.Key(r)); err != nil {
			return err
		}
	}
	return nil
}

func (s *sessionService) setCurrentOwner(ctx context.Context, owner string) error {
	if err := s.store.SetItem(ctx, s.store.Key(cache.ResourceCurrentUser), owner); err != nil {
		return fmt.Errorf("write current user: %w", err)
	}
	return nil
}
