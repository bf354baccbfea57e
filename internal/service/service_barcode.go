// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-pantry-keeper/internal/cache"
	"github.com/MKhiriev/go-pantry-keeper/internal/logger"
)

type barcodeService struct {
	store      *cache.NamespacedStore
	normalizer Normalizer
	logger     *logger.Logger

	// mu makes load-merge-persist atomic within the process
	mu sync.Mutex
}

// NewBarcodeService returns a [BarcodeService] persisting into store. A nil
// normalizer selects [DefaultNormalizer].
func NewBarcodeService(store *cache.NamespacedStore, normalizer Normalizer, log *logger.Logger) BarcodeService {
	if normalizer == nil {
		normalizer = DefaultNormalizer()
	}
	return &barcodeService{
		store:      store,
		normalizer: normalizer,
		logger:     log,
	}
}

// RecordScans implements [BarcodeService].
func (b *barcodeService) RecordScans(ctx context.Context, userID string, rawCodes []string) (int, error) {
	view, err := b.userView(userID)
	if err != nil {
		return 0, err
	}

	batch := make(map[string]struct{}, len(rawCodes))
	for _, raw := range rawCodes {
		if code, ok := b.normalizer.Normalize(raw); ok {
			batch[code] = struct{}{}
		}
	}
	if len(batch) == 0 {
		return 0, ErrEmptyBatch
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	persisted, err := b.load(ctx, view)
	if err != nil {
		return 0, err
	}

	set := make(map[string]struct{}, len(persisted)+len(batch))
	for _, code := range persisted {
		set[code] = struct{}{}
	}
	for code := range batch {
		set[code] = struct{}{}
	}

	merged := make([]string, 0, len(set))
	for code := range set {
		merged = append(merged, code)
	}
	slices.Sort(merged)

	if err := view.SetJSON(ctx, view.Key(cache.ResourceBarcode), merged); err != nil {
		return 0, fmt.Errorf("persist scans: %w", err)
	}

	b.logger.Debug().
		Str("func", "barcodeService.RecordScans").
		Int("batch", len(batch)).
		Int("total", len(merged)).
		Msg("scans recorded")
	return len(merged), nil
}

// Scans implements [BarcodeService].
func (b *barcodeService) Scans(ctx context.Context, userID string) ([]string, error) {
	view, err := b.userView(userID)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.load(ctx, view)
}

// Clear implements [BarcodeService].
func (b *barcodeService) Clear(ctx context.Context, userID string) error {
	view, err := b.userView(userID)
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return view.RemoveItem(ctx, view.Key(cache.ResourceBarcode))
}

func (b *barcodeService) userView(userID string) (*cache.NamespacedStore, error) {
	if strings.TrimSpace(userID) == "" || userID == cache.AnonymousOwner {
		return nil, ErrMissingUser
	}
	return b.store.ForUser(userID)
}

// load returns the persisted set. Entries are returned as stored; they
// were normalized when recorded.
func (b *barcodeService) load(ctx context.Context, view *cache.NamespacedStore) ([]string, error) {
	var codes []string
	ok, err := view.GetJSON(ctx, view.Key(cache.ResourceBarcode), &codes)
	if err != nil {
		return nil, fmt.Errorf("load scans: %w", err)
	}
	if !ok || codes == nil {
		return []string{}, nil
	}
	return codes, nil
}
