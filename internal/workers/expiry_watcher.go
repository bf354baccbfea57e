// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pantry-keeper/internal/logger"
	"github.com/MKhiriev/go-pantry-keeper/internal/session"
	"github.com/MKhiriev/go-pantry-keeper/internal/utils"
	"github.com/MKhiriev/go-pantry-keeper/models"
)

// ExpiredMessage is the text of the message queued when the session
// expires.
const ExpiredMessage = "Your session has expired. Please sign in again."

// ExpiryWatcher periodically checks the session held by a container and,
// once per session, queues a warning message when it has expired. Acting on
// the expiry (refreshing the token or logging out) is left to the
// subscriber of the container.
type ExpiryWatcher struct {
	container *session.Container
	creators  session.Creators
	interval  time.Duration
	now       func() time.Time
	logger    *logger.Logger

	mu       sync.Mutex
	cancel   context.CancelFunc
	wg       sync.WaitGroup
	notified string
}

// NewExpiryWatcher returns a watcher checking container every interval.
// A non-positive interval disables it: Run does nothing.
func NewExpiryWatcher(container *session.Container, interval time.Duration, log *logger.Logger) *ExpiryWatcher {
	return &ExpiryWatcher{
		container: container,
		creators:  session.NewCreators(utils.NewUUIDGenerator()),
		interval:  interval,
		now:       time.Now,
		logger:    log,
	}
}

// Run implements [Worker]. Any previously running loop is stopped first.
func (w *ExpiryWatcher) Run(ctx context.Context) {
	if w.interval <= 0 {
		return
	}

	w.Stop()

	w.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-loopCtx.Done():
				return
			case <-t.C:
				w.Check()
			}
		}
	}()
}

// Stop implements [Worker].
func (w *ExpiryWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// Check inspects the current state once and reports whether a newly
// expired session was detected.
func (w *ExpiryWatcher) Check() bool {
	state := w.container.State()
	if session.StatusOf(state, w.now()) != session.StatusExpired {
		return false
	}

	w.mu.Lock()
	token := state.Session.AccessToken
	if w.notified == token {
		w.mu.Unlock()
		return false
	}
	w.notified = token
	w.mu.Unlock()

	w.logger.Info().Str("func", "ExpiryWatcher.Check").Msg("session expired")
	if err := w.container.Dispatch(w.creators.NewMessage(models.MessageLevelWarning, ExpiredMessage)); err != nil {
		w.logger.Err(err).Str("func", "ExpiryWatcher.Check").Msg("failed to queue expiry message")
	}
	return true
}
