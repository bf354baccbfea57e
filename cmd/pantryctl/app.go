package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-pantry-keeper/internal/cache"
	"github.com/MKhiriev/go-pantry-keeper/internal/config"
	"github.com/MKhiriev/go-pantry-keeper/internal/crypto"
	"github.com/MKhiriev/go-pantry-keeper/internal/logger"
	"github.com/MKhiriev/go-pantry-keeper/internal/service"
	"github.com/MKhiriev/go-pantry-keeper/internal/session"
	"github.com/MKhiriev/go-pantry-keeper/internal/store"
	"github.com/MKhiriev/go-pantry-keeper/internal/workers"
	"github.com/MKhiriev/go-pantry-keeper/models"
)

var errUsage = errors.New("usage")

const usage = `commands:
  status                      show the session state
  key                         show the device key fingerprint
  login <access> [refresh]    store a backend session and make its user current
  logout                      forget the current session
  scan <code>...              record scans for the signed-in user
  scans [user]                list recorded scans
  keys [user]                 list cached logical keys
  cred <provider> <api-key>   store API credentials for the signed-in user
  reset                       reset the cache to its defaults
  watch                       restore the session and watch for expiry`

type app struct {
	storages  *store.ClientStorages
	keys      crypto.KeyManager
	cache     *cache.NamespacedStore
	container *session.Container
	services  *service.Services
	workers   *workers.Workers
	out       io.Writer
	logger    *logger.Logger
}

func newApp(ctx context.Context, cfg *config.StructuredConfig, out io.Writer, log *logger.Logger) (*app, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	ns, err := cache.NewNamespace(cfg.App.Slug, cfg.App.Separator)
	if err != nil {
		_ = storages.Close()
		return nil, err
	}

	keys := crypto.NewKeyManager(storages.SecureStore, cfg.Storage.KeyStore.Alias, log)
	hasher := crypto.NewHashService(cfg.App.HashSalt)
	cacheStore := cache.NewNamespacedStore(storages.KV, keys, crypto.NewEncryptionEngine(), hasher, ns, log)

	purged, err := cacheStore.EnsureKeyVersion(ctx)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("check key version: %w", err)
	}
	if purged > 0 {
		log.Warn().Int("purged", purged).Msg("device key changed, sensitive entries dropped")
	}

	container := session.NewContainer(cfg.App.StrictReducer, log)
	services := service.NewServices(cacheStore, hasher, container, log)

	if err = services.Session.Restore(ctx); err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("restore session: %w", err)
	}

	return &app{
		storages:  storages,
		keys:      keys,
		cache:     cacheStore,
		container: container,
		services:  services,
		workers:   workers.NewWorkers(workers.NewExpiryWatcher(container, cfg.Workers.ExpiryCheckInterval, log)),
		out:       out,
		logger:    log,
	}, nil
}

func (a *app) close() error {
	a.workers.Stop()
	return a.storages.Close()
}

func (a *app) run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprintln(a.out, usage)
		return nil
	}

	cmd, rest := args[0], args[1:]
	var err error
	switch cmd {
	case "status":
		err = a.status()
	case "key":
		err = a.fingerprint(ctx)
	case "login":
		err = a.login(ctx, rest)
	case "logout":
		err = a.services.Session.Logout(ctx)
	case "scan":
		err = a.scan(ctx, rest)
	case "scans":
		err = a.scans(ctx, rest)
	case "keys":
		err = a.listKeys(ctx, rest)
	case "cred":
		err = a.saveCredentials(ctx, rest)
	case "reset":
		err = a.services.Session.Wipe(ctx)
	case "watch":
		err = a.watch(ctx)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}

	if errors.Is(err, errUsage) {
		fmt.Fprintln(a.out, usage)
	}
	return err
}

func (a *app) status() error {
	state := a.container.State()
	fmt.Fprintf(a.out, "status: %s\n", session.StatusOf(state, time.Now()))
	if state.Session != nil {
		fmt.Fprintf(a.out, "user: %s\n", state.Session.UserID)
		if !state.Session.ExpiresAt.IsZero() {
			fmt.Fprintf(a.out, "expires: %s\n", state.Session.ExpiresAt.Format(time.RFC3339))
		}
	}
	return nil
}

func (a *app) fingerprint(ctx context.Context) error {
	fp, err := a.keys.Fingerprint(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, fp)
	return nil
}

func (a *app) login(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("%w: login <access> [refresh]", errUsage)
	}

	var refresh string
	if len(args) == 2 {
		refresh = args[1]
	}
	if err := a.services.Session.Login(ctx, models.Profile{}, args[0], refresh); err != nil {
		return err
	}
	return a.status()
}

func (a *app) scan(ctx context.Context, codes []string) error {
	if len(codes) == 0 {
		return fmt.Errorf("%w: scan <code>...", errUsage)
	}

	n, err := a.services.Session.RecordScans(ctx, codes)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d distinct codes recorded\n", n)
	return nil
}

func (a *app) scans(ctx context.Context, args []string) error {
	userID, err := a.userArg(args)
	if err != nil {
		return err
	}

	codes, err := a.services.Barcodes.Scans(ctx, userID)
	if err != nil {
		return err
	}
	for _, code := range codes {
		fmt.Fprintln(a.out, code)
	}
	return nil
}

func (a *app) listKeys(ctx context.Context, args []string) error {
	view := a.cache
	if len(args) > 0 || a.container.State().Session != nil {
		userID, err := a.userArg(args)
		if err != nil {
			return err
		}
		if view, err = a.cache.ForUser(userID); err != nil {
			return err
		}
	}

	keys, err := view.GetKeys(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, strings.Join(keys, "\n"))
	return nil
}

func (a *app) saveCredentials(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: cred <provider> <api-key>", errUsage)
	}
	current := a.container.State().Session
	if current == nil {
		return service.ErrNotAuthenticated
	}

	fp, err := a.services.Credentials.Save(ctx, current.UserID, models.APICredentials{
		Provider: args[0],
		APIKey:   args[1],
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "credentials stored, fingerprint %s\n", fp)
	return nil
}

func (a *app) watch(ctx context.Context) error {
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{})
	)
	unsubscribe := a.container.Subscribe(func(s session.State) {
		mu.Lock()
		defer mu.Unlock()

		for _, msg := range s.Messages {
			if _, ok := seen[msg.ID]; ok {
				continue
			}
			seen[msg.ID] = struct{}{}
			fmt.Fprintf(a.out, "[%s] %s\n", msg.Level, msg.Text)
		}
	})
	defer unsubscribe()

	if err := a.status(); err != nil {
		return err
	}

	a.workers.Run(ctx)
	<-ctx.Done()
	return nil
}

// userArg returns the explicit user argument or the signed-in user.
func (a *app) userArg(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if current := a.container.State().Session; current != nil {
		return current.UserID, nil
	}
	return "", service.ErrNotAuthenticated
}
