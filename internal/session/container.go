package session

import (
	"errors"
	"sync"

	"github.com/MKhiriev/go-pantry-keeper/internal/logger"
)

// Container holds the current session [State] and serializes dispatches.
// It replaces a process-wide singleton: create one per application and
// pass it to whoever needs it.
type Container struct {
	mu     sync.Mutex
	state  State
	strict bool
	logger *logger.Logger

	// pending holds committed states not yet delivered to subscribers,
	// in commit order. Guarded by mu.
	pending    []State
	delivering bool

	subsMu  sync.Mutex
	subs    map[int]func(State)
	nextSub int
}

// NewContainer returns a container holding [Default]. In strict mode
// Dispatch returns ErrUnhandledAction; otherwise such actions are logged
// and ignored.
func NewContainer(strict bool, log *logger.Logger) *Container {
	return &Container{
		state:  Default(),
		strict: strict,
		logger: log,
		subs:   make(map[int]func(State)),
	}
}

// State returns the current state. The returned value must be treated as
// read-only.
func (c *Container) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

// Dispatch applies action. Concurrent dispatches are applied one after the
// other; none is lost. Subscribers see every committed state exactly once
// and in commit order. Delivery happens outside the state lock, so a
// subscriber may Dispatch; its state is delivered after the current one.
func (c *Container) Dispatch(action Action) error {
	c.mu.Lock()
	next, err := Reduce(c.state, action)
	if err != nil {
		c.mu.Unlock()

		if errors.Is(err, ErrUnhandledAction) && !c.strict {
			c.logger.Warn().Err(err).Str("func", "Container.Dispatch").Msg("ignoring unhandled action")
			return nil
		}
		return err
	}
	c.state = next
	c.pending = append(c.pending, next)
	c.mu.Unlock()

	c.logger.Debug().Str("func", "Container.Dispatch").Str("action", string(action.Type())).Msg("action applied")
	c.deliver()
	return nil
}

// deliver hands pending states to subscribers. Only one goroutine delivers
// at a time; the others leave their states in the queue for it.
func (c *Container) deliver() {
	c.mu.Lock()
	if c.delivering {
		c.mu.Unlock()
		return
	}
	c.delivering = true

	for len(c.pending) > 0 {
		batch := c.pending
		c.pending = nil
		c.mu.Unlock()

		for _, state := range batch {
			c.notify(state)
		}

		c.mu.Lock()
	}
	c.delivering = false
	c.mu.Unlock()
}

// Subscribe registers fn to be called after every applied action and
// returns a function that removes it. fn may call Dispatch.
func (c *Container) Subscribe(fn func(State)) (unsubscribe func()) {
	c.subsMu.Lock()
	defer c.subsMu.Unlock()

	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn

	return func() {
		c.subsMu.Lock()
		defer c.subsMu.Unlock()
		delete(c.subs, id)
	}
}

func (c *Container) notify(state State) {
	c.subsMu.Lock()
	fns := make([]func(State), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subsMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}
