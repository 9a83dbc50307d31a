package cart

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/joeynweke/restaurant-dashboard/internal/domain"
	"github.com/joeynweke/restaurant-dashboard/internal/port"
	"go.uber.org/zap"
)

const defaultWriteTimeout = 3 * time.Second

type PersisterOption func(*Persister)

func WithWriteTimeout(d time.Duration) PersisterOption {
	return func(p *Persister) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// Persister writes cart snapshots in the background. Commit never waits for
// the write and write failures are only logged: the in-memory cart stays
// authoritative for the session.
type Persister struct {
	kv      port.KeyValueStore
	logger  *zap.Logger
	timeout time.Duration

	// holds at most one snapshot; a newer commit replaces an unwritten one.
	// A nil snapshot deletes the stored cart.
	pending chan []byte
	quit    chan struct{}
	done    chan struct{}

	closeOnce sync.Once
	closed    atomic.Bool
}

func NewPersister(kv port.KeyValueStore, logger *zap.Logger, opts ...PersisterOption) *Persister {
	p := &Persister{
		kv:      kv,
		logger:  logger,
		timeout: defaultWriteTimeout,
		pending: make(chan []byte, 1),
		quit:    make(chan struct{}),
		done:    make(chan struct{}),
	}

	for _, opt := range opts {
		opt(p)
	}

	go p.run()

	return p
}

// Commit has the CommitHook signature so it can subscribe to a Store. An
// empty cart removes the stored snapshot instead of writing one.
func (p *Persister) Commit(cart domain.Cart) {
	if p.closed.Load() {
		p.logger.Debug("persister closed, cart snapshot dropped", zap.Int("lines", len(cart.Lines)))
		return
	}

	var data []byte
	if !cart.IsEmpty() {
		var err error
		if data, err = Encode(cart); err != nil {
			p.logger.Warn("encode cart", zap.Error(err))
			return
		}
	}

	for {
		select {
		case p.pending <- data:
			return
		default:
		}

		select {
		case <-p.pending:
		default:
		}
	}
}

// Close writes a pending snapshot and stops the background writer. It
// returns ctx.Err() if ctx is done first; the writer still finishes.
func (p *Persister) Close(ctx context.Context) error {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.quit)
	})

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Persister) run() {
	defer close(p.done)

	for {
		select {
		case data := <-p.pending:
			p.write(data)
		case <-p.quit:
			select {
			case data := <-p.pending:
				p.write(data)
			default:
			}
			return
		}
	}
}

func (p *Persister) write(data []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	if data == nil {
		deleted, err := p.kv.Delete(ctx, StorageKey)
		if err != nil {
			p.logger.Warn("delete stored cart", zap.String("key", StorageKey), zap.Error(err))
			return
		}
		p.logger.Debug("stored cart deleted", zap.String("key", StorageKey), zap.Bool("existed", deleted))
		return
	}

	if err := p.kv.Put(ctx, StorageKey, data); err != nil {
		p.logger.Warn("persist cart", zap.String("key", StorageKey), zap.Error(err))
		return
	}

	p.logger.Debug("cart persisted", zap.String("key", StorageKey), zap.Int("bytes", len(data)))
}
