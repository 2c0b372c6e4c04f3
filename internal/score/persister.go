package score

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
)

// Saver writes a best score to durable storage.
type Saver interface {
	SaveBest(best uint32) error
}

// Persister writes best scores on a single background goroutine so the
// simulation tick never waits on I/O. At most one value is queued: a newer
// submission replaces an unsent older one.
type Persister struct {
	saver  Saver
	logger *log.Logger

	mu     sync.Mutex
	queue  chan uint32
	closed bool
	done   chan struct{}

	last uint32 // Owned by the writer goroutine
}

// NewPersister starts the writer goroutine. written is the value already
// in storage; submissions not greater than the last written value are
// dropped.
func NewPersister(saver Saver, written uint32, logger *log.Logger) *Persister {
	if logger == nil {
		logger = log.Default()
	}
	p := &Persister{
		saver:  saver,
		logger: logger,
		queue:  make(chan uint32, 1),
		done:   make(chan struct{}),
		last:   written,
	}
	go p.run()
	return p
}

// Submit queues v for writing and returns immediately. Submitting after
// Close is a no-op.
func (p *Persister) Submit(v uint32) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}

	select {
	case p.queue <- v:
		return
	default:
	}

	// A value is still waiting: keep the larger of the two.
	select {
	case old := <-p.queue:
		v = max(v, old)
	default:
	}
	p.queue <- v
}

// Close stops accepting values, waits for the queued value to be written
// and stops the goroutine. It returns ctx.Err() if ctx ends first.
func (p *Persister) Close(ctx context.Context) error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.queue)
	}
	p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Persister) run() {
	defer close(p.done)

	for v := range p.queue {
		if v <= p.last {
			continue
		}
		if err := p.saver.SaveBest(v); err != nil {
			p.logger.Warn("failed to persist best score", "best", v, "error", err)
			continue
		}
		p.last = v
		p.logger.Debug("best score persisted", "best", v)
	}
}
