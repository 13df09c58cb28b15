package event

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Publisher is the capability handed to mutating use cases. Publish is
// fire-and-forget: it must never block the mutating request and its
// outcome never affects the mutation's result.
type Publisher interface {
	Publish(e Event)
}

// Handler consumes dispatched events. Implementations must not block;
// slow work is handed off to their own goroutines.
type Handler interface {
	HandleEvent(ctx context.Context, e Event)
}

// Bus delivers events to subscribers through a single dispatcher
// goroutine, preserving publish order across all handlers. A full
// buffer drops the event rather than stalling the publisher; durable
// delivery is the notification store's job, not the bus's.
type Bus struct {
	ch      chan Event
	logger  *slog.Logger
	mu      sync.Mutex
	subs    []Handler
	started bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewBus creates a bus with the given buffer capacity.
func NewBus(buffer int, logger *slog.Logger) *Bus {
	if buffer <= 0 {
		buffer = 256
	}
	return &Bus{
		ch:     make(chan Event, buffer),
		logger: logger,
		done:   make(chan struct{}),
	}
}

// Subscribe registers a handler. Must be called before Start.
func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		panic("event: Subscribe after Start")
	}
	b.subs = append(b.subs, h)
}

// Publish enqueues an event for asynchronous dispatch.
func (b *Bus) Publish(e Event) {
	select {
	case b.ch <- e:
	default:
		b.logger.Warn("event buffer full, dropping event", slog.String("event", fmt.Sprintf("%T", e)))
	}
}

// Start launches the dispatcher goroutine.
func (b *Bus) Start(ctx context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.started {
		return
	}
	b.started = true

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	b.cancel = cancel

	go b.dispatch(runCtx)
}

// Stop drains buffered events and waits for the dispatcher to exit.
func (b *Bus) Stop() {
	b.mu.Lock()
	cancel := b.cancel
	b.cancel = nil
	b.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-b.done
}

func (b *Bus) dispatch(ctx context.Context) {
	defer close(b.done)
	for {
		select {
		case e := <-b.ch:
			b.deliver(ctx, e)
		case <-ctx.Done():
			for {
				select {
				case e := <-b.ch:
					b.deliver(ctx, e)
				default:
					return
				}
			}
		}
	}
}

func (b *Bus) deliver(ctx context.Context, e Event) {
	b.mu.Lock()
	subs := b.subs
	b.mu.Unlock()
	for _, h := range subs {
		h.HandleEvent(ctx, e)
	}
}
