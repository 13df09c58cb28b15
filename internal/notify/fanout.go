package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/bluemonkey003/lunchroom/internal/domain/model"
	"github.com/bluemonkey003/lunchroom/internal/domain/repository"
	"github.com/bluemonkey003/lunchroom/internal/event"
)

// Pusher delivers an already persisted notification to the recipient's
// live connections, if any. Delivery is best effort; the stored row is
// what guarantees the user eventually sees it.
type Pusher interface {
	PushNotification(userID int64, n model.Notification)
}

// Fanout expands order lifecycle events into per-user notifications
// using a small worker pool. Each recipient gets a durable row first,
// then a realtime push; a failed push is logged and dropped because
// the row already exists.
type Fanout struct {
	users         repository.UserRepository
	notifications repository.NotificationRepository
	pusher        Pusher
	workers       int
	logger        *slog.Logger

	tasks  chan event.Event
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewFanout constructs the fan-out worker pool.
func NewFanout(users repository.UserRepository, notifications repository.NotificationRepository, pusher Pusher, workers int, logger *slog.Logger) *Fanout {
	if workers <= 0 {
		workers = 1
	}
	return &Fanout{
		users:         users,
		notifications: notifications,
		pusher:        pusher,
		workers:       workers,
		logger:        logger,
		tasks:         make(chan event.Event, workers*16),
	}
}

// HandleEvent enqueues the event for background expansion. It never
// blocks the bus dispatcher; a full queue drops the event.
func (f *Fanout) HandleEvent(ctx context.Context, e event.Event) {
	switch e.(type) {
	case event.OrderOpened, event.OrderClosed:
	default:
		return
	}
	select {
	case f.tasks <- e:
	default:
		f.logger.Warn("notification fan-out queue full, dropping event", slog.String("event", fmt.Sprintf("%T", e)))
	}
}

// Start launches background workers.
func (f *Fanout) Start(ctx context.Context) {
	f.mu.Lock()
	defer f.mu.Unlock()

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	f.cancel = cancel

	for i := 0; i < f.workers; i++ {
		f.wg.Add(1)
		go f.worker(runCtx)
	}
}

// Stop drains queued events and waits for all workers to finish.
func (f *Fanout) Stop() {
	f.mu.Lock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.mu.Unlock()

	f.wg.Wait()
}

func (f *Fanout) worker(ctx context.Context) {
	defer f.wg.Done()
	for {
		select {
		case <-ctx.Done():
			// Finish what is already queued so accepted events still
			// produce their durable rows.
			for {
				select {
				case e := <-f.tasks:
					f.process(context.WithoutCancel(ctx), e)
				default:
					return
				}
			}
		case e := <-f.tasks:
			f.process(ctx, e)
		}
	}
}

func (f *Fanout) process(ctx context.Context, e event.Event) {
	switch ev := e.(type) {
	case event.OrderOpened:
		f.orderOpened(ctx, ev)
	case event.OrderClosed:
		f.orderClosed(ctx, ev)
	}
}

func (f *Fanout) orderOpened(ctx context.Context, ev event.OrderOpened) {
	active := true
	users, err := f.users.List(ctx, model.UserFilter{Active: &active})
	if err != nil {
		f.logger.Error("listing notification recipients failed", slog.String("error", err.Error()))
		return
	}
	message := fmt.Sprintf("Lunch order from %s is open for %s", ev.Order.RestaurantName, ev.Order.Day.Format("2006-01-02"))
	for _, u := range users {
		if u.ID == ev.ActorID {
			continue
		}
		f.deliver(ctx, u.ID, model.NotificationOrderOpened, message)
	}
}

func (f *Fanout) orderClosed(ctx context.Context, ev event.OrderClosed) {
	message := fmt.Sprintf("Lunch order from %s has been closed", ev.Order.RestaurantName)
	for _, userID := range ev.ParticipantIDs {
		f.deliver(ctx, userID, model.NotificationOrderClosed, message)
	}
}

func (f *Fanout) deliver(ctx context.Context, userID int64, typ model.NotificationType, message string) {
	n, err := f.notifications.Create(ctx, userID, typ, message)
	if err != nil {
		f.logger.Error("storing notification failed",
			slog.Int64("user_id", userID),
			slog.String("type", string(typ)),
			slog.String("error", err.Error()))
		return
	}
	if f.pusher != nil {
		f.pusher.PushNotification(userID, *n)
	}
}
