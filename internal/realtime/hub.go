package realtime

import (
	"context"
	"log/slog"
	"sync"

	"github.com/bluemonkey003/lunchroom/internal/domain/model"
	"github.com/bluemonkey003/lunchroom/internal/event"
	"github.com/bluemonkey003/lunchroom/internal/server/http/dto"
)

// Hub tracks live connections and routes messages to a single user,
// to an order room, or to everyone. It consumes domain events from the
// bus and doubles as the push side of the notification fan-out.
//
// Events arrive from a single dispatcher goroutine and each client
// drains its own buffered queue in order, so every client observes
// mutations in publish order.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[*Client]struct{}
	users   map[int64]map[*Client]struct{}
	rooms   map[string]map[*Client]struct{}
	closed  bool
}

// NewHub constructs an empty hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[*Client]struct{}),
		users:   make(map[int64]map[*Client]struct{}),
		rooms:   make(map[string]map[*Client]struct{}),
	}
}

// register adds the connection to the roster. It fails after Shutdown.
func (h *Hub) register(c *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	if h.users[c.userID] == nil {
		h.users[c.userID] = make(map[*Client]struct{})
	}
	h.users[c.userID][c] = struct{}{}
	return true
}

// unregister drops the connection and all its room subscriptions.
func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	if set := h.users[c.userID]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.users, c.userID)
		}
	}
	for room := range c.rooms {
		if set := h.rooms[room]; set != nil {
			delete(set, c)
			if len(set) == 0 {
				delete(h.rooms, room)
			}
		}
	}
}

func (h *Hub) join(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][c] = struct{}{}
	c.rooms[room] = struct{}{}
}

func (h *Hub) leave(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(c.rooms, room)
	if set := h.rooms[room]; set != nil {
		delete(set, c)
		if len(set) == 0 {
			delete(h.rooms, room)
		}
	}
}

// BroadcastAll sends the message to every connected client.
func (h *Hub) BroadcastAll(message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		c.enqueue(message)
	}
}

// ToRoom sends the message to every client subscribed to the room.
func (h *Hub) ToRoom(room string, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[room] {
		c.enqueue(message)
	}
}

// ToUser sends the message to every live connection of the user.
func (h *Hub) ToUser(userID int64, message []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.users[userID] {
		c.enqueue(message)
	}
}

// HandleEvent translates a domain event into its wire message and
// routes it. Delivery is fire-and-forget; a client that cannot keep up
// is disconnected rather than allowed to stall the rest.
func (h *Hub) HandleEvent(ctx context.Context, e event.Event) {
	switch ev := e.(type) {
	case event.OrderOpened:
		h.send(EventOrderNew, dto.NewOrderResponse(&ev.Order), "")
	case event.OrderClosed:
		h.send(EventOrderClosed, dto.NewOrderResponse(&ev.Order), roomName(ev.Order.ID))
	case event.ItemAdded:
		h.send(EventItemAdded, dto.NewItemResponse(&ev.Item), roomName(ev.OrderID))
	case event.ItemUpdated:
		h.send(EventItemUpdated, dto.NewItemResponse(&ev.Item), roomName(ev.OrderID))
	case event.ItemDeleted:
		h.send(EventItemDeleted, itemDeletedPayload{OrderID: ev.OrderID, ItemID: ev.ItemID, UserID: ev.UserID}, roomName(ev.OrderID))
	}
}

// send encodes and routes; an empty room means broadcast to everyone.
func (h *Hub) send(eventName string, data any, room string) {
	message, err := encode(eventName, data)
	if err != nil {
		h.logger.Error("encoding wire event failed", slog.String("event", eventName), slog.String("error", err.Error()))
		return
	}
	if room == "" {
		h.BroadcastAll(message)
		return
	}
	h.ToRoom(room, message)
}

// PushNotification delivers a stored notification to the recipient's
// live connections.
func (h *Hub) PushNotification(userID int64, n model.Notification) {
	message, err := encode(EventNotificationNew, dto.NewNotificationResponse(&n))
	if err != nil {
		h.logger.Error("encoding notification failed", slog.String("error", err.Error()))
		return
	}
	h.ToUser(userID, message)
}

// Shutdown closes every connection and refuses new registrations.
func (h *Hub) Shutdown(ctx context.Context) {
	h.mu.Lock()
	h.closed = true
	clients := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		c.close()
	}
}
