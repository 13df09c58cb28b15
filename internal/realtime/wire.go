package realtime

import (
	"encoding/json"
	"fmt"
)

// Wire event names pushed to clients.
const (
	EventOrderNew        = "order:new"
	EventOrderClosed     = "order:closed"
	EventItemAdded       = "item:added"
	EventItemUpdated     = "item:updated"
	EventItemDeleted     = "item:deleted"
	EventNotificationNew = "notification:new"
)

// Client actions accepted on the inbound side.
const (
	ActionJoinOrder  = "join:order"
	ActionLeaveOrder = "leave:order"
)

// envelope frames every outbound message.
type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// inbound frames every message a client may send.
type inbound struct {
	Action  string `json:"action"`
	OrderID int64  `json:"order_id"`
}

// itemDeletedPayload identifies a removed item without its content.
type itemDeletedPayload struct {
	OrderID int64 `json:"order_id"`
	ItemID  int64 `json:"item_id"`
	UserID  int64 `json:"user_id"`
}

func encode(event string, data any) ([]byte, error) {
	return json.Marshal(envelope{Event: event, Data: data})
}

func roomName(orderID int64) string {
	return fmt.Sprintf("order:%d", orderID)
}
