package notification

import "time"

// RoutingKeyCreated is the AMQP routing key of CreatedEvent.
const RoutingKeyCreated = "notification.created"

// Websocket event types
const (
	EventNotification = "notification"
	EventUnreadCount  = "unread_count"
)

// WSEvent is pushed to live websocket connections
type WSEvent struct {
	Type         string        `json:"type"`
	Notification *Notification `json:"notification,omitempty"`
	Unread       *int64        `json:"unread,omitempty"`
}

func NewNotificationEvent(n *Notification) *WSEvent {
	return &WSEvent{Type: EventNotification, Notification: n}
}

func NewUnreadCountEvent(unread int64) *WSEvent {
	return &WSEvent{Type: EventUnreadCount, Unread: &unread}
}

// CreatedEvent is published on the message bus for out-of-process consumers.
type CreatedEvent struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
