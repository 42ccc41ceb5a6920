package message

import "time"

const maxContentLength = 2000

// Message is one entry of the conversation attached to a booking.
type Message struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	BookingID int64     `gorm:"column:booking_id;not null;index:idx_messages_booking_created" json:"booking_id"`
	SenderID  int64     `gorm:"column:sender_id;not null" json:"sender_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at;index:idx_messages_booking_created" json:"created_at"`
}

func (Message) TableName() string { return "messages" }

// WSEvent is pushed to the other participant when a message arrives
type WSEvent struct {
	Type    string   `json:"type"`
	Message *Message `json:"message"`
}

const EventNewMessage = "new_message"
