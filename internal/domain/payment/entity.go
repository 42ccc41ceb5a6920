package payment

import "time"

type Status string

// StatusCompleted is the only status produced: recording a payment settles it.
const StatusCompleted Status = "COMPLETED"

type Payment struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	BookingID int64     `gorm:"column:booking_id;uniqueIndex;not null" json:"booking_id"`
	Amount    float64   `gorm:"column:amount;not null" json:"amount"`
	Status    Status    `gorm:"column:status;type:varchar(16);not null" json:"status"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Payment) TableName() string { return "payments" }
