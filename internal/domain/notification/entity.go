package notification

import "time"

// Notification is an in-app message to one user. Rows are append-only
// except for the read flag.
type Notification struct {
	ID        int64      `gorm:"column:id;primaryKey" json:"id"`
	UserID    int64      `gorm:"column:user_id;not null;index:idx_notifications_user_unread" json:"user_id"`
	Message   string     `gorm:"column:message;type:text;not null" json:"message"`
	IsRead    bool       `gorm:"column:is_read;not null;default:false;index:idx_notifications_user_unread" json:"is_read"`
	ReadAt    *time.Time `gorm:"column:read_at" json:"read_at,omitempty"`
	CreatedAt time.Time  `gorm:"column:created_at;index" json:"created_at"`
}

// TableName specifies table name for GORM
func (Notification) TableName() string {
	return "notifications"
}
