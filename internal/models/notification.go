package models

import (
	"time"

	"gorm.io/datatypes"
)

const NotificationApplicationStatus = "application_status"

// Notification is an in-app notification row. Delivery (badges, websockets,
// digests) belongs to the notification subsystem; screening only creates
// rows, best effort.
type Notification struct {
	ID      uint   `gorm:"column:id;primaryKey" json:"id"`
	UserID  string `gorm:"column:user_id;type:uuid;index" json:"user_id"`
	Type    string `gorm:"column:type;type:text" json:"type"`
	Title   string `gorm:"column:title;type:text" json:"title"`
	Message string `gorm:"column:message;type:text" json:"message"`

	Payload datatypes.JSON `gorm:"column:payload;type:jsonb" json:"payload"`

	IsRead    bool      `gorm:"column:is_read" json:"is_read"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
