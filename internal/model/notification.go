package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// NotificationType identifies the event behind a notification.
type NotificationType string

// Notification types
const (
	NotificationReviewSubmitted NotificationType = "review_submitted"
	NotificationCommentAdded    NotificationType = "comment_added"
)

// NotificationPriority orders notifications in the inbox.
type NotificationPriority string

// Notification priorities
const (
	PriorityLow    NotificationPriority = "low"
	PriorityNormal NotificationPriority = "normal"
	PriorityHigh   NotificationPriority = "high"
)

// Notification is a system generated message owned by its recipient.
type Notification struct {
	ID          uuid.UUID            `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	RecipientID uuid.UUID            `gorm:"type:uuid;not null;index" json:"recipientId"`
	Type        NotificationType     `gorm:"type:text;not null" json:"type"`
	Priority    NotificationPriority `gorm:"type:text;not null;default:'normal'" json:"priority"`
	Title       string               `gorm:"type:text" json:"title"`
	Message     string               `gorm:"type:text" json:"message"`
	TitleKey    string               `gorm:"type:text" json:"titleKey"`
	MessageKey  string               `gorm:"type:text" json:"messageKey"`
	Params      datatypes.JSONMap    `gorm:"type:jsonb" json:"params"`
	ActionURL   string               `gorm:"type:text" json:"actionUrl"`
	RelatedID   *uuid.UUID           `gorm:"type:uuid;index" json:"relatedId"`
	IsRead      bool                 `gorm:"not null;default:false" json:"isRead"`
	CreatedAt   time.Time            `json:"createdAt"`
}
