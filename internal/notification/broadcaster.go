// Package notification fans one team event out into one notification per
// active staff member.
package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"

	"github.com/RazanRezq/jadara-sub002/internal/model"
)

// BroadcastEventType tags the queue message published after each broadcast.
const BroadcastEventType = "notification.broadcast"

// StaffDirectory lists the current staff roster.
type StaffDirectory interface {
	ActiveStaff(ctx context.Context, roles []model.Role) ([]model.User, error)
}

// Store persists notifications.
type Store interface {
	CreateBatch(ctx context.Context, notifications []model.Notification) error
}

// Publisher hands events to an external broker.
type Publisher interface {
	Publish(ctx context.Context, eventType string, payload any) error
}

// Event is one occurrence to broadcast to the team.
type Event struct {
	Type       model.NotificationType
	Priority   model.NotificationPriority
	ActorID    uuid.UUID
	Title      string
	Message    string
	TitleKey   string
	MessageKey string
	Params     map[string]any
	ActionURL  string
	RelatedID  uuid.UUID
}

// BroadcastMessage is the payload published to the broker.
type BroadcastMessage struct {
	Type       model.NotificationType `json:"type"`
	RelatedID  uuid.UUID              `json:"relatedId"`
	ActorID    uuid.UUID              `json:"actorId"`
	Recipients []uuid.UUID            `json:"recipients"`
	Title      string                 `json:"title"`
	Message    string                 `json:"message"`
	Link       string                 `json:"link"`
	OccurredAt time.Time              `json:"occurredAt"`
}

// Broadcaster computes recipients and writes the notifications.
type Broadcaster struct {
	staff     StaffDirectory
	store     Store
	publisher Publisher
	baseURL   string
	log       logrus.FieldLogger
}

// Option configures a Broadcaster.
type Option func(*Broadcaster)

// WithPublisher publishes a BroadcastMessage after every successful broadcast.
func WithPublisher(p Publisher) Option {
	return func(b *Broadcaster) { b.publisher = p }
}

// WithBaseURL makes the published link absolute.
func WithBaseURL(baseURL string) Option {
	return func(b *Broadcaster) { b.baseURL = baseURL }
}

// NewBroadcaster returns a Broadcaster reading recipients from staff and writing to store.
func NewBroadcaster(staff StaffDirectory, store Store, log logrus.FieldLogger, opts ...Option) *Broadcaster {
	if log == nil {
		log = logrus.StandardLogger()
	}
	b := &Broadcaster{staff: staff, store: store, log: log}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Broadcast writes one notification for every active staff member except the actor
// and returns how many were written. The roster is read on every call.
func (b *Broadcaster) Broadcast(ctx context.Context, ev Event) (int, error) {
	staff, err := b.staff.ActiveStaff(ctx, model.StaffRoles())
	if err != nil {
		return 0, fmt.Errorf("failed to list active staff: %w", err)
	}

	recipients := make([]uuid.UUID, 0, len(staff))
	for _, u := range staff {
		if u.ID == ev.ActorID {
			continue
		}
		recipients = append(recipients, u.ID)
	}

	log := b.log.WithFields(logrus.Fields{
		"type":       ev.Type,
		"related_id": ev.RelatedID,
		"actor_id":   ev.ActorID,
	})

	if len(recipients) == 0 {
		log.Warn("No recipients for broadcast")
		return 0, nil
	}

	priority := ev.Priority
	if priority == "" {
		priority = model.PriorityNormal
	}
	relatedID := ev.RelatedID

	notifications := make([]model.Notification, 0, len(recipients))
	for _, id := range recipients {
		notifications = append(notifications, model.Notification{
			RecipientID: id,
			Type:        ev.Type,
			Priority:    priority,
			Title:       ev.Title,
			Message:     ev.Message,
			TitleKey:    ev.TitleKey,
			MessageKey:  ev.MessageKey,
			Params:      datatypes.JSONMap(ev.Params),
			ActionURL:   ev.ActionURL,
			RelatedID:   &relatedID,
		})
	}

	if err := b.store.CreateBatch(ctx, notifications); err != nil {
		return 0, fmt.Errorf("failed to insert %d notifications: %w", len(notifications), err)
	}
	log.WithField("recipients", len(notifications)).Info("Broadcast notifications")

	if b.publisher != nil {
		msg := BroadcastMessage{
			Type:       ev.Type,
			RelatedID:  ev.RelatedID,
			ActorID:    ev.ActorID,
			Recipients: recipients,
			Title:      ev.Title,
			Message:    ev.Message,
			Link:       b.baseURL + ev.ActionURL,
			OccurredAt: time.Now().UTC(),
		}
		if err := b.publisher.Publish(ctx, BroadcastEventType, msg); err != nil {
			log.WithError(err).Error("Failed to publish broadcast event")
		}
	}

	return len(notifications), nil
}
