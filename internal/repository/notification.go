package repository

import (
	"context"

	"github.com/RazanRezq/jadara-sub002/internal/database"
	"github.com/RazanRezq/jadara-sub002/internal/model"
)

const notificationBatchSize = 100

// NotificationRepository implements notification.Store.
type NotificationRepository struct {
	db *database.DBinstanceStruct
}

// NewNotificationRepository returns a NotificationRepository on db.
func NewNotificationRepository(db *database.DBinstanceStruct) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateBatch inserts notifications in batches of notificationBatchSize.
func (nr *NotificationRepository) CreateBatch(ctx context.Context, notifications []model.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return nr.db.WithContext(ctx).CreateInBatches(&notifications, notificationBatchSize).Error
}
