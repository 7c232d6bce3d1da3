package repository

import (
	"context"

	"github.com/RazanRezq/jadara-sub002/internal/database"
	"github.com/RazanRezq/jadara-sub002/internal/model"
)

// AuditRepository implements audit.Store.
type AuditRepository struct {
	db *database.DBinstanceStruct
}

// NewAuditRepository returns an AuditRepository on db.
func NewAuditRepository(db *database.DBinstanceStruct) *AuditRepository {
	return &AuditRepository{db: db}
}

// Append inserts entry.
func (ar *AuditRepository) Append(ctx context.Context, entry *model.AuditLog) error {
	return ar.db.WithContext(ctx).Create(entry).Error
}
