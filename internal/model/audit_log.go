package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// AuditSeverity ranks audit entries.
type AuditSeverity string

// Audit severities
const (
	SeverityInfo     AuditSeverity = "info"
	SeverityWarning  AuditSeverity = "warning"
	SeverityCritical AuditSeverity = "critical"
)

// AuditLog is an append-only record of a state changing call.
type AuditLog struct {
	ID           uint              `gorm:"primaryKey;autoIncrement;->" json:"id"`
	ActorID      *uuid.UUID        `gorm:"type:uuid;index" json:"actorId"`
	ActorName    string            `gorm:"type:text" json:"actorName"`
	ActorRole    Role              `gorm:"type:text" json:"actorRole"`
	Action       string            `gorm:"type:text;not null;index" json:"action"`
	ResourceType string            `gorm:"type:text;not null" json:"resourceType"`
	ResourceID   string            `gorm:"type:text;index" json:"resourceId"`
	Description  string            `gorm:"type:text" json:"description"`
	Metadata     datatypes.JSONMap `gorm:"type:jsonb" json:"metadata"`
	Severity     AuditSeverity     `gorm:"type:text;not null;default:'info'" json:"severity"`
	CreatedAt    time.Time         `gorm:"autoCreateTime" json:"createdAt"`
}
