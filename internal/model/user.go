package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role is the staff role of an authenticated principal.
type Role string

// Staff roles
const (
	RoleReviewer   Role = "reviewer"
	RoleAdmin      Role = "admin"
	RoleSuperadmin Role = "superadmin"
)

// StaffRoles lists every role that receives team broadcasts.
func StaffRoles() []Role {
	return []Role{RoleSuperadmin, RoleAdmin, RoleReviewer}
}

// Valid reports whether r is one of the known staff roles.
func (r Role) Valid() bool {
	switch r {
	case RoleReviewer, RoleAdmin, RoleSuperadmin:
		return true
	}
	return false
}

// IsOversight reports whether r is an admin or superadmin.
func (r Role) IsOversight() bool {
	return r == RoleAdmin || r == RoleSuperadmin
}

// User is a staff member of the recruitment team.
// Deleting a user is a soft delete, records authored by the user stay in place.
type User struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	Username  string         `gorm:"type:text;uniqueIndex;not null" json:"username"`
	Name      string         `gorm:"type:text" json:"name"`
	Email     *string        `gorm:"type:text" json:"email"`
	Password  string         `gorm:"type:text" json:"-"`
	Role      Role           `gorm:"type:text;not null;index;check:role IN ('reviewer', 'admin', 'superadmin')" json:"role"`
	IsActive  bool           `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// DisplayName returns the name shown to teammates, falling back to the username.
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// Author is the public projection of a User embedded in listings.
type Author struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Role Role      `json:"role"`
}

// AsAuthor projects u for listings.
func (u User) AsAuthor() Author {
	return Author{ID: u.ID, Name: u.DisplayName(), Role: u.Role}
}
