package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/RazanRezq/jadara-sub002/internal/apperr"
	"github.com/RazanRezq/jadara-sub002/internal/database"
	"github.com/RazanRezq/jadara-sub002/internal/model"
)

// UserRepository is the staff directory.
type UserRepository struct {
	db *database.DBinstanceStruct
}

// NewUserRepository returns a UserRepository on db.
func NewUserRepository(db *database.DBinstanceStruct) *UserRepository {
	return &UserRepository{db: db}
}

// ActiveStaff lists active, non-deleted users holding one of roles.
func (ur *UserRepository) ActiveStaff(ctx context.Context, roles []model.Role) ([]model.User, error) {
	var users []model.User
	err := ur.db.WithContext(ctx).
		Where("is_active = ? AND role IN ?", true, roles).
		Order("created_at ASC").
		Find(&users).Error
	return users, err
}

// List returns every non-deleted user, newest first.
func (ur *UserRepository) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := ur.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

// Find returns a non-deleted user or a NotFoundError.
func (ur *UserRepository) Find(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	if err := ur.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, translate(err, "user")
	}
	return &user, nil
}

// Create inserts u. A taken username is a DuplicateKeyError.
// A false IsActive is written after the insert, the column default would swallow it.
func (ur *UserRepository) Create(ctx context.Context, u *model.User) error {
	active := u.IsActive
	db := ur.db.WithContext(ctx)
	if err := db.Create(u).Error; err != nil {
		return translate(err, "username")
	}
	if !active {
		return ur.SetActive(ctx, u.ID, false)
	}
	return nil
}

// SetActive activates or deactivates a user.
func (ur *UserRepository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	res := ur.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Update("is_active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NewNotFound("user")
	}
	return nil
}

// Delete soft-deletes a user. Records they authored stay in place.
func (ur *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := ur.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NewNotFound("user")
	}
	return nil
}
