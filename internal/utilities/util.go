// Package utilities contain utility code that use across the package
package utilities

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RazanRezq/jadara-sub002/internal/model"
)

// ErrorResponse type for swagger docs
type ErrorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// MessageResponse type for swagger docs
type MessageResponse struct {
	Message string `json:"message"`
}

// ExtractUser extracts the user model from Gin context.
// It does not abort the request; it returns an error when missing/invalid.
func ExtractUser(c *gin.Context) (model.User, error) {
	u, _ := c.Get("user")
	if u == nil {
		return model.User{}, errors.New("User information not provided")
	}

	user, ok := u.(model.User)
	if !ok {
		return model.User{}, errors.New("Failed to assert type")
	}
	return user, nil
}

// CreateAdmin creates a superadmin user with the given password and username in the provided database.
func CreateAdmin(password string, username string, db *gorm.DB) (model.User, error) {
	hashedPassword, err := HashPassword(password)
	if err != nil {
		return model.User{}, err
	}

	admin := model.User{
		Username: username,
		Name:     username,
		Password: hashedPassword,
		Role:     model.RoleSuperadmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return model.User{}, err
	}
	return admin, nil
}
