package auth

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/RazanRezq/jadara-sub002/internal/database"
	"github.com/RazanRezq/jadara-sub002/internal/model"
	"github.com/RazanRezq/jadara-sub002/internal/utilities"
)

// LocalAuthHandler holds DB reference for handler methods.
type LocalAuthHandler struct {
	DB *database.DBinstanceStruct
}

// NewLocalAuthHandler creates a new instance of LocalAuthHandler with the provided database connection.
func NewLocalAuthHandler(db *database.DBinstanceStruct) *LocalAuthHandler {
	return &LocalAuthHandler{
		DB: db,
	}
}

type loginInfo struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful login
type LoginResponse struct {
	User        model.User `json:"user"`
	AccessToken string     `json:"accessToken"`
}

// LocalLoginHandler function handles local login by receiving username and password
// @Summary Staff login with username and password
// @Description Inactive or deleted staff cannot log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param Info body loginInfo true "Staff credentials"
// @Success 200 {object} LoginResponse "Successfully logged in"
// @Failure 400 {object} utilities.ErrorResponse "Username or password is not provided"
// @Failure 401 {object} utilities.ErrorResponse "Username or password is incorrect"
// @Failure 403 {object} utilities.ErrorResponse "Account is deactivated"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /auth/login [post]
func (lh *LocalAuthHandler) LocalLoginHandler(c *gin.Context) {
	var info loginInfo

	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Username or password is not provided",
		})
		return
	}

	var user model.User
	err := lh.DB.Where("username = ?", info.Username).First(&user).Error

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		LogAuthAttempt("warning", "Local", "Fail", info.Username, "unknown username")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
		})
		return

	case err == nil:
		// Do nothing

	default:
		LogAuthAttempt("error", "Local", "Fail", info.Username, err.Error())
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}

	if user.Password == "" || !utilities.VerifyPassword(info.Password, user.Password) {
		LogAuthAttempt("warning", "Local", "Fail", info.Username, "wrong password")
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{
			Error: "Username or password is incorrect",
		})
		return
	}

	if !user.IsActive {
		LogAuthAttempt("warning", "Local", "Fail", info.Username, "inactive account")
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Account is deactivated",
		})
		return
	}

	accessToken, _, err := GenerateStandardToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to generate access token: %s", err.Error()),
		})
		return
	}

	LogAuthAttempt("info", "Local", "Success", info.Username, "")
	c.JSON(http.StatusOK, LoginResponse{
		User:        user,
		AccessToken: accessToken,
	})
}
