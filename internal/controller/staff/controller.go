// Package staff contains the staff directory handlers used by admins.
package staff

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/RazanRezq/jadara-sub002/internal/apperr"
	"github.com/RazanRezq/jadara-sub002/internal/audit"
	"github.com/RazanRezq/jadara-sub002/internal/model"
	"github.com/RazanRezq/jadara-sub002/internal/utilities"
)

// Directory is the user store behind the staff endpoints.
type Directory interface {
	List(ctx context.Context) ([]model.User, error)
	Find(ctx context.Context, id uuid.UUID) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Auditor appends audit entries.
type Auditor interface {
	Record(ctx context.Context, e audit.Entry) error
}

// Controller serves the staff endpoints.
type Controller struct {
	Users   Directory
	Auditor Auditor
	Log     logrus.FieldLogger
}

// NewController returns a Controller. auditor may be nil.
func NewController(users Directory, auditor Auditor, log logrus.FieldLogger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{Users: users, Auditor: auditor, Log: log}
}

// CreateStaffRequest is the body of Create.
type CreateStaffRequest struct {
	Username string     `json:"username" validate:"required,max=64"`
	Password string     `json:"password" validate:"required,min=8"`
	Name     string     `json:"name"`
	Email    *string    `json:"email" validate:"omitempty,email"`
	Role     model.Role `json:"role" validate:"required,oneof=reviewer admin"`
	IsActive *bool      `json:"isActive"`
}

// SetActiveRequest is the body of SetActive.
type SetActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

// List returns every staff member
// @Summary Get all staff members
// @Description Only admin and superadmin can access this endpoint
// @Tags Staff
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Success 200 {array} model.User
// @Failure 400 {object} utilities.ErrorResponse "Invalid authorization header"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 403 {object} utilities.ErrorResponse "Do not logged in as admin"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /staff [get]
func (sc *Controller) List(c *gin.Context) {
	users, err := sc.Users.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Database error: %s", err.Error()),
		})
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create adds a staff member
// @Summary Create a staff member
// @Description Only a superadmin can create an admin, superadmins cannot be created through the API
// @Tags Staff
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param staff body CreateStaffRequest true "Staff member"
// @Success 201 {object} model.User
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or field"
// @Failure 403 {object} utilities.ErrorResponse "Not allowed to create this role"
// @Failure 409 {object} utilities.ErrorResponse "Username already taken"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /staff [post]
func (sc *Controller) Create(c *gin.Context) {
	actor, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}
	req.Username = strings.TrimSpace(req.Username)
	if err := utilities.ValidatePayload(req); err != nil {
		utilities.WriteError(c, err, "")
		return
	}
	if req.Role == model.RoleAdmin && actor.Role != model.RoleSuperadmin {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Only superadmin can create admin",
		})
		return
	}

	hashed, err := utilities.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utilities.ErrorResponse{
			Error: fmt.Sprintf("Failed to hash password: %s", err.Error()),
		})
		return
	}

	user := model.User{
		Username: req.Username,
		Name:     req.Name,
		Email:    req.Email,
		Password: hashed,
		Role:     req.Role,
		IsActive: req.IsActive == nil || *req.IsActive,
	}
	if err := sc.Users.Create(c.Request.Context(), &user); err != nil {
		utilities.WriteError(c, err, "Username already taken")
		return
	}

	sc.record(c.Request.Context(), audit.Entry{
		Actor:        actor,
		Action:       audit.ActionStaffCreated,
		ResourceType: "user",
		ResourceID:   user.ID,
		Description:  fmt.Sprintf("%s created %s %s", actor.DisplayName(), user.Role, user.Username),
		Metadata:     map[string]any{"role": user.Role, "isActive": user.IsActive},
	})

	c.JSON(http.StatusCreated, user)
}

// SetActive activates or deactivates a staff member
// @Summary Activate or deactivate a staff member
// @Description Deactivated staff cannot log in and stop receiving notifications
// @Tags Staff
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "User ID"
// @Param active body SetActiveRequest true "Active flag"
// @Success 200 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or own account"
// @Failure 403 {object} utilities.ErrorResponse "Not allowed to change this user"
// @Failure 404 {object} utilities.ErrorResponse "User not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /staff/{id}/active [patch]
func (sc *Controller) SetActive(c *gin.Context) {
	actor, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	id, ok := utilities.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsActive == nil {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error:  "isActive is required",
			Fields: []string{"isActive"},
		})
		return
	}
	if id == actor.ID {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Cannot change your own account status",
		})
		return
	}

	target, ok := sc.findManageable(c, actor, id)
	if !ok {
		return
	}

	if err := sc.Users.SetActive(c.Request.Context(), id, *req.IsActive); err != nil {
		utilities.WriteError(c, err, "")
		return
	}

	action, verb := audit.ActionStaffActivated, "activated"
	if !*req.IsActive {
		action, verb = audit.ActionStaffSuspended, "deactivated"
	}
	sc.record(c.Request.Context(), audit.Entry{
		Actor:        actor,
		Action:       action,
		ResourceType: "user",
		ResourceID:   id,
		Description:  fmt.Sprintf("%s %s %s", actor.DisplayName(), verb, target.Username),
	})

	c.JSON(http.StatusOK, utilities.MessageResponse{
		Message: fmt.Sprintf("User %s", verb),
	})
}

// Delete soft-deletes a staff member
// @Summary Delete a staff member
// @Description Only superadmin can delete staff, reviews and comments of the deleted user are hidden from listings
// @Tags Staff
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "User ID"
// @Success 200 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid id or own account"
// @Failure 403 {object} utilities.ErrorResponse "Do not logged in as superadmin"
// @Failure 404 {object} utilities.ErrorResponse "User not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /staff/{id} [delete]
func (sc *Controller) Delete(c *gin.Context) {
	actor, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	id, ok := utilities.ParseUUIDParam(c, "id")
	if !ok {
		return
	}
	if id == actor.ID {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Cannot delete your own account",
		})
		return
	}

	target, ok := sc.findManageable(c, actor, id)
	if !ok {
		return
	}

	if err := sc.Users.Delete(c.Request.Context(), id); err != nil {
		utilities.WriteError(c, err, "")
		return
	}

	sc.record(c.Request.Context(), audit.Entry{
		Actor:        actor,
		Action:       audit.ActionStaffDeleted,
		ResourceType: "user",
		ResourceID:   id,
		Description:  fmt.Sprintf("%s deleted %s", actor.DisplayName(), target.Username),
		Metadata:     map[string]any{"role": target.Role},
		Severity:     model.SeverityCritical,
	})

	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "User deleted"})
}

// findManageable loads the target user and refuses when actor may not manage it.
// Only a superadmin manages admins and superadmins.
func (sc *Controller) findManageable(c *gin.Context, actor model.User, id uuid.UUID) (*model.User, bool) {
	target, err := sc.Users.Find(c.Request.Context(), id)
	if err != nil {
		utilities.WriteError(c, err, "")
		return nil, false
	}
	if target.Role.IsOversight() && actor.Role != model.RoleSuperadmin {
		c.JSON(http.StatusForbidden, utilities.ErrorResponse{
			Error: "Only superadmin can manage admin accounts",
		})
		return nil, false
	}
	return target, true
}

func (sc *Controller) record(ctx context.Context, e audit.Entry) {
	if sc.Auditor == nil {
		return
	}
	log := sc.Log.WithFields(logrus.Fields{"actor_id": e.Actor.ID, "user_id": e.ResourceID})
	_ = apperr.Contain(log, "audit", func() error {
		return sc.Auditor.Record(ctx, e)
	})
}
