// Package comment contains the HTTP handlers for team notes on applicants.
package comment

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/RazanRezq/jadara-sub002/internal/comment"
	"github.com/RazanRezq/jadara-sub002/internal/model"
	"github.com/RazanRezq/jadara-sub002/internal/utilities"
)

// Controller serves the comment endpoints.
type Controller struct {
	Service *comment.Service
}

// NewController returns a Controller backed by svc.
func NewController(svc *comment.Service) *Controller {
	return &Controller{Service: svc}
}

// CreateResponse is returned by Create.
type CreateResponse struct {
	Comment model.CommentView `json:"comment"`
}

// ListResponse is returned by List.
type ListResponse struct {
	Comments []model.CommentView `json:"comments"`
}

// Create adds a note to an applicant
// @Summary Add a comment to an applicant
// @Description Every new comment is announced to the team, private content is left out of the announcement
// @Tags Comment
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param applicantId path string true "Applicant ID"
// @Param comment body comment.CreateInput true "Comment"
// @Success 201 {object} CreateResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or field"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Applicant not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applicants/{applicantId}/comments [post]
func (cc *Controller) Create(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	applicantID, ok := utilities.ParseUUIDParam(c, "applicantId")
	if !ok {
		return
	}

	var in comment.CreateInput
	if !utilities.BindJSON(c, &in) {
		return
	}

	view, err := cc.Service.Create(c.Request.Context(), user, applicantID, in)
	if err != nil {
		utilities.WriteError(c, err, "")
		return
	}
	c.JSON(http.StatusCreated, CreateResponse{Comment: *view})
}

// List returns the comments on an applicant
// @Summary Get comments of an applicant
// @Description Private comments are only returned to their author
// @Tags Comment
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param applicantId path string true "Applicant ID"
// @Success 200 {object} ListResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid applicantId"
// @Failure 404 {object} utilities.ErrorResponse "Applicant not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /applicants/{applicantId}/comments [get]
func (cc *Controller) List(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	applicantID, ok := utilities.ParseUUIDParam(c, "applicantId")
	if !ok {
		return
	}

	views, err := cc.Service.List(c.Request.Context(), user, applicantID)
	if err != nil {
		utilities.WriteError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, ListResponse{Comments: views})
}

// Delete removes a comment
// @Summary Delete a comment
// @Description Only the author can delete a comment
// @Tags Comment
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param id path string true "Comment ID"
// @Success 200 {object} utilities.MessageResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid id"
// @Failure 403 {object} utilities.ErrorResponse "Not the author"
// @Failure 404 {object} utilities.ErrorResponse "Comment not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /comments/{id} [delete]
func (cc *Controller) Delete(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	id, ok := utilities.ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := cc.Service.Delete(c.Request.Context(), user, id); err != nil {
		utilities.WriteError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, utilities.MessageResponse{Message: "Comment deleted"})
}
