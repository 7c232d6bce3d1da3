// Package review contains the HTTP handlers of the review workflow.
package review

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/RazanRezq/jadara-sub002/internal/model"
	"github.com/RazanRezq/jadara-sub002/internal/review"
	"github.com/RazanRezq/jadara-sub002/internal/utilities"
)

const duplicateReviewMessage = "You have already reviewed this applicant"

// Controller serves the review endpoints.
type Controller struct {
	Service *review.Service
}

// NewController returns a Controller backed by svc.
func NewController(svc *review.Service) *Controller {
	return &Controller{Service: svc}
}

// ReviewSummary is the short form of a review returned after submission.
type ReviewSummary struct {
	ID       uuid.UUID      `json:"id"`
	Rating   int            `json:"rating"`
	Decision model.Decision `json:"decision"`
}

// SubmitResponse is returned by Submit.
type SubmitResponse struct {
	Message         string                `json:"message"`
	Review          ReviewSummary         `json:"review"`
	IsNewReview     bool                  `json:"isNewReview"`
	ApplicantStatus model.ApplicantStatus `json:"applicantStatus"`
}

// ListResponse is returned by ByApplicant.
type ListResponse struct {
	Reviews []model.ReviewView `json:"reviews"`
}

// MineResponse is returned by Mine. Review is null when the caller has not reviewed yet.
type MineResponse struct {
	Review *model.ReviewView `json:"review"`
}

// BatchBadgesRequest is the body of BatchBadges.
type BatchBadgesRequest struct {
	ApplicantIDs []uuid.UUID `json:"applicantIds"`
}

// BatchBadgesResponse is returned by BatchBadges.
type BatchBadgesResponse struct {
	ReviewsByApplicant map[uuid.UUID][]review.Badge `json:"reviewsByApplicant"`
}

// Submit creates or updates the caller's review of an applicant
// @Summary Submit or update a review
// @Description One review per reviewer and applicant, a resubmission updates it in place
// @Description A reviewer's first review moves a new applicant to evaluated
// @Tags Review
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param review body review.SubmitInput true "Review"
// @Success 200 {object} SubmitResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body or field"
// @Failure 401 {object} utilities.ErrorResponse "Invalid token"
// @Failure 404 {object} utilities.ErrorResponse "Applicant not found"
// @Failure 409 {object} utilities.ErrorResponse "Already reviewed"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /reviews [post]
func (rc *Controller) Submit(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var in review.SubmitInput
	if !utilities.BindJSON(c, &in) {
		return
	}

	res, err := rc.Service.Submit(c.Request.Context(), user, in)
	if err != nil {
		utilities.WriteError(c, err, duplicateReviewMessage)
		return
	}

	message := "Review updated successfully"
	if res.IsNewReview {
		message = "Review submitted successfully"
	}
	c.JSON(http.StatusOK, SubmitResponse{
		Message: message,
		Review: ReviewSummary{
			ID:       res.Review.ID,
			Rating:   res.Review.Rating,
			Decision: res.Review.Decision,
		},
		IsNewReview:     res.IsNewReview,
		ApplicantStatus: res.Status,
	})
}

// ByApplicant lists the reviews of an applicant
// @Summary Get reviews of an applicant
// @Description Reviews of deleted staff are hidden
// @Description Reviewers only see their own private notes, admin and superadmin see all
// @Tags Review
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param applicantId path string true "Applicant ID"
// @Success 200 {object} ListResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid applicantId"
// @Failure 404 {object} utilities.ErrorResponse "Applicant not found"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /reviews/applicant/{applicantId} [get]
func (rc *Controller) ByApplicant(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	applicantID, ok := utilities.ParseUUIDParam(c, "applicantId")
	if !ok {
		return
	}

	views, err := rc.Service.ByApplicant(c.Request.Context(), user, applicantID)
	if err != nil {
		utilities.WriteError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, ListResponse{Reviews: views})
}

// Mine returns the caller's review of an applicant
// @Summary Get my review of an applicant
// @Tags Review
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param applicantId path string true "Applicant ID"
// @Success 200 {object} MineResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid applicantId"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /reviews/mine/{applicantId} [get]
func (rc *Controller) Mine(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}
	applicantID, ok := utilities.ParseUUIDParam(c, "applicantId")
	if !ok {
		return
	}

	view, err := rc.Service.Mine(c.Request.Context(), user, applicantID)
	if err != nil {
		utilities.WriteError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, MineResponse{Review: view})
}

// Average summarizes the ratings of an applicant
// @Summary Get average rating of an applicant
// @Tags Review
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param applicantId path string true "Applicant ID"
// @Success 200 {object} review.Average
// @Failure 400 {object} utilities.ErrorResponse "Invalid applicantId"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /reviews/average/{applicantId} [get]
func (rc *Controller) Average(c *gin.Context) {
	applicantID, ok := utilities.ParseUUIDParam(c, "applicantId")
	if !ok {
		return
	}

	avg, err := rc.Service.AverageFor(c.Request.Context(), applicantID)
	if err != nil {
		utilities.WriteError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, avg)
}

// BatchBadges returns review badges for several applicants
// @Summary Get review badges of several applicants
// @Description At most 200 applicant ids per request
// @Tags Review
// @Accept json
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param applicants body BatchBadgesRequest true "Applicant ids"
// @Success 200 {object} BatchBadgesResponse
// @Failure 400 {object} utilities.ErrorResponse "Invalid request body"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /reviews/batch-badges [post]
func (rc *Controller) BatchBadges(c *gin.Context) {
	var req BatchBadgesRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	badges, err := rc.Service.BatchBadges(c.Request.Context(), req.ApplicantIDs)
	if err != nil {
		utilities.WriteError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, BatchBadgesResponse{ReviewsByApplicant: badges})
}

// RatingDistribution counts the ratings a reviewer gave
// @Summary Get rating distribution of a reviewer
// @Description Reviewers can only see their own distribution
// @Tags Review
// @Produce json
// @Param Authorization header string true "Insert your access token" default(Bearer <your access token>)
// @Param reviewerId query string false "Reviewer ID, the caller by default"
// @Success 200 {object} review.Distribution
// @Failure 400 {object} utilities.ErrorResponse "Invalid reviewerId"
// @Failure 403 {object} utilities.ErrorResponse "Not allowed to view another reviewer"
// @Failure 500 {object} utilities.ErrorResponse "Database error"
// @Router /reviews/rating-distribution [get]
func (rc *Controller) RatingDistribution(c *gin.Context) {
	user, err := utilities.ExtractUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utilities.ErrorResponse{Error: err.Error()})
		return
	}

	var reviewerID *uuid.UUID
	if raw := c.Query("reviewerId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, utilities.ErrorResponse{
				Error:  "Invalid reviewerId",
				Fields: []string{"reviewerId"},
			})
			return
		}
		reviewerID = &id
	}

	dist, err := rc.Service.RatingDistribution(c.Request.Context(), user, reviewerID)
	if err != nil {
		utilities.WriteError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, dist)
}
