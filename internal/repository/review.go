package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm/clause"

	"github.com/RazanRezq/jadara-sub002/internal/database"
	"github.com/RazanRezq/jadara-sub002/internal/model"
	"github.com/RazanRezq/jadara-sub002/internal/review"
)

// ReviewRepository implements review.Store.
type ReviewRepository struct {
	db *database.DBinstanceStruct
}

// NewReviewRepository returns a ReviewRepository on db.
func NewReviewRepository(db *database.DBinstanceStruct) *ReviewRepository {
	return &ReviewRepository{db: db}
}

var reviewUpsertColumns = []string{
	"job_id", "rating", "decision", "pros", "cons",
	"private_notes", "summary", "skill_ratings", "updated_at",
}

// Upsert inserts r or overwrites the existing review of the same reviewer and applicant.
func (rr *ReviewRepository) Upsert(ctx context.Context, r *model.Review) (bool, error) {
	db := rr.db.WithContext(ctx)

	var existing int64
	if err := db.Model(&model.Review{}).
		Where("applicant_id = ? AND reviewer_id = ?", r.ApplicantID, r.ReviewerID).
		Count(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to check existing review: %w", err)
	}

	r.ID = uuid.Nil
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "applicant_id"}, {Name: "reviewer_id"}},
		DoUpdates: clause.AssignmentColumns(reviewUpsertColumns),
	}).Create(r).Error
	if err != nil {
		return false, translate(err, "review")
	}

	var stored model.Review
	if err := db.Where("applicant_id = ? AND reviewer_id = ?", r.ApplicantID, r.ReviewerID).
		First(&stored).Error; err != nil {
		return false, translate(err, "review")
	}
	*r = stored

	return existing == 0, nil
}

// FindMine returns the review of reviewerID for applicantID, or nil.
func (rr *ReviewRepository) FindMine(ctx context.Context, applicantID, reviewerID uuid.UUID) (*model.Review, error) {
	var reviews []model.Review
	if err := rr.db.WithContext(ctx).Preload("Reviewer").
		Where("applicant_id = ? AND reviewer_id = ?", applicantID, reviewerID).
		Limit(1).Find(&reviews).Error; err != nil {
		return nil, err
	}
	if len(reviews) == 0 {
		return nil, nil
	}
	return &reviews[0], nil
}

// ListByApplicant returns the reviews of an applicant, oldest first.
func (rr *ReviewRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Review, error) {
	var reviews []model.Review
	err := rr.db.WithContext(ctx).Preload("Reviewer").
		Where("applicant_id = ?", applicantID).
		Order("created_at ASC").
		Find(&reviews).Error
	return reviews, err
}

// ListByApplicants returns the reviews of several applicants, oldest first.
func (rr *ReviewRepository) ListByApplicants(ctx context.Context, applicantIDs []uuid.UUID) ([]model.Review, error) {
	var reviews []model.Review
	err := rr.db.WithContext(ctx).Preload("Reviewer").
		Where("applicant_id IN ?", applicantIDs).
		Order("created_at ASC").
		Find(&reviews).Error
	return reviews, err
}

// Summarize aggregates the reviews of an applicant whose author still exists.
func (rr *ReviewRepository) Summarize(ctx context.Context, applicantID uuid.UUID) (review.Summary, error) {
	sum := review.Summary{ByDecision: map[model.Decision]int64{}}

	var rows []struct {
		Decision model.Decision
		Total    int64
		Ratings  int64
	}
	err := rr.db.WithContext(ctx).Model(&model.Review{}).
		Select("reviews.decision AS decision, COUNT(*) AS total, COALESCE(SUM(reviews.rating), 0) AS ratings").
		Joins("JOIN users ON users.id = reviews.reviewer_id AND users.deleted_at IS NULL").
		Where("reviews.applicant_id = ?", applicantID).
		Group("reviews.decision").
		Scan(&rows).Error
	if err != nil {
		return sum, err
	}

	var ratings int64
	for _, row := range rows {
		sum.ByDecision[row.Decision] = row.Total
		sum.Total += row.Total
		ratings += row.Ratings
	}
	if sum.Total > 0 {
		sum.Average = float64(ratings) / float64(sum.Total)
	}
	return sum, nil
}

// RatingCounts counts the reviews of reviewerID by rating.
func (rr *ReviewRepository) RatingCounts(ctx context.Context, reviewerID uuid.UUID) (map[int]int64, error) {
	var rows []struct {
		Rating int
		Count  int64
	}
	err := rr.db.WithContext(ctx).Model(&model.Review{}).
		Select("rating, COUNT(*) AS count").
		Where("reviewer_id = ?", reviewerID).
		Group("rating").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.Rating] = row.Count
	}
	return counts, nil
}
