package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/RazanRezq/jadara-sub002/internal/apperr"
	"github.com/RazanRezq/jadara-sub002/internal/database"
	"github.com/RazanRezq/jadara-sub002/internal/model"
)

// CommentRepository implements comment.Store.
type CommentRepository struct {
	db *database.DBinstanceStruct
}

// NewCommentRepository returns a CommentRepository on db.
func NewCommentRepository(db *database.DBinstanceStruct) *CommentRepository {
	return &CommentRepository{db: db}
}

func (cr *CommentRepository) Create(ctx context.Context, c *model.Comment) error {
	return cr.db.WithContext(ctx).Create(c).Error
}

func (cr *CommentRepository) Find(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	var c model.Comment
	if err := cr.db.WithContext(ctx).Where("id = ?", id).First(&c).Error; err != nil {
		return nil, translate(err, "comment")
	}
	return &c, nil
}

func (cr *CommentRepository) ListByApplicant(ctx context.Context, applicantID uuid.UUID) ([]model.Comment, error) {
	var comments []model.Comment
	err := cr.db.WithContext(ctx).Preload("Author").
		Where("applicant_id = ?", applicantID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}

func (cr *CommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := cr.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperr.NewNotFound("comment")
	}
	return nil
}
