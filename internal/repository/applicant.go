package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/RazanRezq/jadara-sub002/internal/database"
	"github.com/RazanRezq/jadara-sub002/internal/model"
)

// ApplicantRepository reads applicants and jobs and moves applicant status.
type ApplicantRepository struct {
	db *database.DBinstanceStruct
}

// NewApplicantRepository returns an ApplicantRepository on db.
func NewApplicantRepository(db *database.DBinstanceStruct) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

// FindApplicant returns the applicant or a NotFoundError.
func (ar *ApplicantRepository) FindApplicant(ctx context.Context, id uuid.UUID) (*model.Applicant, error) {
	var applicant model.Applicant
	if err := ar.db.WithContext(ctx).Where("id = ?", id).First(&applicant).Error; err != nil {
		return nil, translate(err, "applicant")
	}
	return &applicant, nil
}

// FindJob returns the job or a NotFoundError.
func (ar *ApplicantRepository) FindJob(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	var job model.Job
	if err := ar.db.WithContext(ctx).Where("id = ?", id).First(&job).Error; err != nil {
		return nil, translate(err, "job")
	}
	return &job, nil
}

// AdvanceStatus moves the applicant from `from` to `to` in one conditional update.
func (ar *ApplicantRepository) AdvanceStatus(ctx context.Context, id uuid.UUID, from, to model.ApplicantStatus) (bool, error) {
	res := ar.db.WithContext(ctx).Model(&model.Applicant{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
