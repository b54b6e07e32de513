package repositories

import (
	"errors"
	"strings"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and candidate")
)

type ApplicationRepository interface {
	// Create inserts the application. The unique (job_id, candidate_id)
	// index turns a lost check-then-insert race into
	// ErrDuplicateApplication.
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error)
	ListByCandidate(candidateID string) ([]models.Application, error)
	ListByJob(jobID string) ([]models.Application, error)
	Save(application *models.Application) error
	Delete(id string) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	if err := r.db.Create(application).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return ErrDuplicateApplication
		}
		return err
	}
	return nil
}

func (r *ApplicationRepositoryImpl) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) FindByJobAndCandidate(jobID, candidateID string) (*models.Application, error) {
	var application models.Application
	err := r.db.First(&application, "job_id = ? AND candidate_id = ?", jobID, candidateID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) ListByCandidate(candidateID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Candidate").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) Save(application *models.Application) error {
	return r.db.Save(application).Error
}

func (r *ApplicationRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// isUniqueViolation matches the postgres unique_violation error when the
// driver does not translate it to gorm.ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
