package repositories

import (
	"errors"
	"strings"

	"jobportal_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows the public job listing. Keyword and Location are
// case-insensitive substring matches, JobType is exact.
type JobFilter struct {
	Keyword  string
	Location string
	JobType  string
}

type JobRepository interface {
	Create(job *models.Job) error
	FindByID(id string) (*models.Job, error)
	Save(job *models.Job) error
	Delete(id string) error
	List(filter JobFilter) ([]models.Job, error)
	ListByEmployer(employerID string) ([]models.Job, error)
	ListAll() ([]models.Job, error)
}

type JobRepositoryImpl struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &JobRepositoryImpl{db: db}
}

func (r *JobRepositoryImpl) Create(job *models.Job) error {
	return r.db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(id string) (*models.Job, error) {
	var job models.Job
	err := r.db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) Save(job *models.Job) error {
	return r.db.Save(job).Error
}

func (r *JobRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) List(filter JobFilter) ([]models.Job, error) {
	query := r.db.Model(&models.Job{})

	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		pattern := "%" + kw + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if loc := strings.TrimSpace(filter.Location); loc != "" {
		query = query.Where("location ILIKE ?", "%"+loc+"%")
	}
	if filter.JobType != "" {
		query = query.Where("job_type = ?", filter.JobType)
	}

	var jobs []models.Job
	err := query.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) ListByEmployer(employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Where("employer_id = ?", employerID).Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}

func (r *JobRepositoryImpl) ListAll() ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}
