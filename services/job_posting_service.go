package services

import (
	"errors"
	"jobboard-http-service/config"
	"jobboard-http-service/models"
	"time"

	"gorm.io/gorm"
)

// ErrJobPostingNotFound is returned when a job id does not exist
var ErrJobPostingNotFound = errors.New("job posting not found")

// InterfaceJobPostingService defines the job posting service interface
type InterfaceJobPostingService interface {
	GetAllJobPostings() ([]models.JobPosting, error)
	GetJobPostingByID(jobID uint) (*models.JobPosting, error)
	CreateJobPosting(posting *models.JobPosting) error
	UpdateJobPosting(posting *models.JobPosting) error
	DeleteJobPosting(jobID uint) error
}

// JobPostingService provides job posting management
type JobPostingService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewJobPostingService creates a new job posting service
func NewJobPostingService(db *gorm.DB, cfg *config.Config) InterfaceJobPostingService {
	return &JobPostingService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllJobPostings returns every job posting
func (s *JobPostingService) GetAllJobPostings() ([]models.JobPosting, error) {
	var postings []models.JobPosting
	if err := s.DB.Find(&postings).Error; err != nil {
		return nil, err
	}
	return postings, nil
}

// GetJobPostingByID returns one posting by primary key
func (s *JobPostingService) GetJobPostingByID(jobID uint) (*models.JobPosting, error) {
	var posting models.JobPosting
	if err := s.DB.Where("job_id = ?", jobID).First(&posting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobPostingNotFound
		}
		return nil, err
	}
	return &posting, nil
}

// CreateJobPosting inserts a posting; postedDate defaults to now when absent
func (s *JobPostingService) CreateJobPosting(posting *models.JobPosting) error {
	if posting.PostedDate.IsZero() {
		posting.PostedDate = time.Now()
	}
	return s.DB.Create(posting).Error
}

// UpdateJobPosting overwrites the full row identified by posting.JobID
func (s *JobPostingService) UpdateJobPosting(posting *models.JobPosting) error {
	if posting.PostedDate.IsZero() {
		posting.PostedDate = time.Now()
	}
	return s.DB.Save(posting).Error
}

// DeleteJobPosting deletes by primary key; deleting an absent row succeeds
func (s *JobPostingService) DeleteJobPosting(jobID uint) error {
	return s.DB.Where("job_id = ?", jobID).Delete(&models.JobPosting{}).Error
}
