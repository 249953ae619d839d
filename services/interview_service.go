package services

import (
	"errors"
	"jobboard-http-service/config"
	"jobboard-http-service/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrInterviewNotFound is returned when an interview id does not exist
var ErrInterviewNotFound = errors.New("interview not found")

// InterfaceInterviewService defines the interview service interface
type InterfaceInterviewService interface {
	GetAllInterviews() ([]models.Interview, error)
	GetInterviewByID(id uint) (*models.Interview, error)
	CreateInterview(interview *models.Interview) error
	UpdateInterview(interview *models.Interview) error
	DeleteInterview(id uint) error
}

// InterviewService schedules interviews. Creating an interview also
// shortlists the candidate for the job; the two writes are independent
// statements and a missing shortlist row is tolerated.
type InterviewService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewInterviewService creates a new interview service
func NewInterviewService(db *gorm.DB, cfg *config.Config) InterfaceInterviewService {
	return &InterviewService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllInterviews returns every interview
func (s *InterviewService) GetAllInterviews() ([]models.Interview, error) {
	var interviews []models.Interview
	if err := s.DB.Find(&interviews).Error; err != nil {
		return nil, err
	}
	return interviews, nil
}

// GetInterviewByID returns one interview by primary key
func (s *InterviewService) GetInterviewByID(id uint) (*models.Interview, error) {
	var interview models.Interview
	if err := s.DB.First(&interview, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInterviewNotFound
		}
		return nil, err
	}
	return &interview, nil
}

// CreateInterview inserts the interview and then upserts the matching
// shortlist row with status "Shortlisted". The shortlist insert ignores
// an existing (candidate, job) pair; any other shortlist failure is
// logged and does not fail the interview creation.
func (s *InterviewService) CreateInterview(interview *models.Interview) error {
	if err := s.DB.Create(interview).Error; err != nil {
		return err
	}

	shortlist := models.ShortlistCandidate{
		CandidateID:    interview.CandidateID,
		CandidateName:  interview.CandidateName,
		CandidateEmail: interview.CandidateEmail,
		CandidateImage: interview.CandidateImage,
		JobID:          interview.JobID,
		JobTitle:       interview.JobTitle,
		Status:         "Shortlisted",
	}

	if err := s.DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&shortlist).Error; err != nil {
		config.Error("shortlist insert for interview %d failed: %v", interview.ID, err)
	}

	return nil
}

// UpdateInterview overwrites the full row identified by interview.ID.
// The shortlist row is not touched.
func (s *InterviewService) UpdateInterview(interview *models.Interview) error {
	return s.DB.Save(interview).Error
}

// DeleteInterview deletes by primary key; the shortlist row is kept
func (s *InterviewService) DeleteInterview(id uint) error {
	return s.DB.Delete(&models.Interview{}, id).Error
}
