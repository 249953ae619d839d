package services

import (
	"errors"
	"jobboard-http-service/config"
	"jobboard-http-service/models"

	"gorm.io/gorm"
)

// ErrShortlistCandidateNotFound is returned when a shortlist id does not exist
var ErrShortlistCandidateNotFound = errors.New("shortlist candidate not found")

// InterfaceShortlistService defines the shortlist service interface
type InterfaceShortlistService interface {
	GetAllShortlistCandidates() ([]models.ShortlistCandidate, error)
	GetShortlistCandidateByID(id uint) (*models.ShortlistCandidate, error)
	CreateShortlistCandidate(candidate *models.ShortlistCandidate) error
	UpdateShortlistCandidate(candidate *models.ShortlistCandidate) error
	DeleteShortlistCandidate(id uint) error
}

// ShortlistService manages shortlisted candidates
type ShortlistService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewShortlistService creates a new shortlist service
func NewShortlistService(db *gorm.DB, cfg *config.Config) InterfaceShortlistService {
	return &ShortlistService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllShortlistCandidates returns every shortlisted candidate
func (s *ShortlistService) GetAllShortlistCandidates() ([]models.ShortlistCandidate, error) {
	var candidates []models.ShortlistCandidate
	if err := s.DB.Find(&candidates).Error; err != nil {
		return nil, err
	}
	return candidates, nil
}

// GetShortlistCandidateByID returns one row by primary key
func (s *ShortlistService) GetShortlistCandidateByID(id uint) (*models.ShortlistCandidate, error) {
	var candidate models.ShortlistCandidate
	if err := s.DB.First(&candidate, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShortlistCandidateNotFound
		}
		return nil, err
	}
	return &candidate, nil
}

// CreateShortlistCandidate inserts a shortlist row
func (s *ShortlistService) CreateShortlistCandidate(candidate *models.ShortlistCandidate) error {
	return s.DB.Create(candidate).Error
}

// UpdateShortlistCandidate overwrites the full row identified by candidate.ID
func (s *ShortlistService) UpdateShortlistCandidate(candidate *models.ShortlistCandidate) error {
	return s.DB.Save(candidate).Error
}

// DeleteShortlistCandidate deletes by primary key; deleting an absent row
// succeeds
func (s *ShortlistService) DeleteShortlistCandidate(id uint) error {
	return s.DB.Delete(&models.ShortlistCandidate{}, id).Error
}
