package services

import (
	"errors"
	"jobboard-http-service/config"
	"jobboard-http-service/models"

	"gorm.io/gorm"
)

// ErrContentNotFound is returned when a content id does not exist
var ErrContentNotFound = errors.New("content not found")

// InterfaceContentService defines the content service interface
type InterfaceContentService interface {
	GetAllContents() ([]models.Content, error)
	GetContentByID(id uint) (*models.Content, error)
	CreateContent(content *models.Content) error
	UpdateContent(content *models.Content) error
	DeleteContent(id uint) error
}

// ContentService manages editable site content blocks
type ContentService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewContentService creates a new content service
func NewContentService(db *gorm.DB, cfg *config.Config) InterfaceContentService {
	return &ContentService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllContents returns every content block
func (s *ContentService) GetAllContents() ([]models.Content, error) {
	var contents []models.Content
	if err := s.DB.Find(&contents).Error; err != nil {
		return nil, err
	}
	return contents, nil
}

// GetContentByID returns one content block by primary key
func (s *ContentService) GetContentByID(id uint) (*models.Content, error) {
	var content models.Content
	if err := s.DB.First(&content, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContentNotFound
		}
		return nil, err
	}
	return &content, nil
}

// CreateContent inserts a content block
func (s *ContentService) CreateContent(content *models.Content) error {
	return s.DB.Create(content).Error
}

// UpdateContent overwrites the full row identified by content.ID
func (s *ContentService) UpdateContent(content *models.Content) error {
	return s.DB.Save(content).Error
}

// DeleteContent deletes by primary key; deleting an absent row succeeds
func (s *ContentService) DeleteContent(id uint) error {
	return s.DB.Delete(&models.Content{}, id).Error
}
