package services

import (
	"errors"
	"jobboard-http-service/config"
	"jobboard-http-service/models"

	"gorm.io/gorm"
)

// ErrAdminUserNotFound is returned when an admin user id does not exist
var ErrAdminUserNotFound = errors.New("admin user not found")

// InterfaceAdminUserService defines the admin user service interface
type InterfaceAdminUserService interface {
	GetAllAdminUsers() ([]models.AdminUser, error)
	GetAdminUserByID(userID string) (*models.AdminUser, error)
	CreateAdminUser(user *models.AdminUser) error
	UpdateAdminUser(user *models.AdminUser) error
	DeleteAdminUser(userID string) error
}

// AdminUserService provides back-office user management
type AdminUserService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewAdminUserService creates a new admin user service
func NewAdminUserService(db *gorm.DB, cfg *config.Config) InterfaceAdminUserService {
	return &AdminUserService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllAdminUsers returns every admin user
func (s *AdminUserService) GetAllAdminUsers() ([]models.AdminUser, error) {
	var users []models.AdminUser
	if err := s.DB.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetAdminUserByID returns one admin user by primary key
func (s *AdminUserService) GetAdminUserByID(userID string) (*models.AdminUser, error) {
	var user models.AdminUser
	if err := s.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAdminUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateAdminUser inserts a new admin user; the caller supplies the user id
func (s *AdminUserService) CreateAdminUser(user *models.AdminUser) error {
	return s.DB.Create(user).Error
}

// UpdateAdminUser overwrites the full row identified by user.UserID
func (s *AdminUserService) UpdateAdminUser(user *models.AdminUser) error {
	return s.DB.Save(user).Error
}

// DeleteAdminUser deletes by primary key; deleting an absent row succeeds
func (s *AdminUserService) DeleteAdminUser(userID string) error {
	return s.DB.Where("user_id = ?", userID).Delete(&models.AdminUser{}).Error
}
