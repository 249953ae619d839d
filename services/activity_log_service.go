package services

import (
	"jobboard-http-service/config"
	"jobboard-http-service/models"

	"gorm.io/gorm"
)

// InterfaceActivityLogService defines the activity log service interface
type InterfaceActivityLogService interface {
	CreateActivityLog(log *models.ActivityLog) error
	GetActivityLogs(page, pageSize int) ([]models.ActivityLog, int64, error)
	GetActivityLogsByAdminUser(adminUserID string) ([]models.ActivityLog, error)
}

// ActivityLogService provides the append-only admin activity log
type ActivityLogService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewActivityLogService creates a new activity log service
func NewActivityLogService(db *gorm.DB, cfg *config.Config) InterfaceActivityLogService {
	return &ActivityLogService{
		DB:     db,
		Config: cfg,
	}
}

// CreateActivityLog appends one log entry
func (s *ActivityLogService) CreateActivityLog(log *models.ActivityLog) error {
	return s.DB.Create(log).Error
}

// GetActivityLogs returns log entries newest first, with pagination
func (s *ActivityLogService) GetActivityLogs(page, pageSize int) ([]models.ActivityLog, int64, error) {
	var logs []models.ActivityLog
	var total int64

	if err := s.DB.Model(&models.ActivityLog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	if err := s.DB.Order("created_at DESC").
		Limit(pageSize).Offset(offset).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// GetActivityLogsByAdminUser returns one admin's entries newest first
func (s *ActivityLogService) GetActivityLogsByAdminUser(adminUserID string) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	if err := s.DB.Where("admin_user_id = ?", adminUserID).
		Order("created_at DESC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
