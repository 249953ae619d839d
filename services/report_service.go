package services

import (
	"errors"
	"jobboard-http-service/config"
	"jobboard-http-service/models"
	"strings"

	"gorm.io/gorm"
)

// ErrReportNotFound is returned when a report id does not exist
var ErrReportNotFound = errors.New("report not found")

// InterfaceReportService defines the admin report service interface
type InterfaceReportService interface {
	GetAllReports() ([]models.AdminReport, error)
	GetReportByID(id uint) (*models.AdminReport, error)
	CreateReport(report *models.AdminReport) error
	UpdateReport(report *models.AdminReport) error
	DeleteReport(id uint) error
}

// ReportService manages admin report rows. Skills travel as a JSON string
// array and are stored as CSV text; values must not contain commas for the
// round trip to be exact.
type ReportService struct {
	DB     *gorm.DB
	Config *config.Config
}

// NewReportService creates a new report service
func NewReportService(db *gorm.DB, cfg *config.Config) InterfaceReportService {
	return &ReportService{
		DB:     db,
		Config: cfg,
	}
}

// GetAllReports returns every report with skills decoded
func (s *ReportService) GetAllReports() ([]models.AdminReport, error) {
	var reports []models.AdminReport
	if err := s.DB.Find(&reports).Error; err != nil {
		return nil, err
	}
	for i := range reports {
		reports[i].SkillList = splitSkills(reports[i].Skills)
	}
	return reports, nil
}

// GetReportByID returns one report by primary key with skills decoded
func (s *ReportService) GetReportByID(id uint) (*models.AdminReport, error) {
	var report models.AdminReport
	if err := s.DB.First(&report, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	report.SkillList = splitSkills(report.Skills)
	return &report, nil
}

// CreateReport inserts a report, encoding the skill list as CSV
func (s *ReportService) CreateReport(report *models.AdminReport) error {
	report.Skills = joinSkills(report.SkillList)
	return s.DB.Create(report).Error
}

// UpdateReport overwrites the full row identified by report.ID
func (s *ReportService) UpdateReport(report *models.AdminReport) error {
	report.Skills = joinSkills(report.SkillList)
	return s.DB.Save(report).Error
}

// DeleteReport deletes by primary key; deleting an absent row succeeds
func (s *ReportService) DeleteReport(id uint) error {
	return s.DB.Delete(&models.AdminReport{}, id).Error
}

func joinSkills(skills []string) string {
	return strings.Join(skills, ",")
}

func splitSkills(csv string) []string {
	if csv == "" {
		return []string{}
	}
	return strings.Split(csv, ",")
}
