package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mmehta29/backend/internal/dtos"
	"github.com/mmehta29/backend/internal/models"
	"gorm.io/gorm"
)

// ErrApplicationNotFound covers both missing applications and applications
// owned by another user.
var ErrApplicationNotFound = errors.New("application not found")

// Every query here is scoped by user_id as well as application_id.
type ApplicationService interface {
	CreateApplication(ctx context.Context, userID int64, req *dtos.ApplicationCreationRequest) (*models.Application, error)
	ListApplications(ctx context.Context, userID int64) ([]models.Application, error)
	UpdateStatus(ctx context.Context, userID, applicationID int64, status models.Status) (*models.Application, error)
	DeleteApplication(ctx context.Context, userID, applicationID int64) error
	ProgressAnalytics(ctx context.Context, userID int64) (*dtos.ProgressAnalytics, error)
}

type applicationService struct {
	db *gorm.DB
}

func NewApplicationService(db *gorm.DB) ApplicationService {
	return &applicationService{db: db}
}

func (s *applicationService) CreateApplication(ctx context.Context, userID int64, req *dtos.ApplicationCreationRequest) (*models.Application, error) {
	submitted, err := time.Parse(dtos.SubmissionDateLayout, req.SubmissionDate)
	if err != nil {
		return nil, fmt.Errorf("invalid submission date %q: %w", req.SubmissionDate, err)
	}

	app := &models.Application{
		UserID:         userID,
		SubmissionDate: submitted,
		Location:       req.Location,
		Position:       req.Position,
		CompanyName:    req.CompanyName,
		Status:         req.Status,
	}
	if req.Notes != "" {
		notes := req.Notes
		app.Notes = &notes
	}

	if err := s.db.WithContext(ctx).Create(app).Error; err != nil {
		return nil, fmt.Errorf("failed to create application for user %d: %w", userID, err)
	}
	return app, nil
}

func (s *applicationService) ListApplications(ctx context.Context, userID int64) ([]models.Application, error) {
	apps := make([]models.Application, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("submission_date DESC").
		Find(&apps).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list applications for user %d: %w", userID, err)
	}
	return apps, nil
}

// UpdateStatus applies a single conditional update and reports
// ErrApplicationNotFound when no owned row matched.
func (s *applicationService) UpdateStatus(ctx context.Context, userID, applicationID int64, status models.Status) (*models.Application, error) {
	result := s.db.WithContext(ctx).
		Model(&models.Application{}).
		Where("application_id = ? AND user_id = ?", applicationID, userID).
		Update("status", status)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update application %d: %w", applicationID, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrApplicationNotFound
	}

	var app models.Application
	err := s.db.WithContext(ctx).
		Where("application_id = ? AND user_id = ?", applicationID, userID).
		First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// deleted between the update and the read
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to reload application %d: %w", applicationID, err)
	}
	return &app, nil
}

func (s *applicationService) DeleteApplication(ctx context.Context, userID, applicationID int64) error {
	result := s.db.WithContext(ctx).
		Where("application_id = ? AND user_id = ?", applicationID, userID).
		Delete(&models.Application{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete application %d: %w", applicationID, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
