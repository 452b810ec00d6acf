package dtos

import "github.com/mmehta29/backend/internal/models"

// SubmissionDateLayout is the accepted format of submission_date.
const SubmissionDateLayout = "2006-01-02"

type ApplicationCreationRequest struct {
	SubmissionDate string        `json:"submission_date" binding:"required,datetime=2006-01-02"`
	Location       string        `json:"location" binding:"required"`
	Position       string        `json:"position" binding:"required"`
	CompanyName    string        `json:"company_name" binding:"required"`
	Status         models.Status `json:"status" binding:"required,application_status"`

	// Optional Fields
	Notes string `json:"notes"`
}

// StatusUpdateRequest carries no "required" tag: a missing status is reported
// the same way as an unknown one.
type StatusUpdateRequest struct {
	Status models.Status `json:"status" binding:"application_status"`
}

type ApplicationResponse struct {
	Message     string              `json:"message"`
	Application *models.Application `json:"application"`
}

type ApplicationListResponse struct {
	Message      string               `json:"message"`
	Applications []models.Application `json:"applications"`
}

type ProgressAnalytics struct {
	TotalSubmissions   int64  `json:"total_submissions"`
	InterviewsReceived int64  `json:"interviews_received"`
	SuccessRate        string `json:"success_rate"`
}

type AnalyticsResponse struct {
	Message   string            `json:"message"`
	Analytics ProgressAnalytics `json:"analytics"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
