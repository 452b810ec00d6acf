package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/mmehta29/backend/internal/dtos"
	"github.com/mmehta29/backend/internal/middleware"
	"github.com/mmehta29/backend/internal/models"
	"github.com/mmehta29/backend/internal/services"
)

var invalidStatusMessage = "Invalid status. Must be one of: " + models.StatusList()

type ApplicationHandler struct {
	ApplicationService services.ApplicationService
}

func NewApplicationHandler(applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{ApplicationService: applicationService}
}

// CreateApplication is the POST /applications endpoint
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req dtos.ApplicationCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		switch dtos.Classify(err) {
		case dtos.ProblemInvalidStatus:
			respondMessage(c, http.StatusBadRequest, invalidStatusMessage)
		case dtos.ProblemInvalidDate:
			respondMessage(c, http.StatusBadRequest, "Invalid submission_date. Expected format YYYY-MM-DD")
		default:
			respondMessage(c, http.StatusBadRequest, "Missing required fields")
		}
		return
	}

	app, err := h.ApplicationService.CreateApplication(c.Request.Context(), userID, &req)
	if err != nil {
		respondInternalError(c, "add application", err)
		return
	}

	c.JSON(http.StatusCreated, dtos.ApplicationResponse{
		Message:     "Application added successfully",
		Application: app,
	})
}

// ListApplications is the GET /applications endpoint
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	apps, err := h.ApplicationService.ListApplications(c.Request.Context(), userID)
	if err != nil {
		respondInternalError(c, "list applications", err)
		return
	}
	if apps == nil {
		apps = []models.Application{}
	}

	c.JSON(http.StatusOK, dtos.ApplicationListResponse{
		Message:      "Applications fetched successfully",
		Applications: apps,
	})
}

// ProgressAnalytics is the GET /progress-analytics endpoint
func (h *ApplicationHandler) ProgressAnalytics(c *gin.Context) {
	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	analytics, err := h.ApplicationService.ProgressAnalytics(c.Request.Context(), userID)
	if err != nil {
		respondInternalError(c, "progress analytics", err)
		return
	}

	c.JSON(http.StatusOK, dtos.AnalyticsResponse{
		Message:   "Progress analytics fetched successfully",
		Analytics: *analytics,
	})
}

// UpdateStatus is the PATCH /applications/:id/status endpoint
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	const notFound = "Application not found or you do not have permission to edit this application"

	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondMessage(c, http.StatusBadRequest, invalidStatusMessage)
		return
	}

	// the whole segment must be a number; "12abc" does not address application 12
	applicationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondMessage(c, http.StatusNotFound, notFound)
		return
	}

	app, err := h.ApplicationService.UpdateStatus(c.Request.Context(), userID, applicationID, req.Status)
	if errors.Is(err, services.ErrApplicationNotFound) {
		respondMessage(c, http.StatusNotFound, notFound)
		return
	}
	if err != nil {
		respondInternalError(c, "update application status", err)
		return
	}

	c.JSON(http.StatusOK, dtos.ApplicationResponse{
		Message:     "Application status updated successfully",
		Application: app,
	})
}

// DeleteApplication is the DELETE /applications/:id endpoint
func (h *ApplicationHandler) DeleteApplication(c *gin.Context) {
	const notFound = "Application not found or you do not have permission to delete this application"

	userID, ok := authenticatedUser(c)
	if !ok {
		return
	}

	applicationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondMessage(c, http.StatusNotFound, notFound)
		return
	}

	err = h.ApplicationService.DeleteApplication(c.Request.Context(), userID, applicationID)
	if errors.Is(err, services.ErrApplicationNotFound) {
		respondMessage(c, http.StatusNotFound, notFound)
		return
	}
	if err != nil {
		respondInternalError(c, "delete application", err)
		return
	}

	respondMessage(c, http.StatusOK, "Application deleted successfully")
}

// authenticatedUser reads the identity set by middleware.RequireAuth. A route
// wired without the middleware is a server bug, hence 500.
func authenticatedUser(c *gin.Context) (int64, bool) {
	userID, err := middleware.UserID(c)
	if err != nil {
		respondInternalError(c, "resolve user", err)
		return 0, false
	}
	return userID, true
}
