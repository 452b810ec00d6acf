package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mmehta29/backend/internal/dtos"
	"github.com/mmehta29/backend/internal/models"
	"github.com/mmehta29/backend/internal/services"
)

// =============================================================================
// Mock Implementations
// =============================================================================

type mockAuthService struct {
	signupFunc func(ctx context.Context, req *dtos.SignupRequest) (*services.AuthResult, error)
	loginFunc  func(ctx context.Context, email, password string) (*services.AuthResult, error)
}

func (m *mockAuthService) Signup(ctx context.Context, req *dtos.SignupRequest) (*services.AuthResult, error) {
	if m.signupFunc != nil {
		return m.signupFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*services.AuthResult, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, email, password)
	}
	return nil, errors.New("not implemented")
}

type mockApplicationService struct {
	createFunc    func(ctx context.Context, userID int64, req *dtos.ApplicationCreationRequest) (*models.Application, error)
	listFunc      func(ctx context.Context, userID int64) ([]models.Application, error)
	updateFunc    func(ctx context.Context, userID, applicationID int64, status models.Status) (*models.Application, error)
	deleteFunc    func(ctx context.Context, userID, applicationID int64) error
	analyticsFunc func(ctx context.Context, userID int64) (*dtos.ProgressAnalytics, error)
}

func (m *mockApplicationService) CreateApplication(ctx context.Context, userID int64, req *dtos.ApplicationCreationRequest) (*models.Application, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, userID, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockApplicationService) ListApplications(ctx context.Context, userID int64) ([]models.Application, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

func (m *mockApplicationService) UpdateStatus(ctx context.Context, userID, applicationID int64, status models.Status) (*models.Application, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, userID, applicationID, status)
	}
	return nil, errors.New("not implemented")
}

func (m *mockApplicationService) DeleteApplication(ctx context.Context, userID, applicationID int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, userID, applicationID)
	}
	return errors.New("not implemented")
}

func (m *mockApplicationService) ProgressAnalytics(ctx context.Context, userID int64) (*dtos.ProgressAnalytics, error) {
	if m.analyticsFunc != nil {
		return m.analyticsFunc(ctx, userID)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Test Helpers
// =============================================================================

func createTestContext(method, path string, body interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyBytes []byte
	switch b := body.(type) {
	case nil:
	case string:
		bodyBytes = []byte(b)
	default:
		bodyBytes, _ = json.Marshal(b)
	}

	c.Request = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

// authenticate mimics middleware.RequireAuth for handler-level tests.
func authenticate(c *gin.Context, userID int64) {
	c.Set("user_id", userID)
	c.Set("email", "user@example.com")
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return body
}

func assertMessage(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantMessage string) {
	t.Helper()
	if w.Code != wantStatus {
		t.Errorf("status = %d, want %d (body %s)", w.Code, wantStatus, w.Body.String())
	}
	if got := decodeBody(t, w)["message"]; got != wantMessage {
		t.Errorf("message = %v, want %q", got, wantMessage)
	}
}
