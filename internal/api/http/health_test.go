package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	handler := NewHealthHandler("test-service", "1.0.0", Integrations{Chat: true})
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	handler.now = func() time.Time { return fixed }
	handler.RegisterRoutes(router)

	for _, path := range []string{"/health", "/healthz"} {
		req, err := http.NewRequest("GET", path, nil)
		if err != nil {
			t.Fatal(err)
		}

		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if status := rr.Code; status != http.StatusOK {
			t.Errorf("%s returned wrong status code: got %v want %v", path, status, http.StatusOK)
		}

		var response HealthResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &response); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}

		if response.Status != "healthy" {
			t.Errorf("expected status 'healthy', got %s", response.Status)
		}
		if response.Service != "test-service" {
			t.Errorf("expected service 'test-service', got %s", response.Service)
		}
		if response.Version != "1.0.0" {
			t.Errorf("expected version '1.0.0', got %s", response.Version)
		}
		if response.Chat != "configured" || response.Mail != "not_configured" {
			t.Errorf("unexpected integrations chat=%s mail=%s", response.Chat, response.Mail)
		}
		if !response.Timestamp.Equal(fixed) {
			t.Errorf("expected timestamp %v, got %v", fixed, response.Timestamp)
		}
	}
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	NewHealthHandler("test-service", "1.0.0", Integrations{}).RegisterRoutes(router)

	req := httptest.NewRequest("POST", "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", rr.Code)
	}
}
