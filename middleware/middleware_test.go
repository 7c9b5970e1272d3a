// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Neolvie/PollKiosk/cliparse"
	"github.com/Neolvie/PollKiosk/models"
)

func testConfig() cliparse.Config {
	return cliparse.Config{AdminUsername: "admin", AdminPassword: "secret"}
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, 201, map[string]string{"status": "created"})

	if w.Code != 201 {
		t.Errorf("Expected 201, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected application/json, got %q", ct)
	}

	var body map[string]string
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body["status"] != "created" {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestErrorResponse(t *testing.T) {
	w := httptest.NewRecorder()
	ErrorResponse(w, 404, "Survey not found")

	if w.Code != 404 {
		t.Errorf("Expected 404, got %d", w.Code)
	}

	var body models.ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if body.Error != "Not Found" {
		t.Errorf("Expected Not Found, got %q", body.Error)
	}
	if body.Message != "Survey not found" {
		t.Errorf("Expected message, got %q", body.Message)
	}
}

func TestParseJSONBody(t *testing.T) {
	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"title":"Feedback"}`))
	var body struct {
		Title string `json:"title"`
	}
	if err := ParseJSONBody(req, &body); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if body.Title != "Feedback" {
		t.Errorf("Expected Feedback, got %q", body.Title)
	}

	req = httptest.NewRequest("POST", "/", strings.NewReader(`{broken`))
	if err := ParseJSONBody(req, &body); err == nil {
		t.Error("Expected error for malformed JSON")
	}
}

func TestRequireBasicAuth(t *testing.T) {
	nextCalled := false
	handler := RequireBasicAuth(testConfig(), func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(200)
	})

	tests := []struct {
		name           string
		username       string
		password       string
		omit           bool
		expectedStatus int
		expectNext     bool
	}{
		{name: "no credentials", omit: true, expectedStatus: 401},
		{name: "wrong password", username: "admin", password: "guess", expectedStatus: 401},
		{name: "wrong username", username: "root", password: "secret", expectedStatus: 401},
		{name: "valid credentials", username: "admin", password: "secret", expectedStatus: 200, expectNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled = false
			req := httptest.NewRequest("GET", "/api/admin/surveys", nil)
			if !tt.omit {
				req.SetBasicAuth(tt.username, tt.password)
			}
			w := httptest.NewRecorder()

			handler(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("Expected %d, got %d", tt.expectedStatus, w.Code)
			}
			if nextCalled != tt.expectNext {
				t.Errorf("Expected next called %v, got %v", tt.expectNext, nextCalled)
			}
			if tt.expectedStatus == 401 && w.Header().Get("WWW-Authenticate") == "" {
				t.Error("Expected WWW-Authenticate challenge header")
			}
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("Preflight should not reach the handler")
	}))

	req := httptest.NewRequest("OPTIONS", "/api/vote", nil)
	req.Header.Set("Origin", "http://kiosk.local")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != 200 {
		t.Errorf("Expected 200 for preflight, got %d", w.Code)
	}
	if origin := w.Header().Get("Access-Control-Allow-Origin"); origin != "http://kiosk.local" {
		t.Errorf("Expected echoed origin, got %q", origin)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "X-Session-Token") {
		t.Error("Expected X-Session-Token in allowed headers")
	}
}

func TestCORSPassThrough(t *testing.T) {
	handler := CORS(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(204)
	}))

	req := httptest.NewRequest("GET", "/api/current-survey", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != 204 {
		t.Errorf("Expected handler status 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Error("Expected CORS headers on normal requests")
	}
}

func TestWithLogging(t *testing.T) {
	handler := WithLogging(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(418)
	})

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler(w, req)

	if w.Code != 418 {
		t.Errorf("Expected wrapped handler status, got %d", w.Code)
	}
}

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name:     "x-forwarded-for single",
			headers:  map[string]string{"X-Forwarded-For": "1.2.3.4"},
			expected: "1.2.3.4",
		},
		{
			name:     "x-forwarded-for chain",
			headers:  map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"},
			expected: "1.2.3.4",
		},
		{
			name:     "x-real-ip",
			headers:  map[string]string{"X-Real-IP": "9.8.7.6"},
			expected: "9.8.7.6",
		},
		{
			name:       "remote addr with port",
			remoteAddr: "10.0.0.1:54321",
			expected:   "10.0.0.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/", nil)
			if tt.remoteAddr != "" {
				req.RemoteAddr = tt.remoteAddr
			}
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			if got := GetClientIP(req); got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}
