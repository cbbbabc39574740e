package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"autohub/config"
	"autohub/database"
	"autohub/handlers"

	"github.com/gin-gonic/gin"
)

func newRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store := database.NewMemoryStore()
	if _, err := database.Seed(context.Background(), store); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	cfg := config.Config{Env: "test", SessionTTL: time.Hour, RescheduleOffset: 48 * time.Hour}
	r := gin.New()
	RegisterRoutes(r, handlers.NewHandlerBundle(store, cfg))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine, email, password string) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": password})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: status %d body %s", email, w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return resp.Token
}

func TestAuthFlow(t *testing.T) {
	r := newRouter(t)

	tests := []struct {
		name   string
		body   map[string]string
		status int
	}{
		{"wrong password", map[string]string{"email": "riya@example.com", "password": "nope"}, http.StatusUnauthorized},
		{"missing password", map[string]string{"email": "riya@example.com"}, http.StatusBadRequest},
		{"valid", map[string]string{"email": "riya@example.com", "password": "password123"}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/api/auth/login", "", tt.body)
			if w.Code != tt.status {
				t.Fatalf("status %d, want %d: %s", w.Code, tt.status, w.Body.String())
			}
		})
	}

	token := login(t, r, "riya@example.com", "password123")
	w := do(t, r, http.MethodGet, "/api/auth/me", token, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"id":"u1"`) || strings.Contains(w.Body.String(), "passwordHash") {
		t.Fatalf("me: %d %s", w.Code, w.Body.String())
	}

	if w := do(t, r, http.MethodPost, "/api/auth/logout", token, nil); w.Code != http.StatusNoContent {
		t.Fatalf("logout: %d", w.Code)
	}
	w = do(t, r, http.MethodGet, "/api/auth/me", token, nil)
	if !strings.Contains(w.Body.String(), `"authenticated":false`) {
		t.Fatalf("session survived logout: %s", w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{"name": "M", "email": "m@example.com", "password": "secret1", "role": "admin"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("admin self-registration: %d %s", w.Code, w.Body.String())
	}

	dup := do(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{"name": "R", "email": "RIYA@example.com", "password": "secret1"})
	if dup.Code != http.StatusConflict {
		t.Fatalf("duplicate register: %d %s", dup.Code, dup.Body.String())
	}
}

func TestBookingEndpoints(t *testing.T) {
	r := newRouter(t)
	token := login(t, r, "riya@example.com", "password123")

	w := do(t, r, http.MethodPost, "/api/bookings", token, map[string]any{
		"provider": map[string]string{"id": "p1"},
		"date":     "2025-03-12",
		"services": []map[string]any{{"name": "Oil Change", "price": 500}},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create: %d %s", w.Code, w.Body.String())
	}
	var created struct {
		ID     string  `json:"id"`
		Total  float64 `json:"total"`
		Status string  `json:"status"`
		UserID string  `json:"userId"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &created)
	if created.Total != 500 || created.Status != "upcoming" || created.UserID != "u1" {
		t.Fatalf("unexpected booking: %+v", created)
	}

	w = do(t, r, http.MethodGet, "/api/bookings?status=upcoming", token, nil)
	var list []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &list)
	if len(list) != 2 {
		t.Fatalf("list: got %d bookings, want 2", len(list))
	}

	admin := login(t, r, "admin@aah.example", "adminpass")
	other := do(t, r, http.MethodPost, "/api/auth/register", "", map[string]string{"name": "Kiran", "email": "kiran@example.com", "password": "secret1"})
	var reg struct {
		Token string `json:"token"`
	}
	_ = json.Unmarshal(other.Body.Bytes(), &reg)

	steps := []struct {
		name   string
		path   string
		token  string
		status int
	}{
		{"someone else cannot cancel", "/api/bookings/" + created.ID + "/cancel", reg.Token, http.StatusForbidden},
		{"guest cannot cancel an owned booking", "/api/bookings/" + created.ID + "/cancel", "", http.StatusForbidden},
		{"guest cannot reschedule an owned booking", "/api/bookings/" + created.ID + "/reschedule", "", http.StatusForbidden},
		{"guest may cancel an anonymous booking", "/api/bookings/BKG-demo-1/cancel", "", http.StatusOK},
		{"owner reschedules", "/api/bookings/" + created.ID + "/reschedule", token, http.StatusOK},
		{"owner cancels", "/api/bookings/" + created.ID + "/cancel", token, http.StatusOK},
		{"cancel twice", "/api/bookings/" + created.ID + "/cancel", admin, http.StatusConflict},
		{"missing booking", "/api/bookings/nope/cancel", token, http.StatusNotFound},
	}
	for _, s := range steps {
		t.Run(s.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, s.path, s.token, nil)
			if w.Code != s.status {
				t.Fatalf("status %d, want %d: %s", w.Code, s.status, w.Body.String())
			}
		})
	}
}

func TestPaymentEndpoints(t *testing.T) {
	r := newRouter(t)

	if w := do(t, r, http.MethodGet, "/api/payments", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous payments: %d", w.Code)
	}

	token := login(t, r, "riya@example.com", "password123")
	w := do(t, r, http.MethodPost, "/api/payments", token, map[string]any{"providerId": "p1", "amount": 1500, "taxRate": 18, "method": "upi"})
	if w.Code != http.StatusCreated || !strings.Contains(w.Body.String(), `"total":1770`) {
		t.Fatalf("upi checkout: %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/api/payments", token, map[string]any{"providerId": "p1", "amount": 1500, "taxRate": 18, "method": "razorpay"})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("razorpay without key: %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/api/payments", token, nil)
	var payments []struct {
		ID    string  `json:"id"`
		Total float64 `json:"total"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &payments)
	if len(payments) != 2 {
		t.Fatalf("got %d payments, want 2", len(payments))
	}

	w = do(t, r, http.MethodGet, "/api/payments/"+payments[1].ID+"/invoice", token, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "₹1,770.00") {
		t.Fatalf("invoice: %d %s", w.Code, w.Body.String())
	}
}

func TestAdminEndpoints(t *testing.T) {
	r := newRouter(t)
	customer := login(t, r, "riya@example.com", "password123")
	admin := login(t, r, "admin@aah.example", "adminpass")

	if w := do(t, r, http.MethodGet, "/api/admin/stats", customer, nil); w.Code != http.StatusForbidden {
		t.Fatalf("customer on admin route: %d", w.Code)
	}
	if w := do(t, r, http.MethodGet, "/api/admin/stats", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous on admin route: %d", w.Code)
	}

	w := do(t, r, http.MethodGet, "/api/admin/stats", admin, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"totalRevenue":1770`) {
		t.Fatalf("stats: %d %s", w.Code, w.Body.String())
	}

	w = do(t, r, http.MethodGet, "/api/admin/reviews/pending", admin, nil)
	var pending []struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &pending)
	if len(pending) != 1 {
		t.Fatalf("pending reviews: %s", w.Body.String())
	}

	if w := do(t, r, http.MethodGet, "/api/providers/p3/reviews", "", nil); strings.Contains(w.Body.String(), pending[0].ID) {
		t.Fatalf("pending review is public before approval")
	}
	w = do(t, r, http.MethodPost, "/api/admin/reviews/"+pending[0].ID+"/moderate", admin, map[string]string{"status": "approved"})
	if w.Code != http.StatusOK {
		t.Fatalf("moderate: %d %s", w.Code, w.Body.String())
	}
	if w := do(t, r, http.MethodGet, "/api/providers/p3/reviews", "", nil); !strings.Contains(w.Body.String(), pending[0].ID) {
		t.Fatalf("approved review not public: %s", w.Body.String())
	}

	w = do(t, r, http.MethodPost, "/api/admin/providers/p2/approval", admin, map[string]bool{"approved": true})
	if w.Code != http.StatusOK {
		t.Fatalf("approval: %d %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodGet, "/api/providers", "", nil)
	var providers []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &providers)
	if len(providers) != 3 {
		t.Fatalf("approved providers: got %d, want 3", len(providers))
	}

	w = do(t, r, http.MethodPost, "/api/admin/users/u1/toggle", admin, nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"active":false`) {
		t.Fatalf("toggle: %d %s", w.Code, w.Body.String())
	}
	if w := do(t, r, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "riya@example.com", "password": "password123"}); w.Code != http.StatusForbidden {
		t.Fatalf("inactive login: %d", w.Code)
	}
}

func TestNotificationAndVehicleEndpoints(t *testing.T) {
	r := newRouter(t)
	token := login(t, r, "riya@example.com", "password123")

	w := do(t, r, http.MethodPost, "/api/notifications/prefs", "", map[string]string{"channel": "sms"})
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"sms":true`) {
		t.Fatalf("toggle pref: %d %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodPost, "/api/notifications/read-all", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"updated":1`) {
		t.Fatalf("read-all: %d %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodPost, "/api/notifications/test", token, map[string]string{"channel": "email", "to": "riya@example.com"})
	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("email test without smtp: %d %s", w.Code, w.Body.String())
	}

	if w := do(t, r, http.MethodGet, "/api/vehicles", "", nil); w.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous vehicles: %d", w.Code)
	}
	w = do(t, r, http.MethodPost, "/api/vehicles", token, map[string]any{"make": "Tata", "model": "Nexon", "year": 2022, "registrationNumber": "GJ-18-CD-2222"})
	if w.Code != http.StatusCreated {
		t.Fatalf("add vehicle: %d %s", w.Code, w.Body.String())
	}
	w = do(t, r, http.MethodGet, "/api/vehicles", token, nil)
	var vehicles []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &vehicles)
	if len(vehicles) != 2 {
		t.Fatalf("got %d vehicles, want 2: %s", len(vehicles), w.Body.String())
	}
}

func TestHealthRoute(t *testing.T) {
	r := newRouter(t)
	w := do(t, r, http.MethodGet, "/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health: %d %s", w.Code, w.Body.String())
	}
}
