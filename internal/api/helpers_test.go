package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"hotel_booking/internal/db"
	"hotel_booking/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	auth   *service.AuthService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gdb, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	auth := service.NewAuthService(gdb, testSecret, time.Hour)
	r := NewRouter(Deps{
		Rooms:    service.NewRoomService(gdb),
		Bookings: service.NewBookingService(gdb),
		Auth:     auth,
		Now:      func() time.Time { return time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC) },
	})
	return &testServer{router: r, db: gdb, auth: auth}
}

func (s *testServer) do(t *testing.T, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(t *testing.T, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"username": {username}, "password": {password}}
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// adminToken creates an admin account and returns a token for it
func (s *testServer) adminToken(t *testing.T) string {
	t.Helper()
	if _, err := s.auth.CreateAdmin(context.Background(), "admin", "s3cret-pass"); err != nil {
		t.Fatalf("create admin: %v", err)
	}
	w := s.login(t, "admin", "s3cret-pass")
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	var tok TokenResponse
	decode(t, w, &tok)
	return tok.AccessToken
}

// createRoom adds a room through the admin API and returns its id
func (s *testServer) createRoom(t *testing.T, token string, body RoomRequest) uint {
	t.Helper()
	w := s.do(t, http.MethodPost, "/rooms", body, token)
	if w.Code != http.StatusCreated {
		t.Fatalf("create room: %d %s", w.Code, w.Body.String())
	}
	var room RoomResponse
	decode(t, w, &room)
	return room.ID
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decode(t, w, &body)
	return body.Error
}

func strPtr(s string) *string { return &s }

func booking(roomID uint, in, out string, adults, children int) map[string]any {
	return map[string]any{
		"room_id":        roomID,
		"check_in_date":  in,
		"check_out_date": out,
		"guest_name":     "Guest",
		"num_adults":     adults,
		"num_children":   children,
	}
}
