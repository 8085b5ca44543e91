package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel_booking/internal/domain"

	"github.com/gin-gonic/gin"
)

type fakeTokens map[string]string

func (f fakeTokens) ResolveToken(token string) (string, error) {
	if u, ok := f[token]; ok {
		return u, nil
	}
	return "", errors.New("bad token")
}

type fakeAdmins map[string]*domain.AdminUser

func (f fakeAdmins) FindAdmin(_ context.Context, username string) (*domain.AdminUser, error) {
	if username == "broken" {
		return nil, domain.InternalError{Msg: "db down"}
	}
	if u, ok := f[username]; ok {
		return u, nil
	}
	return nil, domain.NotFoundError{Resource: "Admin user"}
}

func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestID())
	tokens := fakeTokens{"good": "admin", "stale": "deleted", "boom": "broken"}
	admins := fakeAdmins{"admin": {ID: 7, Username: "admin"}}
	r.GET("/admin/me", JWTAuthMiddleware(tokens), AdminOnlyMiddleware(admins), func(c *gin.Context) {
		user, ok := CurrentAdmin(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": user.ID})
	})
	return r
}

func TestAdminRoutesRequireBearerToken(t *testing.T) {
	r := buildTestRouter()

	cases := []struct {
		header string
		want   int
	}{
		{"", http.StatusUnauthorized},
		{"Basic abc", http.StatusUnauthorized},
		{"Bearer ", http.StatusUnauthorized},
		{"Bearer nope", http.StatusUnauthorized},
		{"Bearer stale", http.StatusUnauthorized},
		{"Bearer boom", http.StatusInternalServerError},
		{"Bearer good", http.StatusOK},
		{"bearer good", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/admin/me", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		if resp.Code != tc.want {
			t.Fatalf("%q: expected %d, got %d", tc.header, tc.want, resp.Code)
		}
		if tc.want == http.StatusUnauthorized && resp.Header().Get("WWW-Authenticate") != "Bearer" {
			t.Fatalf("%q: missing WWW-Authenticate header", tc.header)
		}
	}
}

func TestRequestIDIsGeneratedOrEchoed(t *testing.T) {
	r := buildTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/admin/me", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected generated request id")
	}

	req = httptest.NewRequest(http.MethodGet, "/admin/me", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if got := resp.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected echoed request id, got %q", got)
	}
}
