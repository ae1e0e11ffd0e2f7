package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"dompet/internal/logger"
	"dompet/internal/models"
	"dompet/internal/response"
	"dompet/internal/token"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func newIssuer(t *testing.T, secret string, ttl time.Duration) *token.Issuer {
	t.Helper()
	issuer, err := token.NewIssuer(token.Config{Secret: secret, Issuer: "dompet-test", Algorithm: "HS256", TTL: ttl})
	if err != nil {
		t.Fatalf("failed to create issuer: %v", err)
	}
	return issuer
}

func protectedRouter(verifier TokenVerifier, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(response.StatusCodes(true))
	handlers := append([]gin.HandlerFunc{Auth(verifier)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		response.OK(c, gin.H{
			"user_id": c.GetString(UserIDKey),
			"email":   c.GetString(EmailKey),
		})
	})
	r.GET("/protected", handlers...)
	return r
}

func get(r *gin.Engine, authHeader string) (*httptest.ResponseRecorder, map[string]any) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var body map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestAuth(t *testing.T) {
	issuer := newIssuer(t, "test-secret-that-is-long-enough", time.Hour)
	r := protectedRouter(issuer)

	valid, err := issuer.Issue(token.UserClaims{ID: "user-1", Email: "a@example.com", Role: "USER"})
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	forged, err := newIssuer(t, "another-secret-long-enough", time.Hour).Issue(token.UserClaims{ID: "user-1"})
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{name: "valid bearer", header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "lower case scheme", header: "bearer " + valid, wantStatus: http.StatusOK},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic " + valid, wantStatus: http.StatusUnauthorized},
		{name: "no token", header: "Bearer ", wantStatus: http.StatusUnauthorized},
		{name: "forged signature", header: "Bearer " + forged, wantStatus: http.StatusUnauthorized},
		{name: "garbage", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := get(r, tt.header)
			if rec.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantStatus != http.StatusOK {
				if body["success"] != false {
					t.Errorf("expected failure envelope, got %v", body)
				}
				return
			}
			data := body["data"].(map[string]any)
			if data["user_id"] != "user-1" || data["email"] != "a@example.com" {
				t.Errorf("unexpected context values %v", data)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	issuer := newIssuer(t, "test-secret-that-is-long-enough", time.Hour)
	r := protectedRouter(issuer, RequireRole(models.RoleAdmin))

	admin, _ := issuer.Issue(token.UserClaims{ID: "admin-1", Role: "ADMIN"})
	user, _ := issuer.Issue(token.UserClaims{ID: "user-1", Role: "USER"})
	registered, _ := issuer.Issue(token.UserClaims{ID: "user-2", Name: "No Role"})

	if rec, _ := get(r, "Bearer "+admin); rec.Code != http.StatusOK {
		t.Errorf("admin: expected 200, got %d", rec.Code)
	}
	if rec, _ := get(r, "Bearer "+user); rec.Code != http.StatusForbidden {
		t.Errorf("user: expected 403, got %d", rec.Code)
	}
	if rec, _ := get(r, "Bearer "+registered); rec.Code != http.StatusForbidden {
		t.Errorf("registration token: expected 403, got %d", rec.Code)
	}
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(response.StatusCodes(false), Recovery())
	r.GET("/boom", func(*gin.Context) { panic("kaboom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse body: %v", err)
	}
	if body["success"] != false || body["message"] != "Something went wrong." {
		t.Errorf("unexpected body %v", body)
	}
}

func TestRequestLogging(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogging())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}
	})

	t.Run("keeps incoming id", func(t *testing.T) {
		const id = "0190f3a0-0000-7000-8000-000000000001"
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", id)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if got := rec.Header().Get("X-Request-ID"); got != id {
			t.Errorf("expected %s, got %s", id, got)
		}
	})
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/x", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("expected 204, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("expected CORS header")
	}
}
