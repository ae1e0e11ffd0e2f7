package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "dompet/internal/errors"
	"dompet/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
}

func serve(t *testing.T, statusCodes bool, h gin.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	r := gin.New()
	r.GET("/", StatusCodes(statusCodes), h)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse JSON response: %v\nbody: %s", err, rec.Body.String())
	}
	return rec, body
}

func TestOK(t *testing.T) {
	rec, body := serve(t, false, func(c *gin.Context) { OK(c, gin.H{"name": "Food"}) })

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
	if body["success"] != true {
		t.Errorf("expected success true, got %v", body["success"])
	}
	data, ok := body["data"].(map[string]any)
	if !ok || data["name"] != "Food" {
		t.Errorf("unexpected data %v", body["data"])
	}
}

func TestOKNilData(t *testing.T) {
	_, body := serve(t, false, func(c *gin.Context) { OK(c, nil) })

	data, present := body["data"]
	if !present || data != nil {
		t.Errorf("expected explicit null data, got %v (present=%v)", data, present)
	}
}

func TestToken(t *testing.T) {
	t.Run("with data", func(t *testing.T) {
		_, body := serve(t, false, func(c *gin.Context) { Token(c, "abc", gin.H{"id": "1"}) })

		if body["type"] != "Bearer" || body["token"] != "abc" {
			t.Errorf("unexpected token fields %v", body)
		}
		if _, ok := body["data"]; !ok {
			t.Error("expected data field")
		}
	})

	t.Run("token only", func(t *testing.T) {
		_, body := serve(t, false, func(c *gin.Context) { Token(c, "abc", nil) })

		if _, ok := body["data"]; ok {
			t.Errorf("expected no data field, got %v", body["data"])
		}
	})
}

func TestError(t *testing.T) {
	tests := []struct {
		name        string
		statusCodes bool
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "app error in envelope mode",
			err:         apperrors.ErrDuplicateEmail,
			wantStatus:  http.StatusOK,
			wantMessage: "Email is already registered.",
		},
		{
			name:        "app error in status code mode",
			statusCodes: true,
			err:         apperrors.ErrDuplicateEmail,
			wantStatus:  http.StatusConflict,
			wantMessage: "Email is already registered.",
		},
		{
			name:        "wrapped cause hidden",
			statusCodes: true,
			err:         apperrors.Wrap(apperrors.ErrInternalServer, errors.New("pq: relation does not exist")),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Something went wrong.",
		},
		{
			name:        "plain error becomes internal",
			err:         errors.New("boom"),
			wantStatus:  http.StatusOK,
			wantMessage: "Something went wrong.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := serve(t, tt.statusCodes, func(c *gin.Context) { Error(c, tt.err) })

			if rec.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, rec.Code)
			}
			if body["success"] != false {
				t.Errorf("expected success false, got %v", body["success"])
			}
			if body["message"] != tt.wantMessage {
				t.Errorf("expected message %q, got %v", tt.wantMessage, body["message"])
			}
		})
	}
}

func TestErrorDetails(t *testing.T) {
	details := []map[string]string{{"field": "email", "validation": "required", "message": "email is required"}}
	_, body := serve(t, false, func(c *gin.Context) {
		Error(c, apperrors.WithDetails(apperrors.ErrValidation, details))
	})

	list, ok := body["message"].([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("expected a list of field errors, got %v", body["message"])
	}
	first := list[0].(map[string]any)
	if first["field"] != "email" {
		t.Errorf("expected field email, got %v", first["field"])
	}
}
