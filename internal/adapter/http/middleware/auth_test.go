package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func buildRouter() *gin.Engine {
	r := gin.New()
	r.Use(ContractorAuth())
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, ContractorID(c))
	})
	return r
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestContractorAuth_HeaderFallback(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "")

	t.Run("accepts X-Contractor-Id header", func(t *testing.T) {
		r := buildRouter()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-Contractor-Id", "c-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "c-1" {
			t.Fatalf("expected contractor c-1, got %q", w.Body.String())
		}
	})

	t.Run("rejects missing header", func(t *testing.T) {
		r := buildRouter()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestContractorAuth_JWT(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const secret = "test-secret"
	t.Setenv("JWT_SECRET", secret)

	t.Run("accepts valid token", func(t *testing.T) {
		r := buildRouter()
		token := signToken(t, secret, jwt.MapClaims{
			"contractor_id": "c-42",
			"exp":           time.Now().Add(time.Hour).Unix(),
		})

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "c-42" {
			t.Fatalf("expected contractor c-42, got %q", w.Body.String())
		}
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		r := buildRouter()
		token := signToken(t, "wrong-secret", jwt.MapClaims{"contractor_id": "c-42"})

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rejects token without contractor claim", func(t *testing.T) {
		r := buildRouter()
		token := signToken(t, secret, jwt.MapClaims{"sub": "someone"})

		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("ignores X-Contractor-Id when a secret is configured", func(t *testing.T) {
		r := buildRouter()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("X-Contractor-Id", "c-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}
