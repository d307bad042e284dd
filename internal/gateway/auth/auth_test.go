package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dwikikusuma/minicommerce/pkg/apperr"
)

func TestIssueAndVerify(t *testing.T) {
	a := New("test-secret", time.Minute)

	token, err := a.Issue("user-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	userID, err := a.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if userID != "user-1" {
		t.Fatalf("userID: %q", userID)
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	a := New("test-secret", time.Minute)

	t.Run("garbage", func(t *testing.T) {
		_, err := a.Verify("not.a.token")
		if apperr.KindOf(err) != apperr.Unauthenticated {
			t.Fatalf("kind: %s", apperr.KindOf(err))
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := New("other-secret", time.Minute).Issue("user-1")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if _, err := a.Verify(other); apperr.KindOf(err) != apperr.Unauthenticated {
			t.Fatalf("kind: %s", apperr.KindOf(err))
		}
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := New("test-secret", -time.Minute).Issue("user-1")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}
		if _, err := a.Verify(expired); apperr.KindOf(err) != apperr.Unauthenticated {
			t.Fatalf("kind: %s", apperr.KindOf(err))
		}
	})
}

func TestMiddleware(t *testing.T) {
	a := New("test-secret", time.Minute)

	var seenUser string
	handler := a.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser, _ = UserID(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token passes identity through", func(t *testing.T) {
		token, err := a.Issue("user-42")
		if err != nil {
			t.Fatalf("issue: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK || seenUser != "user-42" {
			t.Fatalf("code=%d user=%q", rec.Code, seenUser)
		}
	})

	t.Run("missing header -> 401", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cart", nil))
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("code=%d", rec.Code)
		}
	})

	t.Run("malformed header -> 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/cart", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("code=%d", rec.Code)
		}
	})
}
