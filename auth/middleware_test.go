package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Bvqlz/Todo/session"
)

func TestSessionAuthNoCookie(t *testing.T) {
	store := session.NewStore()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler reached without a session cookie")
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	rec := httptest.NewRecorder()
	SessionAuth(store)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
}

func TestSessionAuthUnknownSession(t *testing.T) {
	store := session.NewStore()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("next handler reached with an unknown session")
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "deadbeefdeadbeefdeadbeefdeadbeef"})
	rec := httptest.NewRecorder()
	SessionAuth(store)(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}

	// The stale cookie must be cleared so the browser stops resending it.
	cleared := false
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookieName && c.Value == "" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("stale session cookie was not cleared")
	}
}

func TestSessionAuthResolvesIdentity(t *testing.T) {
	store := session.NewStore()
	id, err := session.GenerateID()
	if err != nil {
		t.Fatalf("GenerateID: %v", err)
	}
	store.Put(id, 42)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		userID, ok := GetUserIDFromContext(r.Context())
		if !ok || userID != 42 {
			t.Errorf("user id in context = (%d, %v), want (42, true)", userID, ok)
		}
		sessionID, ok := GetSessionIDFromContext(r.Context())
		if !ok || sessionID != id {
			t.Errorf("session id in context = (%q, %v), want (%q, true)", sessionID, ok, id)
		}
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: id})
	rec := httptest.NewRecorder()
	SessionAuth(store)(next).ServeHTTP(rec, req)

	if !called {
		t.Fatal("next handler was not reached with a valid session")
	}
}

func TestGetUserIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := GetUserIDFromContext(req.Context()); ok {
		t.Error("GetUserIDFromContext reported a hit on an empty context")
	}
}
