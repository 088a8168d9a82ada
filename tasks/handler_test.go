package tasks

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Bvqlz/Todo/auth"
	"github.com/Bvqlz/Todo/session"
)

// newTestRouter mounts the task routes behind the session middleware the same
// way main does. The service carries no live database, so only request paths
// that are rejected before reaching it may be exercised; the returned session
// identifier authenticates as user 1.
func newTestRouter(t *testing.T) (http.Handler, string) {
	t.Helper()
	store := session.NewStore()
	id, err := session.GenerateID()
	if err != nil {
		t.Fatalf("GenerateID: %v", err)
	}
	store.Put(id, 1)

	h := NewTaskHandler(NewTaskService(nil))
	r := chi.NewRouter()
	r.Route("/tasks", func(r chi.Router) {
		r.Use(auth.SessionAuth(store))
		h.RegisterRoutes(r)
	})
	return r, id
}

func doRequest(router http.Handler, method, path, body, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: sessionID})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestTaskRoutesRequireAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	cases := []struct {
		method, path string
	}{
		{http.MethodGet, "/tasks"},
		{http.MethodPost, "/tasks"},
		{http.MethodGet, "/tasks/1"},
		{http.MethodPut, "/tasks/1"},
		{http.MethodDelete, "/tasks/1"},
	}
	for _, c := range cases {
		rec := doRequest(router, c.method, c.path, "", "")
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s without session: status = %d, want 401", c.method, c.path, rec.Code)
		}
	}
}

func TestCreateTaskValidation(t *testing.T) {
	router, sid := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/tasks", `{"status":"todo"}`, sid)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("create without description: status = %d, want 400", rec.Code)
	}

	rec = doRequest(router, http.MethodPost, "/tasks", `{"description":"x","status":"done"}`, sid)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("create with invalid status: status = %d, want 400", rec.Code)
	}

	rec = doRequest(router, http.MethodPost, "/tasks", `not json`, sid)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("create with invalid json: status = %d, want 400", rec.Code)
	}
}

func TestUpdateTaskValidation(t *testing.T) {
	router, sid := newTestRouter(t)

	// A body with neither description nor status is rejected at the boundary.
	rec := doRequest(router, http.MethodPut, "/tasks/1", `{}`, sid)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("update with no fields: status = %d, want 400", rec.Code)
	}

	// Unrecognized fields alone do not count as a partial update.
	rec = doRequest(router, http.MethodPut, "/tasks/1", `{"priority":"high"}`, sid)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("update with only unknown fields: status = %d, want 400", rec.Code)
	}

	rec = doRequest(router, http.MethodPut, "/tasks/1", `{"status":"nope"}`, sid)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("update with invalid status: status = %d, want 400", rec.Code)
	}
}

func TestNonNumericTaskID(t *testing.T) {
	router, sid := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/tasks/abc", "", sid)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get with non-numeric id: status = %d, want 404", rec.Code)
	}

	rec = doRequest(router, http.MethodDelete, "/tasks/abc", "", sid)
	if rec.Code != http.StatusNotFound {
		t.Errorf("delete with non-numeric id: status = %d, want 404", rec.Code)
	}
}
