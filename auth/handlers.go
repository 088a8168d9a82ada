// This file handles HTTP requests for the auth endpoints and owns the
// response helpers (writeJSON / WriteError) and session cookie helpers that
// the rest of the application reuses.
package auth

import (
	"encoding/json"
	"net/http"

	"github.com/Bvqlz/Todo/apperror"
)

// SessionCookieName is the cookie under which the opaque session identifier
// travels between browser and server.
const SessionCookieName = "sessionID"

// sessionCookieMaxAge bounds the cookie lifetime client-side. The server-side
// store has no expiry; the session dies at logout, re-login, or restart.
const sessionCookieMaxAge = 3600

// Handlers wraps the AuthService to provide HTTP handlers.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleRegister godoc
// @Summary User Registration
// @Description Registers a new user in the system.
// @Tags Auth
// @Accept json
// @Produce json
// @Param registerBody body auth.RegisterRequest true "User registration details"
// @Success 201 {object} auth.RegisterResponse "User created successfully"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid input or missing fields"
// @Failure 409 {object} apperror.ErrorResponse "Conflict - Username already exists"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /register [post]
func (h *Handlers) HandleRegister() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if req.Username == "" || req.Password == "" {
			WriteError(w, r, apperror.NewValidationError("username and password are required", nil))
			return
		}

		userID, err := h.service.Register(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully.",
			UserID:  userID,
		})
	}
}

// HandleLogin godoc
// @Summary User Login
// @Description Verifies credentials and establishes a cookie-backed session.
// @Tags Auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User login credentials"
// @Success 200 {object} auth.MessageResponse "Login successful, session cookie set"
// @Failure 400 {object} apperror.ErrorResponse "Bad Request - Invalid input or missing fields"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - Invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error"
// @Router /login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// A fresh login invalidates whatever session this browser was
		// holding, even if the credential check below ends up failing.
		if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			h.service.Logout(cookie.Value)
			ClearSessionCookie(w)
		}

		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body", err))
			return
		}
		defer r.Body.Close()

		if req.Username == "" || req.Password == "" {
			WriteError(w, r, apperror.NewValidationError("username and password are required", nil))
			return
		}

		sessionID, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		SetSessionCookie(w, sessionID)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Login successful!"})
	}
}

// HandleLogout godoc
// @Summary User Logout
// @Description Deletes the server-side session and clears the cookie.
// @Tags Auth
// @Produce json
// @Success 200 {object} auth.MessageResponse "Logged out"
// @Router /logout [post]
func (h *Handlers) HandleLogout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
			h.service.Logout(cookie.Value)
		}

		// The cookie is cleared unconditionally; logout always succeeds.
		ClearSessionCookie(w)
		writeJSON(w, http.StatusOK, MessageResponse{Message: "Logged out successfully!"})
	}
}

// SetSessionCookie attaches the session cookie to the response.
func SetSessionCookie(w http.ResponseWriter, sessionID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
	})
}

// ClearSessionCookie instructs the browser to drop the session cookie.
func ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// writeJSON serializes data to JSON and writes it with the given status.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteJSON is the exported variant used by other feature packages.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, data)
}

// WriteError converts any error into a standardized JSON error response.
// Errors that are not *apperror.AppError are wrapped as internal errors so
// nothing unexpected leaks to clients.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("an unexpected error occurred", err)
	}

	writeJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
