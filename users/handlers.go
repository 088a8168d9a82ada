package users

import (
	"log"
	"net/http"

	"github.com/Bvqlz/Todo/apperror"
	"github.com/Bvqlz/Todo/auth"
	"github.com/Bvqlz/Todo/session"
)

// UserHandlers provides HTTP handlers for user account endpoints.
// The session store is injected alongside the service so that a session whose
// user row has disappeared can be torn down on the spot.
type UserHandlers struct {
	service  *UserService
	sessions *session.Store
}

// NewUserHandlers creates new UserHandlers.
func NewUserHandlers(service *UserService, sessions *session.Store) *UserHandlers {
	return &UserHandlers{service: service, sessions: sessions}
}

// HandleMe godoc
// @Summary Get current user
// @Description Returns the id and username of the user owning the session.
// @Tags Users
// @Produce json
// @Success 200 {object} users.ProfileResponse "Current user"
// @Failure 401 {object} apperror.ErrorResponse "Unauthorized - No or invalid session"
// @Failure 500 {object} apperror.ErrorResponse "Internal Server Error - Session references a missing user"
// @Router /me [get]
func (h *UserHandlers) HandleMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := auth.GetUserIDFromContext(r.Context())
		if !ok {
			auth.WriteError(w, r, apperror.NewAuthError("authentication required", nil))
			return
		}

		user, err := h.service.GetUserByID(r.Context(), userID)
		if err != nil {
			if apperror.IsNotFound(err) {
				// The session maps to a user that no longer exists, most
				// likely deleted underneath a live session. Remove the
				// mapping and make the client re-authenticate.
				if sessionID, ok := auth.GetSessionIDFromContext(r.Context()); ok {
					h.sessions.Delete(sessionID)
				}
				auth.ClearSessionCookie(w)
				log.Printf("session referenced missing user %d, session removed", userID)
				auth.WriteError(w, r, apperror.NewInternalError("user not found for session", nil))
				return
			}
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, ProfileResponse{
			ID:       user.ID,
			Username: user.Username,
		})
	}
}
