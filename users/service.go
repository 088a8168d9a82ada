// Package users provides read access to user accounts for authenticated
// requests, most notably the /me endpoint.
package users

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Bvqlz/Todo/apperror"
	"github.com/Bvqlz/Todo/auth"
)

// UserService provides user account lookups.
type UserService struct {
	db *pgxpool.Pool
}

// NewUserService creates a new UserService.
func NewUserService(db *pgxpool.Pool) *UserService {
	return &UserService{db: db}
}

// GetUserByID retrieves a user account by its ID. Absence is reported as a
// not-found error; callers decide what that means for the request (for /me it
// means the session is dangling).
func (s *UserService) GetUserByID(ctx context.Context, userID int) (*auth.User, error) {
	query := `SELECT id, username, password_hash, created_at FROM users WHERE id = $1`
	var user auth.User
	err := s.db.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Username, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user not found", nil)
		}
		log.Printf("database error fetching user %d: %v", userID, err)
		return nil, apperror.NewDatabaseError("failed to get user", err)
	}
	return &user, nil
}
