package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Bvqlz/Todo/apperror"
	"github.com/Bvqlz/Todo/session"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// AuthService provides registration, login and logout on top of the users
// table and the in-memory session store. Both dependencies are injected.
type AuthService struct {
	db       *pgxpool.Pool
	sessions *session.Store
}

// NewAuthService creates a new AuthService.
func NewAuthService(db *pgxpool.Pool, sessions *session.Store) *AuthService {
	return &AuthService{
		db:       db,
		sessions: sessions,
	}
}

// Register creates a new user with a bcrypt-hashed password and returns the
// server-assigned user ID. A username collision yields a conflict error.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (int, error) {
	hashedPassword, err := HashPassword(req.Password)
	if err != nil {
		// Hash failures are a server-side problem, never the client's.
		log.Printf("password hashing failed during registration: %v", err)
		return 0, err
	}

	userID, err := s.createUser(ctx, req.Username, hashedPassword)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && strings.Contains(pgErr.ConstraintName, "username") {
			return 0, apperror.NewConflictError("username already exists", nil)
		}
		log.Printf("database error creating user: %v", err)
		return 0, apperror.NewDatabaseError("failed to create user", err)
	}
	return userID, nil
}

// Login authenticates a user and, on success, creates a session and returns
// its identifier. An unknown username and a wrong password produce the exact
// same error so the endpoint cannot be used to enumerate usernames.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (string, error) {
	user, err := s.getUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperror.NewAuthError("invalid username or password", nil)
		}
		log.Printf("database error looking up user during login: %v", err)
		return "", apperror.NewDatabaseError("database error during login", err)
	}

	if !CheckPassword(user.HashedPassword, req.Password) {
		return "", apperror.NewAuthError("invalid username or password", nil)
	}

	sessionID, err := session.GenerateID()
	if err != nil {
		return "", apperror.NewInternalError("failed to generate session identifier", err)
	}
	s.sessions.Put(sessionID, user.ID)
	log.Printf("session created for user %d", user.ID)
	return sessionID, nil
}

// Logout removes the session. Idempotent: logging out an unknown or already
// removed session is not an error.
func (s *AuthService) Logout(sessionID string) {
	s.sessions.Delete(sessionID)
}

// --- database helpers ---

func (s *AuthService) createUser(ctx context.Context, username, hashedPassword string) (int, error) {
	query := `INSERT INTO users (username, password_hash)
	          VALUES ($1, $2)
	          RETURNING id`
	var userID int
	err := s.db.QueryRow(ctx, query, username, hashedPassword).Scan(&userID)
	if err != nil {
		return 0, err
	}
	return userID, nil
}

func (s *AuthService) getUserByUsername(ctx context.Context, username string) (*User, error) {
	query := `SELECT id, username, password_hash, created_at FROM users WHERE username = $1`
	var user User
	err := s.db.QueryRow(ctx, query, username).Scan(&user.ID, &user.Username, &user.HashedPassword, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
