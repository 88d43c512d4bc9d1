// Package services contains server-side business logic. This file implements
// UserService: registration, password login and the user directory.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/messagely/internal/common"
	"github.com/dmitrijs2005/messagely/internal/server/auth"
	"github.com/dmitrijs2005/messagely/internal/server/models"
	"github.com/dmitrijs2005/messagely/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// Registration is the profile supplied when signing up.
type Registration struct {
	Username  string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// UserService provides account operations:
// - Register: create a user and log them in
// - Login: verify a password, stamp last_login_at and mint a token
// - Get / All: read the directory
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	tokens      *auth.TokenService
	workFactor  int
}

// NewUserService constructs a UserService. workFactor is the bcrypt cost.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, tokens *auth.TokenService, workFactor int) *UserService {
	return &UserService{db: db, repomanager: m, tokens: tokens, workFactor: workFactor}
}

// Register hashes the password, stores the user and returns a token for
// them. A taken username is common.ErrorAlreadyExists.
func (s *UserService) Register(ctx context.Context, r Registration) (string, error) {
	if r.Username == "" || r.Password == "" {
		return "", common.ErrorBadRequest
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), s.workFactor)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", common.ErrorBadRequest
		}
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:  r.Username,
		Password:  string(hash),
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}
	if _, err := s.repomanager.Users(s.db).Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", err
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.issue(r.Username)
}

// Login checks username/password. Unknown users and wrong passwords are
// both common.ErrorUnauthorized.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", common.ErrorUnauthorized
	}

	if err := repo.UpdateLoginTimestamp(ctx, username); err != nil {
		return "", fmt.Errorf("error updating login timestamp: %w", err)
	}

	return s.issue(username)
}

// Get returns a single user or common.ErrorNotFound.
func (s *UserService) Get(ctx context.Context, username string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByUsername(ctx, username)
}

// All lists every user's basic profile.
func (s *UserService) All(ctx context.Context) ([]*models.UserSummary, error) {
	return s.repomanager.Users(s.db).All(ctx)
}

func (s *UserService) issue(username string) (string, error) {
	token, err := s.tokens.Issue(auth.Identity{Username: username})
	if err != nil {
		return "", fmt.Errorf("error issuing token: %w", err)
	}
	return token, nil
}
