package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/syncbazar/syncbazar-api/internal/domain"
	"github.com/syncbazar/syncbazar-api/internal/repository"
	"github.com/syncbazar/syncbazar-api/internal/validation"
)

var (
	ErrUsernameExists   = repository.ErrUsernameExists
	ErrWrongCredentials = errors.New("invalid username or password")
)

type AuthUserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	FindByUsername(ctx context.Context, username string) (domain.User, error)
	Count(ctx context.Context) (int, error)
}

type AuthService struct {
	repo AuthUserRepository
}

func NewAuthService(repo AuthUserRepository) *AuthService {
	return &AuthService{
		repo: repo,
	}
}

// Signup stores a new user with a bcrypt password hash.
// Role defaults to staff.
func (s *AuthService) Signup(ctx context.Context, user domain.User) (domain.User, error) {
	if err := validation.Password(user.Password); err != nil {
		return domain.User{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	user.Password = string(hash)

	if user.Role == "" {
		user.Role = domain.RoleStaff
	}
	user.IsActive = true

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, ErrUsernameExists) {
			return domain.User{}, ErrUsernameExists
		}

		return domain.User{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// Login compares the password against the stored bcrypt hash. A missing user,
// a deactivated user and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domain.User{}, ErrWrongCredentials
		}

		return domain.User{}, fmt.Errorf("s.repo.FindByUsername -> %w", err)
	}

	if !user.IsActive {
		return domain.User{}, ErrWrongCredentials
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return domain.User{}, ErrWrongCredentials
	}

	return user, nil
}

// EnsureAdmin seeds the initial admin account when the user table is empty.
func (s *AuthService) EnsureAdmin(ctx context.Context, username, password string) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("s.repo.Count -> %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err = s.Signup(ctx, domain.User{
		Username: username,
		Password: password,
		FullName: "Administrator",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("s.Signup -> %w", err)
	}

	return nil
}
