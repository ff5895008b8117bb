package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"foodcourt/business/access"
	"foodcourt/domain"
	"foodcourt/pkg/logger"
	"foodcourt/pkg/metrics"
	"foodcourt/pkg/utils"

	"github.com/go-playground/validator/v10"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id uint) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
}

// TokenStore contract interface, backed by Redis.
type TokenStore interface {
	StoreSession(ctx context.Context, userID, email, token string, ttl time.Duration) error
	ValidateToken(ctx context.Context, token string) (string, error)
	RevokeToken(ctx context.Context, userID, token string) error
}

type AuthService struct {
	userRepo   UserRepository
	tokenStore TokenStore
	validate   *validator.Validate
}

func NewAuthService(userRepo UserRepository, tokenStore TokenStore, validate *validator.Validate) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		tokenStore: tokenStore,
		validate:   validate,
	}
}

// Register creates a user and returns it with a signed token. Duplicate
// email is a conflict, not an internal error.
func (s *AuthService) Register(ctx context.Context, user *domain.User) (domain.User, string, error) {
	if err := s.validate.Var(user.Email, "required,email"); err != nil {
		return domain.User{}, "", fmt.Errorf("%w: invalid email format", domain.ErrBadRequest)
	}

	if err := s.validate.Var(user.Password, "required,min=6"); err != nil {
		return domain.User{}, "", fmt.Errorf("%w: password must be at least 6 characters", domain.ErrBadRequest)
	}

	if !user.Role.Valid() {
		return domain.User{}, "", fmt.Errorf("%w: invalid role", domain.ErrBadRequest)
	}

	if !user.Country.Valid() {
		return domain.User{}, "", fmt.Errorf("%w: invalid country", domain.ErrBadRequest)
	}

	existing, err := s.userRepo.FindByEmail(ctx, user.Email)
	if err == nil && existing.ID > 0 {
		return domain.User{}, "", fmt.Errorf("%w: user with this email already exists", domain.ErrConflict)
	}

	hash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	newUser := domain.User{
		Email:    user.Email,
		Password: string(hash),
		Name:     user.Name,
		Role:     user.Role,
		Country:  user.Country,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, "", err
	}

	token, err := s.issueToken(ctx, newUser)
	if err != nil {
		return domain.User{}, "", err
	}

	newUser.Password = ""
	return newUser, token, nil
}

// Login verifies credentials. Unknown email and bad password share one
// message so callers cannot probe which addresses are registered.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", domain.User{}, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	if !utils.CheckPassword(password, user.Password) {
		return "", domain.User{}, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthorized)
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return "", domain.User{}, err
	}

	metrics.Logins.Inc()

	user.Password = ""
	return token, user, nil
}

func (s *AuthService) Logout(ctx context.Context, userID uint, token string) error {
	userIDStr := strconv.FormatUint(uint64(userID), 10)
	return s.tokenStore.RevokeToken(ctx, userIDStr, token)
}

// ValidateSession is consumed by the auth middleware; it returns the owning
// user id for a still-live token.
func (s *AuthService) ValidateSession(ctx context.Context, token string) (string, error) {
	return s.tokenStore.ValidateToken(ctx, token)
}

func (s *AuthService) GetUserByID(ctx context.Context, actor access.Actor, id uint) (domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if !actor.IsAdmin() && actor.UserID != id {
		return domain.User{}, fmt.Errorf("%w: you can only access your own data", domain.ErrForbidden)
	}

	user.Password = ""
	return user, nil
}

func (s *AuthService) GetAllUsers(ctx context.Context, actor access.Actor) ([]domain.User, error) {
	if !actor.IsAdmin() {
		return nil, fmt.Errorf("%w: admin access required", domain.ErrForbidden)
	}

	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range users {
		users[i].Password = ""
	}

	return users, nil
}

func (s *AuthService) issueToken(ctx context.Context, user domain.User) (string, error) {
	userIDStr := strconv.FormatUint(uint64(user.ID), 10)

	token, err := utils.GenerateJWT(userIDStr, user.Email)
	if err != nil {
		logger.Error("Failed to generate token", err)
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	if err := s.tokenStore.StoreSession(ctx, userIDStr, user.Email, token, utils.TokenTTL); err != nil {
		logger.Error("Failed to store session", err)
		return "", err
	}

	return token, nil
}
