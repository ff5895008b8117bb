package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"foodcourt/business/access"
	"foodcourt/business/auth"
	"foodcourt/domain"
	"foodcourt/internal/repository/postgres"
	"foodcourt/pkg/utils"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// fakeTokenStore stands in for the Redis-backed session store.
type fakeTokenStore struct {
	sessions map[string]string
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{sessions: map[string]string{}}
}

func (f *fakeTokenStore) StoreSession(_ context.Context, userID, _ string, token string, _ time.Duration) error {
	f.sessions[token] = userID
	return nil
}

func (f *fakeTokenStore) ValidateToken(_ context.Context, token string) (string, error) {
	userID, ok := f.sessions[token]
	if !ok {
		return "", errors.New("token not found")
	}
	return userID, nil
}

func (f *fakeTokenStore) RevokeToken(_ context.Context, _, token string) error {
	delete(f.sessions, token)
	return nil
}

func newService(t *testing.T) (*auth.AuthService, *fakeTokenStore) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.User{}))

	store := newFakeTokenStore()
	return auth.NewAuthService(postgres.NewUserRepository(db), store, validator.New()), store
}

func register(t *testing.T, svc *auth.AuthService, email string, role domain.Role, country domain.Country) (domain.User, string) {
	t.Helper()

	user, token, err := svc.Register(context.Background(), &domain.User{
		Email:    email,
		Password: "Password123!",
		Name:     "Thor Odinson",
		Role:     role,
		Country:  country,
	})
	require.NoError(t, err)

	return user, token
}

func TestRegister(t *testing.T) {
	svc, store := newService(t)
	ctx := context.Background()

	user, token := register(t, svc, "thor@shield.com", domain.RoleMember, domain.CountryIndia)
	assert.NotZero(t, user.ID)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, token)

	// the issued token is a live session
	userID, err := store.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "1", userID)

	claims, err := utils.ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "thor@shield.com", claims.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newService(t)

	register(t, svc, "thor@shield.com", domain.RoleMember, domain.CountryIndia)

	_, _, err := svc.Register(context.Background(), &domain.User{
		Email:    "thor@shield.com",
		Password: "Password123!",
		Name:     "Impostor",
		Role:     domain.RoleMember,
		Country:  domain.CountryIndia,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		user domain.User
	}{
		{
			name: "bad email",
			user: domain.User{Email: "not-an-email", Password: "Password123!", Role: domain.RoleMember, Country: domain.CountryIndia},
		},
		{
			name: "short password",
			user: domain.User{Email: "a@b.com", Password: "abc", Role: domain.RoleMember, Country: domain.CountryIndia},
		},
		{
			name: "unknown role",
			user: domain.User{Email: "a@b.com", Password: "Password123!", Role: domain.Role("OVERLORD"), Country: domain.CountryIndia},
		},
		{
			name: "unknown country",
			user: domain.User{Email: "a@b.com", Password: "Password123!", Role: domain.RoleMember, Country: domain.Country("ATLANTIS")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := svc.Register(ctx, &tt.user)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrBadRequest)
		})
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	register(t, svc, "thor@shield.com", domain.RoleMember, domain.CountryIndia)

	token, user, err := svc.Login(ctx, "thor@shield.com", "Password123!")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.Password)
	assert.Equal(t, domain.RoleMember, user.Role)

	// wrong password and unknown email fail identically
	_, _, err = svc.Login(ctx, "thor@shield.com", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, _, badEmailErr := svc.Login(ctx, "nobody@shield.com", "Password123!")
	require.Error(t, badEmailErr)
	assert.ErrorIs(t, badEmailErr, domain.ErrUnauthorized)
	assert.Equal(t, err.Error(), badEmailErr.Error())
}

func TestLogoutRevokesSession(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	user, token := register(t, svc, "thor@shield.com", domain.RoleMember, domain.CountryIndia)

	_, err := svc.ValidateSession(ctx, token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, user.ID, token))

	_, err = svc.ValidateSession(ctx, token)
	assert.Error(t, err)
}

func TestGetUserByID(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	thor, _ := register(t, svc, "thor@shield.com", domain.RoleMember, domain.CountryIndia)
	fury, _ := register(t, svc, "fury@shield.com", domain.RoleAdmin, domain.CountryIndia)

	thorActor := access.Actor{UserID: thor.ID, Role: thor.Role, Country: thor.Country}
	furyActor := access.Actor{UserID: fury.ID, Role: fury.Role, Country: fury.Country}

	got, err := svc.GetUserByID(ctx, thorActor, thor.ID)
	require.NoError(t, err)
	assert.Equal(t, thor.Email, got.Email)
	assert.Empty(t, got.Password)

	_, err = svc.GetUserByID(ctx, thorActor, fury.ID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = svc.GetUserByID(ctx, furyActor, thor.ID)
	assert.NoError(t, err)

	_, err = svc.GetUserByID(ctx, furyActor, 9999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetAllUsers(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	thor, _ := register(t, svc, "thor@shield.com", domain.RoleMember, domain.CountryIndia)
	fury, _ := register(t, svc, "fury@shield.com", domain.RoleAdmin, domain.CountryIndia)

	_, err := svc.GetAllUsers(ctx, access.Actor{UserID: thor.ID, Role: thor.Role, Country: thor.Country})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	users, err := svc.GetAllUsers(ctx, access.Actor{UserID: fury.ID, Role: fury.Role, Country: fury.Country})
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
}
