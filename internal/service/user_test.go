package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
	"github.com/agusnoopy3000/huertohogar-api/internal/service"
	mocks "github.com/agusnoopy3000/huertohogar-api/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userDeps struct {
	repo   *mocks.MockUserRepo
	hasher *mocks.MockPasswordHasher
	tokens *mocks.MockTokenIssuer
	orders *mocks.MockOrderEvictor
}

type userService interface {
	Register(ctx context.Context, reg entities.Registration) (service.Session, error)
	Login(ctx context.Context, email, password string) (service.Session, error)
	ListUsers(ctx context.Context, page, size int) (service.UserPage, error)
	UpdateUser(ctx context.Context, email string, upd service.UserUpdate) (entities.User, error)
	UpdateProfile(ctx context.Context, email string, patch entities.ProfilePatch) (entities.User, error)
	DeleteUser(ctx context.Context, email string) error
	EnsureAdmin(ctx context.Context, email, password string) error
}

func newUserDeps(t *testing.T) userDeps {
	return userDeps{
		repo:   mocks.NewMockUserRepo(t),
		hasher: mocks.NewMockPasswordHasher(t),
		tokens: mocks.NewMockTokenIssuer(t),
		orders: mocks.NewMockOrderEvictor(t),
	}
}

func (d userDeps) newService() userService {
	return service.NewUserService(slog.New(slog.NewTextHandler(io.Discard, nil)), d.repo, d.hasher, d.tokens, d.orders)
}

func TestUserService_Register(t *testing.T) {
	d := newUserDeps(t)
	d.hasher.EXPECT().Hash("secreto1").Return("hashed", nil).Once()
	d.repo.EXPECT().CreateUser(mock.Anything, mock.MatchedBy(func(u entities.User) bool {
		return u.Email == "ana@duoc.cl" && u.PasswordHash == "hashed" && u.Role == entities.RoleUser
	})).Return(nil).Once()
	d.tokens.EXPECT().Issue(entities.Principal{Email: "ana@duoc.cl", Role: entities.RoleUser}).Return("jwt", nil).Once()

	got, err := d.newService().Register(context.Background(), entities.Registration{
		Email:     " Ana@Duoc.cl ",
		Password:  "secreto1",
		FirstName: "Ana",
		LastName:  "Pérez",
	})
	require.NoError(t, err)
	assert.Equal(t, "jwt", got.Token)
	assert.Equal(t, "ana@duoc.cl", got.User.Email)
	assert.False(t, got.User.CreatedAt.IsZero())
}

func TestUserService_Register_Errors(t *testing.T) {
	t.Run("short password", func(t *testing.T) {
		d := newUserDeps(t)
		_, err := d.newService().Register(context.Background(), entities.Registration{Email: "a@b.cl", Password: "123456"})
		assert.ErrorIs(t, err, entities.ErrInvalidInput)
	})

	t.Run("email taken", func(t *testing.T) {
		d := newUserDeps(t)
		d.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil).Once()
		d.repo.EXPECT().CreateUser(mock.Anything, mock.Anything).Return(entities.ErrEmailTaken).Once()

		_, err := d.newService().Register(context.Background(), entities.Registration{Email: "a@b.cl", Password: "1234567"})
		assert.ErrorIs(t, err, entities.ErrConflict)
	})
}

func TestUserService_Login(t *testing.T) {
	stored := entities.User{Email: "ana@duoc.cl", PasswordHash: "hashed", Role: entities.RoleAdmin}

	t.Run("OK", func(t *testing.T) {
		d := newUserDeps(t)
		d.repo.EXPECT().UserByEmail(mock.Anything, "ana@duoc.cl").Return(stored, nil).Once()
		d.hasher.EXPECT().Compare("hashed", "secreto1").Return(nil).Once()
		d.tokens.EXPECT().Issue(stored.Principal()).Return("jwt", nil).Once()

		got, err := d.newService().Login(context.Background(), "ANA@duoc.cl", "secreto1")
		require.NoError(t, err)
		assert.Equal(t, "jwt", got.Token)
	})

	t.Run("wrong password", func(t *testing.T) {
		d := newUserDeps(t)
		d.repo.EXPECT().UserByEmail(mock.Anything, "ana@duoc.cl").Return(stored, nil).Once()
		d.hasher.EXPECT().Compare("hashed", "nope").Return(entities.ErrInvalidCredentials).Once()

		_, err := d.newService().Login(context.Background(), "ana@duoc.cl", "nope")
		assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
	})

	t.Run("unknown email looks the same", func(t *testing.T) {
		d := newUserDeps(t)
		d.repo.EXPECT().UserByEmail(mock.Anything, "ghost@duoc.cl").Return(entities.User{}, entities.ErrUserNotFound).Once()

		_, err := d.newService().Login(context.Background(), "ghost@duoc.cl", "whatever")
		assert.ErrorIs(t, err, entities.ErrInvalidCredentials)
		assert.Equal(t, entities.KindUnauthorized, entities.KindOf(err))
	})
}

func TestUserService_ListUsers(t *testing.T) {
	d := newUserDeps(t)
	d.repo.EXPECT().ListUsers(mock.Anything, uint64(100), uint64(200)).Return([]entities.User{}, 250, nil).Once()

	got, err := d.newService().ListUsers(context.Background(), 3, 500)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Page)
	assert.Equal(t, 100, got.Size)
	assert.Equal(t, 250, got.Total)
}

func TestUserService_UpdateProfile(t *testing.T) {
	d := newUserDeps(t)
	stored := entities.User{Email: "ana@duoc.cl", FirstName: "Ana", LastName: "Pérez", Address: "Calle 1", Phone: "+569"}
	d.repo.EXPECT().UserByEmail(mock.Anything, "ana@duoc.cl").Return(stored, nil).Once()
	d.repo.EXPECT().UpdateUser(mock.Anything, mock.Anything).Return(nil).Once()

	blank, empty, name := "  ", "", "Anita"
	got, err := d.newService().UpdateProfile(context.Background(), "ana@duoc.cl", entities.ProfilePatch{
		FirstName: &name,
		LastName:  &blank,
		Phone:     &empty,
	})
	require.NoError(t, err)
	assert.Equal(t, "Anita", got.FirstName)
	assert.Equal(t, "Pérez", got.LastName)
	assert.Equal(t, "Calle 1", got.Address)
	assert.Empty(t, got.Phone)
}

func TestUserService_UpdateUser_Password(t *testing.T) {
	d := newUserDeps(t)
	stored := entities.User{Email: "ana@duoc.cl", PasswordHash: "old", Role: entities.RoleUser}
	d.repo.EXPECT().UserByEmail(mock.Anything, "ana@duoc.cl").Return(stored, nil).Twice()
	d.hasher.EXPECT().Hash("nuevaclave").Return("new", nil).Once()
	d.repo.EXPECT().UpdateUser(mock.Anything, mock.Anything).Return(nil).Twice()

	role := entities.RoleAdmin
	got, err := d.newService().UpdateUser(context.Background(), "ana@duoc.cl", service.UserUpdate{Password: "nuevaclave", Role: &role})
	require.NoError(t, err)
	assert.Equal(t, "new", got.PasswordHash)
	assert.Equal(t, entities.RoleAdmin, got.Role)

	got, err = d.newService().UpdateUser(context.Background(), "ana@duoc.cl", service.UserUpdate{})
	require.NoError(t, err)
	assert.Equal(t, "old", got.PasswordHash)
}

func TestUserService_EnsureAdmin(t *testing.T) {
	t.Run("already exists", func(t *testing.T) {
		d := newUserDeps(t)
		d.repo.EXPECT().UserByEmail(mock.Anything, "admin@duoc.cl").Return(entities.User{Email: "admin@duoc.cl"}, nil).Once()

		assert.NoError(t, d.newService().EnsureAdmin(context.Background(), "admin@duoc.cl", "admin123"))
	})

	t.Run("created", func(t *testing.T) {
		d := newUserDeps(t)
		d.repo.EXPECT().UserByEmail(mock.Anything, "admin@duoc.cl").Return(entities.User{}, entities.ErrUserNotFound).Once()
		d.hasher.EXPECT().Hash("admin123").Return("hashed", nil).Once()
		d.repo.EXPECT().CreateUser(mock.Anything, mock.MatchedBy(func(u entities.User) bool {
			return u.Role == entities.RoleAdmin
		})).Return(nil).Once()

		assert.NoError(t, d.newService().EnsureAdmin(context.Background(), "admin@duoc.cl", "admin123"))
	})

	t.Run("database down", func(t *testing.T) {
		d := newUserDeps(t)
		d.repo.EXPECT().UserByEmail(mock.Anything, "admin@duoc.cl").Return(entities.User{}, errors.New("dial tcp")).Once()

		assert.ErrorIs(t, d.newService().EnsureAdmin(context.Background(), "admin@duoc.cl", "admin123"), entities.ErrDependency)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("evicts cached orders", func(t *testing.T) {
		d := newUserDeps(t)
		d.repo.EXPECT().DeleteUser(mock.Anything, "ana@duoc.cl").Return(nil).Once()
		d.orders.EXPECT().ForgetUser("ana@duoc.cl").Return().Once()

		assert.NoError(t, d.newService().DeleteUser(context.Background(), " Ana@Duoc.cl "))
	})

	t.Run("not found keeps cache", func(t *testing.T) {
		d := newUserDeps(t)
		d.repo.EXPECT().DeleteUser(mock.Anything, "ghost@duoc.cl").Return(entities.ErrUserNotFound).Once()

		assert.ErrorIs(t, d.newService().DeleteUser(context.Background(), "ghost@duoc.cl"), entities.ErrNotFound)
	})
}
