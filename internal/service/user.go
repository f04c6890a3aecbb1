package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/agusnoopy3000/huertohogar-api/internal/entities"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type UserRepo interface {
	UserByEmail(ctx context.Context, email string) (entities.User, error)
	ListUsers(ctx context.Context, limit, offset uint64) ([]entities.User, int, error)
	CreateUser(ctx context.Context, u entities.User) error
	UpdateUser(ctx context.Context, u entities.User) error
	DeleteUser(ctx context.Context, email string) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Issue(p entities.Principal) (string, error)
}

// Session is what a successful register or login returns.
type Session struct {
	Token string
	User  entities.User
}

// OrderEvictor forgets whatever is held in memory about a user's orders.
type OrderEvictor interface {
	ForgetUser(email string)
}

type UserPage struct {
	Users []entities.User
	Page  int
	Size  int
	Total int
}

// UserUpdate is an administrator's change to an account.
// An empty Password keeps the current one, a nil Role keeps the current role.
type UserUpdate struct {
	entities.ProfilePatch
	Password string
	Role     *entities.Role
}

type userService struct {
	logger *slog.Logger
	repo   UserRepo
	hasher PasswordHasher
	tokens TokenIssuer
	orders OrderEvictor
}

func NewUserService(
	logger *slog.Logger,
	repo UserRepo,
	hasher PasswordHasher,
	tokens TokenIssuer,
	orders OrderEvictor,
) *userService {
	return &userService{
		logger: logger.With(slog.String("service", "user")),
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		orders: orders,
	}
}

// Register creates a USER account and logs it in.
func (s *userService) Register(ctx context.Context, reg entities.Registration) (Session, error) {
	user, err := s.createUser(ctx, reg, entities.RoleUser)
	if err != nil {
		return Session{}, err
	}
	return s.session(user)
}

// Login answers ErrInvalidCredentials both for an unknown email and a wrong password.
func (s *userService) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.repo.UserByEmail(ctx, entities.NormalizeEmail(email))
	if errors.Is(err, entities.ErrNotFound) {
		return Session{}, entities.ErrInvalidCredentials
	}
	if err != nil {
		return Session{}, entities.Dependency("failed to get user", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return Session{}, err
	}
	return s.session(user)
}

func (s *userService) GetUser(ctx context.Context, email string) (entities.User, error) {
	user, err := s.repo.UserByEmail(ctx, entities.NormalizeEmail(email))
	if err != nil {
		return entities.User{}, entities.Dependency("failed to get user", err)
	}
	return user, nil
}

// ListUsers returns a 1-based page of users.
func (s *userService) ListUsers(ctx context.Context, page, size int) (UserPage, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = defaultPageSize
	}
	size = min(size, maxPageSize)

	users, total, err := s.repo.ListUsers(ctx, uint64(size), uint64((page-1)*size))
	if err != nil {
		return UserPage{}, entities.Dependency("failed to list users", err)
	}
	return UserPage{Users: users, Page: page, Size: size, Total: total}, nil
}

func (s *userService) CreateUser(ctx context.Context, reg entities.Registration, role entities.Role) (entities.User, error) {
	return s.createUser(ctx, reg, role)
}

func (s *userService) UpdateUser(ctx context.Context, email string, upd UserUpdate) (entities.User, error) {
	user, err := s.GetUser(ctx, email)
	if err != nil {
		return entities.User{}, err
	}

	upd.Apply(&user)
	if upd.Role != nil {
		user.Role = *upd.Role
	}
	if upd.Password != "" {
		if user.PasswordHash, err = s.hashPassword(upd.Password); err != nil {
			return entities.User{}, err
		}
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return entities.User{}, entities.Dependency("failed to update user", err)
	}
	return user, nil
}

// UpdateProfile applies the caller's own profile changes.
func (s *userService) UpdateProfile(ctx context.Context, email string, patch entities.ProfilePatch) (entities.User, error) {
	return s.UpdateUser(ctx, email, UserUpdate{ProfilePatch: patch})
}

// DeleteUser removes the account together with its orders.
func (s *userService) DeleteUser(ctx context.Context, email string) error {
	email = entities.NormalizeEmail(email)
	if err := s.repo.DeleteUser(ctx, email); err != nil {
		return entities.Dependency("failed to delete user", err)
	}
	// заказы удалены каскадом, в кэше их быть не должно
	s.orders.ForgetUser(email)
	s.logger.Info("user deleted", slog.String("email", email))
	return nil
}

// EnsureAdmin creates the bootstrap administrator unless the account already exists.
func (s *userService) EnsureAdmin(ctx context.Context, email, password string) error {
	_, err := s.repo.UserByEmail(ctx, entities.NormalizeEmail(email))
	if err == nil {
		return nil
	}
	if !errors.Is(err, entities.ErrNotFound) {
		return entities.Dependency("failed to get admin", err)
	}

	_, err = s.createUser(ctx, entities.Registration{
		Email:     email,
		Password:  password,
		FirstName: "Admin",
		LastName:  "HuertoHogar",
	}, entities.RoleAdmin)
	if errors.Is(err, entities.ErrEmailTaken) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (s *userService) createUser(ctx context.Context, reg entities.Registration, role entities.Role) (entities.User, error) {
	hash, err := s.hashPassword(reg.Password)
	if err != nil {
		return entities.User{}, err
	}

	user := entities.User{
		Email:        entities.NormalizeEmail(reg.Email),
		Run:          strings.TrimSpace(reg.Run),
		FirstName:    strings.TrimSpace(reg.FirstName),
		LastName:     strings.TrimSpace(reg.LastName),
		PasswordHash: hash,
		Address:      reg.Address,
		Phone:        reg.Phone,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		return entities.User{}, entities.Dependency("failed to create user", err)
	}

	s.logger.Info("user created", slog.String("email", user.Email), slog.String("role", string(role)))
	return user, nil
}

func (s *userService) hashPassword(password string) (string, error) {
	if len(password) < entities.MinPasswordLength {
		return "", entities.ErrWeakPassword
	}
	return s.hasher.Hash(password)
}

func (s *userService) session(user entities.User) (Session, error) {
	token, err := s.tokens.Issue(user.Principal())
	if err != nil {
		return Session{}, fmt.Errorf("failed to issue token: %w", err)
	}
	return Session{Token: token, User: user}, nil
}
