package services

import (
	"context"

	"blogpessoal/metrics"
	"blogpessoal/models"
	"blogpessoal/repository"
	"blogpessoal/utils"

	"github.com/pkg/errors"
)

var errInvalidCredentials = models.NewUnauthorizedError("Invalid credentials")

type UserService struct {
	users  repository.UserRepository
	hasher utils.PasswordHasher
}

func NewUserService(users repository.UserRepository, hasher utils.PasswordHasher) *UserService {
	return &UserService{
		users:  users,
		hasher: hasher,
	}
}

// Register stores a new user with a hashed password. The login check and the
// insert are not atomic; the unique index on the login column rejects the
// loser of a concurrent race with the same CONFLICT error.
func (s *UserService) Register(ctx context.Context, user *models.User) (*models.User, error) {
	existing, err := s.users.FindByLogin(ctx, user.Login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.NewConflictError("Usuario already exists")
	}

	if err := s.hashPassword(user); err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update replaces a stored user. The login may stay the same or move to one
// nobody else owns.
func (s *UserService) Update(ctx context.Context, user *models.User) (*models.User, error) {
	exists, err := s.users.Exists(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Usuario", user.ID)
	}

	owner, err := s.users.FindByLogin(ctx, user.Login)
	if err != nil {
		return nil, err
	}
	if owner != nil && owner.ID != user.ID {
		return nil, models.NewConflictError("Login already in use by another account")
	}

	if err := s.hashPassword(user); err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate checks a login attempt and returns the session-less login
// response: stored profile fields, a Basic token built from the submitted
// credentials and the stored hash in place of the password.
func (s *UserService) Authenticate(ctx context.Context, attempt *models.UserLogin) (*models.UserLogin, error) {
	user, err := s.users.FindByLogin(ctx, attempt.Login)
	if err != nil {
		return nil, err
	}
	if user == nil || !s.hasher.Check(attempt.Password, user.Password) {
		metrics.ObserveAuth(metrics.AuthSourceLogin, false)
		return nil, errInvalidCredentials
	}
	metrics.ObserveAuth(metrics.AuthSourceLogin, true)

	return &models.UserLogin{
		ID:       user.ID,
		Name:     user.Name,
		Login:    attempt.Login,
		Password: user.Password,
		Photo:    user.Photo,
		Token:    utils.EncodeBasicToken(attempt.Login, attempt.Password),
	}, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) SearchByName(ctx context.Context, name string) ([]models.User, error) {
	return s.users.FindAllByName(ctx, name)
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	return s.users.Delete(ctx, id)
}

func (s *UserService) hashPassword(user *models.User) error {
	hashed, err := s.hasher.Hash(user.Password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return models.NewValidationError("Senha is too long")
	}
	if err != nil {
		return models.NewInternalError(errors.Wrap(err, "hash password"))
	}
	user.Password = hashed
	return nil
}
