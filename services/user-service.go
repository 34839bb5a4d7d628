package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/rahulranjandev/trello-clone/models"
	"github.com/rahulranjandev/trello-clone/repositories"
	"github.com/rahulranjandev/trello-clone/utils"
)

type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new user. The email must be unique; the password is
// stored as a bcrypt hash, never in plaintext.
func (s *UserService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: user already exists", ErrConflict)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:           name,
		Email:          email,
		Password:       hashed,
		RegisteredDate: time.Now(),
	}

	return s.userRepo.Create(ctx, user)
}

// Login verifies the credentials. An unknown email and a wrong password fail
// with the same error so the response does not enumerate registered emails.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	return user, nil
}

// UpdateProfile applies a partial update of name and/or email. A new email
// must not already be taken by another user.
func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, email *string) (*models.User, error) {
	if email != nil {
		existing, err := s.userRepo.GetByEmail(ctx, *email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != id {
			return nil, fmt.Errorf("%w: email already taken", ErrConflict)
		}
	}

	user, err := s.userRepo.Update(ctx, id, repositories.UserUpdate{Name: name, Email: email})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}
	return user, nil
}
