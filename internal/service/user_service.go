package service

import (
	"context"
	"errors"
	"time"

	errorvalues "github.com/astralune/trackstar/internal/error_values"
	"github.com/astralune/trackstar/internal/repository"
	"github.com/astralune/trackstar/pkg/entity"
	"github.com/astralune/trackstar/pkg/sanitize"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) EnsureUser(ctx context.Context, profile *Profile) (*entity.User, error) {
	if profile == nil || profile.ID == "" {
		return nil, errors.New("empty profile provided")
	}
	err := us.repo.Upsert(ctx, &entity.User{
		ID:        profile.ID,
		Name:      sanitize.String(profile.Name),
		Email:     profile.Email,
		Picture:   sanitize.String(profile.Picture),
		Settings:  map[string]any{"theme": "dark"},
		LastLogin: time.Now().UTC(),
	})
	if err != nil {
		return nil, errors.New("repository upserting error: " + err.Error())
	}
	user, err := us.repo.FindByID(ctx, profile.ID)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, userID string, patch entity.ProfilePatch) (*entity.User, error) {
	if patch.Name != nil {
		s := sanitize.String(*patch.Name)
		patch.Name = &s
	}
	if patch.Picture != nil {
		s := sanitize.String(*patch.Picture)
		patch.Picture = &s
	}
	user, err := us.repo.UpdateProfile(ctx, userID, patch)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return user, nil
}
