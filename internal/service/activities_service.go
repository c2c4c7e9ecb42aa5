package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/astralune/trackstar/internal/error_values"
	"github.com/astralune/trackstar/internal/repository"
	"github.com/astralune/trackstar/pkg/entity"
)

type ActivitiesService struct {
	repo repository.ActivitiesRepositoryI
}

func NewActivitiesService(activitiesRepo repository.ActivitiesRepositoryI) *ActivitiesService {
	if activitiesRepo == nil {
		log.Fatal("provided nil activitiesRepo")
	}
	return &ActivitiesService{
		repo: activitiesRepo,
	}
}

func (as *ActivitiesService) List(ctx context.Context, userID string) ([]entity.ActivityType, error) {
	activities, err := as.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, errors.New("activities repository error: " + err.Error())
	}
	return activities, nil
}

// Delete removes a user-owned activity type. Global types and types
// owned by other users resolve to ErrActivityNotFound.
func (as *ActivitiesService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	err := as.repo.DeleteUserActivity(ctx, userID, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrActivityNotFound) {
			return err
		}
		return errors.New("activities repository error: " + err.Error())
	}
	return nil
}
