package services

import (
	"context"
	"log"

	"estateBack/internal/models"
	"estateBack/internal/repositories"
)

type PropertyService struct {
	PropertyRepo *repositories.PropertyRepository
}

// canMutateProperty is the ownership gate: the owning agent or any admin.
func canMutateProperty(actorID int, role string, ownerID int) bool {
	return actorID == ownerID || role == models.RoleAdmin
}

func (s *PropertyService) ListProperties(ctx context.Context, filter models.PropertyFilter) ([]models.Property, models.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	offset := (filter.Page - 1) * filter.Limit

	properties, total, err := s.PropertyRepo.ListProperties(ctx, filter, filter.Limit, offset)
	if err != nil {
		return nil, models.Pagination{}, err
	}

	return properties, models.NewPagination(filter.Page, filter.Limit, total), nil
}

// GetProperty loads a single listing and bumps its view counter. Every fetch
// counts; there is no dedup. The returned row carries the pre-increment count.
func (s *PropertyService) GetProperty(ctx context.Context, id int) (models.Property, error) {
	property, err := s.PropertyRepo.GetPropertyByID(ctx, id)
	if err != nil {
		return models.Property{}, err
	}

	if err := s.PropertyRepo.IncrementViews(ctx, id); err != nil {
		log.Printf("increment views for property %d: %v", id, err)
	}

	return property, nil
}

func (s *PropertyService) CreateProperty(ctx context.Context, property models.Property, imageURLs []string) (models.Property, error) {
	return s.PropertyRepo.CreateProperty(ctx, property, imageURLs)
}

func (s *PropertyService) UpdateProperty(ctx context.Context, id, actorID int, role string, update models.PropertyUpdate) (models.Property, error) {
	ownerID, err := s.PropertyRepo.GetPropertyOwner(ctx, id)
	if err != nil {
		return models.Property{}, err
	}
	if !canMutateProperty(actorID, role, ownerID) {
		return models.Property{}, models.ErrNotOwner
	}

	return s.PropertyRepo.UpdateProperty(ctx, id, update)
}

func (s *PropertyService) DeleteProperty(ctx context.Context, id, actorID int, role string) error {
	ownerID, err := s.PropertyRepo.GetPropertyOwner(ctx, id)
	if err != nil {
		return err
	}
	if !canMutateProperty(actorID, role, ownerID) {
		return models.ErrNotOwner
	}

	return s.PropertyRepo.DeleteProperty(ctx, id)
}

func (s *PropertyService) SetPrimaryImage(ctx context.Context, propertyID, imageID, actorID int, role string) error {
	ownerID, err := s.PropertyRepo.GetPropertyOwner(ctx, propertyID)
	if err != nil {
		return err
	}
	if !canMutateProperty(actorID, role, ownerID) {
		return models.ErrNotOwner
	}

	return s.PropertyRepo.SetPrimaryImage(ctx, propertyID, imageID)
}

func (s *PropertyService) GetPropertiesByAgentID(ctx context.Context, agentID int) ([]models.Property, error) {
	return s.PropertyRepo.GetPropertiesByAgentID(ctx, agentID)
}
