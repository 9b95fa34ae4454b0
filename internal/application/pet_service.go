package application

import (
	"context"

	"go.uber.org/zap"

	"github.com/petstore-samples/service-petstore/internal/domain"
	"github.com/petstore-samples/service-petstore/internal/domain/pet"
)

// PetService orchestrates pet use cases. Apart from the empty-tag-list rule
// on FindByTags it delegates straight to the repository; repository errors
// propagate unmodified.
type PetService struct {
	repo   pet.PetRepository
	logger *zap.Logger
}

// NewPetService creates a new PetService.
func NewPetService(repo pet.PetRepository, logger *zap.Logger) *PetService {
	return &PetService{repo: repo, logger: logger}
}

// FindAll returns every pet.
func (s *PetService) FindAll(ctx context.Context) []pet.Pet {
	return s.repo.FindAll(ctx)
}

// FindByID returns the pet with the given id.
func (s *PetService) FindByID(ctx context.Context, id int64) (*pet.Pet, error) {
	return s.repo.FindByID(ctx, id)
}

// Save stores or replaces the given pet.
func (s *PetService) Save(ctx context.Context, p pet.Pet) *pet.Pet {
	stored := s.repo.Save(ctx, p)
	s.logger.Info("pet saved",
		zap.Int64("pet_id", stored.ID),
		zap.String("status", string(stored.Status)),
	)
	return stored
}

// Update overwrites the fields of an existing pet.
func (s *PetService) Update(ctx context.Context, p pet.Pet) (*pet.Pet, error) {
	updated, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}
	s.logger.Info("pet updated", zap.Int64("pet_id", updated.ID))
	return updated, nil
}

// DeleteByID removes the pet with the given id.
func (s *PetService) DeleteByID(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.logger.Info("pet deleted", zap.Int64("pet_id", id))
	return nil
}

// FindByStatuses returns every pet whose status is in statuses.
func (s *PetService) FindByStatuses(ctx context.Context, statuses []pet.Status) []pet.Pet {
	return s.repo.FindByStatuses(ctx, statuses)
}

// FindByTags returns every pet carrying at least one of the given tag names.
// An empty list is rejected before reaching the repository.
func (s *PetService) FindByTags(ctx context.Context, tagNames []string) ([]pet.Pet, error) {
	if len(tagNames) == 0 {
		return nil, domain.NewNotFoundError(domain.NoTagsProvidedMsg)
	}
	return s.repo.FindByTags(ctx, tagNames), nil
}
