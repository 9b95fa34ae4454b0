package repository

import (
	"context"
	"sync"

	"github.com/petstore-samples/service-petstore/internal/domain"
	"github.com/petstore-samples/service-petstore/internal/domain/pet"
	"github.com/petstore-samples/service-petstore/internal/store"
)

// InMemoryPetRepository owns the pet table. All public operations take the
// repository lock, so resolve-mutate-store sequences are atomic with respect
// to concurrent callers.
type InMemoryPetRepository struct {
	mu   sync.RWMutex
	pets *store.EntityStore[int64, pet.Pet]
}

// NewInMemoryPetRepository creates a pet repository over the given table.
func NewInMemoryPetRepository(pets *store.EntityStore[int64, pet.Pet]) *InMemoryPetRepository {
	return &InMemoryPetRepository{pets: pets}
}

// FindAll returns a snapshot of every pet in ascending id order.
func (r *InMemoryPetRepository) FindAll(_ context.Context) []pet.Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pets.All()
}

// FindByID returns the pet with the given id.
func (r *InMemoryPetRepository) FindByID(_ context.Context, id int64) (*pet.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findByID(id)
}

// Save stores or fully replaces the pet keyed by its id.
func (r *InMemoryPetRepository) Save(_ context.Context, p pet.Pet) *pet.Pet {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := r.pets.Put(p.ID, p)
	return &stored
}

// Update resolves the existing pet by id and overwrites every field except
// the id. It never creates on miss.
func (r *InMemoryPetRepository) Update(_ context.Context, p pet.Pet) (*pet.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, err := r.findByID(p.ID)
	if err != nil {
		return nil, err
	}
	existing.Name = p.Name
	existing.Category = p.Category
	existing.PhotoURLs = p.PhotoURLs
	existing.Tags = p.Tags
	existing.Status = p.Status
	updated := r.pets.Put(existing.ID, *existing)
	return &updated, nil
}

// DeleteByID resolves the pet by id and removes it.
func (r *InMemoryPetRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, err := r.findByID(id)
	if err != nil {
		return err
	}
	r.pets.Remove(existing.ID)
	return nil
}

// FindByStatuses returns every pet whose status is in statuses, in the same
// relative order as FindAll. An empty set yields an empty result.
func (r *InMemoryPetRepository) FindByStatuses(_ context.Context, statuses []pet.Status) []pet.Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]pet.Pet, 0)
	for _, p := range r.pets.All() {
		for _, s := range statuses {
			if p.Status == s {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

// FindByTags returns every pet with at least one tag named in tagNames
// (OR semantics). Empty input is not validated here; that rule belongs to
// the service layer.
func (r *InMemoryPetRepository) FindByTags(_ context.Context, tagNames []string) []pet.Pet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]pet.Pet, 0)
	for _, p := range r.pets.All() {
		if p.HasAnyTag(tagNames) {
			matched = append(matched, p)
		}
	}
	return matched
}

func (r *InMemoryPetRepository) findByID(id int64) (*pet.Pet, error) {
	p, ok := r.pets.Get(id)
	if !ok {
		return nil, domain.NewNotFoundError(domain.PetNotFoundMsg, id)
	}
	return &p, nil
}
