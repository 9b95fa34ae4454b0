package pet

import "context"

// PetRepository defines the operations of the pet table's exclusive owner.
type PetRepository interface {
	FindAll(ctx context.Context) []Pet
	FindByID(ctx context.Context, id int64) (*Pet, error)
	Save(ctx context.Context, p Pet) *Pet
	Update(ctx context.Context, p Pet) (*Pet, error)
	DeleteByID(ctx context.Context, id int64) error
	FindByStatuses(ctx context.Context, statuses []Status) []Pet
	FindByTags(ctx context.Context, tagNames []string) []Pet
}

// PetFinder is the read-only capability handed to collaborators that need to
// resolve pets without a mutable handle on the pet table.
type PetFinder interface {
	FindAll(ctx context.Context) []Pet
	FindByID(ctx context.Context, id int64) (*Pet, error)
}
