package pet

import "slices"

// Status represents a pet's availability in the store.
type Status string

const (
	StatusAvailable Status = "AVAILABLE"
	StatusPending   Status = "PENDING"
	StatusSold      Status = "SOLD"
)

// IsValid reports whether s is a known pet status.
func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusPending, StatusSold:
		return true
	}
	return false
}

// Category is the id+name pair a pet belongs to.
type Category struct {
	ID   int64  `json:"id" binding:"required,gt=0"`
	Name string `json:"name" binding:"required"`
}

// Tag is an id+name label attached to a pet.
type Tag struct {
	ID   int64  `json:"id" binding:"required,gt=0"`
	Name string `json:"name" binding:"required"`
}

// Pet is a store pet record, keyed by the caller-supplied ID.
type Pet struct {
	ID       int64    `json:"id" binding:"required,gt=0"`
	Name     string   `json:"name" binding:"required,min=3,max=30"`
	Category Category `json:"category" binding:"required"`
	// PhotoURLs and Tags must be present but may be empty.
	PhotoURLs []string `json:"photoUrls"`
	Tags      []Tag    `json:"tags" binding:"dive"`
	Status    Status   `json:"status" binding:"required,oneof=AVAILABLE PENDING SOLD"`
}

// HasAnyTag reports whether the pet carries at least one tag whose name is
// in names.
func (p *Pet) HasAnyTag(names []string) bool {
	for _, t := range p.Tags {
		if slices.Contains(names, t.Name) {
			return true
		}
	}
	return false
}
