package order

import "time"

// Status represents the progression of a purchase order.
type Status string

const (
	StatusPlaced    Status = "PLACED"
	StatusApproved  Status = "APPROVED"
	StatusDelivered Status = "DELIVERED"
)

// IsValid reports whether s is a known order status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPlaced, StatusApproved, StatusDelivered:
		return true
	}
	return false
}

// Order is a purchase order for a pet. PetID must resolve to a live pet at
// the moment the order is saved or updated; it is not re-validated afterward.
type Order struct {
	ID       int64      `json:"id" binding:"required,gt=0"`
	PetID    int64      `json:"petId" binding:"required,gt=0"`
	Quantity int32      `json:"quantity" binding:"required,gt=0"`
	ShipDate *time.Time `json:"shipDate,omitempty"`
	Status   Status     `json:"status" binding:"required,oneof=PLACED APPROVED DELIVERED"`
	Complete bool       `json:"complete"`
}
