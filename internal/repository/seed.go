package repository

import (
	"fmt"
	"time"

	"github.com/petstore-samples/service-petstore/internal/domain/order"
	"github.com/petstore-samples/service-petstore/internal/domain/pet"
	"github.com/petstore-samples/service-petstore/internal/domain/user"
	"github.com/petstore-samples/service-petstore/internal/store"
)

// SeedPets fills the pet table with the three startup records.
func SeedPets(pets *store.EntityStore[int64, pet.Pet]) {
	statuses := []pet.Status{pet.StatusAvailable, pet.StatusPending, pet.StatusSold}
	for i := int64(1); i <= 3; i++ {
		p := pet.Pet{
			ID:   i,
			Name: seedName("Pet", i),
			Category: pet.Category{
				ID:   i,
				Name: seedName("Category", i),
			},
			PhotoURLs: []string{
				seedPhotoURL(2*i - 1),
				seedPhotoURL(2 * i),
			},
			Tags: []pet.Tag{
				{ID: 2*i - 1, Name: seedName("Tag", 2*i-1)},
				{ID: 2 * i, Name: seedName("Tag", 2*i)},
			},
			Status: statuses[i-1],
		}
		pets.Put(p.ID, p)
	}
}

// SeedOrders fills the order table with the three startup records, one per
// seeded pet.
func SeedOrders(orders *store.EntityStore[int64, order.Order]) {
	statuses := []order.Status{order.StatusPlaced, order.StatusApproved, order.StatusDelivered}
	for i := int64(1); i <= 3; i++ {
		shipDate := time.Date(2000, time.January, int(i), 0, 0, 0, 0, time.UTC)
		o := order.Order{
			ID:       i,
			PetID:    i,
			Quantity: 2,
			ShipDate: &shipDate,
			Status:   statuses[i-1],
			Complete: i == 3,
		}
		orders.Put(o.ID, o)
	}
}

// SeedUsers fills the user table with the three startup records, all logged
// out.
func SeedUsers(users *store.EntityStore[int64, user.User]) {
	for i := int64(1); i <= 3; i++ {
		u := user.User{
			ID:        i,
			Username:  seedName("Username", i),
			FirstName: seedName("Firstname", i),
			LastName:  seedName("Lastname", i),
			Email:     seedName("Email", i) + "@email.com",
			Password:  seedName("#Password", i),
			Phone:     seedPhone(i),
			Status:    int32(i),
		}
		users.Put(u.ID, u)
	}
}

func seedName(prefix string, i int64) string {
	return fmt.Sprintf("%s%d", prefix, i)
}

func seedPhotoURL(i int64) string {
	return fmt.Sprintf("https://www.petstore.com/image%d.png", i)
}

func seedPhone(i int64) string {
	return fmt.Sprintf("+40700 000 00%d", i)
}
