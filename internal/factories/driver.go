package factories

import (
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
	"github.com/quickeats/dispatchsim/internal/models"
)

var fake = faker.New()

var vehicleTypes = []string{"bicycle", "scooter", "motorbike", "car"}

type DriverFactory struct{}

// CreateDriver produces one roster entry. Roster data is cosmetic; the
// queueing model treats all drivers as interchangeable.
func (df *DriverFactory) CreateDriver() *models.Driver {
	return &models.Driver{
		ID:          cuid.New(),
		Name:        fake.Person().Name(),
		VehicleType: vehicleTypes[fake.IntBetween(0, len(vehicleTypes)-1)],
	}
}

// CreateRoster builds a fleet of the given size.
func (df *DriverFactory) CreateRoster(size int) []*models.Driver {
	roster := make([]*models.Driver, size)
	for i := range roster {
		roster[i] = df.CreateDriver()
	}
	return roster
}
