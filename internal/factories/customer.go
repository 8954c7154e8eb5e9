package factories

import (
	"math/rand"
	"time"

	"github.com/brewdash/brewdash/internal/models"
	"github.com/jaswdr/faker"
	"github.com/lucsky/cuid"
)

var fake = faker.New()

type CustomerFactory struct{}

// CreateCustomer fabricates a customer who joined within the year before ref.
func (cf *CustomerFactory) CreateCustomer(ref time.Time) *models.Customer {
	return &models.Customer{
		ID:       cuid.New(),
		Name:     fake.Person().Name(),
		Email:    fake.Internet().Email(),
		JoinedAt: ref.AddDate(0, 0, -rand.Intn(365)),
	}
}
