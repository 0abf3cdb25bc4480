package repository

import "gorm.io/gorm"

// Repositories is the data-access layer handed to the services.
type Repositories struct {
	Order *OrderRepository
}

func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Order: NewOrderRepository(db),
	}
}
