package dealRepo

import "dealroom/models"

// DealRepository defines methods for deal data access.
type DealRepository interface {
	// GetByID retrieves a deal by its unique ID.
	GetByID(id string) (*models.Deal, error)
	// GetAll retrieves all deals, newest first.
	GetAll() ([]models.Deal, error)
	// GetByIDs retrieves the deals whose IDs are in the given set.
	GetByIDs(ids []string) ([]models.Deal, error)
	// Create inserts a new deal record.
	Create(deal *models.Deal) error
	// Update modifies an existing deal record.
	Update(deal *models.Deal) error
	// Delete removes a deal record by its ID.
	Delete(id string) error
}
