package services

import (
	"fmt"

	"github.com/franciscosanchezn/gin-pizza-restaurants-api/internal/models"
)

// requireID rejects the zero id up front; keys start at 1 so no row can match it
func requireID(entity string, id uint) error {
	if id == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, models.ErrNotFound)
	}
	return nil
}
