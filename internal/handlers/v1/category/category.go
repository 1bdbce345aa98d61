package category

import "github.com/carson-networks/finance-server/internal/service"

// Category is the API response model for a category.
type Category struct {
	ID     int64  `json:"id" doc:"Category id"`
	Name   string `json:"nombre" doc:"Category name"`
	Kind   string `json:"tipo" enum:"ingreso,gasto" doc:"Category kind"`
	Color  string `json:"color" doc:"Hex color, e.g. #FF6B35"`
	UserID int64  `json:"usuario_id" doc:"Owning user id"`
}

// MessageResponse confirms an operation that returns no entity.
type MessageResponse struct {
	Message string `json:"message" doc:"Confirmation message"`
}

func categoryFromService(c service.Category) Category {
	return Category{
		ID:     c.ID,
		Name:   c.Name,
		Kind:   string(c.Kind),
		Color:  c.Color,
		UserID: c.UserID,
	}
}
