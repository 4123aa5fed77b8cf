package request

type CreateProductRequest struct {
	Name   string  `json:"name" validate:"required,min=1,max=200"`
	SKU    string  `json:"sku" validate:"required,min=1,max=100"`
	Price  float64 `json:"price" validate:"gte=0"`
	Status *string `json:"status,omitempty" validate:"omitempty,oneof='available' 'in laundry' 'archived'"`
}

// UpdateProductRequest carries sparse updates: only non-nil fields change.
type UpdateProductRequest struct {
	Name   *string  `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	SKU    *string  `json:"sku,omitempty" validate:"omitempty,min=1,max=100"`
	Price  *float64 `json:"price,omitempty" validate:"omitempty,gte=0"`
	Status *string  `json:"status,omitempty" validate:"omitempty,oneof='available' 'in laundry' 'archived'"`
}
