package response

import (
	"time"

	"wardrobe-rental/internal/data/entity"
)

type ProductResponse struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	SKU       string               `json:"sku"`
	Price     float64              `json:"price"`
	Status    entity.ProductStatus `json:"status"`
	ImageURL  *string              `json:"image_url,omitempty"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func ProductToResponse(p *entity.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID.String(),
		Name:      p.Name,
		SKU:       p.SKU,
		Price:     p.Price,
		Status:    p.Status,
		ImageURL:  p.ImageURL,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
