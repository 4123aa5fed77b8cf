package entity

type ProductStatus string

const (
	ProductStatusAvailable ProductStatus = "available"
	ProductStatusInLaundry ProductStatus = "in laundry"
	ProductStatusArchived  ProductStatus = "archived"
)

// Product is a catalog item. Never hard-deleted: removal flips the
// soft-delete flag so old bookings keep their line-item references.
type Product struct {
	Base
	Name     string        `db:"name"`
	SKU      string        `db:"sku"`
	Price    float64       `db:"price"`
	Status   ProductStatus `db:"status"`
	ImageURL *string       `db:"image_url"`
}
