package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")
var ErrCategoryNotFound = errors.New("category not found")

// Category is a catalog node. ParentCategoryID of zero means a root category;
// the parent is resolved from the local store at read time, never embedded.
type Category struct {
	ID               int    `json:"category_id" bson:"_id,omitempty"`
	Title            string `json:"category_title" bson:"title"`
	ImageURL         string `json:"image_url,omitempty" bson:"image_url,omitempty"`
	ParentCategoryID int    `json:"parent_category_id,omitempty" bson:"parent_category_id,omitempty"`
}

// Product is a sellable catalog item referencing its category by id.
type Product struct {
	ID         int     `json:"product_id" bson:"_id,omitempty"`
	Title      string  `json:"product_title" bson:"title"`
	ImageURL   string  `json:"image_url,omitempty" bson:"image_url,omitempty"`
	SKU        string  `json:"sku" bson:"sku"`
	PriceUnit  float64 `json:"price_unit" bson:"price_unit"`
	Quantity   int     `json:"quantity" bson:"quantity"`
	CategoryID int     `json:"category_id,omitempty" bson:"category_id,omitempty"`
}
