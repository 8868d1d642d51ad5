package domain

import "time"

// Product categories accepted by create/update.
var ProductCategories = []string{"Hoodie", "Tee", "Shorts", "Accessory"}

type Product struct {
	ProductID    string    `json:"id" dynamodbav:"product_id"`
	Name         string    `json:"name" dynamodbav:"name"`
	Price        int64     `json:"price" dynamodbav:"price"` // cents
	Brand        string    `json:"brand" dynamodbav:"brand"`
	Size         string    `json:"size" dynamodbav:"size"`
	Quantity     int       `json:"quantity" dynamodbav:"quantity"`
	MainImageURL string    `json:"main_image_url" dynamodbav:"main_image_url"`
	CartImageURL string    `json:"cart_image_url" dynamodbav:"cart_image_url"`
	Category     string    `json:"category" dynamodbav:"category"`
	IsBestSeller bool      `json:"is_best_seller" dynamodbav:"is_best_seller"`
	InStock      bool      `json:"in_stock" dynamodbav:"-"`
	CreatedAt    time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updated" dynamodbav:"updated_at"`
}

type CreateProductRequest struct {
	Name         string `json:"name" validate:"required"`
	Price        int64  `json:"price" validate:"required,gt=0"` // cents
	Brand        string `json:"brand"`
	Size         string `json:"size"`
	Quantity     int    `json:"quantity" validate:"gte=0"`
	MainImageURL string `json:"main_image_url" validate:"required,url"`
	CartImageURL string `json:"cart_image_url" validate:"required,url"`
	Category     string `json:"category" validate:"required,oneof=Hoodie Tee Shorts Accessory"`
	IsBestSeller bool   `json:"is_best_seller"`
}

type UpdateProductRequest struct {
	Name         *string `json:"name"`
	Price        *int64  `json:"price"`
	Brand        *string `json:"brand"`
	Size         *string `json:"size"`
	Quantity     *int    `json:"quantity"`
	MainImageURL *string `json:"main_image_url"`
	CartImageURL *string `json:"cart_image_url"`
	Category     *string `json:"category"`
	// Not a pointer: the admin UI must be able to clear the flag.
	IsBestSeller bool `json:"is_best_seller"`
}
