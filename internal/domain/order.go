package domain

import "time"

// Order statuses, in fulfilment sequence.
const (
	OrderStatusReceived   = "Received"
	OrderStatusAccepted   = "Accepted"
	OrderStatusDispatched = "Dispatched"
	OrderStatusCompleted  = "Completed"
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusReceived, OrderStatusAccepted, OrderStatusDispatched, OrderStatusCompleted:
		return true
	}
	return false
}

type OrderItem struct {
	Name         string `json:"name" dynamodbav:"name" validate:"required"`
	CartImageURL string `json:"cart_image_url" dynamodbav:"cart_image_url"`
	Brand        string `json:"brand" dynamodbav:"brand"`
	Quantity     int    `json:"quantity" dynamodbav:"quantity" validate:"required,gt=0"`
	Price        int64  `json:"price" dynamodbav:"price" validate:"required,gt=0"` // unit price, cents
	ProductID    string `json:"product" dynamodbav:"product_id" validate:"required"`
}

type ShippingAddress struct {
	Name         string `json:"name" dynamodbav:"name" validate:"required"`
	Email        string `json:"email" dynamodbav:"email" validate:"required,email"`
	Phone        string `json:"phone" dynamodbav:"phone" validate:"required"`
	AddressLine1 string `json:"address_line1" dynamodbav:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2" dynamodbav:"address_line2"`
	City         string `json:"city" dynamodbav:"city" validate:"required"`
	PostalCode   string `json:"postal_code" dynamodbav:"postal_code" validate:"required"`
	Country      string `json:"country" dynamodbav:"country" validate:"required"`
}

type Order struct {
	OrderID         string          `json:"id" dynamodbav:"order_id"`
	UserID          string          `json:"user_id" dynamodbav:"user_id"`
	Items           []OrderItem     `json:"order_items" dynamodbav:"order_items"`
	ShippingAddress ShippingAddress `json:"shipping_address" dynamodbav:"shipping_address"`
	TotalPrice      int64           `json:"total_price" dynamodbav:"total_price"` // cents
	IsPaid          bool            `json:"is_paid" dynamodbav:"is_paid"`
	PaidAt          *time.Time      `json:"paid_at,omitempty" dynamodbav:"paid_at"`
	Status          string          `json:"status" dynamodbav:"status"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty" dynamodbav:"delivered_at"`
	CreatedAt       time.Time       `json:"created" dynamodbav:"created_at"`
	UpdatedAt       time.Time       `json:"updated" dynamodbav:"updated_at"`
}

type CreateOrderRequest struct {
	Items           []OrderItem     `json:"order_items" validate:"required,min=1,dive"`
	ShippingAddress ShippingAddress `json:"shipping_address" validate:"required"`
	TotalPrice      int64           `json:"total_price" validate:"required,gt=0"`
}

type UpdateOrderStatusRequest struct {
	Status      *string    `json:"status"`
	DeliveredAt *time.Time `json:"delivered_at"`
}
