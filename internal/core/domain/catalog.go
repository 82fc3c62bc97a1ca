package domain

import "time"

// Product is a read-only catalog item.
type Product struct {
	SKU         string  `json:"sku" bson:"_id"`
	Name        string  `json:"name" bson:"name"`
	Category    string  `json:"category" bson:"category"`
	Price       float64 `json:"price" bson:"price"`
	Image       string  `json:"image" bson:"image"`
	Description string  `json:"description" bson:"description"`
}

// Order is a past purchase a return request can reference. Immutable
// reference data; eligibility windows are informational in this scope.
type Order struct {
	ID             string    `json:"id" bson:"_id"`
	ClientEmail    string    `json:"client_email" bson:"client_email"`
	ProductSKU     string    `json:"product_sku" bson:"product_sku"`
	PurchaseDate   time.Time `json:"purchase_date" bson:"purchase_date"`
	Status         string    `json:"status" bson:"status"`
	ReturnDeadline time.Time `json:"return_deadline" bson:"return_deadline"`
}
