package bill

import (
	"time"

	"github.com/google/uuid"
)

// LineItem is one ordered product as the customer submitted it
type LineItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"qty"`
	Price    float64 `json:"price"`
}

// Bill is a placed order
type Bill struct {
	ID              uuid.UUID  `json:"id"`
	ShippingAddress string     `json:"address"`
	CustomerName    string     `json:"name"`
	CustomerEmail   string     `json:"email"`
	CustomerPhone   string     `json:"phone"`
	BillingInfo     string     `json:"bill"`
	Comment         string     `json:"comment"`
	PaymentMethod   string     `json:"paymentMethod"`
	Status          string     `json:"status"`
	Total           float64    `json:"total"`
	Discount        float64    `json:"discount"`
	Tax             float64    `json:"tax"`
	Shipment        float64    `json:"shipment"`
	Items           []LineItem `json:"items"`
	TrackingCode    string     `json:"trackingCode"`
	CreatedAt       time.Time  `json:"createdAt"`
}
