package api

// LineItemRequest is one entry of CreateBillRequest.Items
type LineItemRequest struct {
	Name     string  `json:"name"`
	Quantity int     `json:"qty"`
	Price    float64 `json:"price"`
}

// CreateBillRequest is the body of POST /bill. Field names match bill.Bill so
// copier can map them; the JSON names are the ones the storefront sends.
type CreateBillRequest struct {
	ShippingAddress string            `json:"address"`
	CustomerName    string            `json:"name"`
	CustomerEmail   string            `json:"email"`
	CustomerPhone   string            `json:"phone"`
	BillingInfo     string            `json:"bill"`
	Comment         string            `json:"comment"`
	PaymentMethod   string            `json:"metodPayment"`
	Status          string            `json:"status"`
	Total           float64           `json:"total"`
	Discount        float64           `json:"discount"`
	Tax             float64           `json:"tax"`
	Shipment        float64           `json:"shipment"`
	Items           []LineItemRequest `json:"products"`
	TrackingCode    string            `json:"billCode"`
}

type CreateBillResponse struct {
	Sent         bool   `json:"sent"`
	Message      string `json:"message,omitempty"`
	BillID       string `json:"billId,omitempty"`
	TrackingCode string `json:"trackingCode,omitempty"`
}
