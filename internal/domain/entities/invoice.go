package entities

import "time"

// InvoiceStatus represents the billing document lifecycle.

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusPending   InvoiceStatus = "pending"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// PaymentStatus is the settlement view of an invoice.

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusNotPaid PaymentStatus = "not_paid"
	PaymentStatusPartial PaymentStatus = "partial"
)

// CustomerInfo is the structured customer reference on an invoice.
type CustomerInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Invoice is a billing document persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (client_id-index): client_id
//
// Legacy fields:
//   - CustomerName and ClientID are flat fields older records carry instead of
//     CustomerInfo. Resolution order is CustomerInfo first, flat fields second.
type Invoice struct {
	ID            string        `json:"id"`
	InvoiceNumber string        `json:"invoice_number"`
	CreatedAt     time.Time     `json:"created_at"`
	IssueDate     time.Time     `json:"issue_date,omitempty"`
	CustomerInfo  *CustomerInfo `json:"customer_info,omitempty"`
	CustomerName  string        `json:"customer_name,omitempty"`
	ClientID      string        `json:"client_id,omitempty"`
	VehicleInfo   *CarDetails   `json:"vehicle_info,omitempty"`
	Status        InvoiceStatus `json:"status"`
	Amount        float64       `json:"amount"`
	CreatedBy     string        `json:"created_by,omitempty"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
