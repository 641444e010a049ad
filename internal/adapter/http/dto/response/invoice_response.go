package response

import (
	"time"

	"garage_api/internal/domain/entities"
	"garage_api/internal/domain/status"
)

type CustomerInfoResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type InvoiceResponse struct {
	ID            string                `json:"id"`
	InvoiceNumber string                `json:"invoice_number"`
	CreatedAt     time.Time             `json:"created_at"`
	IssueDate     time.Time             `json:"issue_date,omitempty"`
	CustomerInfo  *CustomerInfoResponse `json:"customer_info,omitempty"`
	ClientID      string                `json:"client_id,omitempty"`
	VehicleInfo   *CarDetailsResponse   `json:"vehicle_info,omitempty"`
	Status        string                `json:"status"`
	StatusColor   string                `json:"status_color"`
	PaymentStatus string                `json:"payment_status"`
	Amount        float64               `json:"amount"`
	CreatedBy     string                `json:"created_by,omitempty"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	res := InvoiceResponse{
		ID:            inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		CreatedAt:     inv.CreatedAt,
		IssueDate:     inv.IssueDate,
		ClientID:      inv.ClientID,
		Status:        string(inv.Status),
		StatusColor:   string(status.Color(string(inv.Status), status.DomainInvoice)),
		PaymentStatus: status.Map(string(inv.Status), status.DomainInvoice, status.DomainPayment),
		Amount:        inv.Amount,
		CreatedBy:     inv.CreatedBy,
		UpdatedAt:     inv.UpdatedAt,
	}
	if inv.CustomerInfo != nil {
		res.CustomerInfo = &CustomerInfoResponse{ID: inv.CustomerInfo.ID, Name: inv.CustomerInfo.Name}
	}
	if inv.VehicleInfo != nil {
		res.VehicleInfo = &CarDetailsResponse{Make: inv.VehicleInfo.Make, Model: inv.VehicleInfo.Model, Year: inv.VehicleInfo.Year}
	}
	return res
}

func FromInvoices(invoices []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, FromInvoice(inv))
	}
	return out
}
