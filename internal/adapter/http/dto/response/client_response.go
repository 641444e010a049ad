package response

import (
	"time"

	"garage_api/internal/domain/entities"
	"garage_api/internal/domain/status"
)

type CarDetailsResponse struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

type ClientResponse struct {
	ID                string              `json:"id"`
	ClientName        string              `json:"client_name"`
	CreatedAt         time.Time           `json:"created_at"`
	RepairStatus      string              `json:"repair_status"`
	StatusColor       string              `json:"status_color"`
	DeliveryDate      *time.Time          `json:"delivery_date,omitempty"`
	EstimatedDuration int                 `json:"estimated_duration,omitempty"`
	IssueDescription  string              `json:"issue_description,omitempty"`
	CarDetails        *CarDetailsResponse `json:"car_details,omitempty"`
	CreatedBy         string              `json:"created_by,omitempty"`
	UpdatedAt         time.Time           `json:"updated_at"`
}

// ClientStatusResponse is returned by status updates. InvoiceSuggested asks
// the frontend to offer invoice generation; it never creates one.
type ClientStatusResponse struct {
	Client           ClientResponse `json:"client"`
	InvoiceSuggested bool           `json:"invoice_suggested"`
}

func FromClient(c entities.Client) ClientResponse {
	res := ClientResponse{
		ID:                c.ID,
		ClientName:        c.ClientName,
		CreatedAt:         c.CreatedAt,
		RepairStatus:      string(c.RepairStatus),
		StatusColor:       string(status.Color(string(c.RepairStatus), status.DomainRepair)),
		DeliveryDate:      c.DeliveryDate,
		EstimatedDuration: c.EstimatedDuration,
		IssueDescription:  c.IssueDescription,
		CreatedBy:         c.CreatedBy,
		UpdatedAt:         c.UpdatedAt,
	}
	if c.CarDetails != nil {
		res.CarDetails = &CarDetailsResponse{Make: c.CarDetails.Make, Model: c.CarDetails.Model, Year: c.CarDetails.Year}
	}
	return res
}

func FromClients(clients []entities.Client) []ClientResponse {
	out := make([]ClientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, FromClient(c))
	}
	return out
}
