package request

import (
	"errors"
	"strings"
)

var ErrInvalidInvoiceAmount = errors.New("invalid invoice amount")

type LaborItemRequest struct {
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type PartItemRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// InvoiceRequest is the payload for issuing an invoice against a repair job.
// The amount may be given directly or itemized; itemized entries win when
// both are present and sum to a positive total.
type InvoiceRequest struct {
	ClientID string             `json:"client_id" binding:"required"`
	Amount   float64            `json:"amount"`
	Labor    []LaborItemRequest `json:"labor"`
	Parts    []PartItemRequest  `json:"parts"`
}

func (r InvoiceRequest) ResolveClientID() string {
	return strings.TrimSpace(r.ClientID)
}

func (r InvoiceRequest) ResolveAmount() (float64, error) {
	total := 0.0
	for _, l := range r.Labor {
		if l.Price > 0 {
			total += l.Price
		}
	}
	for _, p := range r.Parts {
		if p.Price > 0 && p.Quantity > 0 {
			total += p.Price * float64(p.Quantity)
		}
	}
	if total > 0 {
		return total, nil
	}
	if r.Amount > 0 {
		return r.Amount, nil
	}
	return 0, ErrInvalidInvoiceAmount
}
