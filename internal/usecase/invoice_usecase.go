package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"garage_api/internal/domain/entities"
	"garage_api/internal/domain/status"
	"garage_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceID     = errors.New("invalid invoice id")
	ErrInvalidInvoiceAmount = errors.New("invalid invoice amount")
	ErrInvoiceAlreadyPaid   = errors.New("invoice already paid")
	ErrInvoiceCancelled     = errors.New("invoice cancelled")
	ErrPaymentNotApproved   = errors.New("payment not approved by provider")
)

// IInvoiceUseCase exposes billing document operations.

type IInvoiceUseCase interface {
	CreateForClient(ctx context.Context, clientID string, amount float64) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	ListForClient(ctx context.Context, clientID string) ([]entities.Invoice, error)
	RegisterPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo       interfaces.IInvoiceRepository
	clientRepo interfaces.IClientRepository
	gateway    interfaces.IPaymentGateway
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, clientRepo interfaces.IClientRepository, gateway interfaces.IPaymentGateway) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, clientRepo: clientRepo, gateway: gateway}
}

// CreateForClient issues an invoice for a repair job. The initial invoice
// status is derived from the job's repair status (completed/delivered jobs
// start pending, earlier states start draft).
func (u *InvoiceUseCase) CreateForClient(ctx context.Context, clientID string, amount float64) (entities.Invoice, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return entities.Invoice{}, ErrInvalidClientID
	}
	if amount <= 0 {
		return entities.Invoice{}, ErrInvalidInvoiceAmount
	}

	client, err := u.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if client.ID == "" {
		return entities.Invoice{}, ErrClientNotFound
	}

	initial := entities.InvoiceStatus(status.Map(string(client.RepairStatus), status.DomainRepair, status.DomainInvoice))
	switch initial {
	case entities.InvoiceStatusDraft, entities.InvoiceStatusPending, entities.InvoiceStatusCancelled:
	default:
		initial = entities.InvoiceStatusDraft
	}

	now := time.Now().UTC()
	inv := entities.Invoice{
		ID:            uuid.NewString(),
		InvoiceNumber: newInvoiceNumber(now),
		CreatedAt:     now,
		IssueDate:     now,
		CustomerInfo:  &entities.CustomerInfo{ID: client.ID, Name: client.ClientName},
		ClientID:      client.ID,
		VehicleInfo:   client.CarDetails,
		Status:        initial,
		Amount:        amount,
		CreatedBy:     client.CreatedBy,
		UpdatedAt:     now,
	}
	return u.repo.Create(ctx, inv)
}

func newInvoiceNumber(now time.Time) string {
	return "INV-" + now.Format("20060102-150405")
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.List(ctx)
}

// ListForClient returns the invoices issued against one repair job.
func (u *InvoiceUseCase) ListForClient(ctx context.Context, clientID string) ([]entities.Invoice, error) {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return nil, ErrInvalidClientID
	}
	return u.repo.ListByClientID(ctx, clientID)
}

// RegisterPayment charges an invoice through the payment gateway and marks it
// paid. The invoice amount in the store is the source of truth for the
// transaction amount; the incoming payload only carries payment method and
// payer details.
func (u *InvoiceUseCase) RegisterPayment(ctx context.Context, invoiceID string, payload json.RawMessage) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	if u.gateway == nil {
		return entities.Invoice{}, errors.New("payment gateway not configured")
	}

	inv, err := u.repo.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	switch inv.Status {
	case entities.InvoiceStatusPaid:
		return entities.Invoice{}, ErrInvoiceAlreadyPaid
	case entities.InvoiceStatusCancelled:
		return entities.Invoice{}, ErrInvoiceCancelled
	}

	enriched := enrichPaymentPayload(payload, inv)

	providerID, providerStatus, _, err := u.gateway.CreatePayment(ctx, enriched)
	if err != nil {
		log.Printf("[invoice][usecase] payment gateway failed invoice_id=%s err=%v", invoiceID, err)
		return entities.Invoice{}, err
	}
	if providerStatus != "approved" {
		log.Printf("[invoice][usecase] payment not approved invoice_id=%s provider_payment_id=%s provider_status=%s", invoiceID, providerID, providerStatus)
		return entities.Invoice{}, ErrPaymentNotApproved
	}
	log.Printf("[invoice][usecase] payment approved invoice_id=%s provider_payment_id=%s", invoiceID, providerID)

	updated, err := u.repo.UpdateStatus(ctx, invoiceID, entities.InvoiceStatusPaid)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}

// enrichPaymentPayload forces the invoice linkage and amount onto the request
// sent to the provider. Malformed payloads are replaced rather than rejected;
// the provider performs its own validation.
func enrichPaymentPayload(payload json.RawMessage, inv entities.Invoice) json.RawMessage {
	m := map[string]any{}
	if len(payload) > 0 && json.Valid(payload) {
		_ = json.Unmarshal(payload, &m)
	}
	if _, ok := m["external_reference"]; !ok {
		m["external_reference"] = inv.ID
	}
	if _, ok := m["description"]; !ok {
		m["description"] = fmt.Sprintf("Invoice %s", inv.InvoiceNumber)
	}
	m["transaction_amount"] = inv.Amount

	b, err := json.Marshal(m)
	if err != nil {
		return payload
	}
	return b
}
