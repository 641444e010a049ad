package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"garage_api/internal/domain/entities"
	"garage_api/internal/domain/status"
	"garage_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound          = errors.New("client not found")
	ErrInvalidClientID         = errors.New("invalid client id")
	ErrInvalidClientName       = errors.New("invalid client name")
	ErrUnknownRepairStatus     = errors.New("unknown repair status")
	ErrInvalidStatusTransition = errors.New("invalid repair status transition")
)

// StatusChange is the outcome of a repair status update. InvoiceSuggested is
// advisory: it tells the caller to offer invoice generation, nothing more.
type StatusChange struct {
	Client           entities.Client
	InvoiceSuggested bool
}

// IClientUseCase exposes vehicle repair job operations.

type IClientUseCase interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	UpdateStatus(ctx context.Context, id string, newStatus entities.RepairStatus) (StatusChange, error)
}

type ClientUseCase struct {
	repo interfaces.IClientRepository
}

var _ IClientUseCase = (*ClientUseCase)(nil)

func NewClientUseCase(repo interfaces.IClientRepository) *ClientUseCase {
	return &ClientUseCase{repo: repo}
}

// Create registers a job at vehicle drop-off. New jobs always start waiting.
func (u *ClientUseCase) Create(ctx context.Context, c entities.Client) (entities.Client, error) {
	c.ClientName = strings.TrimSpace(c.ClientName)
	if c.ClientName == "" {
		return entities.Client{}, ErrInvalidClientName
	}

	now := time.Now().UTC()
	c.ID = uuid.NewString()
	c.RepairStatus = entities.RepairStatusWaiting
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	c.UpdatedAt = now

	return u.repo.Create(ctx, c)
}

func (u *ClientUseCase) GetByID(ctx context.Context, id string) (entities.Client, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Client{}, ErrInvalidClientID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Client{}, err
	}
	if c.ID == "" {
		return entities.Client{}, ErrClientNotFound
	}
	return c, nil
}

func (u *ClientUseCase) List(ctx context.Context) ([]entities.Client, error) {
	return u.repo.List(ctx)
}

// UpdateStatus advances the repair lifecycle. The transition is validated
// against the monotonic lifecycle; the returned StatusChange carries the
// invoice-generation advisory for transitions into completed/delivered.
func (u *ClientUseCase) UpdateStatus(ctx context.Context, id string, newStatus entities.RepairStatus) (StatusChange, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return StatusChange{}, ErrInvalidClientID
	}
	if !isKnownRepairStatus(newStatus) {
		return StatusChange{}, ErrUnknownRepairStatus
	}

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return StatusChange{}, err
	}
	if current.ID == "" {
		return StatusChange{}, ErrClientNotFound
	}

	if !status.CanTransition(current.RepairStatus, newStatus) {
		return StatusChange{}, ErrInvalidStatusTransition
	}

	updated, err := u.repo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		return StatusChange{}, err
	}
	if updated.ID == "" {
		return StatusChange{}, ErrClientNotFound
	}

	return StatusChange{
		Client:           updated,
		InvoiceSuggested: status.ShouldCreateInvoice(current.RepairStatus, newStatus),
	}, nil
}

func isKnownRepairStatus(s entities.RepairStatus) bool {
	switch s {
	case entities.RepairStatusWaiting,
		entities.RepairStatusInProgress,
		entities.RepairStatusCompleted,
		entities.RepairStatusDelivered,
		entities.RepairStatusCancelled:
		return true
	}
	return false
}
