package interfaces

import (
	"context"

	"garage_api/internal/domain/entities"
)

// IClientRepository abstracts DynamoDB persistence for Client (repair job)
// records.
//
// The garage-service must be able to:
//   - register a job at vehicle drop-off
//   - list jobs for reconciliation and dashboards
//   - advance the repair status (validated by the use case)

type IClientRepository interface {
	Create(ctx context.Context, c entities.Client) (entities.Client, error)
	GetByID(ctx context.Context, id string) (entities.Client, error)
	List(ctx context.Context) ([]entities.Client, error)
	UpdateStatus(ctx context.Context, id string, status entities.RepairStatus) (entities.Client, error)
}
