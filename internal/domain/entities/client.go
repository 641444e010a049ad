package entities

import "time"

// RepairStatus represents the lifecycle of a vehicle repair job.
//
// Domain notes:
//   - A job is created as "waiting" and advances monotonically through
//     in_progress -> completed -> delivered.
//   - "cancelled" is reachable from any non-terminal state.
//   - "delivered" and "cancelled" are terminal.

type RepairStatus string

const (
	RepairStatusWaiting    RepairStatus = "waiting"
	RepairStatusInProgress RepairStatus = "in_progress"
	RepairStatusCompleted  RepairStatus = "completed"
	RepairStatusDelivered  RepairStatus = "delivered"
	RepairStatusCancelled  RepairStatus = "cancelled"
)

// CarDetails identifies the vehicle attached to a job or invoice.
type CarDetails struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// Client is one vehicle-repair job persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Scheduling-relevant fields:
//   - CreatedAt is the drop-off timestamp.
//   - DeliveryDate, when set, overrides the estimated pick-up date.
//   - EstimatedDuration is in days; zero means "use the default" (3 days).
type Client struct {
	ID                string       `json:"id"`
	ClientName        string       `json:"client_name"`
	CreatedAt         time.Time    `json:"created_at"`
	RepairStatus      RepairStatus `json:"repair_status"`
	DeliveryDate      *time.Time   `json:"delivery_date,omitempty"`
	EstimatedDuration int          `json:"estimated_duration,omitempty"`
	IssueDescription  string       `json:"issue_description,omitempty"`
	CarDetails        *CarDetails  `json:"car_details,omitempty"`
	CreatedBy         string       `json:"created_by,omitempty"`
	UpdatedAt         time.Time    `json:"updated_at"`
}
