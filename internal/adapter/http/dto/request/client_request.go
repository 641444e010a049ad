package request

import (
	"strings"
	"time"

	"garage_api/internal/domain/entities"
)

type CarDetailsRequest struct {
	Make  string `json:"make"`
	Model string `json:"model"`
	Year  int    `json:"year"`
}

// ClientRequest is the payload for registering a vehicle repair job.
type ClientRequest struct {
	ClientName        string             `json:"client_name" binding:"required"`
	CreatedAt         *time.Time         `json:"created_at"`
	DeliveryDate      *time.Time         `json:"delivery_date"`
	EstimatedDuration int                `json:"estimated_duration"`
	IssueDescription  string             `json:"issue_description"`
	CarDetails        *CarDetailsRequest `json:"car_details"`
	CreatedBy         string             `json:"created_by"`
}

func (r ClientRequest) ToEntity() entities.Client {
	c := entities.Client{
		ClientName:        strings.TrimSpace(r.ClientName),
		DeliveryDate:      r.DeliveryDate,
		EstimatedDuration: r.EstimatedDuration,
		IssueDescription:  r.IssueDescription,
		CreatedBy:         r.CreatedBy,
	}
	if r.CreatedAt != nil {
		c.CreatedAt = *r.CreatedAt
	}
	if r.CarDetails != nil {
		c.CarDetails = &entities.CarDetails{Make: r.CarDetails.Make, Model: r.CarDetails.Model, Year: r.CarDetails.Year}
	}
	return c
}

// ClientStatusRequest carries a repair status change.
type ClientStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r ClientStatusRequest) ResolveStatus() entities.RepairStatus {
	return entities.RepairStatus(strings.TrimSpace(strings.ToLower(r.Status)))
}
