package dto

import "time"

// CreateTrainingRequestDTO opens a request toward a trainer.
type CreateTrainingRequestDTO struct {
	TrainerID uint64  `json:"trainer_id" binding:"required"`
	Message   *string `json:"message,omitempty" validate:"omitempty,max=500"`
}

// DecideTrainingRequestDTO accepts or rejects a pending request.
type DecideTrainingRequestDTO struct {
	Accept bool `json:"accept"`
}

// TrainingRequestDTO is one request row.
type TrainingRequestDTO struct {
	ID          uint64    `json:"id"`
	RequesterID uint64    `json:"requester_id"`
	TrainerID   uint64    `json:"trainer_id"`
	Status      string    `json:"status"`
	Message     *string   `json:"message,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
