package model

import "time"

const (
	TrainingRequestPending  = "pending"
	TrainingRequestAccepted = "accepted"
	TrainingRequestRejected = "rejected"
)

type TrainingRequest struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	RequesterID uint64    `gorm:"not null;uniqueIndex:idx_requester_trainer" json:"requesterId"`
	TrainerID   uint64    `gorm:"not null;uniqueIndex:idx_requester_trainer;index:idx_trainer_status,priority:1" json:"trainerId"`
	Status      string    `gorm:"type:varchar(16);not null;default:'pending';index:idx_trainer_status,priority:2" json:"status"`
	Message     *string   `gorm:"type:varchar(500)" json:"message,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (TrainingRequest) TableName() string {
	return "training_requests"
}
