package model

import "time"

// IndividualProfile 1:1 with users of type individual. List-shaped fields
// (personal records, experience, certifications) are stored as JSON columns.
type IndividualProfile struct {
	UserID             uint64    `gorm:"primaryKey" json:"userId"`
	HeightCM           *float64  `gorm:"type:decimal(5,2)" json:"heightCm,omitempty"`
	WeightKG           *float64  `gorm:"type:decimal(5,2)" json:"weightKg,omitempty"`
	Bio                *string   `gorm:"type:varchar(500)" json:"bio,omitempty"`
	PersonalRecords    *string   `gorm:"type:json" json:"personalRecords,omitempty"`
	Experience         *string   `gorm:"type:json" json:"experience,omitempty"`
	Certifications     *string   `gorm:"type:json" json:"certifications,omitempty"`
	OffersTraining     bool      `gorm:"type:tinyint(1);not null;default:0" json:"offersTraining"`
	ActivityScore      int64     `gorm:"not null;default:0;index:idx_activity_score" json:"activityScore"`
	LastActivityUpdate time.Time `json:"lastActivityUpdate"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (IndividualProfile) TableName() string {
	return "individual_profiles"
}
