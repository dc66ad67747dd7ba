package model

import "time"

type GymProfile struct {
	UserID          uint64     `gorm:"primaryKey" json:"userId"`
	BusinessName    string     `gorm:"type:varchar(120);not null" json:"businessName"`
	Address         *string    `gorm:"type:varchar(255)" json:"address,omitempty"`
	Phone           *string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Website         *string    `gorm:"type:varchar(255)" json:"website,omitempty"`
	OpeningHours    *string    `gorm:"type:json" json:"openingHours,omitempty"`
	MembershipPlans *string    `gorm:"type:json" json:"membershipPlans,omitempty"`
	MemberCount     int        `gorm:"not null;default:0" json:"memberCount"`
	Verified        bool       `gorm:"type:tinyint(1);not null;default:0" json:"verified"`
	VerifiedAt      *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func (GymProfile) TableName() string {
	return "gym_profiles"
}
