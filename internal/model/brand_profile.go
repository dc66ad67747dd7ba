package model

import "time"

type BrandProfile struct {
	UserID       uint64     `gorm:"primaryKey" json:"userId"`
	BusinessName string     `gorm:"type:varchar(120);not null" json:"businessName"`
	Website      *string    `gorm:"type:varchar(255)" json:"website,omitempty"`
	Description  *string    `gorm:"type:varchar(500)" json:"description,omitempty"`
	Partnerships *string    `gorm:"type:json" json:"partnerships,omitempty"`
	Campaigns    *string    `gorm:"type:json" json:"campaigns,omitempty"`
	Verified     bool       `gorm:"type:tinyint(1);not null;default:0" json:"verified"`
	VerifiedAt   *time.Time `json:"verifiedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func (BrandProfile) TableName() string {
	return "brand_profiles"
}
