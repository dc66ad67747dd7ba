package model

import (
	"time"
)

const (
	UserTypeIndividual = "individual"
	UserTypeGym        = "gym"
	UserTypeBrand      = "brand"
)

// ValidUserType reports whether t is one of the three account kinds.
func ValidUserType(t string) bool {
	return t == UserTypeIndividual || t == UserTypeGym || t == UserTypeBrand
}

type User struct {
	ID                  uint64    `gorm:"primaryKey" json:"id"`
	ExternalID          string    `gorm:"type:varchar(128);uniqueIndex:idx_external_id" json:"-"`
	Username            string    `gorm:"type:varchar(50);uniqueIndex:idx_username" json:"username"`
	Email               *string   `gorm:"type:varchar(255)" json:"email,omitempty"`
	UserType            string    `gorm:"type:varchar(16);not null;default:'individual'" json:"userType"`
	FollowerCount       int64     `gorm:"not null;default:0" json:"followerCount"`
	FollowingCount      int64     `gorm:"not null;default:0" json:"followingCount"`
	OnboardingCompleted bool      `gorm:"type:tinyint(1);not null;default:0" json:"onboardingCompleted"`
	CreatedAt           time.Time `json:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
