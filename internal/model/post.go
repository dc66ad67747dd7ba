package model

import (
	"time"
)

const (
	PostPrivacyPublic    = "public"
	PostPrivacyFollowers = "followers"
	PostPrivacyPrivate   = "private"
)

func ValidPostPrivacy(p string) bool {
	return p == PostPrivacyPublic || p == PostPrivacyFollowers || p == PostPrivacyPrivate
}

type Post struct {
	ID            uint64    `gorm:"primaryKey" json:"id"`
	UserID        uint64    `gorm:"not null;index:idx_user_id" json:"userId"`
	Content       string    `gorm:"type:text" json:"content"`
	MediaRef      *string   `gorm:"type:varchar(512)" json:"mediaRef,omitempty"` // opaque reference into the external media host
	Privacy       string    `gorm:"type:varchar(16);not null;default:'public'" json:"privacy"`
	Tags          *string   `gorm:"type:json" json:"tags,omitempty"`
	LikesCount    int       `gorm:"not null;default:0" json:"likesCount"`
	CommentsCount int       `gorm:"not null;default:0" json:"commentsCount"`
	IsDeleted     bool      `gorm:"type:tinyint(1);not null;default:0" json:"-"`
	CreatedAt     time.Time `gorm:"index:idx_created_at" json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	User User `gorm:"foreignKey:UserID;references:ID" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}
