package model

import "time"

const (
	ActivityWorkoutPosted        = "workout_posted"
	ActivityEventCreated         = "event_created"
	ActivityEventJoined          = "event_joined"
	ActivityFollowerGained       = "follower_gained"
	ActivityProfileCompleted     = "profile_completed"
	ActivityWeeklyStreak         = "weekly_streak"
	ActivityMonthlyMilestone     = "monthly_milestone"
	ActivityCommunityInteraction = "community_interaction"
	ActivityAchievementUnlocked  = "achievement_unlocked"
	ActivityManualAdjustment     = "manual_adjustment"
)

var activityKinds = map[string]struct{}{
	ActivityWorkoutPosted:        {},
	ActivityEventCreated:         {},
	ActivityEventJoined:          {},
	ActivityFollowerGained:       {},
	ActivityProfileCompleted:     {},
	ActivityWeeklyStreak:         {},
	ActivityMonthlyMilestone:     {},
	ActivityCommunityInteraction: {},
	ActivityAchievementUnlocked:  {},
	ActivityManualAdjustment:     {},
}

// ValidActivityKind reports whether kind belongs to the closed enumeration.
func ValidActivityKind(kind string) bool {
	_, ok := activityKinds[kind]
	return ok
}

// ActivityTransaction is append-only. Rows are never updated or deleted;
// the ledger is the source of truth for score history.
type ActivityTransaction struct {
	ID          uint64    `gorm:"primaryKey" json:"id"`
	UserID      uint64    `gorm:"not null;index:idx_user_created,priority:1" json:"userId"`
	Kind        string    `gorm:"type:varchar(32);not null" json:"kind"`
	Points      int64     `gorm:"not null" json:"points"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	RelatedID   *uint64   `json:"relatedId,omitempty"`
	Metadata    *string   `gorm:"type:json" json:"metadata,omitempty"`
	CreatedAt   time.Time `gorm:"index:idx_user_created,priority:2;index:idx_created_at" json:"createdAt"`
}

func (ActivityTransaction) TableName() string {
	return "activity_transactions"
}
