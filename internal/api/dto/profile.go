package dto

import "time"

// IndividualProfileDTO is the individual variant. All optional fields are
// pointers so partial updates can tell "absent" from "zero".
type IndividualProfileDTO struct {
	UserID             uint64    `json:"user_id"`
	HeightCM           *float64  `json:"height_cm,omitempty" validate:"omitempty,gt=0,lt=300"`
	WeightKG           *float64  `json:"weight_kg,omitempty" validate:"omitempty,gt=0,lt=500"`
	Bio                *string   `json:"bio,omitempty" validate:"omitempty,max=500"`
	PersonalRecords    *string   `json:"personal_records,omitempty"`
	Experience         *string   `json:"experience,omitempty"`
	Certifications     *string   `json:"certifications,omitempty"`
	OffersTraining     *bool     `json:"offers_training,omitempty"`
	ActivityScore      int64     `json:"activity_score"`
	LastActivityUpdate time.Time `json:"last_activity_update"`
}

// GymProfileDTO is the gym variant.
type GymProfileDTO struct {
	UserID          uint64     `json:"user_id"`
	BusinessName    *string    `json:"business_name,omitempty" validate:"omitempty,min=1,max=120"`
	Address         *string    `json:"address,omitempty" validate:"omitempty,max=255"`
	Phone           *string    `json:"phone,omitempty" validate:"omitempty,max=30"`
	Website         *string    `json:"website,omitempty" validate:"omitempty,max=255"`
	OpeningHours    *string    `json:"opening_hours,omitempty"`
	MembershipPlans *string    `json:"membership_plans,omitempty"`
	MemberCount     *int       `json:"member_count,omitempty" validate:"omitempty,min=0"`
	Verified        bool       `json:"verified"`
	VerifiedAt      *time.Time `json:"verified_at,omitempty"`
}

// BrandProfileDTO is the brand variant.
type BrandProfileDTO struct {
	UserID       uint64     `json:"user_id"`
	BusinessName *string    `json:"business_name,omitempty" validate:"omitempty,min=1,max=120"`
	Website      *string    `json:"website,omitempty" validate:"omitempty,max=255"`
	Description  *string    `json:"description,omitempty" validate:"omitempty,max=500"`
	Partnerships *string    `json:"partnerships,omitempty"`
	Campaigns    *string    `json:"campaigns,omitempty"`
	Verified     bool       `json:"verified"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`
}

// UserWithProfileDTO bundles the account with whichever variant it carries.
type UserWithProfileDTO struct {
	User              *UserDTO              `json:"user"`
	IndividualProfile *IndividualProfileDTO `json:"individual_profile,omitempty"`
	GymProfile        *GymProfileDTO        `json:"gym_profile,omitempty"`
	BrandProfile      *BrandProfileDTO      `json:"brand_profile,omitempty"`
}
