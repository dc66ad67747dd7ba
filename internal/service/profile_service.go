package service

import (
	"Stride/internal/api/dto"
	"Stride/internal/model"
	"Stride/internal/repository"
	"context"
	"time"
)

type ProfileService interface {
	CreateIndividualProfile(ctx context.Context, userID uint64, profile *dto.IndividualProfileDTO) error
	CreateGymProfile(ctx context.Context, userID uint64, profile *dto.GymProfileDTO) error
	CreateBrandProfile(ctx context.Context, userID uint64, profile *dto.BrandProfileDTO) error
	UpdateIndividualProfile(ctx context.Context, userID uint64, profile *dto.IndividualProfileDTO) error
	UpdateGymProfile(ctx context.Context, userID uint64, profile *dto.GymProfileDTO) error
	UpdateBrandProfile(ctx context.Context, userID uint64, profile *dto.BrandProfileDTO) error
}

type ProfileServiceImpl struct {
	userRepo    repository.UserRepo
	profileRepo repository.ProfileRepo
}

func NewProfileService(userRepo repository.UserRepo, profileRepo repository.ProfileRepo) ProfileService {
	return &ProfileServiceImpl{userRepo: userRepo, profileRepo: profileRepo}
}

// requireKind loads the user and checks the profile variant being touched
// matches the account type the user registered with.
func (s *ProfileServiceImpl) requireKind(ctx context.Context, userID uint64, userType string) (*model.User, error) {
	user, err := s.userRepo.GetUserById(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.UserType != userType {
		return nil, ErrProfileKindMismatch
	}
	return user, nil
}

func (s *ProfileServiceImpl) completeOnboarding(ctx context.Context, user *model.User) error {
	if user.OnboardingCompleted {
		return nil
	}
	return s.userRepo.UpdateUser(ctx, user.ID, map[string]interface{}{
		"onboarding_completed": true,
	})
}

func (s *ProfileServiceImpl) CreateIndividualProfile(ctx context.Context, userID uint64, profile *dto.IndividualProfileDTO) error {
	user, err := s.requireKind(ctx, userID, model.UserTypeIndividual)
	if err != nil {
		return err
	}

	existing, err := s.profileRepo.GetIndividualProfile(ctx, userID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrProfileExists
	}

	now := time.Now()
	row := &model.IndividualProfile{
		UserID:             userID,
		HeightCM:           profile.HeightCM,
		WeightKG:           profile.WeightKG,
		Bio:                profile.Bio,
		PersonalRecords:    profile.PersonalRecords,
		Experience:         profile.Experience,
		Certifications:     profile.Certifications,
		LastActivityUpdate: now,
		CreatedAt:          now,
	}
	if profile.OffersTraining != nil {
		row.OffersTraining = *profile.OffersTraining
	}
	if err = s.profileRepo.CreateIndividualProfile(ctx, row); err != nil {
		return err
	}
	return s.completeOnboarding(ctx, user)
}

func (s *ProfileServiceImpl) CreateGymProfile(ctx context.Context, userID uint64, profile *dto.GymProfileDTO) error {
	user, err := s.requireKind(ctx, userID, model.UserTypeGym)
	if err != nil {
		return err
	}
	if profile.BusinessName == nil || *profile.BusinessName == "" {
		return ErrParamInvalid
	}

	existing, err := s.profileRepo.GetGymProfile(ctx, userID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrProfileExists
	}

	row := &model.GymProfile{
		UserID:          userID,
		BusinessName:    *profile.BusinessName,
		Address:         profile.Address,
		Phone:           profile.Phone,
		Website:         profile.Website,
		OpeningHours:    profile.OpeningHours,
		MembershipPlans: profile.MembershipPlans,
		CreatedAt:       time.Now(),
	}
	if profile.MemberCount != nil {
		row.MemberCount = *profile.MemberCount
	}
	if err = s.profileRepo.CreateGymProfile(ctx, row); err != nil {
		return err
	}
	return s.completeOnboarding(ctx, user)
}

func (s *ProfileServiceImpl) CreateBrandProfile(ctx context.Context, userID uint64, profile *dto.BrandProfileDTO) error {
	user, err := s.requireKind(ctx, userID, model.UserTypeBrand)
	if err != nil {
		return err
	}
	if profile.BusinessName == nil || *profile.BusinessName == "" {
		return ErrParamInvalid
	}

	existing, err := s.profileRepo.GetBrandProfile(ctx, userID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrProfileExists
	}

	row := &model.BrandProfile{
		UserID:       userID,
		BusinessName: *profile.BusinessName,
		Website:      profile.Website,
		Description:  profile.Description,
		Partnerships: profile.Partnerships,
		Campaigns:    profile.Campaigns,
		CreatedAt:    time.Now(),
	}
	if err = s.profileRepo.CreateBrandProfile(ctx, row); err != nil {
		return err
	}
	return s.completeOnboarding(ctx, user)
}

func (s *ProfileServiceImpl) UpdateIndividualProfile(ctx context.Context, userID uint64, profile *dto.IndividualProfileDTO) error {
	if _, err := s.requireKind(ctx, userID, model.UserTypeIndividual); err != nil {
		return err
	}

	existing, err := s.profileRepo.GetIndividualProfile(ctx, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProfileNotFound
	}

	fields := map[string]interface{}{}
	if profile.HeightCM != nil {
		fields["height_cm"] = *profile.HeightCM
	}
	if profile.WeightKG != nil {
		fields["weight_kg"] = *profile.WeightKG
	}
	if profile.Bio != nil {
		fields["bio"] = *profile.Bio
	}
	if profile.PersonalRecords != nil {
		fields["personal_records"] = *profile.PersonalRecords
	}
	if profile.Experience != nil {
		fields["experience"] = *profile.Experience
	}
	if profile.Certifications != nil {
		fields["certifications"] = *profile.Certifications
	}
	if profile.OffersTraining != nil {
		fields["offers_training"] = *profile.OffersTraining
	}
	if len(fields) == 0 {
		return ErrProfileNoChanges
	}

	return s.profileRepo.UpdateIndividualProfile(ctx, userID, fields)
}

func (s *ProfileServiceImpl) UpdateGymProfile(ctx context.Context, userID uint64, profile *dto.GymProfileDTO) error {
	if _, err := s.requireKind(ctx, userID, model.UserTypeGym); err != nil {
		return err
	}

	existing, err := s.profileRepo.GetGymProfile(ctx, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProfileNotFound
	}

	fields := map[string]interface{}{}
	if profile.BusinessName != nil {
		fields["business_name"] = *profile.BusinessName
	}
	if profile.Address != nil {
		fields["address"] = *profile.Address
	}
	if profile.Phone != nil {
		fields["phone"] = *profile.Phone
	}
	if profile.Website != nil {
		fields["website"] = *profile.Website
	}
	if profile.OpeningHours != nil {
		fields["opening_hours"] = *profile.OpeningHours
	}
	if profile.MembershipPlans != nil {
		fields["membership_plans"] = *profile.MembershipPlans
	}
	if profile.MemberCount != nil {
		fields["member_count"] = *profile.MemberCount
	}
	if len(fields) == 0 {
		return ErrProfileNoChanges
	}

	return s.profileRepo.UpdateGymProfile(ctx, userID, fields)
}

func (s *ProfileServiceImpl) UpdateBrandProfile(ctx context.Context, userID uint64, profile *dto.BrandProfileDTO) error {
	if _, err := s.requireKind(ctx, userID, model.UserTypeBrand); err != nil {
		return err
	}

	existing, err := s.profileRepo.GetBrandProfile(ctx, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrProfileNotFound
	}

	fields := map[string]interface{}{}
	if profile.BusinessName != nil {
		fields["business_name"] = *profile.BusinessName
	}
	if profile.Website != nil {
		fields["website"] = *profile.Website
	}
	if profile.Description != nil {
		fields["description"] = *profile.Description
	}
	if profile.Partnerships != nil {
		fields["partnerships"] = *profile.Partnerships
	}
	if profile.Campaigns != nil {
		fields["campaigns"] = *profile.Campaigns
	}
	if len(fields) == 0 {
		return ErrProfileNoChanges
	}

	return s.profileRepo.UpdateBrandProfile(ctx, userID, fields)
}
