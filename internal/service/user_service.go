package service

import (
	"Stride/internal/api/dto"
	"Stride/internal/model"
	"Stride/internal/pkg/consts"
	"Stride/internal/pkg/redis"
	"Stride/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
)

const userHomeTTL = time.Minute

type UserService interface {
	GetUserByID(ctx context.Context, id uint64) (*dto.UserDTO, error)
	GetUserWithProfile(ctx context.Context, id uint64) (*dto.UserWithProfileDTO, error)
	UpdateUser(ctx context.Context, id uint64, update *dto.UpdateUserDTO) error
}

type UserServiceImpl struct {
	userRepo    repository.UserRepo
	profileRepo repository.ProfileRepo
}

func NewUserService(userRepo repository.UserRepo, profileRepo repository.ProfileRepo) UserService {
	return &UserServiceImpl{userRepo: userRepo, profileRepo: profileRepo}
}

func (s *UserServiceImpl) GetUserByID(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return toUserDTO(user), nil
}

// GetUserWithProfile returns the account with whichever variant it carries.
// A user who has not completed onboarding may have no profile yet; the
// variant slot stays empty rather than failing. The assembled view is cached
// briefly; user-row changes are invalidated through CDC, profile edits ride
// out the TTL.
func (s *UserServiceImpl) GetUserWithProfile(ctx context.Context, id uint64) (*dto.UserWithProfileDTO, error) {
	cacheKey := consts.UserHomeInfoKey + strconv.FormatUint(id, 10)
	if cached, err := redis.GetValue(ctx, cacheKey); err == nil && cached != "" {
		out := &dto.UserWithProfileDTO{}
		if err = json.Unmarshal([]byte(cached), out); err == nil {
			return out, nil
		}
	}

	out, err := s.buildUserWithProfile(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(out); err == nil {
		if err = redis.SetWithExpiration(ctx, cacheKey, string(data), userHomeTTL); err != nil {
			log.Warn("Failed to cache user home info", "err", err, "user_id", id)
		}
	}
	return out, nil
}

func (s *UserServiceImpl) buildUserWithProfile(ctx context.Context, id uint64) (*dto.UserWithProfileDTO, error) {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	out := &dto.UserWithProfileDTO{User: toUserDTO(user)}

	switch user.UserType {
	case model.UserTypeIndividual:
		profile, err := s.profileRepo.GetIndividualProfile(ctx, id)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			p := &dto.IndividualProfileDTO{}
			if err = copier.Copy(p, profile); err != nil {
				return nil, err
			}
			p.OffersTraining = &profile.OffersTraining
			out.IndividualProfile = p
		}
	case model.UserTypeGym:
		profile, err := s.profileRepo.GetGymProfile(ctx, id)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			p := &dto.GymProfileDTO{}
			if err = copier.Copy(p, profile); err != nil {
				return nil, err
			}
			p.BusinessName = &profile.BusinessName
			p.MemberCount = &profile.MemberCount
			out.GymProfile = p
		}
	case model.UserTypeBrand:
		profile, err := s.profileRepo.GetBrandProfile(ctx, id)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			p := &dto.BrandProfileDTO{}
			if err = copier.Copy(p, profile); err != nil {
				return nil, err
			}
			p.BusinessName = &profile.BusinessName
			out.BrandProfile = p
		}
	}

	return out, nil
}

func (s *UserServiceImpl) UpdateUser(ctx context.Context, id uint64, update *dto.UpdateUserDTO) error {
	user, err := s.userRepo.GetUserById(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	fields := map[string]interface{}{}
	if update.Username != nil && *update.Username != user.Username {
		named, err := s.userRepo.GetUserByUsername(ctx, *update.Username)
		if err != nil {
			return err
		}
		if named != nil {
			return ErrUsernameTaken
		}
		fields["username"] = *update.Username
	}
	if update.Email != nil {
		fields["email"] = *update.Email
	}
	if len(fields) == 0 {
		return ErrProfileNoChanges
	}

	return s.userRepo.UpdateUser(ctx, id, fields)
}

func toUserDTO(user *model.User) *dto.UserDTO {
	return &dto.UserDTO{
		ID:                  user.ID,
		Username:            user.Username,
		Email:               user.Email,
		UserType:            user.UserType,
		FollowerCount:       user.FollowerCount,
		FollowingCount:      user.FollowingCount,
		OnboardingCompleted: user.OnboardingCompleted,
		CreatedAt:           &user.CreatedAt,
	}
}
