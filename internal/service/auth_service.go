package service

import (
	"Stride/internal/api/dto"
	"Stride/internal/model"
	"Stride/internal/pkg/security"
	"Stride/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
)

type AuthService interface {
	Register(ctx context.Context, register *dto.RegisterDTO) (*dto.TokenDTO, error)
	Login(ctx context.Context, login *dto.LoginDTO) (*dto.TokenDTO, error)
}

type AuthServiceImpl struct {
	userRepo repository.UserRepo
}

func NewAuthService(userRepo repository.UserRepo) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Register binds an externally-authenticated identity to a fresh account.
// Identity verification happened upstream; here the external subject id is
// trusted and only uniqueness is enforced.
func (s *AuthServiceImpl) Register(ctx context.Context, register *dto.RegisterDTO) (*dto.TokenDTO, error) {
	if !model.ValidUserType(register.UserType) {
		return nil, ErrParamInvalid
	}

	existing, err := s.userRepo.GetUserByExternalID(ctx, register.ExternalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUserExists
	}

	named, err := s.userRepo.GetUserByUsername(ctx, register.Username)
	if err != nil {
		return nil, err
	}
	if named != nil {
		return nil, ErrUsernameTaken
	}

	user := &model.User{
		ExternalID: register.ExternalID,
		Username:   register.Username,
		Email:      register.Email,
		UserType:   register.UserType,
		CreatedAt:  time.Now(),
	}
	if err = s.userRepo.CreateUser(ctx, user); err != nil {
		// the unique indexes settle registration races the pre-checks miss
		if isDuplicateError(err) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return s.issueToken(user)
}

func isDuplicateError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

func (s *AuthServiceImpl) Login(ctx context.Context, login *dto.LoginDTO) (*dto.TokenDTO, error) {
	user, err := s.userRepo.GetUserByExternalID(ctx, login.ExternalID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return s.issueToken(user)
}

func (s *AuthServiceImpl) issueToken(user *model.User) (*dto.TokenDTO, error) {
	token, err := security.GenerateToken(user.ID, user.UserType)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{
		Token:    token,
		UserID:   user.ID,
		UserType: user.UserType,
	}, nil
}
