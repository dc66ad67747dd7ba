package service

import (
	"Stride/internal/api/dto"
	"Stride/internal/model"
	"Stride/internal/pkg/es"
	"context"
)

type SearchService interface {
	SearchUsers(ctx context.Context, query string, userType string, from, size int) ([]*dto.SearchUserDTO, error)
}

type SearchServiceImpl struct {
	userES es.UserRepo
}

func NewSearchService(userES es.UserRepo) SearchService {
	return &SearchServiceImpl{userES: userES}
}

func (s *SearchServiceImpl) SearchUsers(ctx context.Context, query string, userType string, from, size int) ([]*dto.SearchUserDTO, error) {
	if query == "" {
		return nil, ErrParamInvalid
	}
	if userType != "" && !model.ValidUserType(userType) {
		return nil, ErrParamInvalid
	}

	hits, err := s.userES.SearchUsers(ctx, query, userType, from, size)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.SearchUserDTO, 0, len(hits))
	for _, hit := range hits {
		out = append(out, &dto.SearchUserDTO{
			ID:            hit.ID,
			Username:      hit.Username,
			UserType:      hit.UserType,
			FollowerCount: hit.FollowerCount,
		})
	}
	return out, nil
}
