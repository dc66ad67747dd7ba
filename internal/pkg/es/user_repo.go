package es

import (
	"context"
	"errors"
	log "log/slog"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/versiontype"
	"github.com/goccy/go-json"
)

type UserRepo interface {
	IndexUser(ctx context.Context, user *UserES, version int64) error
	DeleteUser(ctx context.Context, id uint64) error
	SearchUsers(ctx context.Context, query string, userType string, from, size int) ([]*UserES, error)
}

type UserRepoImpl struct {
}

func NewUserRepo() UserRepo {
	return &UserRepoImpl{}
}

func (s *UserRepoImpl) IndexUser(ctx context.Context, user *UserES, version int64) error {
	docID := strconv.FormatUint(user.ID, 10)

	_, err := Client.Index(UserIndex).
		Id(docID).
		Document(user).
		Version(strconv.FormatInt(version, 10)).
		VersionType(versiontype.External).
		Do(ctx)

	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == ConflictCode {
				log.Warn("Version conflict detected, skipping old data",
					"user_id", user.ID,
					"version", version)
				return nil
			}
		}
		return err
	}

	return nil
}

func (s *UserRepoImpl) DeleteUser(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)
	_, err := Client.Delete(UserIndex, docID).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				log.Warn("User already deleted or not found in ES", "id", id)
				return nil
			}
		}
		return err
	}
	return nil
}

// SearchUsers matches the username prefix-ish, optionally narrowed to one
// account kind, most-followed first.
func (s *UserRepoImpl) SearchUsers(ctx context.Context, query string, userType string, from, size int) ([]*UserES, error) {
	must := []types.Query{
		{
			Match: map[string]types.MatchQuery{
				"username": {Query: query, Fuzziness: "AUTO"},
			},
		},
	}

	var filter []types.Query
	if userType != "" {
		filter = append(filter, types.Query{
			Term: map[string]types.TermQuery{
				"user_type": {Value: userType},
			},
		})
	}

	resp, err := Client.Search().
		Index(UserIndex).
		Query(&types.Query{
			Bool: &types.BoolQuery{
				Must:   must,
				Filter: filter,
			},
		}).
		Sort(types.SortOptions{
			SortOptions: map[string]types.FieldSort{
				"_score":         {Order: &sortorder.Desc},
				"follower_count": {Order: &sortorder.Desc},
			},
		}).
		From(from).
		Size(size).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*UserES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var user UserES
		if err = json.Unmarshal(hit.Source_, &user); err != nil {
			continue
		}
		results = append(results, &user)
	}
	return results, nil
}
