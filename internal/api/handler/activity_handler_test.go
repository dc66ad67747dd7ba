package handler

import (
	"Stride/internal/api/dto"
	"Stride/internal/pkg/response"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

type stubActivityService struct {
	recorded *dto.RecordActivityDTO
}

func (s *stubActivityService) RecordActivity(_ context.Context, record *dto.RecordActivityDTO) (*dto.ActivityTransactionDTO, error) {
	s.recorded = record
	return &dto.ActivityTransactionDTO{ID: 1, UserID: record.UserID, Kind: record.Kind, Points: record.Points}, nil
}

func (s *stubActivityService) GetHistory(context.Context, uint64, int, int) ([]*dto.ActivityTransactionDTO, error) {
	return nil, nil
}

func (s *stubActivityService) GetLeaderboard(context.Context, int) ([]*dto.LeaderboardEntryDTO, error) {
	return nil, nil
}

func (s *stubActivityService) GetRanking(context.Context, uint64) (*dto.RankingDTO, error) {
	return nil, nil
}

func (s *stubActivityService) ReplayScore(context.Context, uint64) (int64, error) {
	return 0, nil
}

func recordActivityRequest(t *testing.T, body map[string]any) (*stubActivityService, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stub := &stubActivityService{}
	h := NewActivityHandler(stub)

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/activities", bytes.NewReader(raw))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("user_id", uint64(42))

	h.RecordActivity(c)
	return stub, w
}

func TestRecordActivityStampsCaller(t *testing.T) {
	t.Run("body without user id is accepted", func(t *testing.T) {
		stub, w := recordActivityRequest(t, map[string]any{"kind": "morning_run", "points": 5})

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, stub.recorded)
		require.Equal(t, uint64(42), stub.recorded.UserID)
		require.Equal(t, "morning_run", stub.recorded.Kind)
	})

	t.Run("user id in the body is ignored", func(t *testing.T) {
		stub, w := recordActivityRequest(t, map[string]any{"user_id": 999, "kind": "morning_run", "points": 5})

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, stub.recorded)
		require.Equal(t, uint64(42), stub.recorded.UserID)
	})

	t.Run("missing kind is a bad request", func(t *testing.T) {
		stub, w := recordActivityRequest(t, map[string]any{"points": 5})

		require.Nil(t, stub.recorded)
		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Equal(t, response.BadRequest, resp.Code)
	})
}
