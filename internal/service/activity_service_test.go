package service

import (
	"Stride/internal/api/dto"
	"Stride/internal/model"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newActivityFixture() (*fakeUserRepo, *fakeProfileRepo, *fakeActivityRepo, ActivityService) {
	users := newFakeUserRepo()
	profiles := newFakeProfileRepo()
	ledger := newFakeActivityRepo()
	svc := NewActivityService(users, profiles, ledger)
	return users, profiles, ledger, svc
}

func addIndividual(users *fakeUserRepo, profiles *fakeProfileRepo, username string, score int64, lastUpdate time.Time) *model.User {
	u := users.addUser(username, model.UserTypeIndividual)
	profiles.individuals[u.ID] = &model.IndividualProfile{
		UserID:             u.ID,
		ActivityScore:      score,
		LastActivityUpdate: lastUpdate,
	}
	return u
}

func TestApplyDelta(t *testing.T) {
	cases := []struct {
		name   string
		deltas []int64
		want   int64
	}{
		{"positive accumulates", []int64{10, 5, 2}, 17},
		{"clamps at zero", []int64{10, -25}, 0},
		{"clamp is per step not on the sum", []int64{-50, 100}, 100},
		{"recovers after clamp", []int64{5, -20, 3}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var score int64
			for _, d := range tc.deltas {
				score = applyDelta(score, d)
			}
			require.Equal(t, tc.want, score)
		})
	}
}

func TestRecordActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("rejects unknown kind", func(t *testing.T) {
		_, _, ledger, svc := newActivityFixture()
		_, err := svc.RecordActivity(ctx, &dto.RecordActivityDTO{UserID: 1, Kind: "jumping_jacks", Points: 10})
		require.ErrorIs(t, err, ErrInvalidActivityKind)
		require.Empty(t, ledger.ledger)
	})

	t.Run("individual gets ledger entry and rollup", func(t *testing.T) {
		users, profiles, ledger, svc := newActivityFixture()
		u := addIndividual(users, profiles, "alice", 0, time.Now())

		out, err := svc.RecordActivity(ctx, &dto.RecordActivityDTO{
			UserID: u.ID,
			Kind:   model.ActivityWorkoutPosted,
			Points: 10,
		})
		require.NoError(t, err)
		require.Equal(t, int64(10), out.Points)
		require.Len(t, ledger.ledger, 1)
		require.Equal(t, int64(10), profiles.individuals[u.ID].ActivityScore)
	})

	t.Run("rollup clamps at zero", func(t *testing.T) {
		users, profiles, _, svc := newActivityFixture()
		u := addIndividual(users, profiles, "bob", 3, time.Now())

		_, err := svc.RecordActivity(ctx, &dto.RecordActivityDTO{
			UserID: u.ID,
			Kind:   model.ActivityManualAdjustment,
			Points: -50,
		})
		require.NoError(t, err)
		require.Equal(t, int64(0), profiles.individuals[u.ID].ActivityScore)
	})

	t.Run("gym account keeps ledger but skips rollup", func(t *testing.T) {
		users, profiles, ledger, svc := newActivityFixture()
		u := users.addUser("irongym", model.UserTypeGym)

		_, err := svc.RecordActivity(ctx, &dto.RecordActivityDTO{
			UserID: u.ID,
			Kind:   model.ActivityCommunityInteraction,
			Points: 5,
		})
		require.NoError(t, err)
		require.Len(t, ledger.ledger, 1)
		require.Empty(t, profiles.individuals)
	})

	t.Run("individual without profile still lands in ledger", func(t *testing.T) {
		users, _, ledger, svc := newActivityFixture()
		u := users.addUser("carol", model.UserTypeIndividual)

		_, err := svc.RecordActivity(ctx, &dto.RecordActivityDTO{
			UserID: u.ID,
			Kind:   model.ActivityEventJoined,
			Points: 3,
		})
		require.NoError(t, err)
		require.Len(t, ledger.ledger, 1)
	})
}

func TestGetLeaderboard_Ordering(t *testing.T) {
	ctx := context.Background()
	users, profiles, _, svc := newActivityFixture()
	impl := svc.(*ActivityServiceImpl)

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	addIndividual(users, profiles, "alice", 100, base)
	addIndividual(users, profiles, "bob", 250, base)
	// carol ties with alice on score but reached it earlier, so she ranks ahead
	addIndividual(users, profiles, "carol", 100, base.Add(-time.Hour))
	addIndividual(users, profiles, "dave", 40, base)

	entries, err := impl.buildLeaderboard(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 4)

	names := make([]string, 0, len(entries))
	for i, e := range entries {
		require.Equal(t, i+1, e.Position)
		names = append(names, e.Username)
	}
	require.Equal(t, []string{"bob", "carol", "alice", "dave"}, names)
}

func TestGetRanking(t *testing.T) {
	ctx := context.Background()
	users, profiles, _, svc := newActivityFixture()

	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	addIndividual(users, profiles, "alice", 100, base)
	bob := addIndividual(users, profiles, "bob", 250, base)
	carol := addIndividual(users, profiles, "carol", 100, base.Add(-time.Hour))

	t.Run("top of the board", func(t *testing.T) {
		rank, err := svc.GetRanking(ctx, bob.ID)
		require.NoError(t, err)
		require.Equal(t, int64(1), rank.Position)
		require.Equal(t, int64(3), rank.TotalUsers)
	})

	t.Run("earlier timestamp wins the tie", func(t *testing.T) {
		rank, err := svc.GetRanking(ctx, carol.ID)
		require.NoError(t, err)
		require.Equal(t, int64(2), rank.Position)
	})

	t.Run("account without a profile has no ranking", func(t *testing.T) {
		gym := users.addUser("irongym", model.UserTypeGym)
		rank, err := svc.GetRanking(ctx, gym.ID)
		require.NoError(t, err)
		require.Nil(t, rank)
	})
}

func TestReplayScore(t *testing.T) {
	ctx := context.Background()
	users, profiles, ledger, svc := newActivityFixture()
	u := addIndividual(users, profiles, "alice", 999, time.Now())

	// running sum would give 50; the per-step clamp gives 100
	base := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	ledger.ledger = []*model.ActivityTransaction{
		{UserID: u.ID, Kind: model.ActivityManualAdjustment, Points: -50, CreatedAt: base},
		{UserID: u.ID, Kind: model.ActivityWorkoutPosted, Points: 100, CreatedAt: base.Add(time.Minute)},
	}

	score, err := svc.ReplayScore(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, int64(100), score)
	require.Equal(t, int64(100), profiles.individuals[u.ID].ActivityScore)
	require.Equal(t, base.Add(time.Minute), profiles.individuals[u.ID].LastActivityUpdate)
}

func TestReplayScore_EmptyLedger(t *testing.T) {
	ctx := context.Background()
	users, profiles, _, svc := newActivityFixture()
	u := addIndividual(users, profiles, "alice", 42, time.Now())

	score, err := svc.ReplayScore(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, int64(0), score)
	require.Equal(t, int64(0), profiles.individuals[u.ID].ActivityScore)
}
