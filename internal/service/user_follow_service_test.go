package service

import (
	"Stride/internal/model"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func newFollowFixture() (*fakeUserRepo, *fakeUserFollowRepo, UserFollowService) {
	users := newFakeUserRepo()
	follows := newFakeUserFollowRepo(users)
	return users, follows, NewUserFollowService(users, follows)
}

func TestFollow(t *testing.T) {
	ctx := context.Background()

	t.Run("self follow rejected", func(t *testing.T) {
		users, _, svc := newFollowFixture()
		u := users.addUser("alice", model.UserTypeIndividual)
		require.ErrorIs(t, svc.Follow(ctx, u.ID, u.ID), ErrFollowSelf)
	})

	t.Run("missing target rejected", func(t *testing.T) {
		users, _, svc := newFollowFixture()
		u := users.addUser("alice", model.UserTypeIndividual)
		require.ErrorIs(t, svc.Follow(ctx, u.ID, 999), ErrUserNotFound)
	})

	t.Run("follow bumps both counters", func(t *testing.T) {
		users, _, svc := newFollowFixture()
		alice := users.addUser("alice", model.UserTypeIndividual)
		bob := users.addUser("bob", model.UserTypeIndividual)

		require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))
		require.Equal(t, int64(1), bob.FollowerCount)
		require.Equal(t, int64(1), alice.FollowingCount)

		following, err := svc.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		require.True(t, following)
	})

	t.Run("duplicate follow leaves counters alone", func(t *testing.T) {
		users, _, svc := newFollowFixture()
		alice := users.addUser("alice", model.UserTypeIndividual)
		bob := users.addUser("bob", model.UserTypeIndividual)

		require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))
		require.ErrorIs(t, svc.Follow(ctx, alice.ID, bob.ID), ErrAlreadyFollowing)
		require.Equal(t, int64(1), bob.FollowerCount)
		require.Equal(t, int64(1), alice.FollowingCount)
	})
}

func TestUnfollow(t *testing.T) {
	ctx := context.Background()

	t.Run("round trip restores counters", func(t *testing.T) {
		users, _, svc := newFollowFixture()
		alice := users.addUser("alice", model.UserTypeIndividual)
		bob := users.addUser("bob", model.UserTypeIndividual)

		require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))
		require.NoError(t, svc.Unfollow(ctx, alice.ID, bob.ID))
		require.Equal(t, int64(0), bob.FollowerCount)
		require.Equal(t, int64(0), alice.FollowingCount)

		following, err := svc.IsFollowing(ctx, alice.ID, bob.ID)
		require.NoError(t, err)
		require.False(t, following)
	})

	t.Run("unfollow without an edge rejected", func(t *testing.T) {
		users, _, svc := newFollowFixture()
		alice := users.addUser("alice", model.UserTypeIndividual)
		bob := users.addUser("bob", model.UserTypeIndividual)
		require.ErrorIs(t, svc.Unfollow(ctx, alice.ID, bob.ID), ErrNotFollowing)
	})
}

func TestRecountUser(t *testing.T) {
	ctx := context.Background()
	users, follows, svc := newFollowFixture()
	alice := users.addUser("alice", model.UserTypeIndividual)
	bob := users.addUser("bob", model.UserTypeIndividual)
	carol := users.addUser("carol", model.UserTypeIndividual)

	follows.edges[followPair{bob.ID, alice.ID}] = &model.UserFollow{FollowerID: bob.ID, FollowingID: alice.ID}
	follows.edges[followPair{carol.ID, alice.ID}] = &model.UserFollow{FollowerID: carol.ID, FollowingID: alice.ID}
	follows.edges[followPair{alice.ID, bob.ID}] = &model.UserFollow{FollowerID: alice.ID, FollowingID: bob.ID}

	// counters drifted from the edge table
	alice.FollowerCount = 7
	alice.FollowingCount = 0

	stats, err := svc.RecountUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, int64(2), stats.FollowerCount)
	require.Equal(t, int64(1), stats.FollowingCount)
	require.Equal(t, int64(2), alice.FollowerCount)
	require.Equal(t, int64(1), alice.FollowingCount)

	_, err = svc.RecountUser(ctx, 999)
	require.ErrorIs(t, err, ErrUserNotFound)
}
