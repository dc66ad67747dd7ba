package service

import (
	"Stride/internal/api/dto"
	"Stride/internal/model"
	"Stride/internal/pkg/security"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a token for a fresh identity", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := NewAuthService(users)

		out, err := svc.Register(ctx, &dto.RegisterDTO{
			ExternalID: "sub-123",
			Username:   "alice",
			UserType:   model.UserTypeIndividual,
		})
		require.NoError(t, err)
		require.NotEmpty(t, out.Token)
		require.Equal(t, model.UserTypeIndividual, out.UserType)

		claims, err := security.ValidateToken(out.Token)
		require.NoError(t, err)
		require.Equal(t, out.UserID, claims.UserID)
	})

	t.Run("rejects unknown account kind", func(t *testing.T) {
		svc := NewAuthService(newFakeUserRepo())
		_, err := svc.Register(ctx, &dto.RegisterDTO{ExternalID: "s", Username: "a", UserType: "robot"})
		require.ErrorIs(t, err, ErrParamInvalid)
	})

	t.Run("rejects a reused external identity", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := NewAuthService(users)
		u := users.addUser("alice", model.UserTypeIndividual)

		_, err := svc.Register(ctx, &dto.RegisterDTO{
			ExternalID: u.ExternalID,
			Username:   "someone-else",
			UserType:   model.UserTypeIndividual,
		})
		require.ErrorIs(t, err, ErrUserExists)
	})

	t.Run("rejects a taken username", func(t *testing.T) {
		users := newFakeUserRepo()
		svc := NewAuthService(users)
		users.addUser("alice", model.UserTypeIndividual)

		_, err := svc.Register(ctx, &dto.RegisterDTO{
			ExternalID: "fresh-sub",
			Username:   "alice",
			UserType:   model.UserTypeGym,
		})
		require.ErrorIs(t, err, ErrUsernameTaken)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	users := newFakeUserRepo()
	svc := NewAuthService(users)
	u := users.addUser("alice", model.UserTypeIndividual)

	out, err := svc.Login(ctx, &dto.LoginDTO{ExternalID: u.ExternalID})
	require.NoError(t, err)
	require.Equal(t, u.ID, out.UserID)

	_, err = svc.Login(ctx, &dto.LoginDTO{ExternalID: "nobody"})
	require.ErrorIs(t, err, ErrUserNotFound)
}
