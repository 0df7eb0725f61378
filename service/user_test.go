package service

import (
	"FollowCoins/pkg/jwt"
	"FollowCoins/pkg/neynar"
	"FollowCoins/types"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t, alice)
	env.graph.signers["s-1"] = &neynar.Signer{SignerUUID: "s-1", FID: alice.FID, Status: "approved"}

	resp, err := env.users.Login(context.Background(), alice.FID, "s-1")
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.User.Username)
	assert.Equal(t, int64(10), resp.Stats.Coins)
	assert.NotEmpty(t, resp.ReferralCode)

	claims, err := jwt.ParseToken([]byte("test-secret"), jwt.TypeAccess, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, alice.FID, claims.FID)
	assert.Equal(t, "s-1", claims.SignerUUID)

	user, err := env.userDAO.FindByFID(context.Background(), alice.FID)
	require.NoError(t, err)
	assert.NotNil(t, user)
}

func TestLogin_InvalidSigner(t *testing.T) {
	env := newTestEnv(t, alice, bob)
	env.graph.signers["bob-signer"] = &neynar.Signer{FID: bob.FID, Status: "approved"}
	env.graph.signers["pending"] = &neynar.Signer{FID: alice.FID, Status: "pending_approval"}
	ctx := context.Background()

	_, err := env.users.Login(ctx, alice.FID, "bob-signer")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.users.Login(ctx, alice.FID, "pending")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.users.Login(ctx, alice.FID, "missing")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.users.Login(ctx, alice.FID, "")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	stats, err := env.users.Init(ctx, &types.Profile{FID: 11, Username: "dave"})
	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Coins)

	_, err = env.users.Init(ctx, &types.Profile{FID: 11})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDashboard(t *testing.T) {
	env := newTestEnv(t, alice, bob)
	ctx := context.Background()

	_, err := env.users.Dashboard(ctx, alice.FID)
	assert.ErrorIs(t, err, ErrNotFound)

	createOrder(t, env, alice.FID, "bob", 2)

	d, err := env.users.Dashboard(ctx, alice.FID)
	require.NoError(t, err)
	assert.Equal(t, "alice", d.User.Username)
	assert.Equal(t, int64(6), d.Stats.Coins)
	require.Len(t, d.RecentLogs, 1)
	assert.Equal(t, int64(-4), d.RecentLogs[0].Amount)
	assert.NotEmpty(t, d.ReferralCode)
}
