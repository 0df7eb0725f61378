package service

import (
	"FollowCoins/models"
	"FollowCoins/pkg/neynar"
	"FollowCoins/pkg/rocketmq"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createOrder(t *testing.T, env *testEnv, requester int64, ref string, quantity int) int64 {
	t.Helper()
	res, err := env.orders.CreateOrder(context.Background(), requester, ref, quantity)
	require.NoError(t, err)
	return res.Order.ID
}

func TestSettleFollow(t *testing.T) {
	env := newTestEnv(t, alice, bob, carol)
	ctx := context.Background()
	orderID := createOrder(t, env, alice.FID, "alice", 3)
	env.setCoins(t, bob.FID, 0)

	res, err := env.follows.SettleFollow(ctx, bob.FID, "bob-signer", orderID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.CoinsEarned)
	assert.Equal(t, int64(1), res.Coins)
	assert.Equal(t, 2, res.RemainingFollows)
	assert.False(t, res.AlreadySettled)
	assert.False(t, res.OrderComplete)

	assert.Equal(t, []int64{alice.FID}, env.graph.followCalls)
	assert.Equal(t, []string{"bob-signer"}, env.graph.signersUsed)

	follower, err := env.statsDAO.GetByUserID(ctx, bob.FID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), follower.FollowsGiven)

	target, err := env.statsDAO.GetByUserID(ctx, alice.FID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), target.FollowersReceived)

	followers, err := env.orders.ListOrderFollowers(ctx, orderID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, bob.FID, followers[0].FID)
	assert.Equal(t, int64(1), followers[0].CoinsEarned)

	logs, err := env.logDAO.ListRecords(ctx, bob.FID, "income", 0, 10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, models.CoinChangeFollowReward, logs[0].ChangeType)

	assert.Contains(t, env.events.published(), rocketmq.TagFollowSettled)
}

func TestSettleFollow_CreditsOnce(t *testing.T) {
	env := newTestEnv(t, alice, bob)
	ctx := context.Background()
	orderID := createOrder(t, env, alice.FID, "alice", 3)
	env.setCoins(t, bob.FID, 0)

	_, err := env.follows.SettleFollow(ctx, bob.FID, "", orderID)
	require.NoError(t, err)

	res, err := env.follows.SettleFollow(ctx, bob.FID, "", orderID)
	require.NoError(t, err)
	assert.True(t, res.AlreadySettled)
	assert.Equal(t, int64(0), res.CoinsEarned)
	assert.Equal(t, int64(1), res.Coins)
	assert.Equal(t, 2, res.RemainingFollows)

	assert.Equal(t, int64(1), env.coins(t, bob.FID))
	assert.Equal(t, 1, env.graph.calls())

	// 默认 signer
	assert.Equal(t, []string{"default-signer"}, env.graph.signersUsed)
}

func TestSettleFollow_SameTargetOtherOrder(t *testing.T) {
	env := newTestEnv(t, alice, bob)
	ctx := context.Background()
	first := createOrder(t, env, alice.FID, "alice", 1)
	second := createOrder(t, env, alice.FID, "alice", 1)

	_, err := env.follows.SettleFollow(ctx, bob.FID, "", first)
	require.NoError(t, err)

	res, err := env.follows.SettleFollow(ctx, bob.FID, "", second)
	require.NoError(t, err)
	assert.True(t, res.AlreadySettled)
	assert.Equal(t, 1, res.RemainingFollows)
}

func TestSettleFollow_Self(t *testing.T) {
	env := newTestEnv(t, alice)
	orderID := createOrder(t, env, alice.FID, "alice", 1)

	_, err := env.follows.SettleFollow(context.Background(), alice.FID, "", orderID)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, 0, env.graph.calls())
}

func TestSettleFollow_OrderNotFound(t *testing.T) {
	env := newTestEnv(t, alice, bob)

	_, err := env.follows.SettleFollow(context.Background(), bob.FID, "", 404)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 0, env.graph.calls())
}

func TestSettleFollow_UpstreamFailure(t *testing.T) {
	env := newTestEnv(t, alice, bob)
	ctx := context.Background()
	orderID := createOrder(t, env, alice.FID, "alice", 2)
	env.setCoins(t, bob.FID, 0)
	env.graph.followErr = &neynar.APIError{Status: 500, Message: "boom"}

	_, err := env.follows.SettleFollow(ctx, bob.FID, "", orderID)
	assert.ErrorIs(t, err, ErrUpstream)

	assert.Equal(t, int64(0), env.coins(t, bob.FID))
	settled, err := env.actionDAO.IsSettled(ctx, bob.FID, alice.FID)
	require.NoError(t, err)
	assert.False(t, settled)
	order, err := env.orderDAO.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, 2, order.RemainingFollows)
}

func TestSettleFollow_AlreadyFollowingUpstream(t *testing.T) {
	env := newTestEnv(t, alice, bob)
	orderID := createOrder(t, env, alice.FID, "alice", 2)
	env.graph.followErr = neynar.ErrAlreadyFollowing

	res, err := env.follows.SettleFollow(context.Background(), bob.FID, "", orderID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.CoinsEarned)
	assert.Equal(t, 1, res.RemainingFollows)
}

func TestSettleFollow_CompletesOrder(t *testing.T) {
	env := newTestEnv(t, alice, bob, carol)
	ctx := context.Background()
	orderID := createOrder(t, env, alice.FID, "alice", 1)

	res, err := env.follows.SettleFollow(ctx, bob.FID, "", orderID)
	require.NoError(t, err)
	assert.Equal(t, 0, res.RemainingFollows)
	assert.True(t, res.OrderComplete)
	assert.Contains(t, env.events.published(), rocketmq.TagOrderCompleted)

	pending, err := env.orders.ListPendingOrders(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, pending)

	_, err = env.follows.SettleFollow(ctx, carol.FID, "", orderID)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 1, env.graph.calls())

	order, err := env.orderDAO.GetByID(ctx, orderID)
	require.NoError(t, err)
	assert.Equal(t, 0, order.RemainingFollows)
}

func TestSettleFollow_NoSigner(t *testing.T) {
	env := newTestEnv(t, alice, bob)
	env.cfg.Neynar.DefaultSignerUUID = ""
	orderID := createOrder(t, env, alice.FID, "alice", 1)

	_, err := env.follows.SettleFollow(context.Background(), bob.FID, "", orderID)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Equal(t, 0, env.graph.calls())
}

func TestSettleFollow_InProgress(t *testing.T) {
	env := newTestEnv(t, alice, bob)
	ctx := context.Background()
	orderID := createOrder(t, env, alice.FID, "alice", 1)

	ok, err := env.guard.Acquire(ctx, bob.FID, alice.FID, 0)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = env.follows.SettleFollow(ctx, bob.FID, "", orderID)
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, 0, env.graph.calls())

	require.NoError(t, env.guard.Release(ctx, bob.FID, alice.FID))
	_, err = env.follows.SettleFollow(ctx, bob.FID, "", orderID)
	assert.NoError(t, err)
	assert.Empty(t, env.guard.held)
}
