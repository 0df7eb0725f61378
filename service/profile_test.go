package service

import (
	"FollowCoins/pkg/neynar"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfileRef(t *testing.T) {
	tests := []struct {
		ref  string
		want ProfileRef
	}{
		{"alice", ProfileRef{Username: "alice"}},
		{"  Alice ", ProfileRef{Username: "alice"}},
		{"@alice", ProfileRef{Username: "alice"}},
		{"vitalik.eth", ProfileRef{Username: "vitalik.eth"}},
		{"https://farcaster.xyz/alice", ProfileRef{Username: "alice"}},
		{"https://warpcast.com/alice/", ProfileRef{Username: "alice"}},
		{"http://www.warpcast.com/alice?ref=share", ProfileRef{Username: "alice"}},
		{"https://warpcast.com/@alice", ProfileRef{Username: "alice"}},
		{"3621", ProfileRef{FID: 3621}},
		{"jesse.base.eth", ProfileRef{Username: "jesse.base.eth"}},
		{"@dwr.eth", ProfileRef{Username: "dwr.eth"}},
		{"averyveryverylongname.eth", ProfileRef{Username: "averyveryverylongname.eth"}},
		{"averyveryverylongusername", ProfileRef{Username: "averyveryverylongusername"}},
		{"https://warpcast.com/jesse.base.eth", ProfileRef{Username: "jesse.base.eth"}},
		{"https://farcaster.xyz/Some_User-1", ProfileRef{Username: "some_user-1"}},
	}
	for _, tt := range tests {
		got, err := ParseProfileRef(tt.ref)
		require.NoError(t, err, tt.ref)
		assert.Equal(t, tt.want, got, tt.ref)
	}
}

func TestParseProfileRef_Invalid(t *testing.T) {
	for _, ref := range []string{
		"",
		"@",
		"0",
		"al ice",
		"-alice",
		"https://example.com/alice",
		"https://warpcast.com/",
		"https://warpcast.com/alice/casts",
		"alice..eth",
		"alice.",
		".eth",
		"alice.-eth",
		strings.Repeat("a", 65),
	} {
		_, err := ParseProfileRef(ref)
		assert.ErrorIs(t, err, ErrValidation, ref)
	}
}

func TestResolve(t *testing.T) {
	env := newTestEnv(t, alice)
	ctx := context.Background()

	p, err := env.profiles.Resolve(ctx, "https://farcaster.xyz/alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.FID)
	assert.Equal(t, "Alice", p.DisplayName)

	// 第二次走缓存
	env.graph.lookupErr = errors.New("should not be called")
	p, err = env.profiles.Resolve(ctx, "@alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.FID)

	p, err = env.profiles.ResolveByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.Username)
}

func TestResolve_NotFound(t *testing.T) {
	env := newTestEnv(t, alice)

	_, err := env.profiles.Resolve(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, env.cache.byName)
}

func TestResolve_Upstream(t *testing.T) {
	env := newTestEnv(t, alice)
	env.graph.lookupErr = &neynar.APIError{Status: 429, Message: "rate limited"}

	_, err := env.profiles.Resolve(context.Background(), "alice")
	assert.ErrorIs(t, err, ErrUpstream)

	var apiErr *neynar.APIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestResolve_CacheFailureIgnored(t *testing.T) {
	env := newTestEnv(t, alice)
	env.cache.err = errors.New("redis down")

	p, err := env.profiles.Resolve(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(1), p.FID)
}
