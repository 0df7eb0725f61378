package neynar

import (
	"FollowCoins/config"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(&config.Neynar{BaseURL: srv.URL, ApiKey: "key", TimeoutMs: 1000})
}

func TestUserByUsername(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/farcaster/user/by_username", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("username"))
		assert.Equal(t, "key", r.Header.Get("x-api-key"))
		_, _ = io.WriteString(w, `{"user":{"fid":42,"username":"alice","display_name":"Alice","pfp_url":"https://img/a.png"}}`)
	})

	u, err := c.UserByUsername(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, &User{FID: 42, Username: "alice", DisplayName: "Alice", PfpURL: "https://img/a.png"}, u)
}

func TestUserByUsername_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"code":"NotFound","message":"User not found"}`)
	})

	_, err := c.UserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserByFID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/farcaster/user/bulk", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("fids"))
		_, _ = io.WriteString(w, `{"users":[{"fid":7,"username":"bob"}]}`)
	})

	u, err := c.UserByFID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.FID)
	assert.Equal(t, "bob", u.Username)
}

func TestUserByFID_Empty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"users":[]}`)
	})

	_, err := c.UserByFID(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFollow(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		var body struct {
			SignerUUID string  `json:"signer_uuid"`
			TargetFids []int64 `json:"target_fids"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "signer", body.SignerUUID)
		assert.Equal(t, []int64{9}, body.TargetFids)
		_, _ = io.WriteString(w, `{"success":true}`)
	})

	assert.NoError(t, c.Follow(context.Background(), "signer", 9))
}

func TestFollow_AlreadyFollowing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"message":"You are Already Following this user"}`)
	})

	assert.ErrorIs(t, c.Follow(context.Background(), "signer", 9), ErrAlreadyFollowing)
}

func TestFollow_Upstream(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = io.WriteString(w, `{"code":"RateLimitExceeded","message":"slow down"}`)
	})

	err := c.Follow(context.Background(), "signer", 9)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusTooManyRequests, apiErr.Status)
	assert.Equal(t, "RateLimitExceeded", apiErr.Code)
}

func TestLookupSigner(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc", r.URL.Query().Get("signer_uuid"))
		_, _ = io.WriteString(w, `{"signer_uuid":"abc","fid":12,"status":"approved"}`)
	})

	s, err := c.LookupSigner(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, int64(12), s.FID)
	assert.True(t, s.Approved())
}
