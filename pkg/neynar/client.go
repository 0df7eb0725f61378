package neynar

import (
	"FollowCoins/config"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var (
	ErrNotFound         = errors.New("neynar: not found")
	ErrAlreadyFollowing = errors.New("neynar: already following")
)

// APIError 上游返回的非成功响应
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("neynar: status %d: %s %s", e.Status, e.Code, e.Message)
}

type User struct {
	FID         int64  `json:"fid"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	PfpURL      string `json:"pfp_url"`
}

type Signer struct {
	SignerUUID string `json:"signer_uuid"`
	FID        int64  `json:"fid"`
	Status     string `json:"status"`
}

func (s *Signer) Approved() bool {
	return s.Status == "approved"
}

type Client struct {
	conf *config.Neynar
	http *http.Client
}

func NewClient(conf *config.Neynar) *Client {
	return &Client{
		conf: conf,
		http: &http.Client{Timeout: conf.Timeout()},
	}
}

// UserByUsername 按用户名查询
func (c *Client) UserByUsername(ctx context.Context, username string) (*User, error) {
	q := url.Values{}
	q.Set("username", username)

	body, err := c.do(ctx, http.MethodGet, "/v2/farcaster/user/by_username", q, nil)
	if err != nil {
		return nil, err
	}

	u := gjson.GetBytes(body, "user")
	if !u.Exists() || u.Get("fid").Int() == 0 {
		return nil, ErrNotFound
	}
	return parseUser(u), nil
}

// UserByFID 按 fid 查询
func (c *Client) UserByFID(ctx context.Context, fid int64) (*User, error) {
	q := url.Values{}
	q.Set("fids", strconv.FormatInt(fid, 10))

	body, err := c.do(ctx, http.MethodGet, "/v2/farcaster/user/bulk", q, nil)
	if err != nil {
		return nil, err
	}

	users := gjson.GetBytes(body, "users").Array()
	if len(users) == 0 {
		return nil, ErrNotFound
	}
	return parseUser(users[0]), nil
}

// Follow 以 signer 身份关注目标用户
func (c *Client) Follow(ctx context.Context, signerUUID string, targetFID int64) error {
	payload, err := json.Marshal(map[string]any{
		"signer_uuid": signerUUID,
		"target_fids": []int64{targetFID},
	})
	if err != nil {
		return err
	}

	body, err := c.do(ctx, http.MethodPost, "/v2/farcaster/user/follow", nil, payload)
	if err != nil {
		return err
	}

	res := gjson.ParseBytes(body)
	if res.Get("success").Bool() {
		return nil
	}
	// 部分版本只在 details 中返回单个目标结果
	for _, d := range res.Get("details").Array() {
		if d.Get("success").Bool() {
			return nil
		}
		if isAlreadyFollowing(d.Get("message").String()) {
			return ErrAlreadyFollowing
		}
	}
	msg := res.Get("message").String()
	if isAlreadyFollowing(msg) {
		return ErrAlreadyFollowing
	}
	return &APIError{Status: http.StatusOK, Message: msg}
}

// LookupSigner 查询 signer 状态及所属 fid
func (c *Client) LookupSigner(ctx context.Context, signerUUID string) (*Signer, error) {
	q := url.Values{}
	q.Set("signer_uuid", signerUUID)

	body, err := c.do(ctx, http.MethodGet, "/v2/farcaster/signer", q, nil)
	if err != nil {
		return nil, err
	}

	res := gjson.ParseBytes(body)
	return &Signer{
		SignerUUID: res.Get("signer_uuid").String(),
		FID:        res.Get("fid").Int(),
		Status:     res.Get("status").String(),
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, payload []byte) ([]byte, error) {
	u := strings.TrimRight(c.conf.BaseURL, "/") + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("x-api-key", c.conf.ApiKey)
	if payload != nil {
		req.Header.Set("content-type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("neynar %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("neynar read body: %w", err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		msg := gjson.GetBytes(body, "message").String()
		if isAlreadyFollowing(msg) {
			return nil, ErrAlreadyFollowing
		}
		if resp.StatusCode == http.StatusNotFound {
			return nil, ErrNotFound
		}
		return nil, &APIError{
			Status:  resp.StatusCode,
			Code:    gjson.GetBytes(body, "code").String(),
			Message: msg,
		}
	}
	return body, nil
}

func parseUser(r gjson.Result) *User {
	return &User{
		FID:         r.Get("fid").Int(),
		Username:    r.Get("username").String(),
		DisplayName: r.Get("display_name").String(),
		PfpURL:      r.Get("pfp_url").String(),
	}
}

func isAlreadyFollowing(msg string) bool {
	return strings.Contains(strings.ToLower(msg), "already following")
}
