package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	conf, err := Parse([]byte("app:\n  env: test\n"))
	require.NoError(t, err)

	assert.Equal(t, "test", conf.App.Env)
	assert.Equal(t, 8080, conf.Server.Http)
	assert.Equal(t, int64(10), conf.Ledger.StartingCoins)
	assert.Equal(t, int64(2), conf.Ledger.PricePerFollower)
	assert.Equal(t, int64(1), conf.Ledger.FollowReward)
	assert.Equal(t, int64(5), conf.Ledger.ReferralBonus)
	assert.Equal(t, "https://api.neynar.com", conf.Neynar.BaseURL)
	assert.Equal(t, DefaultEventTopic, conf.RocketMQ.Topic)
	assert.False(t, conf.RocketMQ.Enabled())
}

func TestParse_Overrides(t *testing.T) {
	content := `
mysql:
  host: db
  username: root
  password: pw
  database: follow_coins
ledger:
  starting_coins: 20
  price_per_follower: 3
rocketmq:
  nameserver: ["127.0.0.1:9876"]
`
	conf, err := Parse([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, int64(20), conf.Ledger.StartingCoins)
	assert.Equal(t, int64(3), conf.Ledger.PricePerFollower)
	assert.True(t, conf.RocketMQ.Enabled())
	assert.Equal(t, "root:pw@tcp(db:3306)/follow_coins?charset=utf8mb4&parseTime=True&loc=Local", conf.MySQL.Dsn())
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse([]byte("app: [\n"))
	assert.Error(t, err)
}
