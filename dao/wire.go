package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUserDAO,
	NewUserStatsDAO,
	NewFollowOrderDAO,
	NewFollowActionDAO,
	NewCoinLogDAO,
)
