//go:build wireinject
// +build wireinject

package main

import (
	"FollowCoins/config"
	"FollowCoins/dao"
	"FollowCoins/dao/cache"
	"FollowCoins/handler"
	"FollowCoins/pkg/client"
	"FollowCoins/pkg/database"
	"FollowCoins/pkg/neynar"
	"FollowCoins/pkg/rocketmq"
	"FollowCoins/pkg/server"
	"FollowCoins/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		database.NewDB,
		config.ProvideNeynarConfig,
		config.ProvideLedgerConfig,
		config.ProvideRocketMQConfig,
		neynar.NewClient,
		rocketmq.NewPublisher,
		server.NewGinEngine,
		cache.ProviderSet,
		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.User), "*"),
		wire.Struct(new(handler.Profile), "*"),
		wire.Struct(new(handler.Stats), "*"),
		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Follow), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
	)
	return nil
}
