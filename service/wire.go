package service

import (
	"FollowCoins/dao/cache"
	"FollowCoins/pkg/neynar"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(ProfileService), "*"),
	wire.Bind(new(IProfileService), new(*ProfileService)),

	wire.Struct(new(StatsService), "*"),
	wire.Bind(new(IStatsService), new(*StatsService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(UserService), "*"),
	wire.Bind(new(IUserService), new(*UserService)),

	wire.Bind(new(SocialGraph), new(*neynar.Client)),
	wire.Bind(new(ProfileCache), new(*cache.ProfileStorage)),
	wire.Bind(new(SettleGuard), new(*cache.SettleLock)),
)
