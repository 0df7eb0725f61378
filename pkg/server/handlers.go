package server

import (
	"FollowCoins/handler"
)

type Handlers struct {
	Auth    *handler.Auth
	User    *handler.User
	Profile *handler.Profile
	Stats   *handler.Stats
	Order   *handler.Order
	Follow  *handler.Follow
}
