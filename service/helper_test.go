package service

import (
	"FollowCoins/config"
	"FollowCoins/dao"
	"FollowCoins/models"
	"FollowCoins/pkg/neynar"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fakeGraph struct {
	mu          sync.Mutex
	users       map[int64]*neynar.User
	signers     map[string]*neynar.Signer
	lookupErr   error
	followErr   error
	followCalls []int64
	signersUsed []string
}

func newFakeGraph(users ...*neynar.User) *fakeGraph {
	g := &fakeGraph{
		users:   make(map[int64]*neynar.User),
		signers: make(map[string]*neynar.Signer),
	}
	for _, u := range users {
		g.users[u.FID] = u
	}
	return g
}

func (g *fakeGraph) UserByUsername(_ context.Context, username string) (*neynar.User, error) {
	if g.lookupErr != nil {
		return nil, g.lookupErr
	}
	for _, u := range g.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, neynar.ErrNotFound
}

func (g *fakeGraph) UserByFID(_ context.Context, fid int64) (*neynar.User, error) {
	if g.lookupErr != nil {
		return nil, g.lookupErr
	}
	if u, ok := g.users[fid]; ok {
		return u, nil
	}
	return nil, neynar.ErrNotFound
}

func (g *fakeGraph) Follow(_ context.Context, signerUUID string, targetFID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.followCalls = append(g.followCalls, targetFID)
	g.signersUsed = append(g.signersUsed, signerUUID)
	return g.followErr
}

func (g *fakeGraph) LookupSigner(_ context.Context, signerUUID string) (*neynar.Signer, error) {
	if s, ok := g.signers[signerUUID]; ok {
		return s, nil
	}
	return nil, neynar.ErrNotFound
}

func (g *fakeGraph) calls() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.followCalls)
}

type fakeCache struct {
	byName map[string]*models.User
	byFID  map[int64]*models.User
	err    error
}

func newFakeCache() *fakeCache {
	return &fakeCache{byName: map[string]*models.User{}, byFID: map[int64]*models.User{}}
}

func (c *fakeCache) GetByUsername(_ context.Context, username string) (*models.User, error) {
	return c.byName[username], c.err
}

func (c *fakeCache) GetByFID(_ context.Context, fid int64) (*models.User, error) {
	return c.byFID[fid], c.err
}

func (c *fakeCache) Set(_ context.Context, user *models.User, _ time.Duration) error {
	if c.err != nil {
		return c.err
	}
	c.byName[strings.ToLower(user.Username)] = user
	c.byFID[user.FID] = user
	return nil
}

type fakeGuard struct {
	mu   sync.Mutex
	held map[[2]int64]bool
}

func newFakeGuard() *fakeGuard {
	return &fakeGuard{held: map[[2]int64]bool{}}
}

func (g *fakeGuard) Acquire(_ context.Context, followerID, targetID int64, _ time.Duration) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	k := [2]int64{followerID, targetID}
	if g.held[k] {
		return false, nil
	}
	g.held[k] = true
	return true, nil
}

func (g *fakeGuard) Release(_ context.Context, followerID, targetID int64) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, [2]int64{followerID, targetID})
	return nil
}

type fakePublisher struct {
	mu   sync.Mutex
	tags []string
}

func (p *fakePublisher) Publish(_ context.Context, tag string, _ string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.tags = append(p.tags, tag)
	return nil
}

func (p *fakePublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.tags...)
}

type testEnv struct {
	cfg       *config.Config
	db        *gorm.DB
	graph     *fakeGraph
	cache     *fakeCache
	guard     *fakeGuard
	events    *fakePublisher
	statsDAO  *dao.UserStatsDAO
	orderDAO  *dao.FollowOrderDAO
	actionDAO *dao.FollowActionDAO
	userDAO   *dao.UserDAO
	logDAO    *dao.CoinLogDAO

	profiles *ProfileService
	stats    *StatsService
	orders   *OrderService
	follows  *FollowService
	users    *UserService
}

const testConfig = `
app:
  referral_salt: test-salt
jwt:
  secret: test-secret
neynar:
  default_signer_uuid: default-signer
ledger:
  max_quantity: 50
`

func newTestEnv(t *testing.T, users ...*neynar.User) *testEnv {
	t.Helper()

	cfg, err := config.Parse([]byte(testConfig))
	require.NoError(t, err)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.AutoMigrate(models.AutoMigrateModels()...))

	env := &testEnv{
		cfg:       cfg,
		db:        db,
		graph:     newFakeGraph(users...),
		cache:     newFakeCache(),
		guard:     newFakeGuard(),
		events:    &fakePublisher{},
		statsDAO:  dao.NewUserStatsDAO(db),
		orderDAO:  dao.NewFollowOrderDAO(db),
		actionDAO: dao.NewFollowActionDAO(db),
		userDAO:   dao.NewUserDAO(db),
		logDAO:    dao.NewCoinLogDAO(db),
	}

	env.profiles = &ProfileService{Ledger: cfg.Ledger, Graph: env.graph, Cache: env.cache}
	env.stats = &StatsService{Config: cfg, DB: db, StatsDAO: env.statsDAO, CoinLogDAO: env.logDAO}
	env.orders = &OrderService{
		Config:    cfg,
		DB:        db,
		Profiles:  env.profiles,
		Stats:     env.stats,
		UserDAO:   env.userDAO,
		OrderDAO:  env.orderDAO,
		ActionDAO: env.actionDAO,
		Events:    env.events,
	}
	env.follows = &FollowService{
		Config:    cfg,
		DB:        db,
		Graph:     env.graph,
		Guard:     env.guard,
		Stats:     env.stats,
		OrderDAO:  env.orderDAO,
		ActionDAO: env.actionDAO,
		Events:    env.events,
	}
	env.users = &UserService{
		Config:   cfg,
		Graph:    env.graph,
		Profiles: env.profiles,
		Stats:    env.stats,
		UserDAO:  env.userDAO,
	}
	return env
}

// setCoins 直接设置余额
func (e *testEnv) setCoins(t *testing.T, userID, coins int64) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, e.statsDAO.Ensure(ctx, userID, coins))
	require.NoError(t, e.db.Model(&models.UserStats{}).Where("user_id = ?", userID).Update("coins", coins).Error)
}

func (e *testEnv) coins(t *testing.T, userID int64) int64 {
	t.Helper()
	stats, err := e.statsDAO.GetByUserID(context.Background(), userID)
	require.NoError(t, err)
	if stats == nil {
		return -1
	}
	return stats.Coins
}

var (
	alice = &neynar.User{FID: 1, Username: "alice", DisplayName: "Alice", PfpURL: "https://img/alice.png"}
	bob   = &neynar.User{FID: 2, Username: "bob", DisplayName: "Bob"}
	carol = &neynar.User{FID: 3, Username: "carol", DisplayName: "Carol"}
)
