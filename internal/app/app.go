package app

import (
	"context"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/fifty-one/internal/bot"
	"github.com/palemoky/fifty-one/internal/config"
	"github.com/palemoky/fifty-one/internal/game"
	"github.com/palemoky/fifty-one/internal/game/match"
	"github.com/palemoky/fifty-one/internal/logger"
	"github.com/palemoky/fifty-one/internal/storage"
)

// App wires configuration, the random source and the stock backend into games.
type App struct {
	cfg   *config.Config
	rng   *rand.Rand
	redis *redis.Client
}

// NewRand returns a PCG source seeded with seed, or from entropy when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// New creates an App. With the redis backend it connects and pings first.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		rng: NewRand(cfg.Game.Seed),
	}

	if cfg.Stock.Backend == config.StockRedis {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("连接 Redis 失败: %w", err)
		}
		a.redis = client
		logger.LogInfo("stock backend: redis at %s", cfg.Redis.Addr)
	}
	return a, nil
}

// NewGame creates an undealt game. The returned release func drops any
// storage the game used and must be called once the game is finished.
func (a *App) NewGame(ctx context.Context) (*game.Game, func()) {
	opts := game.Options{
		ID:    uuid.NewString(),
		Rules: a.cfg.Game.Rules(),
		Rand:  a.rng,
	}
	release := func() {}

	if a.redis != nil {
		rs := storage.NewRedisStock(ctx, a.redis, opts.ID, a.cfg.Redis.TTLDuration())
		opts.Stock = rs
		release = func() {
			if err := rs.Close(); err != nil {
				logger.LogError("game %s: failed to drop stock %s: %v", opts.ID, rs.Key(), err)
			}
		}
	}

	return game.New(opts), release
}

// CpuBrain returns the brain that plays the CPU side.
func (a *App) CpuBrain() bot.Brain {
	return bot.NewRandomBrain(a.rng)
}

// Simulate plays one full game with random brains on both sides.
func (a *App) Simulate(ctx context.Context) (*game.Outcome, error) {
	g, release := a.NewGame(ctx)
	defer release()

	brains := match.Brains{
		Player: bot.NewRandomBrain(a.rng),
		Cpu:    a.CpuBrain(),
	}
	return match.Run(g, brains, match.Options{MaxTurns: a.cfg.Game.MaxTurns})
}

// MaxTurns is the configured turn limit.
func (a *App) MaxTurns() int {
	return a.cfg.Game.MaxTurns
}

// Close releases the Redis connection, if any.
func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}
