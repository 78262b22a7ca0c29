package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/palemoky/fifty-one/internal/game/rule"
)

// 牌堆存储后端
const (
	StockMemory = "memory"
	StockRedis  = "redis"
)

// 环境变量
const (
	EnvSeed         = "FIFTYONE_SEED"
	EnvMaxTurns     = "FIFTYONE_MAX_TURNS"
	EnvStockBackend = "FIFTYONE_STOCK_BACKEND"
	EnvRedisAddr    = "FIFTYONE_REDIS_ADDR"
	EnvLogDir       = "FIFTYONE_LOG_DIR"
)

// Config 全局配置
type Config struct {
	Game  GameConfig  `yaml:"game"`
	Stock StockConfig `yaml:"stock"`
	Redis RedisConfig `yaml:"redis"`
	Log   LogConfig   `yaml:"log"`
}

// GameConfig 游戏配置
type GameConfig struct {
	Seed       uint64 `yaml:"seed"`        // 0 表示随机种子
	MaxTurns   int    `yaml:"max_turns"`   // 超过后强制叫牌
	JokerValue int    `yaml:"joker_value"` // 王牌分值（5 或 6）
	AceValue   int    `yaml:"ace_value"`
	ScoreCap   int    `yaml:"score_cap"`
	CallReward int    `yaml:"call_reward"`
}

// StockConfig 牌堆配置
type StockConfig struct {
	Backend string `yaml:"backend"` // memory 或 redis
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
	TTL      int    `yaml:"ttl"` // 牌堆键过期时间（秒）
}

// LogConfig 日志配置
type LogConfig struct {
	Dir string `yaml:"dir"` // 为空时使用 ~/.fifty-one
}

// Rules 转换为计分规则
func (c *GameConfig) Rules() rule.Rules {
	return rule.Rules{
		JokerValue: c.JokerValue,
		AceValue:   c.AceValue,
		ScoreCap:   c.ScoreCap,
		CallReward: c.CallReward,
	}
}

// TTLDuration 返回牌堆键过期时长
func (c *RedisConfig) TTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	cfg.setDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

func (c *Config) setDefaults() {
	if c.Game.MaxTurns == 0 {
		c.Game.MaxTurns = 200
	}
	if c.Game.JokerValue == 0 {
		c.Game.JokerValue = rule.DefaultJokerValue
	}
	if c.Game.AceValue == 0 {
		c.Game.AceValue = rule.DefaultAceValue
	}
	if c.Game.ScoreCap == 0 {
		c.Game.ScoreCap = rule.DefaultScoreCap
	}
	if c.Game.CallReward == 0 {
		c.Game.CallReward = rule.DefaultCallReward
	}
	if c.Stock.Backend == "" {
		c.Stock.Backend = StockMemory
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "localhost:6379"
	}
	if c.Redis.TTL == 0 {
		c.Redis.TTL = 3600
	}
}

// Validate 检查配置取值
func (c *Config) Validate() error {
	if c.Game.MaxTurns < 1 {
		return fmt.Errorf("max_turns 必须大于 0: %d", c.Game.MaxTurns)
	}
	if c.Game.JokerValue != 5 && c.Game.JokerValue != 6 {
		return fmt.Errorf("joker_value 只能是 5 或 6: %d", c.Game.JokerValue)
	}
	if c.Stock.Backend != StockMemory && c.Stock.Backend != StockRedis {
		return fmt.Errorf("未知的牌堆后端: %q", c.Stock.Backend)
	}
	return nil
}

// ApplyEnv 加载 .env（如果存在）并用环境变量覆盖配置
func (c *Config) ApplyEnv() error {
	_ = godotenv.Load()

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s 无效: %w", EnvSeed, err)
		}
		c.Game.Seed = seed
	}
	if v := os.Getenv(EnvMaxTurns); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s 无效: %w", EnvMaxTurns, err)
		}
		c.Game.MaxTurns = n
	}
	if v := os.Getenv(EnvStockBackend); v != "" {
		c.Stock.Backend = v
	}
	if v := os.Getenv(EnvRedisAddr); v != "" {
		c.Redis.Addr = v
	}
	if v := os.Getenv(EnvLogDir); v != "" {
		c.Log.Dir = v
	}
	return c.Validate()
}
