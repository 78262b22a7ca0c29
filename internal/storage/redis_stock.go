package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/fifty-one/internal/apperrors"
	"github.com/palemoky/fifty-one/internal/game/card"
	"github.com/palemoky/fifty-one/internal/game/stock"
)

const (
	// Redis key 前缀
	stockKeyPrefix = "fiftyone:stock:"

	// 牌堆默认过期时间
	defaultStockExpiration = time.Hour
)

// RedisStock 以 Redis 列表实现的牌堆，列表头为牌堆顶
type RedisStock struct {
	client     *redis.Client
	ctx        context.Context
	key        string
	expiration time.Duration
}

var _ stock.Stock = (*RedisStock)(nil)

// NewRedisStock 创建对应一局游戏的牌堆，ctx 用于之后的所有 Redis 调用
func NewRedisStock(ctx context.Context, client *redis.Client, gameID string, expiration time.Duration) *RedisStock {
	if expiration <= 0 {
		expiration = defaultStockExpiration
	}
	return &RedisStock{
		client:     client,
		ctx:        ctx,
		key:        stockKeyPrefix + gameID,
		expiration: expiration,
	}
}

// Key 牌堆在 Redis 中的键
func (rs *RedisStock) Key() string {
	return rs.key
}

func (rs *RedisStock) push(front bool, c card.Card) error {
	_, err := rs.client.TxPipelined(rs.ctx, func(pipe redis.Pipeliner) error {
		if front {
			pipe.LPush(rs.ctx, rs.key, c.String())
		} else {
			pipe.RPush(rs.ctx, rs.key, c.String())
		}
		pipe.Expire(rs.ctx, rs.key, rs.expiration)
		return nil
	})
	if err != nil {
		return fmt.Errorf("写入牌堆失败: %w", err)
	}
	return nil
}

func (rs *RedisStock) PushFront(c card.Card) error {
	return rs.push(true, c)
}

func (rs *RedisStock) PushBack(c card.Card) error {
	return rs.push(false, c)
}

// decode 把 Redis 返回值转换为牌，redis.Nil 视为牌堆已空
func decode(name string, err error) (card.Card, error) {
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, apperrors.ErrEmptyStock
		}
		return -1, fmt.Errorf("读取牌堆失败: %w", err)
	}
	return card.Parse(name)
}

func (rs *RedisStock) PopFront() (card.Card, error) {
	return decode(rs.client.LPop(rs.ctx, rs.key).Result())
}

func (rs *RedisStock) PopBack() (card.Card, error) {
	return decode(rs.client.RPop(rs.ctx, rs.key).Result())
}

func (rs *RedisStock) PeekFront() (card.Card, error) {
	return decode(rs.client.LIndex(rs.ctx, rs.key, 0).Result())
}

func (rs *RedisStock) PeekBack() (card.Card, error) {
	return decode(rs.client.LIndex(rs.ctx, rs.key, -1).Result())
}

func (rs *RedisStock) Len() (int, error) {
	n, err := rs.client.LLen(rs.ctx, rs.key).Result()
	if err != nil {
		return 0, fmt.Errorf("读取牌堆长度失败: %w", err)
	}
	return int(n), nil
}

// Reset 原子地替换整个牌堆
func (rs *RedisStock) Reset(cards []card.Card) error {
	values := make([]any, len(cards))
	for i, c := range cards {
		values[i] = c.String()
	}

	_, err := rs.client.TxPipelined(rs.ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(rs.ctx, rs.key)
		if len(values) > 0 {
			pipe.RPush(rs.ctx, rs.key, values...)
			pipe.Expire(rs.ctx, rs.key, rs.expiration)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("重置牌堆失败: %w", err)
	}
	return nil
}

func (rs *RedisStock) Cards() ([]card.Card, error) {
	names, err := rs.client.LRange(rs.ctx, rs.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("读取牌堆失败: %w", err)
	}

	cards := make([]card.Card, 0, len(names))
	for _, name := range names {
		c, err := card.Parse(name)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Close 删除牌堆，游戏结束后不留任何数据
func (rs *RedisStock) Close() error {
	return rs.client.Del(rs.ctx, rs.key).Err()
}
