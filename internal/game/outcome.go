package game

import (
	"github.com/palemoky/fifty-one/internal/game/card"
)

// Outcome 一局的结算结果
type Outcome struct {
	GameID      string
	Caller      Actor
	CpuScore    int
	PlayerScore int
	PlayerWins  bool
	Reward      int // 叫牌方视角的收益
	Table       card.Hand
	CpuHand     card.Hand
	PlayerHand  card.Hand
	Turns       int
}

// Winner 获胜方
func (o *Outcome) Winner() Actor {
	if o.PlayerWins {
		return Player
	}
	return Cpu
}

// RewardFor 指定一方视角的收益，双方之和为 0
func (o *Outcome) RewardFor(actor Actor) int {
	if actor == o.Caller {
		return o.Reward
	}
	return -o.Reward
}
