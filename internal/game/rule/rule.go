package rule

import (
	"github.com/palemoky/fifty-one/internal/game/card"
)

const (
	DefaultJokerValue = 6 // 王牌分值，房规可取 5 或 6
	DefaultAceValue   = 5
	DefaultScoreCap   = 10
	DefaultCallReward = 10
)

// Rules 计分规则
type Rules struct {
	JokerValue int
	AceValue   int
	ScoreCap   int
	CallReward int // 叫牌方获胜得 +CallReward，失败得 -CallReward
}

// Default 返回默认规则
func Default() Rules {
	return Rules{
		JokerValue: DefaultJokerValue,
		AceValue:   DefaultAceValue,
		ScoreCap:   DefaultScoreCap,
		CallReward: DefaultCallReward,
	}
}

// CardScore 单张牌的分值
func (r Rules) CardScore(c card.Card) int {
	switch {
	case c.IsJoker():
		return r.JokerValue
	case c.IsAce():
		return r.AceValue
	default:
		return c.Rank()
	}
}

// HandScore 以第一张牌为基准花色，所有牌同花色（王牌视为同花色）时累加分值，
// 只要有一张不同花色就记 0 分，结果不超过 ScoreCap
func (r Rules) HandScore(cards []card.Card) int {
	if len(cards) == 0 {
		return 0
	}

	first := cards[0]
	score := 0
	for _, c := range cards {
		if !first.Matches(c) {
			return 0
		}
		score += r.CardScore(c)
	}
	return min(score, r.ScoreCap)
}

// IsWin 玩家是否获胜，平局算玩家赢
func IsWin(playerScore, cpuScore int) bool {
	return playerScore >= cpuScore
}

// Payoff 叫牌方的收益
func (r Rules) Payoff(callerWins bool) int {
	if callerWins {
		return r.CallReward
	}
	return -r.CallReward
}
