package game

import (
	"fmt"

	"github.com/palemoky/fifty-one/internal/apperrors"
)

// ActionKind 动作类型
type ActionKind int

const (
	ActionSwap       ActionKind = iota // 与场牌交换
	ActionClearTable                   // 流掉场牌
	ActionPass                         // 过
	ActionCall                         // 叫牌
)

var actionKindNames = map[ActionKind]string{
	ActionSwap:       "swap",
	ActionClearTable: "clear",
	ActionPass:       "pass",
	ActionCall:       "call",
}

func (k ActionKind) String() string {
	if name, ok := actionKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ActionKind(%d)", int(k))
}

// Action 一次行动，HandIndex/TableIndex 只对交换有意义
type Action struct {
	Kind       ActionKind
	HandIndex  int
	TableIndex int
}

var (
	ClearTableAction = Action{Kind: ActionClearTable}
	PassAction       = Action{Kind: ActionPass}
	CallAction       = Action{Kind: ActionCall}
)

// SwapAction 交换手牌 handIndex 与场牌 tableIndex
func SwapAction(handIndex, tableIndex int) Action {
	return Action{Kind: ActionSwap, HandIndex: handIndex, TableIndex: tableIndex}
}

func (a Action) String() string {
	if a.Kind == ActionSwap {
		return fmt.Sprintf("swap(hand=%d, table=%d)", a.HandIndex, a.TableIndex)
	}
	return a.Kind.String()
}

// Apply 执行行动方的一次行动，叫牌时返回结果
func (g *Game) Apply(actor Actor, a Action) (*Outcome, error) {
	if !actor.Valid() {
		return nil, apperrors.ErrUnknownActor
	}

	switch a.Kind {
	case ActionSwap:
		return nil, g.ChangeCard(a.HandIndex, a.TableIndex, actor)
	case ActionClearTable:
		return nil, g.ClearTableCards()
	case ActionPass:
		return nil, g.Pass()
	case ActionCall:
		return g.Call(actor)
	default:
		return nil, apperrors.ErrUnknownAction
	}
}
