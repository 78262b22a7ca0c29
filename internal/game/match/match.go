// Package match drives one game from deal to call.
package match

import (
	"errors"
	"fmt"

	"github.com/palemoky/fifty-one/internal/bot"
	"github.com/palemoky/fifty-one/internal/game"
	"github.com/palemoky/fifty-one/internal/logger"
)

// DefaultMaxTurns bounds a game whose brains never call.
const DefaultMaxTurns = 200

// Brains assigns a decision maker to each side.
type Brains struct {
	Player bot.Brain
	Cpu    bot.Brain
}

func (b Brains) forActor(actor game.Actor) bot.Brain {
	if actor == game.Cpu {
		return b.Cpu
	}
	return b.Player
}

// Options tune the driver loop.
type Options struct {
	// MaxTurns forces the actor on turn to call once this many actions have
	// been applied. Zero means DefaultMaxTurns.
	MaxTurns int
	// First is the actor that opens the game.
	First game.Actor
}

// Run deals the game if needed, then alternates turns until someone calls.
// Any error aborts the game and no outcome is returned.
func Run(g *game.Game, brains Brains, opts Options) (*game.Outcome, error) {
	if brains.Player == nil || brains.Cpu == nil {
		return nil, errors.New("双方都必须指定 Brain")
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = DefaultMaxTurns
	}

	if g.Phase() == game.PhaseNew {
		if err := g.Init(); err != nil {
			return nil, fmt.Errorf("发牌失败: %w", err)
		}
	}
	logger.LogInfo("game %s dealt: table=[%s] cpu=[%s] player=[%s]",
		g.ID, g.Table(), g.Hand(game.Cpu), g.Hand(game.Player))

	actor := opts.First
	for {
		action, err := nextAction(g, brains.forActor(actor), actor, opts.MaxTurns)
		if err != nil {
			logger.LogError("game %s: %s could not choose an action: %v", g.ID, actor, err)
			return nil, err
		}

		outcome, err := g.Apply(actor, action)
		if err != nil {
			logger.LogError("game %s: %s %s failed: %v", g.ID, actor, action, err)
			return nil, fmt.Errorf("%s %s 失败: %w", actor, action, err)
		}
		logger.LogInfo("game %s turn %d: %s %s, table=[%s]", g.ID, g.Turns(), actor, action, g.Table())

		if outcome != nil {
			logger.LogInfo("game %s over: caller=%s player=%d cpu=%d reward=%d",
				g.ID, outcome.Caller, outcome.PlayerScore, outcome.CpuScore, outcome.Reward)
			return outcome, nil
		}
		actor = actor.Opponent()
	}
}

func nextAction(g *game.Game, brain bot.Brain, actor game.Actor, maxTurns int) (game.Action, error) {
	if g.Turns() >= maxTurns {
		logger.LogInfo("game %s reached %d turns, forcing %s to call", g.ID, maxTurns, actor)
		return game.CallAction, nil
	}
	return brain.ChooseAction(g, actor)
}
