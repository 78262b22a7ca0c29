// Package ui provides the main entry point for the UI.
package ui

import (
	"github.com/palemoky/fifty-one/internal/bot"
	"github.com/palemoky/fifty-one/internal/game"
	"github.com/palemoky/fifty-one/internal/ui/model"
	"github.com/palemoky/fifty-one/internal/ui/view"
)

// NewLocalModel creates the interactive model for a dealt game.
func NewLocalModel(g *game.Game, cpu bot.Brain, maxTurns int) *model.LocalModel {
	return model.NewLocalModel(g, cpu, maxTurns)
}

// Summary renders a finished game for plain console output.
func Summary(o *game.Outcome) string {
	return view.RenderSummary(o)
}
