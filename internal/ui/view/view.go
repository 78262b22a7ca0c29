// Package view provides UI rendering functions.
package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/fifty-one/internal/game"
	"github.com/palemoky/fifty-one/internal/game/card"
	"github.com/palemoky/fifty-one/internal/ui/common"
)

// rankLabels 点数显示
var rankLabels = map[int]string{1: "A", 2: "2", 3: "3", 4: "4", 5: "5"}

var actorLabels = map[game.Actor]string{
	game.Player: "你",
	game.Cpu:    "CPU",
}

// ActorLabel returns the display name of a side.
func ActorLabel(a game.Actor) string {
	if label, ok := actorLabels[a]; ok {
		return label
	}
	return a.String()
}

// CardLabel returns the unstyled label, e.g. "♦A", "♥3", "★".
func CardLabel(c card.Card) string {
	if c.IsJoker() {
		return c.Suit().String()
	}
	return c.Suit().String() + rankLabels[c.Rank()]
}

// RenderCard renders one card with its suit colour.
func RenderCard(c card.Card) string {
	if c.IsJoker() {
		return common.JokerStyle.Render(" " + CardLabel(c) + " ")
	}
	return common.RedStyle.Render(" " + CardLabel(c) + " ")
}

// RenderHand renders both slots of a hand, left to right.
func RenderHand(h card.Hand) string {
	parts := make([]string, 0, card.HandSize)
	for _, c := range h {
		parts = append(parts, RenderCard(c))
	}
	return strings.Join(parts, " ")
}

// RenderHidden renders a face-down hand.
func RenderHidden() string {
	return strings.TrimSpace(strings.Repeat(common.HiddenCard+" ", card.HandSize))
}

func row(label, cards, extra string) string {
	return fmt.Sprintf("%-5s %s  %s", label, cards, extra)
}

// RenderBoard renders the table and the player's hand; the CPU hand stays hidden.
func RenderBoard(g *game.Game) string {
	var sb strings.Builder
	sb.WriteString(row("CPU", RenderHidden(), ""))
	sb.WriteString("\n")
	sb.WriteString(row("场牌", RenderHand(g.Table()), ""))
	sb.WriteString("\n")
	sb.WriteString(row("你", RenderHand(g.Hand(game.Player)), fmt.Sprintf("%d 分", g.Reward(game.Player))))
	return common.BoxStyle.Render(sb.String())
}

// RenderSummary renders the final hands, both scores, the winner and each side's reward.
func RenderSummary(o *game.Outcome) string {
	title := common.TitleStyle("🃏 Fifty-One 结算")

	var board strings.Builder
	board.WriteString(row("CPU", RenderHand(o.CpuHand), fmt.Sprintf("%d 分", o.CpuScore)))
	board.WriteString("\n")
	board.WriteString(row("场牌", RenderHand(o.Table), ""))
	board.WriteString("\n")
	board.WriteString(row("你", RenderHand(o.PlayerHand), fmt.Sprintf("%d 分", o.PlayerScore)))

	info := fmt.Sprintf("叫牌方: %s    回合数: %d", ActorLabel(o.Caller), o.Turns)

	result := common.WinStyle.Render(fmt.Sprintf("%s 你赢了", common.WinIcon))
	if o.Winner() == game.Cpu {
		result = common.LoseStyle.Render(fmt.Sprintf("%s CPU 赢了", common.LoseIcon))
	}
	if o.PlayerScore == o.CpuScore {
		result += common.GrayStyle.Render("（平局算玩家赢）")
	}

	reward := fmt.Sprintf("收益: %s %+d / %s %+d",
		ActorLabel(game.Player), o.RewardFor(game.Player),
		ActorLabel(game.Cpu), o.RewardFor(game.Cpu))

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		common.BoxStyle.Render(board.String()),
		"",
		info,
		result,
		reward,
	)
}
