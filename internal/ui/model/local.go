// Package model holds the bubbletea model for a local game against the CPU.
package model

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/palemoky/fifty-one/internal/bot"
	"github.com/palemoky/fifty-one/internal/game"
	"github.com/palemoky/fifty-one/internal/game/match"
	"github.com/palemoky/fifty-one/internal/logger"
	"github.com/palemoky/fifty-one/internal/ui/common"
	"github.com/palemoky/fifty-one/internal/ui/view"
)

const historySize = 6

// actionMenu 与 bot 的动作编码一一对应
var actionMenu = []string{
	"0 左手牌 ↔ 左场牌",
	"1 左手牌 ↔ 右场牌",
	"2 右手牌 ↔ 左场牌",
	"3 右手牌 ↔ 右场牌",
	"4 流掉场牌",
	"5 过",
	"6 叫牌",
}

// LocalModel lets a human play the Player side while a brain plays the CPU.
type LocalModel struct {
	game     *game.Game
	cpu      bot.Brain
	maxTurns int

	input   textinput.Model
	history []string
	errMsg  string
	outcome *game.Outcome
	err     error
}

// NewLocalModel creates the model. The game must already be dealt.
func NewLocalModel(g *game.Game, cpu bot.Brain, maxTurns int) *LocalModel {
	if maxTurns <= 0 {
		maxTurns = match.DefaultMaxTurns
	}

	input := textinput.New()
	input.Placeholder = "输入动作编号 0-6，回车确认"
	input.CharLimit = 1
	input.Width = 30
	input.Focus()

	return &LocalModel{
		game:     g,
		cpu:      cpu,
		maxTurns: maxTurns,
		input:    input,
	}
}

// Outcome is set once someone has called.
func (m *LocalModel) Outcome() *game.Outcome {
	return m.outcome
}

// Err is set when the game was aborted by an engine error.
func (m *LocalModel) Err() error {
	return m.err
}

func (m *LocalModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LocalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit
	}

	if m.outcome != nil || m.err != nil {
		return m, tea.Quit
	}

	if keyMsg.Type == tea.KeyEnter {
		m.submit(strings.TrimSpace(m.input.Value()))
		m.input.Reset()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *LocalModel) submit(value string) {
	m.errMsg = ""

	code, err := strconv.Atoi(value)
	if err != nil {
		m.errMsg = fmt.Sprintf("无效的输入: %q", value)
		return
	}
	action, err := bot.Decode(code)
	if err != nil {
		m.errMsg = fmt.Sprintf("没有编号为 %d 的动作", code)
		return
	}

	if m.play(game.Player, action) {
		return
	}

	cpuAction := game.CallAction
	if !m.mustCall() {
		if cpuAction, err = m.cpu.ChooseAction(m.game, game.Cpu); err != nil {
			m.abort(err)
			return
		}
	}
	if m.play(game.Cpu, cpuAction) {
		return
	}

	// 回合数用尽时玩家无需输入，直接替玩家叫牌
	if m.mustCall() {
		m.play(game.Player, game.CallAction)
	}
}

// mustCall 回合数达到上限后，轮到的一方必须叫牌
func (m *LocalModel) mustCall() bool {
	return m.game.Turns() >= m.maxTurns
}

// play applies one action and reports whether the game has ended.
func (m *LocalModel) play(actor game.Actor, action game.Action) bool {
	outcome, err := m.game.Apply(actor, action)
	if err != nil {
		m.abort(err)
		return true
	}
	logger.LogInfo("game %s turn %d: %s %s", m.game.ID, m.game.Turns(), actor, action)

	m.history = append(m.history, fmt.Sprintf("%s: %s", view.ActorLabel(actor), action))
	if len(m.history) > historySize {
		m.history = m.history[len(m.history)-historySize:]
	}

	if outcome != nil {
		m.outcome = outcome
		return true
	}
	return false
}

func (m *LocalModel) abort(err error) {
	logger.LogError("game %s aborted: %v", m.game.ID, err)
	m.err = err
}

func (m *LocalModel) View() string {
	if m.err != nil {
		return common.DocStyle.Render(common.ErrorStyle.Render(fmt.Sprintf("游戏中止: %v", m.err)) + "\n\n按任意键退出")
	}
	if m.outcome != nil {
		return common.DocStyle.Render(view.RenderSummary(m.outcome) + "\n\n按任意键退出")
	}

	var sb strings.Builder
	sb.WriteString(common.TitleStyle("🃏 Fifty-One"))
	sb.WriteString("\n\n")
	sb.WriteString(view.RenderBoard(m.game))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(actionMenu, "\n"))
	sb.WriteString("\n")

	if len(m.history) > 0 {
		sb.WriteString("\n")
		sb.WriteString(common.GrayStyle.Render(strings.Join(m.history, "\n")))
		sb.WriteString("\n")
	}

	sb.WriteString(common.PromptStyle.Render(m.input.View()))
	if m.errMsg != "" {
		sb.WriteString("\n")
		sb.WriteString(common.ErrorStyle.Render(m.errMsg))
	}
	return common.DocStyle.Render(sb.String())
}
