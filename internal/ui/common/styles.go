// Package common provides shared styles for the UI.
package common

import (
	"github.com/charmbracelet/lipgloss"
)

// Icon constants
const (
	WinIcon    = "🏆"
	LoseIcon   = "💧"
	HiddenCard = "🂠"
)

// Lipgloss Styles - shared by the summary and the interactive prompt
var (
	DocStyle    = lipgloss.NewStyle().Margin(1, 2)
	RedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	JokerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8860B")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	GrayStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	TitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	BoxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	PromptStyle = lipgloss.NewStyle().MarginTop(1)
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	WinStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	LoseStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)
