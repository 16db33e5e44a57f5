package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/vocabtype/internal/session"
	"github.com/verte-zerg/vocabtype/internal/vocab"
)

var (
	completeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399")).Bold(true)
	topicStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#22D3EE")).Bold(true)

	activeButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F0F0F0")).
				Bold(true).
				Padding(0, 2).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#22D3EE"))
	inactiveButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 2).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
)

func (m *Model) renderCompletion(f session.Finished) string {
	labels := []string{"Practice Again", "Choose Another Topic"}
	buttons := make([]string, len(labels))
	for i, label := range labels {
		if i == m.action {
			buttons[i] = activeButtonStyle.Render(label)
		} else {
			buttons[i] = inactiveButtonStyle.Render(label)
		}
	}
	summary := "You've practiced all words in " + topicStyle.Render(vocab.DisplayTitle(f.Topic.Title)) + "."
	return lipgloss.JoinVertical(lipgloss.Center,
		completeStyle.Render("Topic Complete!"),
		"",
		summary,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, buttons[0], "  ", buttons[1]),
	)
}
