package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/vocabtype/internal/model"
	"github.com/verte-zerg/vocabtype/internal/vocab"
)

func topicColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Topic", Width: 28},
		{Title: "Vietnamese", Width: 26},
		{Title: "Words", Width: 5},
	}
}

func topicTableWidth() int {
	total := 0
	for _, c := range topicColumns() {
		// Cell padding adds one column on the right.
		total += c.Width + 1
	}
	return total
}

func buildTopicTable(topics []model.VocabularyTopic, height int) table.Model {
	rows := make([]table.Row, 0, len(topics))
	for _, t := range topics {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", t.ID),
			vocab.DisplayTitle(t.Title),
			t.LocalizedTitle,
			fmt.Sprintf("%d", len(t.Words)),
		})
	}
	if height <= 0 {
		height = len(topics) + 2
	}
	t := table.New(
		table.WithColumns(topicColumns()),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	t.SetStyles(topicTableStyles())
	return t
}

func topicTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#22D3EE")).
		Bold(true)
	return styles
}

func (m *Model) renderSelector() string {
	lines := []string{
		headingStyle.Render("Select a Topic"),
		footerStyle.Render("Choose a vocabulary set to start practicing."),
		"",
		m.topicTable.View(),
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
