package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/verte-zerg/vocabtype/internal/session"
)

func (m *Model) renderPractice(p session.Practicing) string {
	done, total := p.Typing.Progress()
	ratio := 0.0
	if total > 0 {
		ratio = float64(done) / float64(total)
	}
	width := m.contentWidth()
	stream := wrapStyledRunes(buildWordStream(p.Typing), width)
	if width > 0 {
		stream = lipgloss.NewStyle().Width(width).Render(stream)
	}
	translation := ""
	if p.Typing.HasTranslation {
		text := p.Typing.LastTranslation
		if width > 0 {
			text = truncate.StringWithTail(text, uint(width), "…")
		}
		translation = translationStyle.Render(text)
	}
	return lipgloss.JoinVertical(lipgloss.Center,
		m.progress.ViewAs(ratio),
		footerStyle.Render(fmt.Sprintf("%d / %d", done, total)),
		"",
		stream,
		"",
		translation,
		"",
		footerStyle.Render("Type each word and press space to submit it."),
	)
}
