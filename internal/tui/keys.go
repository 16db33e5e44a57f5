package tui

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/vocabtype/internal/typing"
)

type keyMap struct {
	Quit        key.Binding
	QuitMenu    key.Binding
	Up          key.Binding
	Down        key.Binding
	Choose      key.Binding
	Back        key.Binding
	Submit      key.Binding
	Prev        key.Binding
	Next        key.Binding
	Restart     key.Binding
	ChangeTopic key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		QuitMenu: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Choose: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "choose"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "change topic"),
		),
		Submit: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "submit word"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h", "shift+tab"),
			key.WithHelp("←/→", "select"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l", "tab"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "practice again"),
		),
		ChangeTopic: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "another topic"),
		),
	}
}

func helpLine(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" {
			continue
		}
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return footerStyle.Render(strings.Join(parts, "  ·  "))
}

// engineKeys translates a terminal key press into typing engine keys.
// A multi-rune message yields one key per rune.
func engineKeys(msg tea.KeyMsg) []typing.Key {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete:
		return []typing.Key{{Kind: typing.KeyBackspace}}
	case tea.KeySpace:
		return []typing.Key{{Kind: typing.KeySeparator}}
	case tea.KeyRunes:
		if msg.Alt || msg.Paste {
			return []typing.Key{{Kind: typing.KeyOther}}
		}
		keys := make([]typing.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if !unicode.IsPrint(r) {
				keys = append(keys, typing.Key{Kind: typing.KeyOther})
				continue
			}
			keys = append(keys, typing.CharKey(r))
		}
		return keys
	default:
		return []typing.Key{{Kind: typing.KeyOther}}
	}
}
