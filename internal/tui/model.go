// Package tui provides the Bubble Tea vocabulary typing interface.
package tui

import (
	"io"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/vocabtype/internal/model"
	"github.com/verte-zerg/vocabtype/internal/session"
	"github.com/verte-zerg/vocabtype/internal/typing"
)

const (
	actionRestart = iota
	actionChangeTopic
)

const defaultWidthPct = 0.70

// Model implements the Bubble Tea practice UI.
type Model struct {
	config model.Config
	ctrl   *session.Controller
	topics []model.VocabularyTopic
	logger *log.Logger
	keys   keyMap

	width  int
	height int

	topicTable table.Model
	progress   progress.Model
	action     int
	errMsg     string
}

var (
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#22D3EE")).Bold(true)
	headingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	completedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = pendingStyle.Underline(true)
	translationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#34D399"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
)

// NewModel constructs the practice UI around a session controller.
// A nil logger discards debug output.
func NewModel(cfg model.Config, ctrl *session.Controller, topics []model.VocabularyTopic, logger *log.Logger) *Model {
	if cfg.WidthPct <= 0 || cfg.WidthPct > 1 {
		cfg.WidthPct = defaultWidthPct
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	m := &Model{
		config:   cfg,
		ctrl:     ctrl,
		topics:   topics,
		logger:   logger,
		keys:     defaultKeyMap(),
		progress: progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
	}
	m.topicTable = buildTopicTable(topics, 0)
	if p, ok := ctrl.Phase().(session.Practicing); ok {
		m.focusTopic(p.Topic.ID)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.ctrl.Phase().(type) {
		case session.Practicing:
			return m.updatePractice(msg)
		case session.Finished:
			return m.updateCompletion(msg)
		default:
			return m.updateSelector(msg)
		}
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	header := m.renderHeader()
	var body, help string
	switch p := m.ctrl.Phase().(type) {
	case session.Practicing:
		body = m.renderPractice(p)
		help = helpLine(m.keys.Submit, m.keys.Back, m.keys.Quit)
	case session.Finished:
		body = m.renderCompletion(p)
		help = helpLine(m.keys.Prev, m.keys.Choose, m.keys.Restart, m.keys.ChangeTopic, m.keys.QuitMenu)
	default:
		body = m.renderSelector()
		help = helpLine(m.keys.Up, m.keys.Choose, m.keys.QuitMenu)
	}
	if m.errMsg != "" {
		help = errorStyle.Render(m.errMsg) + "\n" + help
	}
	if m.width == 0 || m.height == 0 {
		return strings.Join([]string{header, body, help}, "\n\n")
	}
	headerHeight := lipgloss.Height(header)
	helpHeight := lipgloss.Height(help)
	bodyHeight := m.height - headerHeight - helpHeight
	if bodyHeight < 1 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	top := lipgloss.Place(m.width, headerHeight, lipgloss.Center, lipgloss.Top, header)
	middle := lipgloss.Place(m.width, bodyHeight, lipgloss.Center, lipgloss.Center, body)
	bottom := lipgloss.Place(m.width, helpHeight, lipgloss.Center, lipgloss.Bottom, help)
	return top + "\n" + middle + "\n" + bottom
}

func (m *Model) renderHeader() string {
	title := titleStyle.Render("TOEIC Typing Practice")
	if _, ok := m.ctrl.Phase().(session.Selecting); ok {
		return title
	}
	return footerStyle.Render("← esc") + "  " + title
}

func (m *Model) updatePractice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Back) {
		m.changeTopic()
		return m, nil
	}
	for _, k := range engineKeys(msg) {
		if ev := m.ctrl.HandleKey(k); ev == typing.EventFinished {
			m.action = actionRestart
			m.logger.Printf("phase: practicing -> finished")
			break
		}
	}
	return m, nil
}

func (m *Model) updateCompletion(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.QuitMenu):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.ChangeTopic):
		m.changeTopic()
	case key.Matches(msg, m.keys.Restart):
		m.restart()
	case key.Matches(msg, m.keys.Prev), key.Matches(msg, m.keys.Next):
		if m.action == actionRestart {
			m.action = actionChangeTopic
		} else {
			m.action = actionRestart
		}
	case key.Matches(msg, m.keys.Choose):
		if m.action == actionRestart {
			m.restart()
		} else {
			m.changeTopic()
		}
	}
	return m, nil
}

func (m *Model) updateSelector(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.QuitMenu):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Choose):
		m.selectTopic()
		return m, nil
	}
	var cmd tea.Cmd
	m.topicTable, cmd = m.topicTable.Update(msg)
	return m, cmd
}

func (m *Model) selectTopic() {
	idx := m.topicTable.Cursor()
	if idx < 0 || idx >= len(m.topics) {
		return
	}
	topic := m.topics[idx]
	if err := m.ctrl.SelectTopic(topic); err != nil {
		m.fail(err)
		return
	}
	m.errMsg = ""
	m.logger.Printf("phase: selecting -> practicing (topic %d, %d words)", topic.ID, len(topic.Words))
}

func (m *Model) restart() {
	if err := m.ctrl.Restart(); err != nil {
		m.fail(err)
		return
	}
	m.errMsg = ""
	m.logger.Printf("phase: finished -> practicing (restart)")
}

func (m *Model) changeTopic() {
	from := m.ctrl.Phase().Name()
	if err := m.ctrl.ChangeTopic(); err != nil {
		m.fail(err)
		return
	}
	m.errMsg = ""
	m.logger.Printf("phase: %s -> selecting", from)
}

func (m *Model) fail(err error) {
	m.errMsg = err.Error()
	m.logger.Printf("error: %v", err)
}

func (m *Model) focusTopic(id int) {
	for i, t := range m.topics {
		if t.ID == id {
			m.topicTable.SetCursor(i)
			return
		}
	}
}

func (m *Model) contentWidth() int {
	if m.width <= 0 {
		return 0
	}
	w := int(float64(m.width) * m.config.WidthPct)
	if w < 1 {
		w = 1
	}
	return w
}

func (m *Model) updateLayout() {
	w := m.contentWidth()
	if w <= 0 {
		return
	}
	m.progress.Width = w
	m.topicTable.SetWidth(minInt(w, topicTableWidth()))
	height := m.height - 8
	if height < 3 {
		height = 3
	}
	m.topicTable.SetHeight(minInt(height, len(m.topics)+2))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
