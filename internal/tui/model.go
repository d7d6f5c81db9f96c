package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"levelforge/internal/engine"
)

type boardMode int

const (
	modeLevel boardMode = iota
	modePower
)

type boardModel struct {
	ctx context.Context
	svc *engine.Service

	width  int
	height int

	mode    boardMode
	ranking *engine.Ranking

	selected int

	lastLog string
	loading bool
	err     error
}

type loadedMsg struct {
	ranking *engine.Ranking
	err     error
}

func newBoardModel(ctx context.Context, svc *engine.Service) boardModel {
	return boardModel{
		ctx:     ctx,
		svc:     svc,
		loading: true,
		lastLog: "Loaded.",
	}
}

func (m boardModel) Init() tea.Cmd {
	return m.loadCmd()
}

// loadCmd fetches the board for the current mode. The board runs against the
// local store with no logged-in user, so the personal rank stays zero.
func (m boardModel) loadCmd() tea.Cmd {
	mode := m.mode
	return func() tea.Msg {
		var (
			rk  *engine.Ranking
			err error
		)
		if mode == modePower {
			rk, err = m.svc.PowerRanking(m.ctx, 0)
		} else {
			rk, err = m.svc.LevelRanking(m.ctx, 0)
		}
		return loadedMsg{ranking: rk, err: err}
	}
}

func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case loadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err != nil {
			m.lastLog = "Load failed: " + msg.err.Error()
			return m, nil
		}
		m.ranking = msg.ranking
		m.lastLog = fmt.Sprintf("Refreshed at %s.", time.Now().Format("15:04:05"))
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "r":
			m.loading = true
			m.lastLog = "Refreshing…"
			return m, m.loadCmd()
		case "tab", "p", "l":
			if m.mode == modeLevel {
				m.mode = modePower
			} else {
				m.mode = modeLevel
			}
			m.loading = true
			m.selected = 0
			m.lastLog = "Switching board…"
			return m, m.loadCmd()
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
			return m, nil
		case "down", "j":
			if m.ranking != nil && m.selected < len(m.ranking.Entries)-1 {
				m.selected++
			}
			return m, nil
		}
	}
	return m, nil
}

func (m boardModel) View() string {
	if m.err != nil {
		return "Error: " + m.err.Error() + "\n\nPress q to quit.\n"
	}

	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 26
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 18 {
			leftW = 18
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	max := len(linesLeft)
	if len(linesRight) > max {
		max = len(linesRight)
	}

	var body strings.Builder
	for i := 0; i < max; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	name := "Level"
	if m.mode == modePower {
		name = "Power"
	}
	count := 0
	if m.ranking != nil {
		count = len(m.ranking.Entries)
	}
	return fmt.Sprintf("Levelforge | %s Board | %d characters", name, count)
}

func (m boardModel) renderSidebar() string {
	lines := []string{"Boards"}
	if m.mode == modeLevel {
		lines = append(lines, "> level")
		lines = append(lines, "  power")
	} else {
		lines = append(lines, "  level")
		lines = append(lines, "> power")
	}
	lines = append(lines, "")
	lines = append(lines, "Keys")
	lines = append(lines, "- ↑/↓ or j/k: move")
	lines = append(lines, "- tab: switch board")
	lines = append(lines, "- r: refresh")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	if m.loading {
		return "Loading…"
	}
	if m.ranking == nil || len(m.ranking.Entries) == 0 {
		return "Ranking\n\n(no characters yet)"
	}

	var out []string
	out = append(out, "Ranking")
	for i, e := range m.ranking.Entries {
		cursor := "  "
		if i == m.selected {
			cursor = "> "
		}
		out = append(out, fmt.Sprintf("%s#%-3d %-16s %-12s L%-3d power=%d",
			cursor, e.Rank, e.CharacterName, e.Username, e.Level, e.Power))
	}
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	if width <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) >= width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
