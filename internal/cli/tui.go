package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/flowdeck/flowdeck/pkg/session"
	"github.com/flowdeck/flowdeck/pkg/store"
)

// =============================================================================
// editModel - Interactive graph editing
// =============================================================================

// editModel is the bubbletea model for the interactive edit session.
// It lists the live graph's nodes; selecting one opens the choice
// dialog with the copy/delete/dismiss actions, each dispatched through
// the session controller. Bubbletea processes one message at a time,
// which gives the controller its run-to-completion event turns.
type editModel struct {
	graph  *store.Graph
	ctrl   *session.Controller
	cursor int
	offset int
	height int
	status string
	quit   bool
}

func newEditModel(g *store.Graph) editModel {
	return editModel{
		graph:  g,
		ctrl:   session.New(g),
		height: 15,
	}
}

func (m editModel) Init() tea.Cmd {
	return nil
}

func (m editModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if _, open := m.ctrl.Selected(); open {
			return m.updateDialog(msg)
		}
		return m.updateList(msg)
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

// updateList handles keys while browsing the node list.
func (m editModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nodes := m.graph.Nodes()

	switch msg.String() {
	case "q", "ctrl+c":
		m.quit = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			if m.cursor < m.offset {
				m.offset = m.cursor
			}
		}
	case "down", "j":
		if m.cursor < len(nodes)-1 {
			m.cursor++
			if m.cursor >= m.offset+m.height {
				m.offset = m.cursor - m.height + 1
			}
		}
	case "enter":
		if len(nodes) == 0 {
			return m, nil
		}
		if err := m.ctrl.Click(nodes[m.cursor].ID); err != nil {
			m.status = styleError.Render(err.Error())
		}
	}
	return m, nil
}

// updateDialog handles keys while the choice dialog is open.
func (m editModel) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		newID, err := m.ctrl.Copy()
		if err != nil {
			m.status = styleError.Render(err.Error())
			return m, nil
		}
		m.status = styleSuccess.Render("copied to " + newID)
	case "d":
		id, _ := m.ctrl.Selected()
		if err := m.ctrl.Delete(); err != nil {
			m.status = styleError.Render(err.Error())
			return m, nil
		}
		m.status = styleSuccess.Render("deleted " + id)
		if n := m.graph.NodeCount(); m.cursor >= n && n > 0 {
			m.cursor = n - 1
		}
	case "esc", "q":
		m.ctrl.Dismiss()
		m.status = styleDim.Render("dismissed")
	case "ctrl+c":
		m.quit = true
		return m, tea.Quit
	}
	return m, nil
}

func (m editModel) View() string {
	var b strings.Builder

	b.WriteString(styleTitle.Render("Flowdeck Graph"))
	b.WriteString("\n")
	if selected, open := m.ctrl.Selected(); open {
		b.WriteString(styleWarning.Render(fmt.Sprintf("node %s: c copy  d delete  esc dismiss", selected)))
	} else {
		b.WriteString(styleDim.Render("↑/↓ navigate  ⏎ select  q quit"))
	}
	b.WriteString("\n\n")

	nodes := m.graph.Nodes()
	if len(nodes) == 0 {
		b.WriteString(styleDim.Render("(empty graph)"))
		b.WriteString("\n")
	}

	end := m.offset + m.height
	if end > len(nodes) {
		end = len(nodes)
	}
	for i := m.offset; i < end; i++ {
		n := nodes[i]
		cursor := "  "
		style := styleNormal
		if i == m.cursor {
			cursor = "▸ "
			style = styleSelected
		}
		line := fmt.Sprintf("%s%s  %s (%s at %g,%g)", cursor, n.ID, n.Label, n.Shape, n.X, n.Y)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styleDim.Render(fmt.Sprintf("%d nodes, %d edges", m.graph.NodeCount(), m.graph.EdgeCount())))
	if m.status != "" {
		b.WriteString("  ")
		b.WriteString(m.status)
	}
	b.WriteString("\n")

	return b.String()
}
