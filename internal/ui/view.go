package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nibzard/kanban-go/internal/board"
)

const columnWidth = 30

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f8fafc")).
			Background(lipgloss.Color("#334155")).
			Padding(0, 1)

	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(columnWidth)

	columnTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffffff")).
				Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(columnWidth - 4)

	selectedCardStyle = cardStyle.
				BorderStyle(lipgloss.ThickBorder()).
				BorderForeground(lipgloss.Color("#f8fafc"))

	ghostCardStyle = cardStyle.
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("#facc15"))

	carriedCardStyle = cardStyle.Faint(true)

	dialogStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#64748b")).
			Padding(1, 2).
			Width(56)

	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	messageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")).Bold(true)
	activeStyle  = lipgloss.NewStyle().Reverse(true).Padding(0, 1)
	optionStyle  = lipgloss.NewStyle().Padding(0, 1)
)

func priorityStyle(p board.Priority) lipgloss.Style {
	switch p {
	case board.PriorityHigh:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true)
	case board.PriorityMedium:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	}
}

func (m *model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Kanban Board"))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %d columns · %d tasks", len(m.board.Columns), m.board.TaskCount())))
	b.WriteString("\n\n")

	if m.showHelp {
		b.WriteString(helpView())
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("?: close help"))
		return b.String()
	}

	if len(m.board.Columns) == 0 {
		b.WriteString(mutedStyle.Render("No columns yet. Press N to add one."))
		b.WriteString("\n")
	} else {
		views := make([]string, len(m.board.Columns))
		for i, col := range m.board.Columns {
			views[i] = m.renderColumn(i, col)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, views...))
		b.WriteString("\n")
	}

	switch m.mode {
	case modeForm:
		b.WriteString(m.formView())
		b.WriteString("\n")
	case modeConfirm:
		b.WriteString(warningStyle.Render(m.confirm.prompt + " (y/n)"))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	} else if m.message != "" {
		b.WriteString(messageStyle.Render(m.message))
		b.WriteString("\n")
	}

	b.WriteString(mutedStyle.Render(m.footer()))
	return b.String()
}

func (m *model) footer() string {
	switch m.mode {
	case modeDrag:
		return "moving \"" + m.drag.task.Content + "\" • hjkl: choose spot • space/enter: drop • esc: cancel"
	case modeForm:
		return "enter: save • tab: change " + m.formSelectorName() + " • ctrl+w: delete word • esc: cancel"
	case modeConfirm:
		return "y: delete • n/esc: keep"
	default:
		return "hjkl: navigate • space: pick up • </>: move • n/N: new task/column • e/E: edit • d/D: delete • ?: help • q: quit"
	}
}

func (m *model) formSelectorName() string {
	if m.form != nil && m.form.isTask() {
		return "priority"
	}
	return "color"
}

func (m *model) renderColumn(ci int, col board.Column) string {
	accent := lipgloss.Color(col.Color.Swatch().Hex)

	var lines []string
	header := columnTitleStyle.Background(accent).Render(col.Title)
	lines = append(lines, header+mutedStyle.Render(fmt.Sprintf(" %d", len(col.Items))), "")

	cards := m.columnCards(ci, col)
	if len(cards) == 0 {
		lines = append(lines, mutedStyle.Render("(empty)"))
	}
	lines = append(lines, cards...)

	style := columnStyle.BorderForeground(accent)
	if ci == m.col {
		style = style.BorderStyle(lipgloss.ThickBorder())
	}
	return style.Render(strings.Join(lines, "\n"))
}

// columnCards renders the cards of column ci. While a card is carried, the
// column under the cursor shows it at the drop index.
func (m *model) columnCards(ci int, col board.Column) []string {
	if m.drag == nil {
		cards := make([]string, len(col.Items))
		for i, t := range col.Items {
			style := cardStyle
			if ci == m.col && i == m.row {
				style = selectedCardStyle
			}
			cards[i] = renderCard(t, style)
		}
		return cards
	}

	isSource := col.ID == m.drag.column
	isTarget := ci == m.col
	var cards []string
	for i, t := range col.Items {
		if isSource && i == m.drag.index {
			if !isTarget {
				cards = append(cards, renderCard(t, carriedCardStyle))
			}
			continue
		}
		cards = append(cards, renderCard(t, cardStyle))
	}
	if isTarget {
		at := min(m.row, len(cards))
		ghost := renderCard(m.drag.task, ghostCardStyle)
		cards = slices.Insert(cards, at, ghost)
	}
	return cards
}

func renderCard(t board.Task, style lipgloss.Style) string {
	meta := priorityStyle(t.Priority).Render(string(t.Priority))
	if t.Date != "" {
		meta += mutedStyle.Render("  " + t.Date)
	}
	return style.Render(t.Content + "\n" + meta)
}

func (m *model) formView() string {
	f := m.form
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(f.title()))
	b.WriteString("\n\n")
	b.WriteString(f.label() + ": " + f.input.View() + "\n\n")

	if f.isTask() {
		b.WriteString("Priority: ")
		for _, p := range board.Priorities {
			label := priorityStyle(p).Render(string(p))
			if p == f.priority {
				b.WriteString(activeStyle.Render(string(p)))
			} else {
				b.WriteString(optionStyle.Render(label))
			}
		}
	} else {
		b.WriteString("Color: ")
		for _, sw := range board.Palette {
			swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(sw.Hex)).Render("■ " + sw.Name)
			if sw.Color == f.color {
				b.WriteString(activeStyle.Render("■ " + sw.Name))
			} else {
				b.WriteString(optionStyle.Render(swatch))
			}
		}
	}

	if f.err != nil {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(f.err.Error()))
	}
	return dialogStyle.Render(b.String())
}

func helpView() string {
	rows := [][2]string{
		{"h/l, ←/→", "Previous / next column"},
		{"k/j, ↑/↓", "Previous / next card"},
		{"space, m", "Pick up card; move with hjkl, drop with space/enter"},
		{"esc", "Cancel a move"},
		{"<, >", "Move card to the previous / next column"},
		{"K, J", "Move card up / down"},
		{"n", "New task in this column"},
		{"N", "New column"},
		{"e, E", "Edit task / column"},
		{"d, D", "Delete task / column"},
		{"p", "Cycle task priority"},
		{"c", "Cycle column color"},
		{"?", "Toggle this help"},
		{"q, ctrl+c", "Quit"},
	}
	var b strings.Builder
	b.WriteString("Keyboard Shortcuts\n\n")
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", r[0], r[1]))
	}
	return b.String()
}
