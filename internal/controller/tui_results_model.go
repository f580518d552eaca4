package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var statusColors = map[string]lipgloss.Color{
	statusPassed:   lipgloss.Color("2"), // Green
	statusKilled:   lipgloss.Color("2"),
	statusFailed:   lipgloss.Color("1"), // Red
	statusSurvived: lipgloss.Color("1"),
	statusListed:   lipgloss.Color("8"), // Gray
}

// resultDelegate renders one result per line.
type resultDelegate struct{}

func (d resultDelegate) Height() int  { return 1 }
func (d resultDelegate) Spacing() int { return 0 }
func (d resultDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d resultDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	result, ok := item.(resultItem)
	if !ok {
		return
	}

	labelWidth := m.Width() - 34 // index, status and expression columns plus spacing

	indexStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Width(4).Align(lipgloss.Right)
	statusStyle := lipgloss.NewStyle().Bold(true).Width(10)
	exprStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Width(16)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))

	if color, ok := statusColors[result.status]; ok {
		statusStyle = statusStyle.Foreground(color)
	}

	if index == m.Index() {
		selected := lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Bold(true)
		indexStyle = indexStyle.Inherit(selected)
		statusStyle = statusStyle.Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6"))
		exprStyle = exprStyle.Inherit(selected)
		labelStyle = labelStyle.Inherit(selected)
	}

	line := fmt.Sprintf("%s  %s  %s  %s",
		indexStyle.Render(fmt.Sprintf("%d", result.index)),
		statusStyle.Render(result.status),
		exprStyle.Render(truncateToWidth(result.expr, 16)),
		labelStyle.Render(truncateToWidth(result.label, labelWidth)),
	)
	_, _ = fmt.Fprint(w, line)
}

func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if lipgloss.Width(text) <= width {
		return text
	}

	const ellipsis = "…"

	maxWidth := width - lipgloss.Width(ellipsis)
	if maxWidth <= 0 {
		return ellipsis
	}

	currentWidth := 0

	result := make([]rune, 0, len(text))
	for _, r := range text {
		rWidth := lipgloss.Width(string(r))
		if currentWidth+rWidth > maxWidth {
			break
		}

		result = append(result, r)
		currentWidth += rWidth
	}

	return string(result) + ellipsis
}

// resultsModel shows cases, results or mutation reports as they arrive.
type resultsModel struct {
	mode     StartMode
	width    int
	height   int
	items    []resultItem
	list     list.Model
	summary  string
	passed   int
	total    int
	finished bool
}

func newResultsModel(mode StartMode) resultsModel {
	resultsList := list.New([]list.Item{}, resultDelegate{}, 80, 20)
	resultsList.SetShowPagination(false)
	resultsList.SetShowFilter(true)
	resultsList.SetShowHelp(false)
	resultsList.SetShowTitle(false)
	resultsList.SetShowStatusBar(false)
	resultsList.FilterInput.Placeholder = "Filter by label…"

	return resultsModel{
		mode: mode,
		list: resultsList,
	}
}

func (m resultsModel) Init() tea.Cmd {
	return nil
}

func (m resultsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetWidth(m.width)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		default:
			m.list, cmd = m.list.Update(msg)
		}

	case casesMsg:
		for i, c := range msg.cases {
			m.items = append(m.items, itemFromCase(i, c))
		}

		m.total = len(msg.cases)
		m.finished = true
		cmd = m.syncItems()

	case resultMsg:
		m.items = append(m.items, itemFromResult(msg.result))
		cmd = m.syncItems()

	case mutationMsg:
		m.items = append(m.items, itemFromMutation(msg.report))
		cmd = m.syncItems()

	case summaryMsg:
		m.summary = msg.text
		m.passed = msg.passed
		m.total = msg.total
		m.finished = true
	}

	return m, cmd
}

func (m *resultsModel) syncItems() tea.Cmd {
	items := make([]list.Item, 0, len(m.items))
	for _, item := range m.items {
		items = append(items, item)
	}

	return m.list.SetItems(items)
}

func (m resultsModel) title() string {
	switch m.mode {
	case ModeList:
		return "Operator Cases"
	case ModeMutate:
		return "Operator Mutations"
	default:
		return "Operator Checks"
	}
}

func (m resultsModel) View() string {
	accentColor := lipgloss.Color("6") // Cyan

	titleStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("205")).
		Bold(true).
		Padding(1, 0, 0, 2)

	summaryStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Padding(0, 0, 1, 2)

	accentStyle := lipgloss.NewStyle().Foreground(accentColor)

	status := "running…"
	if m.finished {
		status = m.summary
		if m.mode == ModeList {
			status = fmt.Sprintf("Total Cases %d", m.total)
		}
	}

	summary := summaryStyle.Render(fmt.Sprintf("Shown: %s  •  %s",
		accentStyle.Render(fmt.Sprintf("%d", len(m.items))),
		accentStyle.Render(status),
	))

	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Align(lipgloss.Center).
		Width(m.width)

	footer := footerStyle.Render("↑/k up • ↓/j down • / filter • q quit")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.title()),
		summary,
		m.renderTable(accentColor),
		footer,
	)
}

func (m resultsModel) renderTable(accentColor lipgloss.Color) string {
	// title (2) + summary (2) + footer (1) + border (2) + header (2)
	listHeight := m.height - 9
	if listHeight < 5 {
		listHeight = 5
	}

	listWidth := m.width - 6
	if listWidth < 40 {
		listWidth = 40
	}

	m.list.SetHeight(listHeight)
	m.list.SetWidth(listWidth)

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("8")).
		Width(listWidth)

	headers := headerStyle.Render(fmt.Sprintf("%4s  %-10s  %-16s  %s", "#", "Status", "Expression", "Label"))

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Margin(0, 1).
		Padding(0, 1)

	return container.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			headers,
			m.list.View(),
		),
	)
}
