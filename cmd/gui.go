package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"nexus-mod-tracker/logger"
	"nexus-mod-tracker/nexus"
)

// guiCmd represents the gui command
var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Launch the interactive tracked-mods browser",
	Long:  `Launch an interactive TUI to browse your tracked mods and untrack them in bulk.`,
	Run: func(_ *cobra.Command, _ []string) {
		runGUI()
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}

// TrackedRow is one selectable line of the browser.
type TrackedRow struct {
	Domain   string
	ModID    nexus.ModID
	Selected bool
}

// Model represents the state of the TUI
type Model struct {
	rows          []TrackedRow
	selectedIndex int
	loading       bool
	untracking    bool
	error         string
	message       string
	client        *nexus.Client
	spinner       spinner.Model
	width         int
	height        int
}

func initialModel(client *nexus.Client) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		client:  client,
		spinner: s,
		loading: true,
		width:   80,
		height:  24,
	}
}

// Initialize the model
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadTracked(),
		m.spinner.Tick,
	)
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case trackedLoadedMsg:
		m.rows = msg.rows
		m.loading = false
		if m.selectedIndex >= len(m.rows) {
			m.selectedIndex = 0
		}
	case errorMsg:
		m.error = string(msg)
		m.loading = false
		m.untracking = false
	case untrackDoneMsg:
		m.untracking = false
		m.message = msg.message
		m.loading = true
		return m, tea.Batch(
			m.loadTracked(),
			m.spinner.Tick,
			tea.Tick(3*time.Second, func(time.Time) tea.Msg {
				return clearMessageMsg{}
			}),
		)
	case clearMessageMsg:
		m.message = ""
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.loading || m.untracking {
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "up", "k":
		if m.selectedIndex > 0 {
			m.selectedIndex--
		}
	case "down", "j":
		if m.selectedIndex < len(m.rows)-1 {
			m.selectedIndex++
		}
	case " ":
		if len(m.rows) > 0 {
			m.rows[m.selectedIndex].Selected = !m.rows[m.selectedIndex].Selected
		}
	case "ctrl+u":
		if !m.untracking {
			m.untracking = true
			return m, tea.Batch(m.untrackSelected(), m.spinner.Tick)
		}
	}
	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.loading {
		return fmt.Sprintf("%s Loading tracked mods...\n", m.spinner.View())
	}

	if m.untracking {
		return fmt.Sprintf("%s Untracking selected mods...\n", m.spinner.View())
	}

	if m.error != "" {
		return fmt.Sprintf("Error: %s\n", m.error)
	}

	if len(m.rows) == 0 {
		return "No tracked mods. Track some with the track command!\n"
	}

	var output string
	output += renderHeader()
	output += "\n"

	currentDomain := ""
	for i, row := range m.rows {
		if row.Domain != currentDomain {
			currentDomain = row.Domain
			output += renderDomainLine(currentDomain) + "\n"
		}
		output += m.renderRow(i, row)
		output += "\n"
	}

	output += "\n" + renderFooter()

	if m.message != "" {
		output += "\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Render(m.message)
	}

	return output
}

func renderHeader() string {
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Padding(0, 1)

	return headerStyle.Render("Tracked mods")
}

func renderDomainLine(domain string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("12")).
		Render(domain)
}

func renderFooter() string {
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Italic(true)

	return footerStyle.Render("↑/k: up  ↓/j: down  space: select  ctrl+u: untrack selected  q: quit")
}

func (m Model) renderRow(index int, row TrackedRow) string {
	rowStyle := lipgloss.NewStyle().Padding(0, 1)
	if index == m.selectedIndex {
		rowStyle = rowStyle.
			Background(lipgloss.Color("8")).
			Bold(true)
	}

	selectionIndicator := " "
	if row.Selected {
		selectionIndicator = "✓"
	}

	return rowStyle.Render(fmt.Sprintf("%s mod %s", selectionIndicator, row.ModID))
}

// Message types
type trackedLoadedMsg struct {
	rows []TrackedRow
}

type errorMsg string

type untrackDoneMsg struct {
	message string
}

type clearMessageMsg struct{}

// loadTracked fetches the tracked mods and flattens the grouped view
// into browsable rows, domains in stable order.
func (m Model) loadTracked() tea.Cmd {
	return func() tea.Msg {
		view, err := m.client.TrackedMods(context.Background())
		if err != nil {
			logger.Log.Errorw("Failed to fetch tracked mods", zap.Error(err))
			return errorMsg(describeError(err))
		}
		syncTrackedCache(view)

		var rows []TrackedRow
		for _, domain := range view.Domains() {
			for _, mod := range view.Mods(domain) {
				rows = append(rows, TrackedRow{Domain: domain, ModID: mod})
			}
		}
		return trackedLoadedMsg{rows: rows}
	}
}

func (m Model) untrackSelected() tea.Cmd {
	return func() tea.Msg {
		var selected []TrackedRow
		for _, row := range m.rows {
			if row.Selected {
				selected = append(selected, row)
			}
		}

		if len(selected) == 0 {
			return untrackDoneMsg{message: "No mods selected"}
		}

		successCount := 0
		for _, row := range selected {
			if err := m.client.UntrackMod(context.Background(), row.Domain, row.ModID.Uint64()); err != nil {
				logger.Log.Warnw("Failed to untrack mod",
					zap.String("domain", row.Domain),
					zap.String("mod_id", row.ModID.String()),
					zap.Error(err),
				)
				continue
			}
			successCount++
		}

		return untrackDoneMsg{message: fmt.Sprintf("Untracked %d/%d selected mods", successCount, len(selected))}
	}
}

func runGUI() {
	_, client := bootstrap(".")

	m := initialModel(client)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Log.Fatalw("Failed to run GUI", zap.Error(err))
	}
}
