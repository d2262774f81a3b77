package tui

import (
	"fmt"
	"strings"

	"github.com/cursedclient/cursedclient/internal/driver"
)

// View renders the current simulation state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content strings.Builder

	content.WriteString(titleStyle.Render(fmt.Sprintf("%s %s — title probe", driver.ClientName, driver.ClientVersion)))
	content.WriteString("\n")
	content.WriteString(m.renderStatus())
	content.WriteString("\n\n")
	content.WriteString(m.renderLogs())

	if title := m.driver.Title(); title != "" {
		content.WriteString("\n")
		content.WriteString(resultStyle.Render(title))
	}

	content.WriteString("\n")
	content.WriteString(footerStyle.Render("q quit"))
	content.WriteString("\n")

	return content.String()
}

func (m Model) renderStatus() string {
	host := fmt.Sprintf("host=%s", m.scenario.Name)
	ticks := fmt.Sprintf("tick %d/%d", m.driver.TicksWaited(), m.maxTicks)

	if m.driver.State() == driver.StateDone {
		outcome := "timed out"
		if m.driver.Title() != "" {
			outcome = "title set"
		}
		return fmt.Sprintf("  %s  %s  %s", statusDoneStyle.Render("● done"), outcome, host)
	}
	return fmt.Sprintf("  %s %s  %s  %s", m.spinner.View(), statusPendingStyle.Render("probing"), ticks, host)
}

func (m Model) renderLogs() string {
	lines := m.logs.Lines()
	if len(lines) == 0 {
		return logStyle.Render("(no resolution attempts logged yet)")
	}

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(logStyle.Render(truncate(line, m.width-4)))
	}
	return b.String()
}

func truncate(s string, width int) string {
	if width <= 3 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
