// Package tui renders the watch view: a live look at the title driver
// retrying its probes against a simulated host, tick by tick.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cursedclient/cursedclient/internal/driver"
	"github.com/cursedclient/cursedclient/internal/simulator"
)

// Model is the watch view model.
type Model struct {
	scenario *simulator.Scenario
	driver   *driver.Driver
	logs     *LogRing
	interval time.Duration
	maxTicks int

	spinner  spinner.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a watch model around a driver and its scenario. logs
// receives the driver's console output and may be nil.
func NewModel(sc *simulator.Scenario, d *driver.Driver, logs *LogRing, interval time.Duration, maxTicks int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	if maxTicks <= 0 {
		maxTicks = driver.DefaultMaxTicks
	}
	if interval <= 0 {
		interval = 50 * time.Millisecond
	}
	if logs == nil {
		logs = NewLogRing(8)
	}

	return Model{
		scenario: sc,
		driver:   d,
		logs:     logs,
		interval: interval,
		maxTicks: maxTicks,
		spinner:  s,
		width:    80,
		height:   24,
	}
}

// Init starts the spinner and the tick clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickCmd(m.interval))
}
