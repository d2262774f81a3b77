// Package driver owns the poll-until-ready loop: once per host tick it
// probes for the native window handle and, the first time one is
// available, composes and applies the window title. The driver is a
// one-way Pending -> Done state machine; after Done every further tick is
// a no-op.
package driver

import (
	"fmt"

	"github.com/cursedclient/cursedclient/internal/logger"
	"github.com/cursedclient/cursedclient/internal/native"
	"github.com/cursedclient/cursedclient/internal/probe"
)

const (
	// ClientName and ClientVersion feed the title's bit-exact format.
	ClientName    = "CursedClient"
	ClientVersion = "1.0"

	// DefaultMaxTicks bounds how long the driver keeps retrying,
	// roughly ten seconds at twenty ticks per second.
	DefaultMaxTicks = 200
)

// State is the driver's lifecycle phase.
type State int

const (
	StatePending State = iota
	StateDone
)

func (s State) String() string {
	if s == StateDone {
		return "done"
	}
	return "pending"
}

// ComposeTitle renders the window title for a detected version label.
func ComposeTitle(version string) string {
	return fmt.Sprintf("%s %s|%s", ClientName, ClientVersion, version)
}

// Driver retries the handle probe once per tick until it succeeds or the
// tick budget runs out. It is owned by the host's tick thread and must
// not be shared across goroutines.
type Driver struct {
	prober *probe.Prober
	titles native.TitleSetter
	log    *logger.Logger

	state       State
	ticksWaited int
	maxTicks    int
	title       string
}

// New creates a Pending driver. A non-positive maxTicks selects
// DefaultMaxTicks.
func New(prober *probe.Prober, titles native.TitleSetter, log *logger.Logger, maxTicks int) *Driver {
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}
	return &Driver{
		prober:   prober,
		titles:   titles,
		log:      log.WithComponent("driver"),
		state:    StatePending,
		maxTicks: maxTicks,
	}
}

// State reports the current lifecycle phase.
func (d *Driver) State() State {
	return d.state
}

// TicksWaited reports how many ticks have been consumed while Pending.
func (d *Driver) TicksWaited() int {
	return d.ticksWaited
}

// Title returns the applied window title, empty until the success path
// has run.
func (d *Driver) Title() string {
	return d.title
}

// Tick performs at most one resolution attempt. While Pending it first
// charges the tick against the budget, then probes for the handle; on
// success it resolves the version, applies the title once and goes Done.
// After Done it returns immediately without touching the probes.
func (d *Driver) Tick(client any) {
	if d.state == StateDone {
		return
	}

	d.ticksWaited++
	if d.ticksWaited > d.maxTicks {
		d.log.Warnf("gave up setting window title after %d ticks", d.maxTicks)
		d.state = StateDone
		return
	}

	handle, ok := d.prober.Handle(client)
	if !ok {
		// Not ready; the next tick retries.
		return
	}

	version := d.prober.Version()
	title := ComposeTitle(version)

	if err := d.titles.SetWindowTitle(handle, title); err != nil {
		// The window exists but the native call failed; retry next tick.
		d.log.WithFields(map[string]any{"handle": handle}).Debugf("title set attempt failed: %v", err)
		return
	}

	d.title = title
	d.state = StateDone
	d.log.WithFields(map[string]any{
		"handle": handle,
		"title":  title,
		"ticks":  d.ticksWaited,
	}).Info("window title set")
}
