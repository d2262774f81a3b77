// Package simulator provides stand-in host object models for demo runs
// and end-to-end tests: several "host versions" whose accessor names
// drift the way real releases do, including hosts whose window only
// appears after a number of ticks.
package simulator

import (
	"fmt"

	"github.com/cursedclient/cursedclient/internal/introspect"
)

// Scenario bundles a simulated client object with the registry of
// version-constant holders its host version would expose.
type Scenario struct {
	Name     string
	Client   Host
	Registry *introspect.Registry
}

// Host is a simulated client that changes state once per tick.
type Host interface {
	// Advance moves the host forward one tick (e.g. finishing window
	// creation).
	Advance()
}

// Window mimics a modern host window: handle behind a getter, backed by
// an unexported field so the field-fallback path is exercised too.
type Window struct {
	handle int64
}

// GetHandle returns the native handle, zero until the window exists.
func (w *Window) GetHandle() int64 { return w.handle }

// ModernClient exposes the current accessor names.
type ModernClient struct {
	window       *Window
	createsAfter int
	ticks        int
	handle       int64
}

// GetWindow returns the window object, nil until creation finished.
func (c *ModernClient) GetWindow() *Window { return c.window }

// Advance simulates startup: the window object exists from the first
// tick, but its handle stays zero until creation completes.
func (c *ModernClient) Advance() {
	c.ticks++
	if c.window == nil {
		c.window = &Window{}
	}
	if c.ticks >= c.createsAfter {
		c.window.handle = c.handle
	}
}

// LegacyWindow carries its handle in an intermediary-named field and has
// no getter at all.
type LegacyWindow struct {
	Field16784 int64
}

// LegacyClient exposes only intermediary accessor names.
type LegacyClient struct {
	window       *LegacyWindow
	createsAfter int
	ticks        int
	handle       int64
}

// Method22683 is the intermediary name for the window accessor.
func (c *LegacyClient) Method22683() *LegacyWindow { return c.window }

// Advance creates the window once enough ticks have passed.
func (c *LegacyClient) Advance() {
	c.ticks++
	if c.ticks >= c.createsAfter {
		if c.window == nil {
			c.window = &LegacyWindow{Field16784: c.handle}
		}
	}
}

// HeadlessClient never creates a window; it drives the timeout path.
type HeadlessClient struct{}

// Advance does nothing.
func (HeadlessClient) Advance() {}

// GameVersion is a modern version descriptor.
type GameVersion struct {
	name string
}

// GetName returns the display name.
func (v *GameVersion) GetName() string { return v.name }

// SharedConstants is a modern version-constant holder.
type SharedConstants struct {
	version *GameVersion
}

// GetGameVersion returns the version descriptor.
func (s *SharedConstants) GetGameVersion() *GameVersion { return s.version }

// LegacyConstants exposes the version only through a text field.
type LegacyConstants struct {
	VersionName string
}

// Modern builds a scenario on current accessor names: the window handle
// becomes available after the given number of ticks.
func Modern(version string, windowAfter int, handle int64) (*Scenario, error) {
	reg := introspect.NewRegistry()
	if err := reg.Register("net.minecraft.SharedConstants", &SharedConstants{version: &GameVersion{name: version}}); err != nil {
		return nil, err
	}
	return &Scenario{
		Name:     "modern",
		Client:   &ModernClient{createsAfter: windowAfter, handle: handle},
		Registry: reg,
	}, nil
}

// Legacy builds a scenario on intermediary names with a field-held handle
// and a static-field version.
func Legacy(version string, windowAfter int, handle int64) (*Scenario, error) {
	reg := introspect.NewRegistry()
	if err := reg.Register("net.minecraft.util.SharedConstants", &LegacyConstants{VersionName: version}); err != nil {
		return nil, err
	}
	return &Scenario{
		Name:     "legacy",
		Client:   &LegacyClient{createsAfter: windowAfter, handle: handle},
		Registry: reg,
	}, nil
}

// Headless builds a scenario whose window never appears.
func Headless() *Scenario {
	return &Scenario{
		Name:     "headless",
		Client:   HeadlessClient{},
		Registry: introspect.NewRegistry(),
	}
}

// Pick returns the named scenario with demo defaults.
func Pick(name string) (*Scenario, error) {
	switch name {
	case "modern":
		return Modern("1.20.4", 20, 42)
	case "legacy":
		return Legacy("1.18.2", 20, 77)
	case "headless":
		return Headless(), nil
	default:
		return nil, fmt.Errorf("unknown host scenario %q (want modern, legacy or headless)", name)
	}
}
