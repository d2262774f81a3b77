// Package probe composes the candidate cascade into the two concrete
// pipelines the title driver needs: a native window handle from the live
// client object, and a version label from the registered version-constant
// holders.
package probe

import (
	"fmt"
	"reflect"

	"github.com/cursedclient/cursedclient/internal/cascade"
	"github.com/cursedclient/cursedclient/internal/introspect"
	"github.com/cursedclient/cursedclient/internal/logger"
)

// UnknownVersion is the terminal sentinel the version pipeline reports
// when nothing resolves. It is a valid permanent answer, never retried.
const UnknownVersion = "Unknown"

// Prober runs the handle and version pipelines against a host. It holds
// no per-probe state; each call re-resolves from scratch.
type Prober struct {
	tables Tables
	reg    *introspect.Registry
	log    *logger.Logger
}

// New creates a Prober over the given candidate tables and type registry.
func New(tables Tables, reg *introspect.Registry, log *logger.Logger) *Prober {
	return &Prober{tables: tables, reg: reg, log: log.WithComponent("probe")}
}

// Handle resolves the native window handle from the client object:
// client -> window-like object (method candidates) -> numeric handle
// (method candidates, then field candidates on the same object). A handle
// of zero means the window is not created yet and reports not ready.
func (p *Prober) Handle(client any) (int64, bool) {
	receiver := reflect.ValueOf(client)
	if !receiver.IsValid() {
		return 0, false
	}

	window, ok := cascade.Resolve(receiver, p.tables.WindowAccessors, introspect.KindMethod, introspect.ShapeIsObject, p.log)
	if !ok {
		p.log.Debug("window accessor not resolvable yet")
		return 0, false
	}
	windowObj, _ := window.Object()
	windowValue := reflect.ValueOf(windowObj)

	handle, ok := cascade.Resolve(windowValue, p.tables.HandleMethods, introspect.KindMethod, introspect.ShapeIsNumber, p.log)
	if !ok {
		handle, ok = cascade.Resolve(windowValue, p.tables.HandleFields, introspect.KindField, introspect.ShapeIsNumber, p.log)
	}
	if !ok {
		p.log.Debug("window object exposes no usable handle member")
		return 0, false
	}

	n, _ := handle.Int64()
	if n == 0 {
		// Some hosts expose the handle before the window exists.
		p.log.Debug("window handle is zero, window not created yet")
		return 0, false
	}
	return n, true
}

// Version resolves the host version label. It walks the version type
// table in order and returns the first type that yields any value; when
// no registered type resolves, the UnknownVersion sentinel is returned.
// Version is total: it never fails and never returns an empty string.
func (p *Prober) Version() string {
	if p.reg == nil {
		return UnknownVersion
	}
	for _, vt := range p.tables.VersionTypes {
		holder, ok := p.reg.Lookup(vt.Name)
		if !ok {
			continue
		}
		if version, ok := p.versionFrom(holder, vt); ok {
			return version
		}
	}
	return UnknownVersion
}

func (p *Prober) versionFrom(holder reflect.Value, vt VersionType) (string, bool) {
	// Modern path: version descriptor object, then its name accessors.
	if obj, ok := cascade.Resolve(holder, vt.VersionObject, introspect.KindMethod, introspect.ShapeIsObject, p.log); ok {
		descriptor, _ := obj.Object()
		descriptorValue := reflect.ValueOf(descriptor)

		if name, ok := cascade.Resolve(descriptorValue, vt.NameAccessors, introspect.KindMethod, introspect.ShapeIsText, p.log); ok {
			text, _ := name.Text()
			return text, true
		}
		if text, ok := displayString(descriptor); ok {
			return text, true
		}
	}

	// Legacy fallbacks: a text field on the holder, then an accessor
	// returning the version string directly.
	if name, ok := cascade.Resolve(holder, vt.NameFields, introspect.KindField, introspect.ShapeIsText, p.log); ok {
		text, _ := name.Text()
		return text, true
	}
	if name, ok := cascade.Resolve(holder, vt.VersionObject, introspect.KindMethod, introspect.ShapeIsText, p.log); ok {
		text, _ := name.Text()
		return text, true
	}
	return "", false
}

// displayString falls back to the descriptor's generic textual
// representation, accepted only when it does not look like a default
// identity dump. The filter is approximate.
func displayString(descriptor any) (string, bool) {
	var text string
	if s, ok := descriptor.(fmt.Stringer); ok {
		text = s.String()
	} else {
		text = fmt.Sprintf("%v", descriptor)
	}
	if !introspect.ShapeIsText(introspect.Text(text)) {
		return "", false
	}
	if len(text) > 0 && (text[0] == '{' || text[0] == '&') {
		return "", false
	}
	if len(text) > 1 && text[0] == '0' && text[1] == 'x' {
		return "", false
	}
	return text, true
}
