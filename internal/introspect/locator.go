// Package introspect locates and safely invokes members of live host
// objects whose accessor names drift across host releases. Lookup walks a
// type's embedded-struct chain the way overriding works in the host object
// model: the most derived declaration wins, promoted members are reached
// through their embedding path.
package introspect

import (
	"reflect"
)

// Kind selects whether a lookup targets a zero-argument method or a field.
type Kind int

const (
	KindMethod Kind = iota
	KindField
)

func (k Kind) String() string {
	if k == KindField {
		return "field"
	}
	return "method"
}

// Member is a located member of a host type: either a zero-argument method
// or a declared field, together with the embedding path that leads from the
// root type to the owner the member was declared on. A Member is not cached
// across probes; every resolution attempt locates afresh.
type Member struct {
	kind  Kind
	name  string
	path  []int
	field reflect.StructField
	owner reflect.Type
}

// Kind reports whether the member is a method or a field.
func (m Member) Kind() Kind {
	return m.kind
}

// Name returns the member's declared name.
func (m Member) Name() string {
	return m.name
}

// Owner returns the type the member was declared on, which may sit deeper
// in the embedding chain than the type the lookup started from.
func (m Member) Owner() reflect.Type {
	return m.owner
}

type searchNode struct {
	t    reflect.Type
	path []int
}

// Locate searches t and its embedded ancestry for a member with the given
// name. The walk is breadth-first from the most derived type, so a member
// declared on the type itself shadows one promoted from deeper embedding.
// Methods must take zero arguments; fields match regardless of visibility.
// Absence is a routine outcome and is reported via ok, never an error.
func Locate(t reflect.Type, name string, kind Kind) (Member, bool) {
	if t == nil || name == "" {
		return Member{}, false
	}

	queue := []searchNode{{t: t}}
	seen := make(map[reflect.Type]bool)

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		u := node.t
		for u.Kind() == reflect.Pointer {
			u = u.Elem()
		}
		if seen[u] {
			continue
		}
		seen[u] = true

		switch kind {
		case KindMethod:
			if hasZeroArgMethod(u, name) {
				return Member{kind: KindMethod, name: name, path: node.path, owner: u}, true
			}
		case KindField:
			if u.Kind() == reflect.Struct {
				if f, ok := declaredField(u, name); ok {
					return Member{kind: KindField, name: name, path: node.path, field: f, owner: u}, true
				}
			}
		}

		if u.Kind() != reflect.Struct {
			continue
		}
		for i := 0; i < u.NumField(); i++ {
			f := u.Field(i)
			if !f.Anonymous {
				continue
			}
			childPath := make([]int, len(node.path), len(node.path)+1)
			copy(childPath, node.path)
			queue = append(queue, searchNode{t: f.Type, path: append(childPath, i)})
		}
	}

	return Member{}, false
}

// hasZeroArgMethod reports whether t declares a zero-argument method with
// the given name, counting both value and pointer receivers.
func hasZeroArgMethod(t reflect.Type, name string) bool {
	if t.Kind() == reflect.Interface {
		m, ok := t.MethodByName(name)
		return ok && m.Type.NumIn() == 0
	}
	// The pointer method set is a superset of the value method set.
	m, ok := reflect.PointerTo(t).MethodByName(name)
	return ok && m.Type.NumIn() == 1
}

// declaredField finds a field declared directly on t, exported or not.
// Promotion through embedding is handled by the breadth-first walk in
// Locate rather than by reflect's own FieldByName flattening.
func declaredField(t reflect.Type, name string) (reflect.StructField, bool) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Name == name {
			return f, true
		}
	}
	return reflect.StructField{}, false
}
