package introspect

import (
	"fmt"
	"reflect"
	"unsafe"

	pkgerrors "github.com/cursedclient/cursedclient/pkg/errors"
)

// Invoke reads or calls the member on the given receiver. Every failure
// mode (nil pointer along the embedding path, unexported access on an
// unaddressable value, a panic from the called code) is demoted to an
// InvokeError so the caller can try its next candidate unconditionally.
func (m Member) Invoke(receiver reflect.Value) (val Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			val = Absent()
			err = pkgerrors.NewInvokeError(m.name, fmt.Errorf("panic during invocation: %v", r))
		}
	}()

	if !receiver.IsValid() {
		return Absent(), pkgerrors.NewInvokeError(m.name, fmt.Errorf("invalid receiver"))
	}

	recv, walkErr := walkEmbedding(receiver, m.path)
	if walkErr != nil {
		return Absent(), pkgerrors.NewInvokeError(m.name, walkErr)
	}

	switch m.kind {
	case KindMethod:
		return m.callMethod(recv)
	case KindField:
		return m.readField(recv)
	default:
		return Absent(), pkgerrors.NewInvokeError(m.name, fmt.Errorf("unknown member kind %d", m.kind))
	}
}

func (m Member) callMethod(recv reflect.Value) (Value, error) {
	fn, ok := zeroArgMethodValue(recv, m.name)
	if !ok {
		return Absent(), pkgerrors.NewInvokeError(m.name, fmt.Errorf("method not callable on receiver %s", recv.Type()))
	}
	results := fn.Call(nil)
	if len(results) == 0 {
		return Absent(), pkgerrors.NewInvokeError(m.name, fmt.Errorf("method returns no value"))
	}
	return classify(results[0]), nil
}

func (m Member) readField(recv reflect.Value) (Value, error) {
	for recv.Kind() == reflect.Pointer {
		if recv.IsNil() {
			return Absent(), pkgerrors.NewInvokeError(m.name, fmt.Errorf("nil receiver"))
		}
		recv = recv.Elem()
	}
	if recv.Kind() != reflect.Struct {
		return Absent(), pkgerrors.NewInvokeError(m.name, fmt.Errorf("receiver %s is not a struct", recv.Type()))
	}

	fv := recv.FieldByIndex(m.field.Index)
	if !fv.CanInterface() && fv.CanAddr() {
		// Unexported fields are readable through their address.
		fv = reflect.NewAt(fv.Type(), unsafe.Pointer(fv.UnsafeAddr())).Elem()
	}
	return classify(fv), nil
}

// walkEmbedding navigates the embedding path from the root receiver down to
// the value the member was declared on, dereferencing pointers along the
// way. A nil embedded pointer aborts the walk.
func walkEmbedding(root reflect.Value, path []int) (reflect.Value, error) {
	v := root
	for _, idx := range path {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, fmt.Errorf("nil pointer in embedding path")
			}
			v = v.Elem()
		}
		if v.Kind() != reflect.Struct {
			return reflect.Value{}, fmt.Errorf("embedding path crosses non-struct %s", v.Type())
		}
		v = v.Field(idx)
	}
	return v, nil
}

// zeroArgMethodValue resolves a callable zero-argument method on recv,
// widening the receiver to its address (or an addressable copy) when the
// method set requires a pointer receiver. Probed accessors are getters, so
// calling one on a copy is safe.
func zeroArgMethodValue(recv reflect.Value, name string) (reflect.Value, bool) {
	for recv.Kind() == reflect.Pointer {
		if recv.IsNil() {
			return reflect.Value{}, false
		}
		if fn := recv.MethodByName(name); fn.IsValid() && fn.Type().NumIn() == 0 {
			return fn, true
		}
		recv = recv.Elem()
	}

	if fn := recv.MethodByName(name); fn.IsValid() && fn.Type().NumIn() == 0 {
		return fn, true
	}
	if recv.CanAddr() {
		if fn := recv.Addr().MethodByName(name); fn.IsValid() && fn.Type().NumIn() == 0 {
			return fn, true
		}
	} else if recv.CanInterface() {
		clone := reflect.New(recv.Type())
		clone.Elem().Set(recv)
		if fn := clone.MethodByName(name); fn.IsValid() && fn.Type().NumIn() == 0 {
			return fn, true
		}
	}
	return reflect.Value{}, false
}
