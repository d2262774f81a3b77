package introspect

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"

	pkgerrors "github.com/cursedclient/cursedclient/pkg/errors"
)

type probeWindow struct {
	handle int64
	Title  string
}

func (w *probeWindow) GetHandle() int64 { return w.handle }

type panickyWindow struct{}

func (panickyWindow) GetHandle() int64 { panic("window not initialized") }

type chainedHost struct {
	*probeWindow
}

func TestInvokeMethodOnPointerReceiver(t *testing.T) {
	t.Parallel()

	win := &probeWindow{handle: 42}
	m, ok := Locate(reflect.TypeOf(win), "GetHandle", KindMethod)
	require.True(t, ok)

	v, err := m.Invoke(reflect.ValueOf(win))
	require.NoError(t, err)
	n, isNum := v.Int64()
	require.True(t, isNum)
	require.EqualValues(t, 42, n)
}

func TestInvokeMethodThroughEmbeddingPath(t *testing.T) {
	t.Parallel()

	host := &chainedHost{probeWindow: &probeWindow{handle: 7}}
	m, ok := Locate(reflect.TypeOf(host), "GetHandle", KindMethod)
	require.True(t, ok)

	v, err := m.Invoke(reflect.ValueOf(host))
	require.NoError(t, err)
	n, _ := v.Int64()
	require.EqualValues(t, 7, n)
}

func TestInvokeNilEmbeddedPointerFails(t *testing.T) {
	t.Parallel()

	host := &chainedHost{}
	m, ok := Locate(reflect.TypeOf(host), "GetHandle", KindMethod)
	require.True(t, ok)

	_, err := m.Invoke(reflect.ValueOf(host))
	require.Error(t, err)

	var invokeErr *pkgerrors.InvokeError
	require.ErrorAs(t, err, &invokeErr)
	require.Equal(t, "GetHandle", invokeErr.Member)
}

func TestInvokeRecoversPanics(t *testing.T) {
	t.Parallel()

	m, ok := Locate(reflect.TypeOf(panickyWindow{}), "GetHandle", KindMethod)
	require.True(t, ok)

	v, err := m.Invoke(reflect.ValueOf(panickyWindow{}))
	require.Error(t, err)
	require.Equal(t, ShapeAbsent, v.Shape())
	require.Contains(t, err.Error(), "panic")
}

func TestInvokeReadsExportedField(t *testing.T) {
	t.Parallel()

	win := &probeWindow{Title: "cursed"}
	m, ok := Locate(reflect.TypeOf(win), "Title", KindField)
	require.True(t, ok)

	v, err := m.Invoke(reflect.ValueOf(win))
	require.NoError(t, err)
	text, _ := v.Text()
	require.Equal(t, "cursed", text)
}

func TestInvokeReadsUnexportedField(t *testing.T) {
	t.Parallel()

	win := &probeWindow{handle: 99}
	m, ok := Locate(reflect.TypeOf(win), "handle", KindField)
	require.True(t, ok)

	v, err := m.Invoke(reflect.ValueOf(win))
	require.NoError(t, err)
	n, isNum := v.Int64()
	require.True(t, isNum)
	require.EqualValues(t, 99, n)
}

func TestInvokeInvalidReceiver(t *testing.T) {
	t.Parallel()

	m, ok := Locate(reflect.TypeOf(&probeWindow{}), "GetHandle", KindMethod)
	require.True(t, ok)

	_, err := m.Invoke(reflect.Value{})
	require.Error(t, err)
}
