package driver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cursedclient/cursedclient/internal/introspect"
	"github.com/cursedclient/cursedclient/internal/native"
	"github.com/cursedclient/cursedclient/internal/probe"
)

type tickWindow struct {
	handle int64
}

func (w *tickWindow) GetHandle() int64 { return w.handle }

// tickClient instruments the window accessor so tests can count exactly
// how many resolution attempts the driver makes.
type tickClient struct {
	window         *tickWindow
	getWindowCalls int
}

func (c *tickClient) GetWindow() *tickWindow {
	c.getWindowCalls++
	return c.window
}

type recordedTitle struct {
	handle int64
	title  string
}

type titleRecorder struct {
	calls []recordedTitle
	err   error
}

func (r *titleRecorder) SetWindowTitle(handle int64, title string) error {
	r.calls = append(r.calls, recordedTitle{handle: handle, title: title})
	return r.err
}

type versionConstants struct {
	version *versionInfo
}

func (s *versionConstants) GetGameVersion() *versionInfo { return s.version }

type versionInfo struct {
	name string
}

func (v *versionInfo) GetName() string { return v.name }

func newTestDriver(t *testing.T, titles native.TitleSetter, maxTicks int, version string) *Driver {
	t.Helper()

	reg := introspect.NewRegistry()
	if version != "" {
		require.NoError(t, reg.Register("net.minecraft.SharedConstants", &versionConstants{version: &versionInfo{name: version}}))
	}
	return New(probe.New(probe.DefaultTables(), reg, nil), titles, nil, maxTicks)
}

func TestTickSetsTitleOnceAndGoesDone(t *testing.T) {
	t.Parallel()

	recorder := &titleRecorder{}
	d := newTestDriver(t, recorder, 0, "1.20.4")
	client := &tickClient{window: &tickWindow{handle: 42}}

	d.Tick(client)

	require.Equal(t, StateDone, d.State())
	require.Len(t, recorder.calls, 1)
	require.EqualValues(t, 42, recorder.calls[0].handle)
	require.Equal(t, "CursedClient 1.0|1.20.4", recorder.calls[0].title)
	require.Equal(t, "CursedClient 1.0|1.20.4", d.Title())
}

func TestDoneIsIdempotentAfterSuccess(t *testing.T) {
	t.Parallel()

	recorder := &titleRecorder{}
	d := newTestDriver(t, recorder, 0, "1.20.4")
	client := &tickClient{window: &tickWindow{handle: 42}}

	for i := 0; i < 10; i++ {
		d.Tick(client)
	}

	require.Equal(t, 1, client.getWindowCalls, "no resolution may happen after Done")
	require.Len(t, recorder.calls, 1)
}

func TestTimeoutBoundary(t *testing.T) {
	t.Parallel()

	recorder := &titleRecorder{}
	d := newTestDriver(t, recorder, 5, "1.20.4")
	client := &tickClient{} // window accessor returns nil forever

	for i := 1; i <= 5; i++ {
		d.Tick(client)
		require.Equal(t, StatePending, d.State(), "tick %d must stay pending", i)
	}
	require.Equal(t, 5, client.getWindowCalls)

	d.Tick(client)
	require.Equal(t, StateDone, d.State(), "budget exhausts exactly on tick 6")
	require.Equal(t, 5, client.getWindowCalls, "tick 6 must not attempt resolution")
	require.Empty(t, recorder.calls)
}

func TestDoneIsIdempotentAfterTimeout(t *testing.T) {
	t.Parallel()

	recorder := &titleRecorder{}
	d := newTestDriver(t, recorder, 3, "1.20.4")
	client := &tickClient{}

	for i := 0; i < 20; i++ {
		d.Tick(client)
	}

	require.Equal(t, StateDone, d.State())
	require.Equal(t, 3, client.getWindowCalls)
	require.Empty(t, recorder.calls)
	require.Empty(t, d.Title())
}

func TestRetryWhileWindowNotReady(t *testing.T) {
	t.Parallel()

	recorder := &titleRecorder{}
	d := newTestDriver(t, recorder, 0, "1.20.4")
	client := &tickClient{window: &tickWindow{handle: 0}}

	d.Tick(client)
	require.Equal(t, StatePending, d.State(), "zero handle means the window is not ready")

	client.window.handle = 42
	d.Tick(client)
	require.Equal(t, StateDone, d.State())
	require.Len(t, recorder.calls, 1)
	require.Equal(t, 2, d.TicksWaited())
}

func TestNativeFailureRetriesNextTick(t *testing.T) {
	t.Parallel()

	recorder := &titleRecorder{err: errors.New("native layer unavailable")}
	d := newTestDriver(t, recorder, 0, "1.20.4")
	client := &tickClient{window: &tickWindow{handle: 42}}

	d.Tick(client)
	require.Equal(t, StatePending, d.State())
	require.Len(t, recorder.calls, 1)

	recorder.err = nil
	d.Tick(client)
	require.Equal(t, StateDone, d.State())
	require.Len(t, recorder.calls, 2)
}

func TestUnknownVersionSentinelInTitle(t *testing.T) {
	t.Parallel()

	recorder := &titleRecorder{}
	d := newTestDriver(t, recorder, 0, "")
	client := &tickClient{window: &tickWindow{handle: 7}}

	d.Tick(client)

	require.Equal(t, StateDone, d.State())
	require.Len(t, recorder.calls, 1)
	require.Equal(t, "CursedClient 1.0|Unknown", recorder.calls[0].title)
}

func TestComposeTitleFormat(t *testing.T) {
	t.Parallel()

	require.Equal(t, "CursedClient 1.0|1.20.4", ComposeTitle("1.20.4"))
	require.Equal(t, "CursedClient 1.0|Unknown", ComposeTitle(probe.UnknownVersion))
}
