package app

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/mpv-context-menu/internal/backend"
	"github.com/atomicstack/mpv-context-menu/internal/catalog"
	"github.com/atomicstack/mpv-context-menu/internal/config"
	"github.com/atomicstack/mpv-context-menu/internal/dialog"
	"github.com/atomicstack/mpv-context-menu/internal/logging"
	"github.com/atomicstack/mpv-context-menu/internal/menu"
	"github.com/atomicstack/mpv-context-menu/internal/mpv"
	"github.com/atomicstack/mpv-context-menu/internal/testutil"
	"github.com/atomicstack/mpv-context-menu/internal/transport"
)

type nopScheduler struct{}

func (nopScheduler) After(time.Duration, backend.Task) {}

type fixture struct {
	host    *testutil.FakeHost
	runner  *testutil.Runner
	ctl     *Controller
	stopped bool
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logging.Configure(filepath.Join(t.TempDir(), "test.log"))
	t.Cleanup(func() { logging.Configure("") })

	f := &fixture{
		host:   testutil.NewFakeHost(map[string]interface{}{"mouse-pos": map[string]interface{}{"x": 40.0, "y": 50.0}}),
		runner: testutil.NewRunner(),
	}
	f.ctl = New(context.Background(), f.host, config.Default(), Options{
		Runner:    f.runner,
		Scheduler: nopScheduler{},
		Stop:      func() { f.stopped = true },
	})
	return f
}

func message(args ...string) mpv.Event {
	return mpv.Event{Name: mpv.EventClientMessage, Args: args}
}

func pick(menuName, index string) string {
	return `{"x":"1","y":"2","menuname":"` + menuName + `","index":"` + index + `","menupath":".` + menuName + `","errorvalue":"errorValue"}` + "\n"
}

func TestNewRegistersMenuAndDialogBindings(t *testing.T) {
	f := newFixture(t)
	names := f.ctl.Bindings()
	for _, kind := range config.Default().BuilderKinds() {
		assert.Contains(t, names, MenuMessagePrefix+kind)
	}
	for _, b := range dialog.Bindings {
		assert.Contains(t, names, b.Name)
	}
	assert.Len(t, names, len(config.Default().BuilderKinds())+len(dialog.Bindings))
}

func TestStartsWithNoFileSet(t *testing.T) {
	f := newFixture(t)
	active := f.ctl.Synchronizer().Active()
	require.NotNil(t, active)
	assert.False(t, active.FileLoaded)
}

func TestFileEventsSwapSets(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ctl.Handle(ctx, mpv.Event{Name: mpv.EventFileLoaded})
	assert.True(t, f.ctl.Synchronizer().Active().FileLoaded)
	assert.Contains(t, f.ctl.Synchronizer().Dirty(), "chapter_menu")

	f.ctl.Handle(ctx, mpv.Event{Name: mpv.EventEndFile, Reason: "eof"})
	assert.False(t, f.ctl.Synchronizer().Active().FileLoaded)
}

func TestAttachToPlayingMpvLoadsFullSet(t *testing.T) {
	f := newFixture(t)
	f.host.Set("path", "/media/film.mkv")
	f.host.Set("playlist-count", 1.0)

	f.ctl.Attach(context.Background())

	set, err := f.ctl.Synchronizer().Reconcile()
	require.NoError(t, err)
	assert.True(t, set.FileLoaded)
	assert.Contains(t, set.Menus, "play_menu")
}

func TestAttachToIdleMpvKeepsNoFileSet(t *testing.T) {
	f := newFixture(t)
	f.ctl.Attach(context.Background())
	assert.False(t, f.ctl.Synchronizer().Active().FileLoaded)

	f.host.Set("path", "")
	f.ctl.Attach(context.Background())
	assert.False(t, f.ctl.Synchronizer().Active().FileLoaded)
}

func TestPropertyChangeMarksWatchers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.ctl.Handle(ctx, mpv.Event{Name: mpv.EventFileLoaded})
	_, err := f.ctl.Synchronizer().Reconcile()
	require.NoError(t, err)
	require.Empty(t, f.ctl.Synchronizer().Dirty())

	f.ctl.Handle(ctx, mpv.Event{Name: mpv.EventPropertyChange, ID: 3, Property: "chapter", Data: 2.0})
	assert.Equal(t, []string{"chapter_menu"}, f.ctl.Synchronizer().Dirty())
}

func TestMenuMessageRunsBuilderAndDispatches(t *testing.T) {
	f := newFixture(t)
	f.runner.Stdout("wish", pick(catalog.Root, "6"))

	f.ctl.Handle(context.Background(), message(MenuMessagePrefix+"tk"))

	require.Len(t, f.runner.Requests, 1)
	args := f.runner.Requests[0].Args
	assert.Equal(t, "wish", args[0])
	var env transport.Envelope
	require.NoError(t, json.Unmarshal([]byte(args[len(args)-1]), &env))
	assert.Equal(t, catalog.Root, env.MenuName)
	assert.Equal(t, "-1", env.X)
	assert.Equal(t, []string{"quit"}, f.host.SentLines())
}

func TestMenuMessageCoordinates(t *testing.T) {
	f := newFixture(t)
	f.runner.Stdout("gjs", pick(catalog.Root, "-1"))

	f.ctl.Handle(context.Background(), message(MenuMessagePrefix+"gtk", "10", "20"))

	require.Len(t, f.runner.Requests, 1)
	args := f.runner.Requests[0].Args
	var env transport.Envelope
	require.NoError(t, json.Unmarshal([]byte(args[len(args)-1]), &env))
	assert.Equal(t, "10", env.X)
	assert.Equal(t, "20", env.Y)
	assert.Empty(t, f.host.SentLines())
}

func TestBuilderFailureShowsNotice(t *testing.T) {
	f := newFixture(t)
	f.ctl.Handle(context.Background(), message(MenuMessagePrefix+"tk"))
	assert.Equal(t, []string{"Error during initialization of subprocess (Script: menu-builder-tk.tcl)"}, f.host.Shown())
}

func TestUnknownBuilderShowsNotice(t *testing.T) {
	f := newFixture(t)
	f.ctl.ShowMenu(context.Background(), "qt", nil)
	assert.Equal(t, []string{"Unknown menu builder 'qt'"}, f.host.Shown())
	assert.Empty(t, f.runner.Requests)
}

func TestDanglingCascadeShowsStructureNotice(t *testing.T) {
	logging.Configure(filepath.Join(t.TempDir(), "test.log"))
	t.Cleanup(func() { logging.Configure("") })
	ext, err := catalog.ParseExtensions([]byte("no_file:\n  context_menu:\n    - type: cascade\n      label: Extra\n      target: nowhere\n"))
	require.NoError(t, err)

	host := testutil.NewFakeHost(nil)
	runner := testutil.NewRunner()
	ctl := New(context.Background(), host, config.Default(), Options{
		Runner:     runner,
		Scheduler:  nopScheduler{},
		Extensions: ext,
	})
	ctl.ShowMenu(context.Background(), "tk", nil)

	assert.Equal(t, []string{menu.StructureMessage}, host.Shown())
	assert.Empty(t, runner.Requests)
}

func TestDialogMessageWithoutPreference(t *testing.T) {
	f := newFixture(t)
	f.ctl.Handle(context.Background(), message("add_files_dialog"))
	assert.Equal(t, []string{dialog.NoPreferenceMessage}, f.host.Shown())
	assert.Empty(t, f.runner.Requests)
}

func TestUnknownMessageIgnored(t *testing.T) {
	f := newFixture(t)
	f.ctl.Handle(context.Background(), message("something_else", "x"))
	f.ctl.Handle(context.Background(), mpv.Event{Name: mpv.EventClientMessage})
	assert.Empty(t, f.host.Shown())
	assert.Empty(t, f.runner.Requests)
}

func TestShutdownStops(t *testing.T) {
	f := newFixture(t)
	f.ctl.Handle(context.Background(), mpv.Event{Name: mpv.EventShutdown})
	assert.True(t, f.stopped)
}
