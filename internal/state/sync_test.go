package state

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atomicstack/mpv-context-menu/internal/menu"
	"github.com/atomicstack/mpv-context-menu/internal/notice"
)

type fakeHost struct {
	muted    bool
	chapters []string
	calls    int
}

func (h *fakeHost) chapterMenu() menu.Menu {
	h.calls++
	var m menu.Menu
	for _, title := range h.chapters {
		m = m.Append(menu.Cmd(title, "", menu.Run("set chapter 0")))
	}
	if m.Len() == 0 {
		m = menu.List(menu.Cmd("No Chapters", "", menu.Run("")).Disable())
	}
	return m
}

func newFixture(h *fakeHost, fileLoaded bool) *menu.Set {
	mute := menu.Check("Mute", "m", menu.Run("cycle mute"), menu.When(func() bool { return h.muted }))
	return menu.NewSet(fileLoaded).
		Add("context_menu", menu.List(
			menu.Cascade("Chapters", "chapter_menu"),
			menu.Separator(),
			mute,
		)).
		Generate("chapter_menu", h.chapterMenu)
}

func watch() WatchList {
	return WatchList{
		"mute":         {"context_menu"},
		"chapter-list": {"chapter_menu"},
	}
}

func TestLoadMarksGeneratorsAndBase(t *testing.T) {
	s := New(watch(), "context_menu")
	s.Load(newFixture(&fakeHost{}, false))
	assert.Equal(t, []string{"chapter_menu", "context_menu"}, s.Dirty())
}

func TestReconcileRegeneratesAndResolves(t *testing.T) {
	h := &fakeHost{chapters: []string{"Intro"}}
	s := New(watch(), "context_menu")
	s.Load(newFixture(h, true))

	set, err := s.Reconcile()
	require.NoError(t, err)
	assert.Empty(t, s.Dirty())
	assert.Equal(t, 1, h.calls)

	item, ok := set.Lookup("chapter_menu", 1)
	require.True(t, ok)
	assert.Equal(t, "Intro", item.Snapshot().Label)

	mute, _ := set.Lookup("context_menu", 3)
	assert.False(t, mute.Snapshot().State)
}

func TestPropertyChangeOnlyRefreshesWatchedMenus(t *testing.T) {
	h := &fakeHost{chapters: []string{"Intro"}}
	s := New(watch(), "context_menu")
	s.Load(newFixture(h, true))
	_, err := s.Reconcile()
	require.NoError(t, err)

	h.muted = true
	assert.Equal(t, []string{"context_menu"}, s.PropertyChanged("mute"))
	assert.Empty(t, s.PropertyChanged("unwatched"))

	set, err := s.Reconcile()
	require.NoError(t, err)
	mute, _ := set.Lookup("context_menu", 3)
	assert.True(t, mute.Snapshot().State)
	assert.Equal(t, 1, h.calls, "generator must not run for an unrelated property")

	h.chapters = append(h.chapters, "Credits")
	s.PropertyChanged("chapter-list")
	set, err = s.Reconcile()
	require.NoError(t, err)
	assert.Equal(t, 2, set.Menus["chapter_menu"].Len())
}

func TestReconcileIsIdempotent(t *testing.T) {
	h := &fakeHost{}
	s := New(watch(), "context_menu")
	s.Load(newFixture(h, true))

	first, err := s.Reconcile()
	require.NoError(t, err)
	second, err := s.Reconcile()
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, h.calls)
}

func TestStaleSnapshotUntilReconcile(t *testing.T) {
	h := &fakeHost{}
	s := New(watch(), "context_menu")
	s.Load(newFixture(h, true))
	_, err := s.Reconcile()
	require.NoError(t, err)

	h.muted = true
	mute, _ := s.Active().Lookup("context_menu", 3)
	assert.False(t, mute.Snapshot().State, "no reconcile means the old snapshot")
}

func TestGapAbortsWithoutCommitting(t *testing.T) {
	h := &fakeHost{chapters: []string{"Intro"}}
	s := New(watch(), "context_menu")
	s.Load(newFixture(h, true))
	before, err := s.Reconcile()
	require.NoError(t, err)

	broken := before.Clone()
	broken.Generators["chapter_menu"] = func() menu.Menu {
		return menu.Menu{1: menu.Separator(), 3: menu.Separator()}
	}
	s.Load(broken)
	dirty := s.Dirty()

	_, err = s.Reconcile()
	require.Error(t, err)
	msg, _, ok := notice.Message(err)
	require.True(t, ok)
	assert.Equal(t, StructureMessage, msg)

	var gap *menu.GapError
	require.True(t, errors.As(err, &gap))
	assert.Equal(t, "chapter_menu", gap.Menu)
	assert.Equal(t, 2, gap.Index)

	assert.Equal(t, dirty, s.Dirty())
	assert.Same(t, broken, s.Active())
}

func TestReconcileRejectsDanglingCascade(t *testing.T) {
	s := New(watch(), "context_menu")
	set := newFixture(&fakeHost{}, false)
	set.Menus["context_menu"] = set.Menus["context_menu"].Append(menu.Cascade("Extra", "nowhere"))
	s.Load(set)

	_, err := s.Reconcile()
	msg, _, ok := notice.Message(err)
	require.True(t, ok)
	assert.Equal(t, StructureMessage, msg)
	var target *menu.TargetError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, "nowhere", target.Target)
}

func TestNamesOutsideTheSetStayPending(t *testing.T) {
	s := New(watch(), "context_menu")
	s.Load(menu.NewSet(false).Add("context_menu", menu.List(menu.Separator())))
	s.MarkDirty("subtrack_menu")

	_, err := s.Reconcile()
	require.NoError(t, err)
	assert.Equal(t, []string{"subtrack_menu"}, s.Dirty())
}

func TestReconcileWithoutSet(t *testing.T) {
	_, err := New(nil, "context_menu").Reconcile()
	assert.ErrorIs(t, err, ErrNoSet)
}
