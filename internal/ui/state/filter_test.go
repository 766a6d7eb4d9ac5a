package state

import (
	"reflect"
	"testing"

	"github.com/atomicstack/mpv-context-menu/internal/menu"
)

func TestSetFilterTracksCursorAndRestoresPosition(t *testing.T) {
	level := newTestLevel("one", "two", "three")
	level.Cursor = 2
	level.SetFilter("two", len("two"))

	if level.Filter != "two" {
		t.Fatalf("expected filter persisted, got %q", level.Filter)
	}
	if level.FilterCursor != len("two") {
		t.Fatalf("expected cursor at end, got %d", level.FilterCursor)
	}
	if level.Cursor != 0 {
		t.Fatalf("expected filtered cursor at 0, got %d", level.Cursor)
	}
	if len(level.Items) != 1 || level.Items[0].Label != "two" {
		t.Fatalf("expected filtered items to contain only 'two', got %#v", level.Items)
	}

	level.SetFilter("", 0)
	if level.Cursor != 2 {
		t.Fatalf("expected cursor restored to 2, got %d", level.Cursor)
	}
	if level.LastCursor != -1 {
		t.Fatalf("expected last cursor reset, got %d", level.LastCursor)
	}
}

func TestInsertAndDeleteFilterText(t *testing.T) {
	level := newTestLevel("alpha")

	if !level.InsertFilterText("ab") {
		t.Fatal("expected insert to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 2 {
		t.Fatalf("unexpected filter state %q/%d", level.Filter, level.FilterCursor)
	}

	level.FilterCursor = 1
	if !level.InsertFilterText("z") {
		t.Fatal("expected insert in middle to succeed")
	}
	if level.Filter != "azb" {
		t.Fatalf("expected insert into middle, got %q", level.Filter)
	}
	if level.FilterCursor != 2 {
		t.Fatalf("expected cursor 2 after insert, got %d", level.FilterCursor)
	}

	if !level.DeleteFilterRuneBackward() {
		t.Fatal("expected rune deletion to succeed")
	}
	if level.Filter != "ab" || level.FilterCursor != 1 {
		t.Fatalf("unexpected filter state after delete %q/%d", level.Filter, level.FilterCursor)
	}

	level.SetFilter("abc def", len("abc def"))
	if !level.DeleteFilterWordBackward() {
		t.Fatal("expected word deletion to succeed")
	}
	if level.Filter != "abc " {
		t.Fatalf("expected trailing word removed, got %q", level.Filter)
	}

	level.SetFilter("abc", 0)
	if level.DeleteFilterRuneBackward() {
		t.Fatal("expected delete at start to fail")
	}
}

func TestMoveFilterCursorClamps(t *testing.T) {
	level := newTestLevel("one", "two")
	level.SetFilter("one two", len("one two"))

	if level.MoveFilterCursor(1) {
		t.Fatal("expected no movement past the end")
	}
	if !level.MoveFilterCursor(-3) {
		t.Fatal("expected backward movement")
	}
	if level.FilterCursor != 4 {
		t.Fatalf("expected cursor at 4, got %d", level.FilterCursor)
	}
	if !level.MoveFilterCursor(-10) || level.FilterCursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", level.FilterCursor)
	}
	if level.MoveFilterCursor(-1) {
		t.Fatal("expected no movement before the start")
	}
}

func TestBestMatchPrefersLiteralOverFuzzy(t *testing.T) {
	items := []menu.Entry{
		{Index: 1, Kind: menu.KindCommand, Label: "Audio Sync"},
		{Index: 2, Kind: menu.KindCommand, Label: "Aspect Ratio"},
		{Index: 3, Kind: menu.KindCascade, Label: "Subtitle", Target: "sub_menu"},
	}
	if idx := BestMatchIndex(items, "as"); idx != 1 {
		t.Fatalf("expected prefix match on Aspect Ratio, got %d", idx)
	}
	if idx := BestMatchIndex(items, "sub_m"); idx != 2 {
		t.Fatalf("expected cascade target match, got %d", idx)
	}
	if got := FilterItems(items, "as"); len(got) != 2 {
		t.Fatalf("expected fuzzy and prefix matches kept in menu order, got %#v", got)
	}
}

func TestFilterItemsAndClone(t *testing.T) {
	items := []menu.Entry{
		{Index: 1, Kind: menu.KindCommand, Label: "Alpha"},
		{Index: 2, Kind: menu.KindSeparator},
		{Index: 3, Kind: menu.KindCommand, Label: "Beta"},
	}
	if got := FilterItems(items, ""); len(got) != 3 {
		t.Fatalf("expected separators kept without a query, got %#v", got)
	}
	filtered := FilterItems(items, "alp")
	if len(filtered) != 1 || filtered[0].Label != "Alpha" {
		t.Fatalf("unexpected filtered results %#v", filtered)
	}
	filtered = FilterItems(items, "ta")
	if len(filtered) != 1 || filtered[0].Label != "Beta" {
		t.Fatalf("expected contains match for Beta, got %#v", filtered)
	}

	clone := CloneItems(items)
	if &clone[0] == &items[0] {
		t.Fatal("expected clone to allocate new backing array")
	}

	filtered[0].Label = "changed"
	if items[2].Label != "Beta" {
		t.Fatal("expected original slice to remain unchanged")
	}

	if len(FilterItems(items, "nomatch")) != 0 {
		t.Fatal("expected empty results when nothing matches")
	}
}

func TestFilterMatchesAccelerator(t *testing.T) {
	items := []menu.Entry{
		{Index: 1, Kind: menu.KindCommand, Label: "Pause", Accelerator: "Space"},
		{Index: 2, Kind: menu.KindCascade, Label: "Speed", Target: "speed_menu"},
	}
	filtered := FilterItems(items, "spac")
	if len(filtered) != 1 || filtered[0].Label != "Pause" {
		t.Fatalf("expected accelerator match, got %#v", filtered)
	}
}

func TestBestMatchIndex(t *testing.T) {
	items := []menu.Entry{
		{Index: 1, Kind: menu.KindCommand, Label: "First", Accelerator: "one"},
		{Index: 2, Kind: menu.KindCommand, Label: "Second", Accelerator: "two"},
		{Index: 3, Kind: menu.KindCommand, Label: "Third", Accelerator: "three"},
		{Index: 4, Kind: menu.KindCommand, Label: "Thirst", Disabled: true},
	}

	if idx := BestMatchIndex(items, "Second"); idx != 1 {
		t.Fatalf("expected exact label match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "two"); idx != 1 {
		t.Fatalf("expected accelerator match index 1, got %d", idx)
	}
	if idx := BestMatchIndex(items, "th"); idx != 2 {
		t.Fatalf("expected prefix match index 2, got %d", idx)
	}
	if idx := BestMatchIndex(items, "thirst"); idx != 0 {
		t.Fatalf("expected disabled entry skipped, got %d", idx)
	}
	if idx := BestMatchIndex(items, "zzz"); idx != 0 {
		t.Fatalf("expected fallback index 0, got %d", idx)
	}
	if idx := BestMatchIndex(nil, "anything"); idx != -1 {
		t.Fatalf("expected -1 for empty slice, got %d", idx)
	}
}

func TestSetFilterSelectsFuzzyMatch(t *testing.T) {
	items := []menu.Entry{
		{Index: 1, Kind: menu.KindCommand, Label: "Alpha"},
		{Index: 2, Kind: menu.KindCommand, Label: "Beta"},
	}
	level := NewLevel("id", "title", items)
	level.SetFilter("alp", 3)
	if level.Cursor != 0 {
		t.Fatalf("expected fuzzy match to select first item, got %d", level.Cursor)
	}
	if !reflect.DeepEqual(level.Items, items[:1]) {
		t.Fatalf("expected filtered items to contain Alpha, got %#v", level.Items)
	}
}
