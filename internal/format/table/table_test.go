package table

import "testing"

var menuLayout = Layout{
	Columns: []Column{
		{OmitEmpty: true},
		{Gap: 1},
		{Gap: 2, Align: AlignRight},
	},
	Rule: '─',
}

func TestFormatPadsColumns(t *testing.T) {
	got := menuLayout.Format([][]string{
		{"", "Pause", "Space"},
		{"", "Speed", ""},
		{"", "Fullscreen", "F"},
	})
	want := []string{
		"Pause       Space",
		"Speed            ",
		"Fullscreen      F",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatKeepsMarkColumnAndDrawsRules(t *testing.T) {
	got := menuLayout.Format([][]string{
		{"[x]", "Mute", "M"},
		nil,
		{"", "Quit", "Q"},
	})
	want := []string{
		"[x] Mute  M",
		"───────────",
		"    Quit  Q",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFormatMeasuresDisplayWidth(t *testing.T) {
	got := Layout{Columns: []Column{{}, {Gap: 2}}}.Format([][]string{{"Rotate 90°", "x"}, {"日本", "y"}})
	if got[0] != "Rotate 90°  x" {
		t.Fatalf("unexpected first row %q", got[0])
	}
	if got[1] != "日本        y" {
		t.Fatalf("expected wide runes counted twice, got %q", got[1])
	}
}

func TestFormatBlankRuleAndEmpty(t *testing.T) {
	got := Layout{Columns: []Column{{}}}.Format([][]string{{"abc"}, nil})
	if got[1] != "   " {
		t.Fatalf("expected blank separator row, got %q", got[1])
	}
	if (Layout{}).Format(nil) != nil {
		t.Fatal("expected nil for no rows")
	}
}
