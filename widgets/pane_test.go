package widgets

import (
	"strings"
	"testing"
)

func TestPaneFramesContent(t *testing.T) {
	out := Pane{Title: "Basic", Content: "one\ntwo"}.Render(20, 0)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Basic") {
		t.Fatalf("title missing from top edge: %q", lines[0])
	}
	if !strings.Contains(lines[PaneInsetY], "one") {
		t.Fatalf("content not on first inner row")
	}
}

func TestPaneFocusedMarker(t *testing.T) {
	out := Pane{Title: "Custom", Content: "x", Focused: true}.Render(20, 0)
	if !strings.Contains(out, "●") {
		t.Fatalf("focused pane must carry a marker:\n%s", out)
	}
}
