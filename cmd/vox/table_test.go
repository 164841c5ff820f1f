package main

import (
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
)

func TestRenderTableRightAlignment(t *testing.T) {
	headers := table.Row{"Name", "Count"}
	rows := []table.Row{{"alpha", "7"}}

	left := renderTable(headers, rows)
	right := renderTable(headers, rows, 2)

	if left == right {
		t.Fatal("right-aligning a column should change the rendering")
	}
	if !strings.Contains(right, "7 │") {
		t.Errorf("right-aligned cell should end at the column border:\n%s", right)
	}
	if !strings.Contains(left, "│ 7") {
		t.Errorf("left-aligned cell should start at the column border:\n%s", left)
	}
}

func TestRenderTableHeadersAndRows(t *testing.T) {
	out := renderTable(
		table.Row{"Tool", "Status"},
		[]table.Row{{"ffmpeg", "ok"}, {"yt-dlp", "missing"}},
	)
	for _, want := range []string{"TOOL", "STATUS", "ffmpeg", "yt-dlp", "missing"} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered table missing %q:\n%s", want, out)
		}
	}
}
