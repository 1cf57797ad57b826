package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/example/iedash/internal/metrics"
)

func TestRootCommandWiring(t *testing.T) {
	cmd := newRootCommand()
	want := map[string]bool{"serve": false, "render": false, "export": false, "summary": false, "version": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Fatalf("missing subcommand %q", name)
		}
	}
}

func TestWriteDatasetFormats(t *testing.T) {
	for _, format := range []string{"json", "yaml", "csv"} {
		var buf bytes.Buffer
		if err := writeDataset(&buf, format); err != nil {
			t.Fatalf("%s export: %v", format, err)
		}
		if buf.Len() == 0 {
			t.Fatalf("%s export produced no output", format)
		}
	}
	if err := writeDataset(&bytes.Buffer{}, "xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestRenderSummaryMentionsSections(t *testing.T) {
	var buf bytes.Buffer
	renderSummary(&buf, metrics.Generate())
	out := buf.String()
	for _, want := range []string{"=== Education ===", "=== Research ===", "=== Workforce ===", "=== Compliance ===", "LCME standards met"} {
		if !strings.Contains(out, want) {
			t.Fatalf("summary output is missing %q", want)
		}
	}
}
