// charts_test.go checks that each builder yields an embeddable fragment.
package charts

import (
	"strings"
	"testing"

	"github.com/example/iedash/internal/theme"
)

var years = []string{"2019-20", "2020-21", "2021-22", "2022-23", "2023-24", "2024-25"}

func assertSnippet(t *testing.T, s Snippet) {
	t.Helper()
	if !strings.Contains(string(s.Element), "<div") {
		t.Fatalf("snippet element is missing its container div: %q", s.Element)
	}
	if !strings.Contains(string(s.Script), "<script") {
		t.Fatalf("snippet script is missing its script tag: %q", s.Script)
	}
}

func TestTrendSnippet(t *testing.T) {
	s := Trend("Match Rate", years, []float64{93.5, 94.2, 91.8, 95.1, 96.3, 95.8}, TrendOptions{
		Color:     theme.Accent,
		Suffix:    "%",
		YMin:      85,
		YMax:      100,
		Target:    94.0,
		HasTarget: true,
	})
	assertSnippet(t, s)
	if !strings.Contains(string(s.Script), "markLine") {
		t.Fatalf("trend with target should emit a markLine")
	}
}

func TestStackedBarsSnippet(t *testing.T) {
	s := StackedBars(years, []NamedSeries{
		{Name: "NIH", Color: theme.Accent, Values: []float64{98.5, 103.2, 108.7, 115.4, 124.1, 128.9}},
		{Name: "Other", Color: theme.Warning, Values: []float64{49.7, 52.4, 53.4, 56.4, 61.2, 63.8}},
	}, "$", "M")
	assertSnippet(t, s)
}

func TestHorizontalBarsSnippet(t *testing.T) {
	s := HorizontalBars([]RankedBar{
		{Label: "Surgery", Value: 3.4, Color: theme.Danger},
		{Label: "Pediatrics", Value: 4.1, Color: theme.Accent},
	}, 5)
	assertSnippet(t, s)
}

func TestGaugeSnippet(t *testing.T) {
	assertSnippet(t, Gauge("ISA", 97.2, theme.Success))
}

func TestStatusHeatmapSnippet(t *testing.T) {
	cells := []HeatCell{
		{X: 0, Y: 0, Value: 2, Label: "Met"},
		{X: 1, Y: 0, Value: 0, Label: "Needs Attention"},
	}
	s := StatusHeatmap([]string{"Std 1", "Std 2"}, []string{"Elem 1"}, cells, []string{theme.Danger, theme.Warning, theme.Success})
	assertSnippet(t, s)
}
