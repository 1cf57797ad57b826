// dashboard_test.go exercises the rendered page end to end.
package dashboard

import (
	"strings"
	"testing"
	"time"

	"github.com/example/iedash/internal/metrics"
)

var renderClock = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)

func renderPage(t *testing.T) string {
	t.Helper()
	html, err := RenderHTML(metrics.Generate(), renderClock)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return html
}

func TestRenderContainsSections(t *testing.T) {
	html := renderPage(t)
	for _, want := range []string{
		"Institutional Effectiveness Dashboard",
		"Education Outcomes",
		"Research Enterprise",
		"Faculty &amp; Workforce",
		"Accreditation &amp; Compliance",
		"Updated June 1, 2025",
		echartsAsset,
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered page is missing %q", want)
		}
	}
}

func TestRenderTopLineKPIs(t *testing.T) {
	html := renderPage(t)
	for _, want := range []string{
		"Total Enrollment",
		"Match Rate",
		"Research Funding",
		"Faculty Count",
		"LCME Standards Met",
		"93/95",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered page is missing KPI %q", want)
		}
	}
}

func TestRenderChartCardCount(t *testing.T) {
	html := renderPage(t)
	// 4 education, 4 research, 4 workforce, 3 gauges plus the heatmap.
	if got := strings.Count(html, `class="chart-card"`); got != 16 {
		t.Fatalf("got %d chart cards, want 16", got)
	}
	if got := strings.Count(html, `class="tab-panel`); got != 4 {
		t.Fatalf("got %d tab panels, want 4", got)
	}
}

func TestRenderEmitsTargetLines(t *testing.T) {
	html := renderPage(t)
	if !strings.Contains(html, "markLine") {
		t.Fatalf("trend charts with targets should emit marklines")
	}
	if !strings.Contains(html, "visualMap") {
		t.Fatalf("status heatmap should emit a visualMap block")
	}
}

func TestBuildRanksDepartmentsWithThresholdColors(t *testing.T) {
	page := Build(metrics.Generate(), "June 1, 2025", 2025)
	if len(page.Tabs) != 4 {
		t.Fatalf("got %d tabs, want 4", len(page.Tabs))
	}
	wf := page.Tabs[2]
	if wf.ID != "workforce" {
		t.Fatalf("third tab is %q, want workforce", wf.ID)
	}
	if len(wf.Cards) != 4 {
		t.Fatalf("workforce tab has %d cards, want 4", len(wf.Cards))
	}
}

func TestKPIArrow(t *testing.T) {
	if (KPI{Dir: "positive"}).Arrow() != "▲" {
		t.Fatalf("positive arrow mismatch")
	}
	if (KPI{Dir: "negative"}).Arrow() != "▼" {
		t.Fatalf("negative arrow mismatch")
	}
	if (KPI{Dir: "neutral"}).Arrow() != "●" {
		t.Fatalf("neutral arrow mismatch")
	}
}
