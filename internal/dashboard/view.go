// view.go builds the page view model from the generated dataset.

// Package dashboard assembles the institutional effectiveness page: KPI
// cards, four tabbed sections of chart cards, and the executive narratives.
package dashboard

import (
	"fmt"
	"html/template"

	"github.com/example/iedash/internal/charts"
	"github.com/example/iedash/internal/metrics"
	"github.com/example/iedash/internal/theme"
)

// KPI is one summary card.
type KPI struct {
	Label string
	Value string
	Delta string
	// Dir is positive, negative, or neutral and picks the delta color.
	Dir string
}

// Arrow returns the direction glyph shown before the delta text.
func (k KPI) Arrow() string {
	switch k.Dir {
	case "positive":
		return "▲"
	case "negative":
		return "▼"
	default:
		return "●"
	}
}

// ChartCard is a titled chart with its one-line insight.
type ChartCard struct {
	Title   string
	Insight string
	Chart   charts.Snippet
}

// Tab is one of the four dashboard sections.
type Tab struct {
	ID        string
	Label     string
	Header    string
	Caption   string
	KPIs      []KPI       // optional cards above the charts (compliance)
	Cards     []ChartCard // two-column grid
	Gauges    []ChartCard // three-column grid
	Wide      []ChartCard // full width
	Narrative template.HTML
}

// Page is the full view model handed to the template.
type Page struct {
	Title       string
	Subtitle    string
	GeneratedOn string
	KPIs        []KPI
	Tabs        []Tab
	FooterYear  int
}

func last[T any](s []T) T { return s[len(s)-1] }

func delta[T int | float64](s []T) T { return last(s) - s[len(s)-2] }

// Build assembles the page view model. generatedOn and footerYear come from
// the caller's clock so the build stays a pure function of its inputs.
func Build(d metrics.Dataset, generatedOn string, footerYear int) Page {
	return Page{
		Title:       "Institutional Effectiveness Dashboard",
		Subtitle:    fmt.Sprintf("Academic Year %s  ·  Synthetic demonstration data  ·  Updated %s", last(metrics.AcademicYears()), generatedOn),
		GeneratedOn: generatedOn,
		KPIs:        topLineKPIs(d),
		Tabs: []Tab{
			educationTab(d.Education),
			researchTab(d.Research),
			workforceTab(d.Workforce),
			complianceTab(d.Compliance),
		},
		FooterYear: footerYear,
	}
}

func topLineKPIs(d metrics.Dataset) []KPI {
	return []KPI{
		{
			Label: "Total Enrollment",
			Value: fmt.Sprintf("%d", last(d.Education.Enrollment)),
			Delta: fmt.Sprintf("%+d vs. prior year", delta(d.Education.Enrollment)),
			Dir:   "positive",
		},
		{
			Label: "Match Rate",
			Value: fmt.Sprintf("%.1f%%", last(d.Education.MatchRate)),
			Delta: fmt.Sprintf("%+.1fpp vs. prior year", delta(d.Education.MatchRate)),
			Dir:   "negative",
		},
		{
			Label: "Research Funding",
			Value: fmt.Sprintf("$%.1fM", last(d.Research.TotalFundingM)),
			Delta: fmt.Sprintf("+$%.1fM vs. prior year", delta(d.Research.TotalFundingM)),
			Dir:   "positive",
		},
		{
			Label: "Faculty Count",
			Value: fmt.Sprintf("%d", last(d.Workforce.TotalFaculty)),
			Delta: fmt.Sprintf("%+d net new", delta(d.Workforce.TotalFaculty)),
			Dir:   "positive",
		},
		{
			Label: "LCME Standards Met",
			Value: fmt.Sprintf("%d/%d", d.Compliance.StandardsMet, d.Compliance.TotalStandards),
			Delta: "2 newly met this cycle",
			Dir:   "positive",
		},
	}
}

func educationTab(ed metrics.Education) Tab {
	years := metrics.AcademicYears()
	return Tab{
		ID:      "education",
		Label:   "📚 Education",
		Header:  "Education Outcomes",
		Caption: "Decision focus: Are students succeeding, and where do we need to intervene?",
		Cards: []ChartCard{
			{
				Title:   "USMLE Step 1 Pass Rate (%)",
				Insight: "Consistently above national average. Stable performance suggests curriculum strength.",
				Chart: charts.Trend("Step 1 Pass Rate", years, ed.Step1Pass, charts.TrendOptions{
					Color: theme.Success, Suffix: "%", YMin: 90, YMax: 100, Target: 96.0, HasTarget: true,
				}),
			},
			{
				Title:   "Residency Match Rate (%)",
				Insight: "Recovered from 2021 dip. Watch whether top-choice rate sustains above 65%.",
				Chart: charts.Trend("Match Rate", years, ed.MatchRate, charts.TrendOptions{
					Color: theme.Accent, Suffix: "%", YMin: 85, YMax: 100, Target: 94.0, HasTarget: true,
				}),
			},
			{
				Title:   "Student Satisfaction (MSQ Overall, 1–5 Scale)",
				Insight: "Steady climb since COVID low in 2020–21. Approaching 4.0 threshold for first time.",
				Chart: charts.Trend("MSQ Satisfaction", years, ed.MSQSatisfaction, charts.TrendOptions{
					Color: theme.Warning, YMin: 3.0, YMax: 4.5, Target: 4.0, HasTarget: true,
				}),
			},
			{
				Title:   "Attrition Rate (%)",
				Insight: "Below 2.5% for two consecutive years. Retention initiatives are working.",
				Chart: charts.Trend("Attrition", years, ed.AttritionRate, charts.TrendOptions{
					Color: theme.Danger, Suffix: "%", YMin: 0, YMax: 5, Target: 2.5, HasTarget: true,
				}),
			},
		},
		Narrative: template.HTML(`<strong>What this means:</strong> Education outcomes are strong and improving. The match rate dip in 2020–21
reflected national pandemic disruption, not a structural weakness. The key strategic question is whether
rising satisfaction translates to improved GQ metrics, which directly affect reputation and rankings.`),
	}
}

func researchTab(res metrics.Research) Tab {
	years := metrics.AcademicYears()
	pubs := make([]float64, len(res.FacultyPubs))
	for i, v := range res.FacultyPubs {
		pubs[i] = float64(v)
	}
	trials := make([]float64, len(res.ClinicalTrials))
	for i, v := range res.ClinicalTrials {
		trials[i] = float64(v)
	}
	hIndex := make([]float64, len(res.HIndexMedian))
	for i, v := range res.HIndexMedian {
		hIndex[i] = float64(v)
	}
	return Tab{
		ID:      "research",
		Label:   "🔬 Research",
		Header:  "Research Enterprise",
		Caption: "Decision focus: Is research funding growing, and are we diversifying revenue?",
		Cards: []ChartCard{
			{
				Title:   "Total Research Funding ($M)",
				Insight: "30% growth over 6 years. NIH share remains ~67%, suggesting healthy but concentrated portfolio.",
				Chart: charts.StackedBars(years, []charts.NamedSeries{
					{Name: "NIH", Color: theme.Accent, Values: res.NIHFundingM},
					{Name: "Other", Color: theme.Warning, Values: res.NonNIHFundingM()},
				}, "$", "M"),
			},
			{
				Title:   "Faculty Publications (Peer-Reviewed)",
				Insight: "Consistent upward trend. 33% increase since 2019–20 reflects hiring and productivity gains.",
				Chart: charts.Trend("Publications", years, pubs, charts.TrendOptions{
					Color: theme.Primary,
				}),
			},
			{
				Title:   "Active Clinical Trials",
				Insight: "38% growth signals expanding clinical research enterprise and industry partnerships.",
				Chart: charts.Trend("Clinical Trials", years, trials, charts.TrendOptions{
					Color: theme.Success,
				}),
			},
			{
				Title:   "Median Faculty h-index",
				Insight: "Steady improvement. Crossing 20 is a meaningful benchmark for research-intensive schools.",
				Chart: charts.Trend("h-index", years, hIndex, charts.TrendOptions{
					Color: theme.Accent, YMin: 15, YMax: 25,
				}),
			},
		},
		Narrative: template.HTML(`<strong>What this means:</strong> The research enterprise is on an upward trajectory across all indicators.
The strategic risk is NIH concentration — if federal funding tightens, the institution needs non-NIH
revenue streams (industry, state, philanthropy) to sustain momentum. Consider setting a target of
reducing NIH dependency to &lt;60% of total funding within 3 years.`),
	}
}

func workforceTab(wf metrics.Workforce) Tab {
	years := metrics.AcademicYears()
	ranked := wf.RankedDepartments()
	bars := make([]charts.RankedBar, len(ranked))
	for i, entry := range ranked {
		barColor := theme.Accent
		if entry.Score < metrics.LowScoreThreshold {
			barColor = theme.Danger
		}
		bars[i] = charts.RankedBar{Label: entry.Department, Value: entry.Score, Color: barColor}
	}
	return Tab{
		ID:      "workforce",
		Label:   "👥 Workforce",
		Header:  "Faculty & Workforce",
		Caption: "Decision focus: Are we building a diverse, stable, and productive workforce?",
		Cards: []ChartCard{
			{
				Title:   "Faculty Diversity Trends",
				Insight: "Both female and URM representation are rising, but URM pace needs to accelerate to meet strategic goals.",
				Chart: charts.MultiTrend(years, []charts.NamedSeries{
					{Name: "% Female", Color: theme.Accent, Values: wf.PctFemaleFaculty},
					{Name: "% URM", Color: theme.Warning, Values: wf.PctURMFaculty},
				}, 0, 50, "%"),
			},
			{
				Title:   "Voluntary Turnover Rate (%)",
				Insight: "Below 7.5% and declining. Retention strategies and mentorship investment are paying off.",
				Chart: charts.Trend("Turnover", years, wf.VoluntaryTurnover, charts.TrendOptions{
					Color: theme.Danger, Suffix: "%", YMin: 4, YMax: 12, Target: 7.5, HasTarget: true,
				}),
			},
			{
				Title:   "Median Time to Promotion (Years)",
				Insight: "Trending below 6 years for the first time. Streamlined review processes are accelerating career progression.",
				Chart: charts.Trend("Years", years, wf.TimeToPromotionYr, charts.TrendOptions{
					Color: theme.Primary, Suffix: " yr", YMin: 4, YMax: 8, Target: 6.0, HasTarget: true,
				}),
			},
			{
				Title:   "Department Satisfaction Scores (1–5)",
				Insight: "Most departments above 3.5. Identify low-scoring departments for targeted leadership development.",
				Chart:   charts.HorizontalBars(bars, 5),
			},
		},
		Narrative: template.HTML(`<strong>What this means:</strong> The workforce is stabilizing and diversifying. Two priorities emerge:
(1) URM faculty recruitment needs dedicated pipeline programs to reach 18% by 2027, and
(2) department-level satisfaction gaps require chair-specific action plans. The declining time-to-promotion
is a competitive advantage for recruitment.`),
	}
}

func complianceTab(comp metrics.Compliance) Tab {
	xLabels := make([]string, metrics.StandardCount)
	for i := range xLabels {
		xLabels[i] = fmt.Sprintf("Std %d", i+1)
	}
	yLabels := make([]string, metrics.ElementCount)
	for j := range yLabels {
		yLabels[j] = fmt.Sprintf("Elem %d", j+1)
	}
	cells := make([]charts.HeatCell, len(comp.StandardsGrid))
	for i, cell := range comp.StandardsGrid {
		cells[i] = charts.HeatCell{
			X:     cell.Standard - 1,
			Y:     cell.Element - 1,
			Value: statusRank(cell.Status),
			Label: string(cell.Status),
		}
	}
	return Tab{
		ID:      "compliance",
		Label:   "✅ Compliance",
		Header:  "Accreditation & Compliance",
		Caption: "Decision focus: Are we ready for the next LCME visit, and where are the gaps?",
		KPIs: []KPI{
			{Label: "Accreditation Status", Value: "Full", Delta: "Next visit: 2028", Dir: "positive"},
			{
				Label: "Standards Met",
				Value: fmt.Sprintf("%d of %d", comp.StandardsMet, comp.TotalStandards),
				Delta: fmt.Sprintf("%.1f%% compliance", float64(comp.StandardsMet)/float64(comp.TotalStandards)*100),
				Dir:   "positive",
			},
			{
				Label: "Open Action Items",
				Value: fmt.Sprintf("%d", comp.OpenActionItems),
				Delta: "Down from 7 last year",
				Dir:   "positive",
			},
		},
		Gauges: []ChartCard{
			{
				Title:   "ISA Completion",
				Insight: "On track for full completion before visit.",
				Chart:   charts.Gauge("ISA", comp.ISACompletion, theme.Success),
			},
			{
				Title:   "CQI Projects",
				Insight: fmt.Sprintf("%d active, %d completed this cycle.", comp.CQIProjectsActive, comp.CQIProjectsComplete),
				Chart:   charts.Gauge("CQI", comp.CQICompletionPct(), theme.Accent),
			},
			{
				Title:   "Compliance Training",
				Insight: fmt.Sprintf("%.1f%% complete. Target: 98%% by June.", comp.ComplianceTrainingPct),
				Chart:   charts.Gauge("Training", comp.ComplianceTrainingPct, theme.Warning),
			},
		},
		Wide: []ChartCard{
			{
				Title:   "LCME Standards Compliance Map",
				Insight: "Green = met, gold = in progress, red = needs attention. Two standards require action before 2028 visit.",
				Chart: charts.StatusHeatmap(xLabels, yLabels, cells,
					[]string{theme.Danger, theme.Warning, theme.Success}),
			},
		},
		Narrative: template.HTML(`<strong>What this means:</strong> Accreditation posture is strong with 97.9% of standards met. The 4 open
action items are tracked and assigned. Priority before the 2028 visit: close the 2 "needs attention"
standards (likely curriculum mapping completeness and assessment documentation) and achieve 98%
compliance training completion by June.`),
	}
}

// statusRank maps a status to its heatmap value: red at 0, green at 2.
func statusRank(s metrics.StandardStatus) float64 {
	switch s {
	case metrics.StatusMet:
		return 2
	case metrics.StatusInProgress:
		return 1
	default:
		return 0
	}
}
