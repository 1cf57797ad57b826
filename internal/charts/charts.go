// charts.go builds the go-echarts figures embedded in the dashboard page.

// Package charts wraps go-echarts with the handful of figure styles the
// dashboard uses: trend lines with optional target marklines, stacked and
// horizontal bars, gauges, and the status heatmap. Builders are generic
// over labels and values; callers pick the palette.
package charts

import (
	"html/template"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/render"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/example/iedash/internal/theme"
)

// Snippet is a chart reduced to the two fragments the page template needs.
type Snippet struct {
	Element template.HTML
	Script  template.HTML
}

type snippetRenderer interface {
	RenderSnippet() render.ChartSnippet
}

func toSnippet(c snippetRenderer) Snippet {
	s := c.RenderSnippet()
	return Snippet{
		Element: template.HTML(s.Element),
		Script:  template.HTML(s.Script),
	}
}

// TrendOptions tunes a single-series trend line.
type TrendOptions struct {
	Color     string
	Suffix    string // appended to y-axis tick labels, e.g. "%"
	YMin      interface{}
	YMax      interface{}
	Target    float64
	HasTarget bool
}

// Trend renders one series across the year axis as a line with markers.
func Trend(name string, years []string, values []float64, o TrendOptions) Snippet {
	line := charts.NewLine()
	yAxis := opts.YAxis{
		Min: o.YMin,
		Max: o.YMax,
		AxisLabel: &opts.AxisLabel{
			Color:     theme.Muted,
			Formatter: types.FuncStr("{value}" + o.Suffix),
		},
	}
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "220px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Color: theme.Muted}}),
		charts.WithYAxisOpts(yAxis),
		charts.WithGridOpts(opts.Grid{Left: "48", Right: "16", Top: "16", Bottom: "28"}),
	)
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	seriesOpts := []charts.SeriesOpts{
		charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
		charts.WithLineStyleOpts(opts.LineStyle{Color: o.Color, Width: 2.5}),
		charts.WithItemStyleOpts(opts.ItemStyle{Color: o.Color}),
	}
	if o.HasTarget {
		seriesOpts = append(seriesOpts,
			charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{Name: "Target", YAxis: o.Target}),
			charts.WithMarkLineStyleOpts(opts.MarkLineStyle{
				Symbol:    []string{"none", "none"},
				LineStyle: &opts.LineStyle{Type: "dotted", Color: theme.Muted},
			}),
		)
	}
	line.SetXAxis(years)
	line.AddSeries(name, data, seriesOpts...)
	return toSnippet(line)
}

// NamedSeries is one series of a multi-series figure.
type NamedSeries struct {
	Name   string
	Color  string
	Values []float64
}

// MultiTrend renders several series on one line chart with a shared legend.
func MultiTrend(years []string, series []NamedSeries, yMin, yMax interface{}, suffix string) Snippet {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "220px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Orient: "horizontal", Right: "0"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Color: theme.Muted}}),
		charts.WithYAxisOpts(opts.YAxis{
			Min:       yMin,
			Max:       yMax,
			AxisLabel: &opts.AxisLabel{Color: theme.Muted, Formatter: types.FuncStr("{value}" + suffix)},
		}),
		charts.WithGridOpts(opts.Grid{Left: "48", Right: "16", Top: "32", Bottom: "28"}),
	)
	line.SetXAxis(years)
	for _, s := range series {
		data := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, data,
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
			charts.WithLineStyleOpts(opts.LineStyle{Color: s.Color, Width: 2.5}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
		)
	}
	return toSnippet(line)
}

// StackedBars renders the series stacked on one bar per year.
func StackedBars(years []string, series []NamedSeries, prefix, suffix string) Snippet {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "240px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Orient: "horizontal", Right: "0"}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Color: theme.Muted}}),
		charts.WithYAxisOpts(opts.YAxis{
			AxisLabel: &opts.AxisLabel{Color: theme.Muted, Formatter: types.FuncStr(prefix + "{value}" + suffix)},
		}),
		charts.WithGridOpts(opts.Grid{Left: "56", Right: "16", Top: "32", Bottom: "28"}),
	)
	bar.SetXAxis(years)
	for _, s := range series {
		data := make([]opts.BarData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.BarData{Value: v}
		}
		bar.AddSeries(s.Name, data,
			charts.WithBarChartOpts(opts.BarChart{Stack: "total"}),
			charts.WithItemStyleOpts(opts.ItemStyle{Color: s.Color}),
		)
	}
	return toSnippet(bar)
}

// RankedBar is one category of a horizontal ranking chart.
type RankedBar struct {
	Label string
	Value float64
	Color string
}

// HorizontalBars renders a horizontal ranking with per-bar colors and the
// value printed outside each bar. Bars appear top-to-bottom in the order
// given, matching a ranking read from best at the bottom.
func HorizontalBars(bars []RankedBar, max float64) Snippet {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "280px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{AxisLabel: &opts.AxisLabel{Color: theme.Text}}),
		charts.WithYAxisOpts(opts.YAxis{Max: max, AxisLabel: &opts.AxisLabel{Color: theme.Muted}}),
		charts.WithGridOpts(opts.Grid{Left: "130", Right: "40", Top: "8", Bottom: "8"}),
	)
	labels := make([]string, len(bars))
	data := make([]opts.BarData, len(bars))
	for i, b := range bars {
		labels[i] = b.Label
		data[i] = opts.BarData{
			Value:     b.Value,
			ItemStyle: &opts.ItemStyle{Color: b.Color},
		}
	}
	bar.SetXAxis(labels)
	bar.AddSeries("Score", data,
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "right", Color: theme.Text}),
	)
	bar.XYReversal()
	return toSnippet(bar)
}

// Gauge renders a single-value angular gauge in [0,100].
func Gauge(label string, value float64, color string) Snippet {
	gauge := charts.NewGauge()
	gauge.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "200px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(false)}),
	)
	gauge.AddSeries(label, []opts.GaugeData{{Name: label, Value: value}},
		charts.WithItemStyleOpts(opts.ItemStyle{Color: color}),
	)
	return toSnippet(gauge)
}

// HeatCell is one cell of the status heatmap, addressed by category index.
type HeatCell struct {
	X     int
	Y     int
	Value float64
	Label string
}

// StatusHeatmap renders a categorical grid colored through the given ramp
// (low to high). Values must lie in [0, len(ramp)-1].
func StatusHeatmap(xLabels, yLabels []string, cells []HeatCell, ramp []string) Snippet {
	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "250px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(false)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:      "category",
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			AxisLabel: &opts.AxisLabel{Color: theme.Muted},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:      "category",
			Data:      yLabels,
			SplitArea: &opts.SplitArea{Show: opts.Bool(true)},
			AxisLabel: &opts.AxisLabel{Color: theme.Muted},
		}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Min:     0,
			Max:     float32(len(ramp) - 1),
			InRange: &opts.VisualMapInRange{Color: ramp},
		}),
		charts.WithGridOpts(opts.Grid{Left: "64", Right: "16", Top: "8", Bottom: "28"}),
	)
	data := make([]opts.HeatMapData, len(cells))
	for i, c := range cells {
		data[i] = opts.HeatMapData{
			Name:  c.Label,
			Value: [3]interface{}{c.X, c.Y, c.Value},
		}
	}
	hm.SetXAxis(xLabels)
	hm.AddSeries("Status", data)
	return toSnippet(hm)
}
