// template.go holds the page markup for the rendered dashboard.

package dashboard

const echartsAsset = "https://go-echarts.github.io/go-echarts-assets/assets/echarts.min.js"

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<script src="{{.EChartsAsset}}"></script>
<style>
  :root {
    --primary: #1B2A4A;
    --accent: #2E86AB;
    --success: #2D936C;
    --warning: #D4A843;
    --danger: #C44536;
    --light-bg: #F8F9FA;
    --text: #333333;
    --muted: #8C8C8C;
    --card-border: #E8ECF0;
  }
  * { box-sizing: border-box; }
  body {
    margin: 0;
    background: var(--light-bg);
    color: var(--text);
    font-family: "Segoe UI", "Helvetica Neue", Arial, sans-serif;
  }
  .page { max-width: 1280px; margin: 0 auto; padding: 0 24px 32px; }
  .dashboard-header {
    background: var(--primary);
    color: #ffffff;
    margin: 0 -24px 24px;
    padding: 28px 32px 24px;
  }
  .dashboard-header h1 { margin: 0 0 6px; font-size: 26px; font-weight: 600; }
  .dashboard-header p { margin: 0; font-size: 14px; color: rgba(255,255,255,0.75); }
  .kpi-row { display: grid; grid-template-columns: repeat(5, 1fr); gap: 16px; margin-bottom: 24px; }
  .kpi-grid-3 { display: grid; grid-template-columns: repeat(3, 1fr); gap: 16px; margin-bottom: 20px; }
  .kpi-card {
    background: #ffffff;
    border: 1px solid var(--card-border);
    border-radius: 8px;
    padding: 16px 18px;
  }
  .kpi-label { font-size: 12px; text-transform: uppercase; letter-spacing: 0.06em; color: var(--muted); }
  .kpi-value { font-size: 28px; font-weight: 700; color: var(--primary); margin: 4px 0 2px; }
  .kpi-delta { font-size: 12px; }
  .kpi-delta.positive { color: var(--success); }
  .kpi-delta.negative { color: var(--danger); }
  .kpi-delta.neutral { color: var(--muted); }
  .tab-bar { display: flex; gap: 4px; border-bottom: 2px solid var(--card-border); margin-bottom: 20px; }
  .tab-button {
    background: none;
    border: none;
    border-bottom: 3px solid transparent;
    padding: 10px 18px;
    font-size: 15px;
    color: var(--muted);
    cursor: pointer;
  }
  .tab-button.active { color: var(--primary); font-weight: 600; border-bottom-color: var(--accent); }
  .tab-panel { display: none; }
  .tab-panel.active { display: block; }
  .section-header { font-size: 20px; font-weight: 600; color: var(--primary); margin: 0 0 4px; }
  .section-caption { font-size: 13px; color: var(--muted); margin: 0 0 18px; }
  .chart-grid { display: grid; grid-template-columns: repeat(2, 1fr); gap: 16px; }
  .gauge-grid { display: grid; grid-template-columns: repeat(3, 1fr); gap: 16px; margin-bottom: 16px; }
  .wide-grid { display: grid; grid-template-columns: 1fr; gap: 16px; margin-top: 16px; }
  .chart-card {
    background: #ffffff;
    border: 1px solid var(--card-border);
    border-radius: 8px;
    padding: 14px 16px 10px;
  }
  .chart-title { font-size: 14px; font-weight: 600; color: var(--primary); margin: 0 0 8px; }
  .chart-insight { font-size: 12px; color: var(--muted); margin: 6px 0 4px; }
  .narrative-box {
    background: #ffffff;
    border-left: 4px solid var(--accent);
    border-radius: 4px;
    padding: 14px 18px;
    margin-top: 20px;
    font-size: 14px;
    line-height: 1.55;
  }
  .dashboard-footer {
    margin-top: 28px;
    padding-top: 14px;
    border-top: 1px solid var(--card-border);
    font-size: 12px;
    color: var(--muted);
  }
  @media (max-width: 900px) {
    .kpi-row { grid-template-columns: repeat(2, 1fr); }
    .kpi-grid-3, .gauge-grid, .chart-grid { grid-template-columns: 1fr; }
  }
</style>
</head>
<body>
<div class="dashboard-header">
  <div class="page" style="padding-bottom:0">
    <h1>{{.Title}}</h1>
    <p>{{.Subtitle}}</p>
  </div>
</div>
<div class="page">
  <div class="kpi-row">
  {{range .KPIs}}
    <div class="kpi-card">
      <div class="kpi-label">{{.Label}}</div>
      <div class="kpi-value">{{.Value}}</div>
      <div class="kpi-delta {{.Dir}}">{{.Arrow}} {{.Delta}}</div>
    </div>
  {{end}}
  </div>

  <div class="tab-bar">
  {{range $i, $tab := .Tabs}}
    <button class="tab-button{{if eq $i 0}} active{{end}}" data-tab="{{$tab.ID}}">{{$tab.Label}}</button>
  {{end}}
  </div>

  {{range $i, $tab := .Tabs}}
  <section class="tab-panel{{if eq $i 0}} active{{end}}" id="tab-{{$tab.ID}}">
    <h2 class="section-header">{{$tab.Header}}</h2>
    <p class="section-caption">{{$tab.Caption}}</p>
    {{if $tab.KPIs}}
    <div class="kpi-grid-3">
    {{range $tab.KPIs}}
      <div class="kpi-card">
        <div class="kpi-label">{{.Label}}</div>
        <div class="kpi-value">{{.Value}}</div>
        <div class="kpi-delta {{.Dir}}">{{.Arrow}} {{.Delta}}</div>
      </div>
    {{end}}
    </div>
    {{end}}
    {{if $tab.Cards}}
    <div class="chart-grid">
    {{range $tab.Cards}}
      <div class="chart-card">
        <h3 class="chart-title">{{.Title}}</h3>
        {{.Chart.Element}}
        <p class="chart-insight">{{.Insight}}</p>
      </div>
    {{end}}
    </div>
    {{end}}
    {{if $tab.Gauges}}
    <div class="gauge-grid">
    {{range $tab.Gauges}}
      <div class="chart-card">
        <h3 class="chart-title">{{.Title}}</h3>
        {{.Chart.Element}}
        <p class="chart-insight">{{.Insight}}</p>
      </div>
    {{end}}
    </div>
    {{end}}
    {{if $tab.Wide}}
    <div class="wide-grid">
    {{range $tab.Wide}}
      <div class="chart-card">
        <h3 class="chart-title">{{.Title}}</h3>
        {{.Chart.Element}}
        <p class="chart-insight">{{.Insight}}</p>
      </div>
    {{end}}
    </div>
    {{end}}
    <div class="narrative-box">{{$tab.Narrative}}</div>
  </section>
  {{end}}

  <div class="dashboard-footer">
    Office of Institutional Effectiveness · Synthetic data for demonstration · Generated {{.GeneratedOn}} · © {{.FooterYear}}
  </div>
</div>

{{range .Tabs}}{{range .Cards}}{{.Chart.Script}}{{end}}{{range .Gauges}}{{.Chart.Script}}{{end}}{{range .Wide}}{{.Chart.Script}}{{end}}{{end}}

<script>
(function () {
  var buttons = document.querySelectorAll(".tab-button");
  function resizeCharts(panel) {
    panel.querySelectorAll("div[id]").forEach(function (el) {
      var chart = echarts.getInstanceByDom(el);
      if (chart) { chart.resize(); }
    });
  }
  buttons.forEach(function (btn) {
    btn.addEventListener("click", function () {
      buttons.forEach(function (b) { b.classList.remove("active"); });
      document.querySelectorAll(".tab-panel").forEach(function (p) { p.classList.remove("active"); });
      btn.classList.add("active");
      var panel = document.getElementById("tab-" + btn.dataset.tab);
      panel.classList.add("active");
      resizeCharts(panel);
    });
  });
  window.addEventListener("resize", function () {
    document.querySelectorAll(".tab-panel.active").forEach(resizeCharts);
  });
})();
</script>
</body>
</html>
`
