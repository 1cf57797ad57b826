// render.go executes the page template against the view model.

package dashboard

import (
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/example/iedash/internal/metrics"
)

type pageData struct {
	Page
	EChartsAsset string
}

// RenderHTML renders the full dashboard page for the given dataset. The
// clock is passed in so output for a fixed time is reproducible.
func RenderHTML(d metrics.Dataset, now time.Time) (string, error) {
	tmpl := template.Must(template.New("dashboard").Parse(pageTemplate))
	data := pageData{
		Page:         Build(d, now.Format("January 2, 2006"), now.Year()),
		EChartsAsset: echartsAsset,
	}
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render dashboard page: %w", err)
	}
	return sb.String(), nil
}
