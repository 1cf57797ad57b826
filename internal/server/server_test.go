// server_test.go drives the route mux through httptest.
package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/example/iedash/internal/metrics"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s, err := New(Config{ListenAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (*http.Response, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read %s: %v", url, err)
	}
	return resp, string(body)
}

func TestIndexServesDashboard(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	if !strings.Contains(body, "Institutional Effectiveness Dashboard") {
		t.Fatalf("index page is missing the dashboard title")
	}
}

func TestIndexRejectsUnknownPath(t *testing.T) {
	ts := newTestServer(t)
	resp, _ := get(t, ts.URL+"/nope")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("got status %d, want 404", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d", resp.StatusCode)
	}
	if !strings.Contains(body, `"status":"ok"`) {
		t.Fatalf("unexpected healthz body %q", body)
	}
}

func TestDatasetAPI(t *testing.T) {
	ts := newTestServer(t)
	resp, body := get(t, ts.URL+"/api/dataset")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d", resp.StatusCode)
	}
	var d metrics.Dataset
	if err := json.Unmarshal([]byte(body), &d); err != nil {
		t.Fatalf("decode dataset: %v", err)
	}
	if len(d.Education.Enrollment) != metrics.YearCount {
		t.Fatalf("dataset enrollment has %d years, want %d", len(d.Education.Enrollment), metrics.YearCount)
	}
	if len(d.Compliance.StandardsGrid) != metrics.StandardCount*metrics.ElementCount {
		t.Fatalf("dataset grid has %d cells", len(d.Compliance.StandardsGrid))
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	// Prime the request counter before scraping.
	if resp, _ := get(t, ts.URL+"/healthz"); resp.StatusCode != http.StatusOK {
		t.Fatalf("prime request failed")
	}
	resp, body := get(t, ts.URL+"/metrics")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d", resp.StatusCode)
	}
	if !strings.Contains(body, "iedash_http_requests_total") {
		t.Fatalf("metrics output is missing the request counter")
	}
}
