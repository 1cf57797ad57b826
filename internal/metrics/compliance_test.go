// compliance_test.go covers the status grid and the CQI gauge ratio.
package metrics

import "testing"

func TestStandardsGridShape(t *testing.T) {
	c := Generate().Compliance
	if len(c.StandardsGrid) != StandardCount*ElementCount {
		t.Fatalf("grid has %d cells, want %d", len(c.StandardsGrid), StandardCount*ElementCount)
	}
	seen := make(map[string]bool, len(c.StandardsGrid))
	for _, cell := range c.StandardsGrid {
		if cell.Standard < 1 || cell.Standard > StandardCount {
			t.Fatalf("cell %s has standard %d out of range", cell.ID, cell.Standard)
		}
		if cell.Element < 1 || cell.Element > ElementCount {
			t.Fatalf("cell %s has element %d out of range", cell.ID, cell.Element)
		}
		switch cell.Status {
		case StatusMet, StatusInProgress, StatusNeedsAttention:
		default:
			t.Fatalf("cell %s has unknown status %q", cell.ID, cell.Status)
		}
		if seen[cell.ID] {
			t.Fatalf("duplicate cell id %s", cell.ID)
		}
		seen[cell.ID] = true
	}
}

func TestClassifyStandardPartition(t *testing.T) {
	cases := []struct {
		r    float64
		want StandardStatus
	}{
		{0.0, StatusNeedsAttention},
		{0.029, StatusNeedsAttention},
		{0.03, StatusInProgress},
		{0.079, StatusInProgress},
		{0.08, StatusMet},
		{0.99, StatusMet},
	}
	for _, tc := range cases {
		if got := classifyStandard(tc.r); got != tc.want {
			t.Fatalf("classifyStandard(%v) = %q, want %q", tc.r, got, tc.want)
		}
	}
}

func TestCQICompletionRatio(t *testing.T) {
	c := Generate().Compliance
	if got := c.CQICompletionPct(); got != 40 {
		t.Fatalf("CQI completion = %v, want 40", got)
	}
}
