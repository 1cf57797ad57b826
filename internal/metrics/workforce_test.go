// workforce_test.go covers the department satisfaction draw and ranking.
package metrics

import (
	"math"
	"testing"
)

func TestDeptSatisfactionCoversEveryDepartment(t *testing.T) {
	w := Generate().Workforce
	if len(w.DeptSatisfaction) != len(Departments()) {
		t.Fatalf("expected %d department scores, got %d", len(Departments()), len(w.DeptSatisfaction))
	}
	for _, dept := range Departments() {
		score, ok := w.DeptSatisfaction[dept]
		if !ok {
			t.Fatalf("missing score for %s", dept)
		}
		if score < 3.2 || score > 4.4 {
			t.Fatalf("score for %s is %v, outside the 3.2+uniform(0,1.2) range", dept, score)
		}
		if rounded := math.Round(score*100) / 100; rounded != score {
			t.Fatalf("score for %s is %v, not rounded to 2 decimals", dept, score)
		}
	}
}

func TestRankedDepartmentsAscending(t *testing.T) {
	w := Generate().Workforce
	ranked := w.RankedDepartments()
	if len(ranked) != len(Departments()) {
		t.Fatalf("ranking dropped departments: got %d", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score < ranked[i-1].Score {
			t.Fatalf("ranking not non-decreasing at %d: %v after %v", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
}

func TestLowScoreCountMatchesThreshold(t *testing.T) {
	w := Generate().Workforce
	fromMap := 0
	for _, score := range w.DeptSatisfaction {
		if score < LowScoreThreshold {
			fromMap++
		}
	}
	fromRanking := 0
	for _, entry := range w.RankedDepartments() {
		if entry.Score < LowScoreThreshold {
			fromRanking++
		}
	}
	if fromMap != fromRanking {
		t.Fatalf("low-score counts disagree: map %d, ranking %d", fromMap, fromRanking)
	}
}
