// dataset_test.go verifies the shape invariants of the generated dataset.
package metrics

import (
	"reflect"
	"testing"
)

func TestAllSeriesAlignWithYearAxis(t *testing.T) {
	if len(AcademicYears()) != YearCount {
		t.Fatalf("year axis length mismatch, got %d", len(AcademicYears()))
	}
	d := Generate()
	series := map[string]int{
		"enrollment":        len(d.Education.Enrollment),
		"step1Pass":         len(d.Education.Step1Pass),
		"step2Pass":         len(d.Education.Step2Pass),
		"matchRate":         len(d.Education.MatchRate),
		"topChoiceMatch":    len(d.Education.TopChoiceMatch),
		"attritionRate":     len(d.Education.AttritionRate),
		"msqSatisfaction":   len(d.Education.MSQSatisfaction),
		"gqSatisfaction":    len(d.Education.GQSatisfaction),
		"totalFundingM":     len(d.Research.TotalFundingM),
		"nihFundingM":       len(d.Research.NIHFundingM),
		"facultyPubs":       len(d.Research.FacultyPubs),
		"hIndexMedian":      len(d.Research.HIndexMedian),
		"clinicalTrials":    len(d.Research.ClinicalTrials),
		"totalFaculty":      len(d.Workforce.TotalFaculty),
		"pctFemaleFaculty":  len(d.Workforce.PctFemaleFaculty),
		"pctUrmFaculty":     len(d.Workforce.PctURMFaculty),
		"voluntaryTurnover": len(d.Workforce.VoluntaryTurnover),
		"timeToPromotionYr": len(d.Workforce.TimeToPromotionYr),
	}
	for name, got := range series {
		if got != YearCount {
			t.Fatalf("series %s has length %d, want %d", name, got, YearCount)
		}
	}
}

func TestPercentagesWithinBounds(t *testing.T) {
	d := Generate()
	pct := map[string][]float64{
		"step1Pass":             d.Education.Step1Pass,
		"step2Pass":             d.Education.Step2Pass,
		"matchRate":             d.Education.MatchRate,
		"topChoiceMatch":        d.Education.TopChoiceMatch,
		"attritionRate":         d.Education.AttritionRate,
		"gqSatisfaction":        d.Education.GQSatisfaction,
		"pctFemaleFaculty":      d.Workforce.PctFemaleFaculty,
		"pctUrmFaculty":         d.Workforce.PctURMFaculty,
		"voluntaryTurnover":     d.Workforce.VoluntaryTurnover,
		"isaCompletion":         {d.Compliance.ISACompletion},
		"complianceTrainingPct": {d.Compliance.ComplianceTrainingPct},
	}
	for name, values := range pct {
		for i, v := range values {
			if v < 0 || v > 100 {
				t.Fatalf("%s[%d] = %v is outside [0,100]", name, i, v)
			}
		}
	}
}

func TestNonNIHFundingIsTotalMinusNIH(t *testing.T) {
	d := Generate()
	other := d.Research.NonNIHFundingM()
	if len(other) != YearCount {
		t.Fatalf("non-NIH series length %d", len(other))
	}
	for i := range other {
		want := d.Research.TotalFundingM[i] - d.Research.NIHFundingM[i]
		if other[i] != want {
			t.Fatalf("non-NIH[%d] = %v, want %v", i, other[i], want)
		}
		if other[i] < 0 {
			t.Fatalf("non-NIH[%d] is negative", i)
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	first := Generate()
	second := Generate()
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same-seed regeneration produced a different dataset")
	}
}
