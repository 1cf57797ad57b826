// csvutil.go flattens the dashboard dataset into long-form CSV records.

// Package csvutil encodes the generated dataset for the export command.
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/example/iedash/internal/metrics"
)

var header = []string{"section", "metric", "label", "value"}

// WriteDataset emits the dataset in long form: one row per (metric, label)
// pair, where label is an academic year, a department, or a grid cell id.
func WriteDataset(w io.Writer, d metrics.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	years := metrics.AcademicYears()

	writeFloats := func(section, metric string, values []float64) error {
		for i, v := range values {
			row := []string{section, metric, years[i], strconv.FormatFloat(v, 'f', -1, 64)}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write %s/%s: %w", section, metric, err)
			}
		}
		return nil
	}
	writeInts := func(section, metric string, values []int) error {
		for i, v := range values {
			row := []string{section, metric, years[i], strconv.Itoa(v)}
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("write %s/%s: %w", section, metric, err)
			}
		}
		return nil
	}

	intSeries := []struct {
		section, metric string
		values          []int
	}{
		{"education", "enrollment", d.Education.Enrollment},
		{"research", "facultyPubs", d.Research.FacultyPubs},
		{"research", "hIndexMedian", d.Research.HIndexMedian},
		{"research", "clinicalTrials", d.Research.ClinicalTrials},
		{"workforce", "totalFaculty", d.Workforce.TotalFaculty},
	}
	floatSeries := []struct {
		section, metric string
		values          []float64
	}{
		{"education", "step1Pass", d.Education.Step1Pass},
		{"education", "step2Pass", d.Education.Step2Pass},
		{"education", "matchRate", d.Education.MatchRate},
		{"education", "topChoiceMatch", d.Education.TopChoiceMatch},
		{"education", "attritionRate", d.Education.AttritionRate},
		{"education", "msqOverallSatisfaction", d.Education.MSQSatisfaction},
		{"education", "gqSatisfaction", d.Education.GQSatisfaction},
		{"research", "totalFundingM", d.Research.TotalFundingM},
		{"research", "nihFundingM", d.Research.NIHFundingM},
		{"workforce", "pctFemaleFaculty", d.Workforce.PctFemaleFaculty},
		{"workforce", "pctUrmFaculty", d.Workforce.PctURMFaculty},
		{"workforce", "voluntaryTurnover", d.Workforce.VoluntaryTurnover},
		{"workforce", "timeToPromotionYr", d.Workforce.TimeToPromotionYr},
	}
	for _, s := range intSeries {
		if err := writeInts(s.section, s.metric, s.values); err != nil {
			return err
		}
	}
	for _, s := range floatSeries {
		if err := writeFloats(s.section, s.metric, s.values); err != nil {
			return err
		}
	}

	for _, entry := range d.Workforce.RankedDepartments() {
		row := []string{"workforce", "deptSatisfaction", entry.Department, strconv.FormatFloat(entry.Score, 'f', 2, 64)}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write dept satisfaction: %w", err)
		}
	}

	scalars := []struct {
		metric, value string
	}{
		{"lcmeStandardsMet", strconv.Itoa(d.Compliance.StandardsMet)},
		{"lcmeTotalStandards", strconv.Itoa(d.Compliance.TotalStandards)},
		{"accreditationStatus", d.Compliance.AccreditationStatus},
		{"openActionItems", strconv.Itoa(d.Compliance.OpenActionItems)},
		{"isaCompletion", strconv.FormatFloat(d.Compliance.ISACompletion, 'f', -1, 64)},
		{"cqiProjectsActive", strconv.Itoa(d.Compliance.CQIProjectsActive)},
		{"cqiProjectsComplete", strconv.Itoa(d.Compliance.CQIProjectsComplete)},
		{"complianceTrainingPct", strconv.FormatFloat(d.Compliance.ComplianceTrainingPct, 'f', -1, 64)},
	}
	for _, s := range scalars {
		if err := cw.Write([]string{"compliance", s.metric, "", s.value}); err != nil {
			return fmt.Errorf("write compliance scalar: %w", err)
		}
	}
	for _, cell := range d.Compliance.StandardsGrid {
		if err := cw.Write([]string{"compliance", "standardStatus", cell.ID, string(cell.Status)}); err != nil {
			return fmt.Errorf("write standard status: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
