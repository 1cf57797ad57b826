// metrics.go defines the fixed axes shared by every synthetic series in the dashboard.

// Package metrics generates the synthetic institutional dataset displayed by
// the dashboard. Every value is either a hardcoded constant or drawn once
// from a fixed-seed random source, so repeated generation is identical.
package metrics

// Random seeds for the two generated tables. Changing either changes the
// demo data everywhere, so they are deliberately package constants.
const (
	satisfactionSeed = 42
	standardsSeed    = 99
)

// AcademicYears is the shared x-axis for every time series.
func AcademicYears() []string {
	return []string{"2019-20", "2020-21", "2021-22", "2022-23", "2023-24", "2024-25"}
}

// Departments lists the clinical departments tracked for satisfaction scores.
func Departments() []string {
	return []string{
		"Internal Medicine", "Surgery", "Pediatrics", "OB-GYN",
		"Psychiatry", "Family Medicine", "Neurology", "Emergency Medicine",
	}
}

// YearCount is the fixed length of every per-year series.
const YearCount = 6
