// research.go holds the per-year research enterprise series.
package metrics

// Research tracks the funding and scholarly output of the enterprise.
type Research struct {
	TotalFundingM  []float64 `json:"totalFundingM" yaml:"totalFundingM"`
	NIHFundingM    []float64 `json:"nihFundingM" yaml:"nihFundingM"`
	FacultyPubs    []int     `json:"facultyPubs" yaml:"facultyPubs"`
	HIndexMedian   []int     `json:"hIndexMedian" yaml:"hIndexMedian"`
	ClinicalTrials []int     `json:"clinicalTrials" yaml:"clinicalTrials"`
}

// NonNIHFundingM returns the per-year non-NIH share (total minus NIH).
func (r Research) NonNIHFundingM() []float64 {
	out := make([]float64, len(r.TotalFundingM))
	for i, total := range r.TotalFundingM {
		out[i] = total - r.NIHFundingM[i]
	}
	return out
}

func generateResearch() Research {
	return Research{
		TotalFundingM:  []float64{148.2, 155.6, 162.1, 171.8, 185.3, 192.7},
		NIHFundingM:    []float64{98.5, 103.2, 108.7, 115.4, 124.1, 128.9},
		FacultyPubs:    []int{1842, 1923, 2015, 2187, 2341, 2456},
		HIndexMedian:   []int{18, 19, 19, 20, 21, 22},
		ClinicalTrials: []int{245, 262, 278, 301, 324, 338},
	}
}
