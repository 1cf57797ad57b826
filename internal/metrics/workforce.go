// workforce.go holds faculty series plus the seeded department satisfaction draw.
package metrics

import (
	"math"
	"math/rand"
	"sort"
)

// Workforce tracks faculty composition and stability.
type Workforce struct {
	TotalFaculty      []int     `json:"totalFaculty" yaml:"totalFaculty"`
	PctFemaleFaculty  []float64 `json:"pctFemaleFaculty" yaml:"pctFemaleFaculty"`
	PctURMFaculty     []float64 `json:"pctUrmFaculty" yaml:"pctUrmFaculty"`
	VoluntaryTurnover []float64 `json:"voluntaryTurnover" yaml:"voluntaryTurnover"`
	TimeToPromotionYr []float64 `json:"timeToPromotionYr" yaml:"timeToPromotionYr"`
	// DeptSatisfaction maps department name to a 1-5 score drawn once from
	// the fixed-seed source.
	DeptSatisfaction map[string]float64 `json:"deptSatisfaction" yaml:"deptSatisfaction"`
}

// DeptScore pairs a department with its satisfaction score.
type DeptScore struct {
	Department string  `json:"department" yaml:"department"`
	Score      float64 `json:"score" yaml:"score"`
}

// LowScoreThreshold marks departments needing leadership attention.
const LowScoreThreshold = 3.5

// RankedDepartments returns the satisfaction scores sorted ascending.
// Ties keep the canonical department order so the ranking is stable.
func (w Workforce) RankedDepartments() []DeptScore {
	out := make([]DeptScore, 0, len(w.DeptSatisfaction))
	for _, dept := range Departments() {
		if score, ok := w.DeptSatisfaction[dept]; ok {
			out = append(out, DeptScore{Department: dept, Score: score})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	return out
}

func generateWorkforce() Workforce {
	rng := rand.New(rand.NewSource(satisfactionSeed))
	satisfaction := make(map[string]float64, len(Departments()))
	for _, dept := range Departments() {
		score := 3.2 + rng.Float64()*1.2
		satisfaction[dept] = math.Round(score*100) / 100
	}
	return Workforce{
		TotalFaculty:      []int{685, 698, 712, 725, 741, 758},
		PctFemaleFaculty:  []float64{38.2, 39.1, 40.5, 41.8, 43.2, 44.1},
		PctURMFaculty:     []float64{12.5, 13.1, 13.8, 14.5, 15.2, 15.8},
		VoluntaryTurnover: []float64{8.2, 7.8, 9.1, 7.5, 6.9, 7.1},
		TimeToPromotionYr: []float64{6.8, 6.5, 6.7, 6.3, 6.1, 5.9},
		DeptSatisfaction:  satisfaction,
	}
}
