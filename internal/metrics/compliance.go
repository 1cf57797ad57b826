// compliance.go holds accreditation scalars and the seeded LCME status grid.
package metrics

import (
	"fmt"
	"math/rand"
)

// StandardStatus classifies one LCME standard element.
type StandardStatus string

const (
	StatusMet            StandardStatus = "Met"
	StatusInProgress     StandardStatus = "In Progress"
	StatusNeedsAttention StandardStatus = "Needs Attention"
)

// Grid dimensions: 12 standards with 8 elements each.
const (
	StandardCount = 12
	ElementCount  = 8
)

// StandardCell is one cell of the compliance map.
type StandardCell struct {
	ID       string         `json:"id" yaml:"id"`
	Standard int            `json:"standard" yaml:"standard"`
	Element  int            `json:"element" yaml:"element"`
	Status   StandardStatus `json:"status" yaml:"status"`
}

// Compliance tracks accreditation posture.
type Compliance struct {
	StandardsMet          int            `json:"lcmeStandardsMet" yaml:"lcmeStandardsMet"`
	TotalStandards        int            `json:"lcmeTotalStandards" yaml:"lcmeTotalStandards"`
	AccreditationStatus   string         `json:"accreditationStatus" yaml:"accreditationStatus"`
	OpenActionItems       int            `json:"openActionItems" yaml:"openActionItems"`
	ISACompletion         float64        `json:"isaCompletion" yaml:"isaCompletion"`
	CQIProjectsActive     int            `json:"cqiProjectsActive" yaml:"cqiProjectsActive"`
	CQIProjectsComplete   int            `json:"cqiProjectsComplete" yaml:"cqiProjectsComplete"`
	ComplianceTrainingPct float64        `json:"complianceTrainingPct" yaml:"complianceTrainingPct"`
	StandardsGrid         []StandardCell `json:"standardsGrid" yaml:"standardsGrid"`
}

// CQICompletionPct is the completed share of all CQI projects as a
// percentage. Both operands are fixed positive constants, so no zero guard
// is needed.
func (c Compliance) CQICompletionPct() float64 {
	return float64(c.CQIProjectsComplete) / float64(c.CQIProjectsActive+c.CQIProjectsComplete) * 100
}

// classifyStandard maps a uniform draw to a status using the fixed
// three-way partition.
func classifyStandard(r float64) StandardStatus {
	switch {
	case r < 0.03:
		return StatusNeedsAttention
	case r < 0.08:
		return StatusInProgress
	default:
		return StatusMet
	}
}

func generateCompliance() Compliance {
	rng := rand.New(rand.NewSource(standardsSeed))
	grid := make([]StandardCell, 0, StandardCount*ElementCount)
	for i := 1; i <= StandardCount; i++ {
		for j := 1; j <= ElementCount; j++ {
			grid = append(grid, StandardCell{
				ID:       fmt.Sprintf("%d.%d", i, j),
				Standard: i,
				Element:  j,
				Status:   classifyStandard(rng.Float64()),
			})
		}
	}
	return Compliance{
		StandardsMet:          93,
		TotalStandards:        95,
		AccreditationStatus:   "Full (Next visit: 2028)",
		OpenActionItems:       4,
		ISACompletion:         97.2,
		CQIProjectsActive:     12,
		CQIProjectsComplete:   8,
		ComplianceTrainingPct: 94.8,
		StandardsGrid:         grid,
	}
}
