// dataset.go assembles the four metric tables into the process-wide dataset.
package metrics

// Dataset bundles every table the dashboard renders. It is generated once
// at startup and treated as read-only afterwards.
type Dataset struct {
	Education  Education  `json:"education" yaml:"education"`
	Research   Research   `json:"research" yaml:"research"`
	Workforce  Workforce  `json:"workforce" yaml:"workforce"`
	Compliance Compliance `json:"compliance" yaml:"compliance"`
}

// Generate builds the full synthetic dataset. Calling it again yields an
// identical dataset because every random table uses a fixed seed.
func Generate() Dataset {
	return Dataset{
		Education:  generateEducation(),
		Research:   generateResearch(),
		Workforce:  generateWorkforce(),
		Compliance: generateCompliance(),
	}
}
