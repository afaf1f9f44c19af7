package scoring

import "github.com/vfg2006/profitability-api/internal/domain"

// Policy define os multiplicadores de cada vertical. Os pontos brutos de cada
// vertical somam no máximo 25, e os multiplicadores mantêm o total em 100.
type Policy struct {
	Name         string
	Engagement   float64
	Results      float64
	Relationship float64
	Surveys      float64
}

var (
	StandardPolicy = Policy{
		Name:         "standard",
		Engagement:   1.4,
		Results:      1.0,
		Relationship: 1.0,
		Surveys:      0.6,
	}

	// ResultsExcludedPolicy zera resultados e redistribui os 25 pontos:
	// relacionamento e engajamento chegam a 40, pesquisas a 20
	ResultsExcludedPolicy = Policy{
		Name:         "results_excluded",
		Engagement:   1.6,
		Results:      0,
		Relationship: 1.6,
		Surveys:      0.8,
	}
)

// IncludesResults indica se a vertical de resultados participa da nota
func (p Policy) IncludesResults() bool {
	return p.Results > 0
}

// SelectPolicy escolhe a política uma única vez por cálculo
func SelectPolicy(input *domain.HealthInput) Policy {
	if input.ExpectsResults() {
		return StandardPolicy
	}
	return ResultsExcludedPolicy
}
