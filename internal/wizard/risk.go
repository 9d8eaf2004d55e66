package wizard

import (
	"github.com/epeers/portfolio-wizard/internal/models"
)

const (
	// MinRiskAnswers is the number of distinct answers needed before a profile is derived
	MinRiskAnswers = 5
	// MinRiskScore and MaxRiskScore bound a single answer
	MinRiskScore = 1
	MaxRiskScore = 5
)

var profileDescriptions = map[models.RiskProfile]string{
	models.RiskProfileConservative: "Seeks to preserve capital with minimal exposure to volatility. Favors safer, stable investments and puts capital protection ahead of returns.",
	models.RiskProfileModerate:     "Seeks modest growth with limited risk. Combines stable investments with a few controlled growth opportunities.",
	models.RiskProfileBalanced:     "Seeks a balance between growth and income. Spreads investments between stable options and higher-growth potential.",
	models.RiskProfileGrowth:       "Prioritizes long-term growth and tolerates higher volatility. Holds a larger share of investments with significant appreciation potential.",
	models.RiskProfileAggressive:   "Seeks to maximize long-term growth while accepting high volatility. Concentrates on high-growth, higher-risk sectors.",
}

// ProfileFromAnswers derives the risk profile from a set of answers.
// It returns RiskProfileUndetermined while fewer than MinRiskAnswers questions are answered.
func ProfileFromAnswers(answers map[string]int) models.RiskProfile {
	if len(answers) < MinRiskAnswers {
		return models.RiskProfileUndetermined
	}

	sum := 0
	for _, score := range answers {
		sum += score
	}
	mean := float64(sum) / float64(len(answers))

	switch {
	case mean <= 1.5:
		return models.RiskProfileConservative
	case mean <= 2.5:
		return models.RiskProfileModerate
	case mean <= 3.5:
		return models.RiskProfileBalanced
	case mean <= 4.5:
		return models.RiskProfileGrowth
	default:
		return models.RiskProfileAggressive
	}
}

// DescribeProfile returns the explanatory text shown next to a profile
func DescribeProfile(p models.RiskProfile) string {
	return profileDescriptions[p]
}

// RecordAnswer stores or overwrites the score for one question and recomputes the profile
func (e *Engine) RecordAnswer(s models.WizardState, questionID string, score int) (models.WizardState, *Rejection) {
	if score < MinRiskScore || score > MaxRiskScore {
		return s, reject(models.WarnInvalidInput, "score %d outside %d..%d", score, MinRiskScore, MaxRiskScore)
	}
	if _, ok := e.catalog.Question(questionID); !ok {
		return s, reject(models.WarnUnknownQuestion, "unknown question %q", questionID)
	}

	next := Clone(s)
	next.RiskAnswers[questionID] = score
	next.RiskProfile = ProfileFromAnswers(next.RiskAnswers)
	return e.settle(next), nil
}
