// Package result turns prediction outcomes into the displayed result state.
package result

import (
	"fmt"
	"strings"

	"github.com/abhisek/heartrisk/internal/predict"
)

// Category is the display class applied to the result card.
type Category string

const (
	CategoryLow      Category = "low"
	CategoryModerate Category = "moderate"
	CategoryHigh     Category = "high"
	CategoryNone     Category = "none"
)

// FailureHeadline is the result text shown for any failed submission.
const FailureHeadline = "Error getting prediction"

// ProbabilityLabel prefixes the probability line of a successful result.
const ProbabilityLabel = "Estimated probability of heart disease: "

// State is the textual result currently on screen.
type State struct {
	Category        Category
	ResultText      string
	Probability     float64
	ProbabilityText string
	Tips            []string
}

// Empty reports whether nothing has been rendered yet.
func (s State) Empty() bool {
	return s.Category == "" && s.ResultText == ""
}

// ProbabilityLine is the text for the probability slot. A failed
// submission shows its message alone.
func (s State) ProbabilityLine() string {
	if s.Category == CategoryNone {
		return s.ProbabilityText
	}
	return ProbabilityLabel + s.ProbabilityText
}

// ParseCategory maps a service category to a display class. Matching is
// case-insensitive; anything unrecognised or absent becomes CategoryLow.
func ParseCategory(raw string) Category {
	switch c := Category(strings.ToLower(strings.TrimSpace(raw))); c {
	case CategoryLow, CategoryModerate, CategoryHigh:
		return c
	}
	return CategoryLow
}

// FormatProbability renders p as a percentage with one decimal place.
// Values outside [0,1] are shown as-is.
func FormatProbability(p float64) string {
	return fmt.Sprintf("%.1f%%", p*100)
}

// RenderSuccess builds the state for a successful prediction. The raw
// category text is kept verbatim in ResultText; only the class is
// normalised. Tips replace any previous list.
func RenderSuccess(resp predict.Response) State {
	tips := make([]string, len(resp.Tips))
	copy(tips, resp.Tips)

	return State{
		Category:        ParseCategory(resp.RiskCategory),
		ResultText:      "Risk: " + resp.RiskCategory,
		Probability:     resp.Probability,
		ProbabilityText: FormatProbability(resp.Probability),
		Tips:            tips,
	}
}

// RenderFailure builds the neutral error state. The probability line
// doubles as a status line carrying message.
func RenderFailure(message string) State {
	return State{
		Category:        CategoryNone,
		ResultText:      FailureHeadline,
		ProbabilityText: message,
		Tips:            []string{},
	}
}
