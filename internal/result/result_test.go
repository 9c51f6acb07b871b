package result

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/heartrisk/internal/predict"
)

func TestRenderSuccess_Scenario(t *testing.T) {
	st := RenderSuccess(predict.Response{
		RiskCategory: "High",
		Probability:  0.82,
		Tips:         []string{"Consult a cardiologist"},
	})

	assert.Equal(t, CategoryHigh, st.Category)
	assert.Equal(t, "Risk: High", st.ResultText)
	assert.Equal(t, "82.0%", st.ProbabilityText)
	assert.Equal(t, 0.82, st.Probability)
	assert.Equal(t, []string{"Consult a cardiologist"}, st.Tips)
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		raw  string
		want Category
	}{
		{"low", CategoryLow},
		{"Low", CategoryLow},
		{"MODERATE", CategoryModerate},
		{"High", CategoryHigh},
		{"", CategoryLow},
		{"severe", CategoryLow},
		{"none", CategoryLow},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseCategory(tt.raw), "raw %q", tt.raw)
	}
}

func TestRenderSuccess_UnknownCategoryKeepsRawText(t *testing.T) {
	st := RenderSuccess(predict.Response{RiskCategory: "Severe", Probability: 0.5})

	assert.Equal(t, CategoryLow, st.Category)
	assert.Equal(t, "Risk: Severe", st.ResultText)
}

func TestFormatProbability(t *testing.T) {
	tests := []struct {
		p    float64
		want string
	}{
		{0, "0.0%"},
		{0.82, "82.0%"},
		{0.1234, "12.3%"},
		{1, "100.0%"},
		{1.5, "150.0%"},
		{-0.2, "-20.0%"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatProbability(tt.p))
	}
}

func TestRenderSuccess_TipsCopiedInOrder(t *testing.T) {
	tips := []string{"b", "a", "c"}
	st := RenderSuccess(predict.Response{Probability: 0.3, Tips: tips})

	assert.Equal(t, []string{"b", "a", "c"}, st.Tips)

	tips[0] = "mutated"
	assert.Equal(t, "b", st.Tips[0], "state must not alias the response slice")
}

func TestRenderSuccess_Idempotent(t *testing.T) {
	resp := predict.Response{RiskCategory: "Moderate", Probability: 0.4, Tips: []string{"x", "y"}}

	assert.Equal(t, RenderSuccess(resp), RenderSuccess(resp))
}

func TestRenderFailure(t *testing.T) {
	st := RenderFailure("model unavailable")

	assert.Equal(t, CategoryNone, st.Category)
	assert.Equal(t, FailureHeadline, st.ResultText)
	assert.Equal(t, "model unavailable", st.ProbabilityText)
	assert.Empty(t, st.Tips)
	assert.False(t, st.Empty())
}

func TestStateEmpty(t *testing.T) {
	assert.True(t, State{}.Empty())
}

func TestProbabilityLine(t *testing.T) {
	ok := RenderSuccess(predict.Response{RiskCategory: "High", Probability: 0.82})
	assert.Equal(t, "Estimated probability of heart disease: 82.0%", ok.ProbabilityLine())

	failed := RenderFailure("Model unavailable")
	assert.Equal(t, "Model unavailable", failed.ProbabilityLine())
}
