package models

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		isNaN bool
	}{
		{name: "integer", input: "63", want: 63},
		{name: "decimal", input: "2.3", want: 2.3},
		{name: "surrounding spaces", input: "  145 ", want: 145},
		{name: "leading dot", input: ".5", want: 0.5},
		{name: "trailing dot", input: "5.", want: 5},
		{name: "exponent", input: "1e2", want: 100},
		{name: "negative", input: "-1.5", want: -1.5},
		{name: "numeric prefix", input: "12abc", want: 12},
		{name: "dangling exponent", input: "3e", want: 3},
		{name: "empty", input: "", isNaN: true},
		{name: "letters", input: "abc", isNaN: true},
		{name: "sign only", input: "-", isNaN: true},
		{name: "go nan literal", input: "NaN", isNaN: true},
		{name: "hex is not decimal", input: "0x10", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseFloat(tt.input)
			if tt.isNaN {
				assert.True(t, math.IsNaN(got), "ParseFloat(%q) = %v, want NaN", tt.input, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}

	assert.True(t, math.IsInf(ParseFloat("Infinity"), 1))
	assert.True(t, math.IsInf(ParseFloat("-Infinity"), -1))
}

func TestSubmissionPayloadMarshalJSON(t *testing.T) {
	var p SubmissionPayload
	p.Set("age", 63)
	p.Set("sex", 1)
	p.Set("chol", math.NaN())
	p.Set("oldpeak", 2.3)
	p.Set("ca", math.Inf(1))

	body, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `{"age":63,"sex":1,"chol":null,"oldpeak":2.3,"ca":null}`, string(body))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Len(t, decoded, 5)
	assert.Nil(t, decoded["chol"])
}

func TestSubmissionPayloadSetReplaces(t *testing.T) {
	var p SubmissionPayload
	p.Set("age", 40)
	p.Set("age", 41)

	require.Equal(t, 1, p.Len())
	v, ok := p.Get("age")
	require.True(t, ok)
	assert.Equal(t, 41.0, v)

	_, ok = p.Get("sex")
	assert.False(t, ok)
	assert.Equal(t, map[string]float64{"age": 41}, p.Map())
}

func TestPredictionRisk(t *testing.T) {
	tests := []struct {
		name string
		p    Prediction
		want RiskLevel
	}{
		{name: "positive above threshold", p: Prediction{Prediction: 1, Probability: 0.85}, want: RiskHigh},
		{name: "positive at threshold", p: Prediction{Prediction: 1, Probability: 0.7}, want: RiskModerate},
		{name: "positive below threshold", p: Prediction{Prediction: 1, Probability: 0.4}, want: RiskModerate},
		{name: "negative", p: Prediction{Prediction: 0, Probability: 0.1}, want: RiskHealthy},
		{name: "negative with high probability", p: Prediction{Prediction: 0, Probability: 0.9}, want: RiskHealthy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Risk())
		})
	}
}
