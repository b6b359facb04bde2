package models

import (
	"bytes"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FieldNames lists the clinical inputs in form order
var FieldNames = []string{
	"age", "sex", "cp", "trestbps", "chol", "fbs", "restecg",
	"thalach", "exang", "oldpeak", "slope", "ca", "thal",
}

// Field is a single named value collected from the form
type Field struct {
	Name  string
	Value float64
}

// SubmissionPayload is the request body sent to the prediction endpoint.
// Values keep form order so the encoded body is stable.
type SubmissionPayload struct {
	Fields []Field
}

// Set adds or replaces a value
func (p *SubmissionPayload) Set(name string, value float64) {
	for i := range p.Fields {
		if p.Fields[i].Name == name {
			p.Fields[i].Value = value
			return
		}
	}
	p.Fields = append(p.Fields, Field{Name: name, Value: value})
}

// Get returns the value for name
func (p SubmissionPayload) Get(name string) (float64, bool) {
	for _, f := range p.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return 0, false
}

// Len returns the number of entries
func (p SubmissionPayload) Len() int {
	return len(p.Fields)
}

// Map returns the payload as a plain map
func (p SubmissionPayload) Map() map[string]float64 {
	m := make(map[string]float64, len(p.Fields))
	for _, f := range p.Fields {
		m[f.Name] = f.Value
	}
	return m
}

// MarshalJSON writes non-finite values as null, the same way a browser encodes NaN
func (p SubmissionPayload) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range p.Fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(strconv.Quote(f.Name))
		buf.WriteByte(':')
		if math.IsNaN(f.Value) || math.IsInf(f.Value, 0) {
			buf.WriteString("null")
			continue
		}
		buf.WriteString(strconv.FormatFloat(f.Value, 'g', -1, 64))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

var leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)

// ParseFloat parses the leading decimal literal of s and returns NaN when there is none.
// "12abc" gives 12, "" and "abc" give NaN.
func ParseFloat(s string) float64 {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "Infinity"), strings.HasPrefix(s, "+Infinity"):
		return math.Inf(1)
	case strings.HasPrefix(s, "-Infinity"):
		return math.Inf(-1)
	}

	lit := leadingNumber.FindString(s)
	if lit == "" {
		return math.NaN()
	}
	// out of range literals come back as ±Inf along with a range error
	v, _ := strconv.ParseFloat(lit, 64)
	return v
}
