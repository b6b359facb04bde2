package form

// Range is the accepted interval for a field. When Allowed is set only those
// exact values pass.
type Range struct {
	Min, Max float64
	Allowed  []float64
}

// Contains reports whether v is acceptable
func (r Range) Contains(v float64) bool {
	if len(r.Allowed) > 0 {
		for _, a := range r.Allowed {
			if v == a {
				return true
			}
		}
		return false
	}
	return v >= r.Min && v <= r.Max
}

var binary = Range{Min: 0, Max: 1, Allowed: []float64{0, 1}}

// Ranges holds the inclusive bounds per clinical field
var Ranges = map[string]Range{
	"age":      {Min: 1, Max: 120},
	"sex":      binary,
	"cp":       {Min: 0, Max: 3},
	"trestbps": {Min: 80, Max: 250},
	"chol":     {Min: 100, Max: 600},
	"fbs":      binary,
	"restecg":  {Min: 0, Max: 2},
	"thalach":  {Min: 60, Max: 220},
	"exang":    binary,
	"oldpeak":  {Min: 0, Max: 10},
	"slope":    {Min: 0, Max: 2},
	"ca":       {Min: 0, Max: 3},
	"thal":     {Min: 1, Max: 3},
}

// InRange checks v against the table; unknown fields always pass
func InRange(name string, v float64) bool {
	r, ok := Ranges[name]
	if !ok {
		return true
	}
	return r.Contains(v)
}
