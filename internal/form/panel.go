package form

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/Alias1177/heartform/models"
)

// Submit control labels
const (
	SubmitLabel = "Analyze Heart Health"
	BusyLabel   = "Analyzing..."
)

// ResultClass selects the panel styling
type ResultClass string

const (
	ClassDefault ResultClass = "result-default"
	ClassSuccess ResultClass = "result-success"
	ClassWarning ResultClass = "result-warning"
	ClassDanger  ResultClass = "result-danger"
)

// Icon names the glyph shown next to the headline
type Icon string

const (
	IconNone    Icon = ""
	IconLoading Icon = "loading"
	IconInfo    Icon = "info-circle"
	IconAlert   Icon = "exclamation-triangle"
	IconCaution Icon = "exclamation-circle"
	IconCheck   Icon = "check-circle"
	IconError   Icon = "times-circle"
	IconOffline Icon = "wifi"
)

const (
	consultAdvice = "Please consult with a healthcare professional for further evaluation."
	healthyAdvice = "Continue maintaining a healthy lifestyle!"

	connectionHeadline = "Connection Error"
	connectionDetail   = "Cannot connect to the prediction server. Please make sure the backend is running."
)

// Panel is the content of the result region
type Panel struct {
	Class    ResultClass
	Icon     Icon
	Headline string
	Detail   string
	Advice   string
}

// Text flattens the panel into plain lines
func (p Panel) Text() string {
	lines := make([]string, 0, 3)
	for _, s := range []string{p.Headline, p.Detail, p.Advice} {
		if s != "" {
			lines = append(lines, s)
		}
	}
	return strings.Join(lines, "\n")
}

// IsError reports whether the panel shows a failure
func (p Panel) IsError() bool {
	return p.Icon == IconError || p.Icon == IconOffline
}

// IdlePanel is shown before the first submission
func IdlePanel() Panel {
	return Panel{
		Class:    ClassDefault,
		Icon:     IconInfo,
		Headline: "Fill in the form and run the analysis.",
	}
}

// ProcessingPanel is shown while a request is in flight
func ProcessingPanel() Panel {
	return Panel{
		Class:    ClassDefault,
		Icon:     IconLoading,
		Headline: "Processing your data...",
	}
}

// PredictionPanel renders a successful prediction
func PredictionPanel(p models.Prediction) Panel {
	panel := Panel{
		Headline: p.Message,
		Detail:   "Risk Probability: " + FormatProbability(p.Probability),
	}

	switch p.Risk() {
	case models.RiskHigh:
		panel.Class, panel.Icon = ClassDanger, IconAlert
	case models.RiskModerate:
		panel.Class, panel.Icon = ClassWarning, IconCaution
	default:
		panel.Class, panel.Icon = ClassSuccess, IconCheck
	}

	if p.Positive() {
		panel.Advice = consultAdvice
	} else {
		panel.Advice = healthyAdvice
	}
	return panel
}

// RejectionPanel renders a non-2xx answer from the service
func RejectionPanel(r models.Rejection) Panel {
	msg := r.Error
	if msg == "" {
		msg = http.StatusText(r.StatusCode)
	}
	return Panel{
		Class:    ClassDanger,
		Icon:     IconError,
		Headline: "Error: " + msg,
	}
}

// ConnectionErrorPanel is shown when the service could not be reached or
// answered with something that is not JSON.
func ConnectionErrorPanel() Panel {
	return Panel{
		Class:    ClassDanger,
		Icon:     IconOffline,
		Headline: connectionHeadline,
		Detail:   connectionDetail,
	}
}

// FormatProbability renders p as a percentage with one decimal, e.g. "85.0%".
// Ties round up.
func FormatProbability(p float64) string {
	tenths := math.Floor(p*1000+0.5) / 10
	return strconv.FormatFloat(tenths, 'f', 1, 64) + "%"
}
