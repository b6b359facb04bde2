// Package ui renders the heart check form in the terminal.
package ui

import (
	"github.com/Alias1177/heartform/internal/form"
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	Foreground  = lipgloss.Color("#f2f2f2")
	Muted       = lipgloss.Color("#6b7280")
	Primary     = lipgloss.Color("#2196F3")
	Destructive = lipgloss.Color("#ff6b6b")
	Success     = lipgloss.Color("#8BC34A")
	Warning     = lipgloss.Color("#FFC107")
)

// Styles groups every style the form view uses
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	Field        lipgloss.Style
	FieldInvalid lipgloss.Style
	Hint         lipgloss.Style
	Button       lipgloss.Style
	ButtonFocus  lipgloss.Style
	ButtonBusy   lipgloss.Style
	Panel        map[form.ResultClass]lipgloss.Style
	Footer       lipgloss.Style
}

// DefaultStyles returns the standard theme
func DefaultStyles() Styles {
	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(64)

	return Styles{
		Title: lipgloss.NewStyle().Bold(true).Foreground(Primary).MarginBottom(1),
		Label: lipgloss.NewStyle().Width(38).Foreground(Foreground),
		Field: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(Muted).
			PaddingLeft(1),
		FieldInvalid: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderLeft(true).
			BorderForeground(Destructive).
			PaddingLeft(1),
		Hint:        lipgloss.NewStyle().Foreground(Destructive).Italic(true),
		Button:      lipgloss.NewStyle().Padding(0, 2).Foreground(Foreground).Background(Muted),
		ButtonFocus: lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(Foreground).Background(Primary),
		ButtonBusy:  lipgloss.NewStyle().Padding(0, 2).Faint(true).Foreground(Foreground).Background(Muted),
		Panel: map[form.ResultClass]lipgloss.Style{
			form.ClassDefault: panel.BorderForeground(Muted),
			form.ClassSuccess: panel.BorderForeground(Success).Foreground(Success),
			form.ClassWarning: panel.BorderForeground(Warning).Foreground(Warning),
			form.ClassDanger:  panel.BorderForeground(Destructive).Foreground(Destructive),
		},
		Footer: lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
	}
}

var icons = map[form.Icon]string{
	form.IconLoading: "…",
	form.IconInfo:    "ℹ",
	form.IconAlert:   "⚠",
	form.IconCaution: "!",
	form.IconCheck:   "✔",
	form.IconError:   "✘",
	form.IconOffline: "⚡",
}

// Glyph returns the terminal glyph for an icon
func Glyph(icon form.Icon) string {
	return icons[icon]
}

// Labels are the human readable names of the clinical fields
var Labels = map[string]string{
	"age":      "Age (years)",
	"sex":      "Sex (1 = male, 0 = female)",
	"cp":       "Chest pain type (0-3)",
	"trestbps": "Resting blood pressure (mm Hg)",
	"chol":     "Serum cholesterol (mg/dl)",
	"fbs":      "Fasting blood sugar > 120 mg/dl (1/0)",
	"restecg":  "Resting ECG results (0-2)",
	"thalach":  "Maximum heart rate achieved",
	"exang":    "Exercise induced angina (1/0)",
	"oldpeak":  "ST depression (oldpeak)",
	"slope":    "Slope of peak exercise ST (0-2)",
	"ca":       "Major vessels colored (0-3)",
	"thal":     "Thalassemia (1-3)",
}
