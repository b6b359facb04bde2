package form

import "github.com/Alias1177/heartform/models"

// BuildPayload collects every named, non-submit element. Values are parsed
// as floating point with no validation; empty or non-numeric values stay NaN.
func BuildPayload(elements []Element) models.SubmissionPayload {
	var payload models.SubmissionPayload
	for _, el := range elements {
		if el.Name == "" || el.Type == TypeSubmit {
			continue
		}
		payload.Set(el.Name, models.ParseFloat(el.Value))
	}
	return payload
}
