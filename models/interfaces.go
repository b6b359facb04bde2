package models

import "context"

type PredictionClient interface {
	Predict(ctx context.Context, url string, payload SubmissionPayload) (Outcome, error)
}
