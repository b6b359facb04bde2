package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	httpClient "github.com/Alias1177/heartform/internal/platform/http"
	"github.com/Alias1177/heartform/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var errNullBody = errors.New("response body is null")

// Client talks to the heart disease prediction service
type Client struct {
	httpClient *httpClient.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new prediction client
type ClientOptions struct {
	RequestTimeout time.Duration
	RequestsPerSec int
	// WaitTimeout is the default limit for WaitReady
	WaitTimeout time.Duration
}

// NewClient creates a new prediction client
func NewClient(options ClientOptions) *Client {
	return &Client{
		httpClient: httpClient.NewClient(httpClient.ClientOptions{
			Timeout:        options.RequestTimeout,
			RequestsPerSec: options.RequestsPerSec,
			MaxWaitTime:    options.WaitTimeout,
		}),
		logger: log.With().Str("component", "predictor_client").Logger(),
	}
}

// NewClientFromConfig builds a client from application config
func NewClientFromConfig(cfg *models.Config) *Client {
	return NewClient(ClientOptions{
		RequestTimeout: time.Duration(cfg.RequestTimeout) * time.Second,
		RequestsPerSec: cfg.RequestsPerSec,
		WaitTimeout:    time.Duration(cfg.BackendWaitTimeout) * time.Second,
	})
}

// Predict posts payload to url exactly once. The body is decoded whatever
// the status: 2xx yields a models.Prediction, anything else a
// models.Rejection. Transport and decode failures are returned as errors.
func (c *Client) Predict(ctx context.Context, url string, payload models.SubmissionPayload) (models.Outcome, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	logger := c.logger.With().Str("request_id", requestID).Str("url", url).Logger()
	logger.Debug().RawJSON("payload", body).Msg("Sending prediction request")

	resp, err := c.httpClient.Do(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var rejection *models.Rejection
		if err := decodeObject(respBody, &rejection); err != nil {
			logger.Error().Err(err).Int("status", resp.StatusCode).Str("response", string(respBody)).Msg("Error parsing JSON")
			return nil, err
		}
		rejection.StatusCode = resp.StatusCode
		logger.Warn().Int("status", resp.StatusCode).Str("error", rejection.Error).Msg("Prediction rejected")
		return *rejection, nil
	}

	var prediction *models.Prediction
	if err := decodeObject(respBody, &prediction); err != nil {
		logger.Error().Err(err).Str("response", string(respBody)).Msg("Error parsing JSON")
		return nil, err
	}

	logger.Debug().
		Float64("prediction", prediction.Prediction).
		Float64("probability", prediction.Probability).
		Msg("Received prediction")
	return *prediction, nil
}

// decodeObject unmarshals body into *dst and rejects a JSON null
func decodeObject[T any](body []byte, dst **T) error {
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("parsing JSON: %w", err)
	}
	if *dst == nil {
		return fmt.Errorf("parsing JSON: %w", errNullBody)
	}
	return nil
}

// WaitReady blocks until the backend at baseURL answers with a 2xx status.
// A zero maxWait uses the client's WaitTimeout.
func (c *Client) WaitReady(ctx context.Context, baseURL string, maxWait time.Duration) error {
	return c.httpClient.WaitReady(ctx, baseURL, maxWait)
}
