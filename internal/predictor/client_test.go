package predictor

import (
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Alias1177/heartform/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayload() models.SubmissionPayload {
	var p models.SubmissionPayload
	values := []float64{63, 1, 3, 145, 233, 1, 0, 150, 0, 2.3, 0, 0, 1}
	for i, name := range models.FieldNames {
		p.Set(name, values[i])
	}
	return p
}

func TestPredictSuccess(t *testing.T) {
	var got map[string]any
	var header http.Header
	var method string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		header = r.Header.Clone()
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"prediction":1,"probability":0.853,"message":"Heart disease detected"}`))
	}))
	defer srv.Close()

	c := NewClient(ClientOptions{})
	outcome, err := c.Predict(context.Background(), srv.URL+"/predict", samplePayload())
	require.NoError(t, err)

	prediction, ok := outcome.(models.Prediction)
	require.True(t, ok, "expected models.Prediction, got %T", outcome)
	assert.Equal(t, 1.0, prediction.Prediction)
	assert.Equal(t, 0.853, prediction.Probability)
	assert.Equal(t, "Heart disease detected", prediction.Message)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "application/json", header.Get("Content-Type"))
	assert.Equal(t, "application/json", header.Get("Accept"))
	assert.NotEmpty(t, header.Get("X-Request-ID"))
	assert.Len(t, got, 13)
	assert.Equal(t, 2.3, got["oldpeak"])
}

func TestPredictRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Missing feature in input"}`))
	}))
	defer srv.Close()

	c := NewClient(ClientOptions{})
	outcome, err := c.Predict(context.Background(), srv.URL, samplePayload())
	require.NoError(t, err)

	rejection, ok := outcome.(models.Rejection)
	require.True(t, ok, "expected models.Rejection, got %T", outcome)
	assert.Equal(t, http.StatusBadRequest, rejection.StatusCode)
	assert.Equal(t, "Missing feature in input", rejection.Error)
}

func TestPredictSendsNaNAsNull(t *testing.T) {
	var raw string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		raw = string(body)
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"Invalid input type"}`))
	}))
	defer srv.Close()

	p := samplePayload()
	p.Set("chol", math.NaN())

	c := NewClient(ClientOptions{})
	outcome, err := c.Predict(context.Background(), srv.URL, p)
	require.NoError(t, err)
	assert.IsType(t, models.Rejection{}, outcome)
	assert.Contains(t, raw, `"chol":null`)
}

func TestPredictDecodeFailure(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "html on success", status: http.StatusOK, body: "<html>ok</html>"},
		{name: "html on error", status: http.StatusBadGateway, body: "<html>bad gateway</html>"},
		{name: "empty body", status: http.StatusOK, body: ""},
		{name: "null on success", status: http.StatusOK, body: "null"},
		{name: "null on error", status: http.StatusBadRequest, body: "null"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(ClientOptions{})
			outcome, err := c.Predict(context.Background(), srv.URL, samplePayload())
			require.Error(t, err)
			assert.Nil(t, outcome)
			assert.Contains(t, err.Error(), "parsing JSON")
		})
	}
}

func TestPredictTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(ClientOptions{RequestTimeout: time.Second})
	_, err := c.Predict(context.Background(), url, samplePayload())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP request failed")
}

func TestPredictDoesNotRetry(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"error":"warming up"}`))
	}))
	defer srv.Close()

	c := NewClient(ClientOptions{})
	_, err := c.Predict(context.Background(), srv.URL, samplePayload())
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}
