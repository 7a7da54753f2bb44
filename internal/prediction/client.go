package prediction

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"temperature_prediction/internal/models"
)

// Predictor resolves a date to a predicted temperature in °C.
type Predictor interface {
	Predict(ctx context.Context, date time.Time) (float64, error)
}

// Client posts dates to a prediction endpoint.
type Client struct {
	endpoint string
	http     *http.Client
}

var _ Predictor = (*Client)(nil)

// Option customizes a Client.
type Option func(*Client)

// WithTimeout bounds each call; zero keeps the transport default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.http
			hc.Timeout = d
			c.http = &hc
		}
	}
}

// NewClient returns a client for the given endpoint URL. The default transport has no timeout.
func NewClient(endpoint string, opts ...Option) *Client {
	c := &Client{endpoint: endpoint, http: &http.Client{}}
	for _, o := range opts {
		o(c)
	}
	return c
}

type predictionResponse struct {
	Temperature *float64 `json:"temperature"`
}

// Predict issues exactly one POST for date and returns the temperature field unmodified.
// All failures are *Error.
func (c *Client) Predict(ctx context.Context, date time.Time) (float64, error) {
	body, err := json.Marshal(models.NewPredictionRequest(date))
	if err != nil {
		return 0, &Error{Kind: KindTransport, Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, &Error{Kind: KindTransport, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, &Error{Kind: KindTransport, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, &Error{Kind: KindTransport, Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, &Error{Kind: KindProtocol, StatusCode: resp.StatusCode}
	}

	return decodeTemperature(raw)
}

// decodeTemperature accepts only a JSON object with a numeric temperature.
func decodeTemperature(raw []byte) (float64, error) {
	var pr predictionResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return 0, &Error{Kind: KindDecode, Err: fmt.Errorf("parse response: %w", err)}
	}
	if pr.Temperature == nil {
		return 0, &Error{Kind: KindDecode, Err: errMissingTemperature}
	}
	return *pr.Temperature, nil
}

// Fetch is fetchPrediction: one Predict call folded into a settled result.
func Fetch(ctx context.Context, p Predictor, date time.Time) models.PredictionResult {
	return ToResult(p.Predict(ctx, date))
}

// ToResult maps a Predict outcome to Success or a Failure carrying UserMessage.
func ToResult(temp float64, err error) models.PredictionResult {
	if err == nil {
		return models.Success(temp)
	}
	kind := KindOf(err)
	if kind == "" {
		kind = KindTransport
	}
	return models.Failure(UserMessage, string(kind))
}
