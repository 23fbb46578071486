package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/yanqian/sunsafe/internal/domain/lookup"
	apperrors "github.com/yanqian/sunsafe/pkg/errors"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultMaxAttempts = 3
	defaultBackoff     = 150 * time.Millisecond
	errorBodyLimit     = 4 << 10
)

// StatusError describes a non-2xx response from the API.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status=%d body=%s", e.StatusCode, e.Body)
}

// Client issues lookup requests against a sunsafe API deployment.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	logger      *slog.Logger
	validate    *validator.Validate
	maxAttempts int
	backoff     time.Duration
	sleep       func(ctx context.Context, d time.Duration) error
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds every request attempt. A client passed to WithHTTPClient
// is copied, not modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			hc := *c.httpClient
			hc.Timeout = d
			c.httpClient = &hc
		}
	}
}

// WithLogger sets the logger used for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRetry configures retries for idempotent (GET) requests.
func WithRetry(maxAttempts int, baseBackoff time.Duration) Option {
	return func(c *Client) {
		if maxAttempts > 0 {
			c.maxAttempts = maxAttempts
		}
		if baseBackoff >= 0 {
			c.backoff = baseBackoff
		}
	}
}

// New builds a client. An empty baseURL is accepted; every call then fails
// with a config_error before touching the network.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:     strings.TrimSpace(baseURL),
		httpClient:  &http.Client{Timeout: defaultTimeout},
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		validate:    validator.New(),
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultBackoff,
		sleep:       sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("component", "apiclient")
	return c
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// NormalizeURL joins the configured base URL with endpoint.
func (c *Client) NormalizeURL(endpoint string) (string, error) {
	return NormalizeURL(c.baseURL, endpoint)
}

// CancerData fetches the incidence series for a sex and age bracket.
func (c *Client) CancerData(ctx context.Context, q CancerQuery) ([]lookup.YearCount, error) {
	if err := c.check(q); err != nil {
		return nil, err
	}
	var out []lookup.YearCount
	if err := c.do(ctx, http.MethodPost, EndpointCancerData, nil, q, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// UVData fetches the hourly UV series of a postcode.
func (c *Client) UVData(ctx context.Context, q UVQuery) ([]lookup.HourlyUV, error) {
	q.Postcode = lookup.Postcode(strings.TrimSpace(string(q.Postcode)))
	if err := c.check(q); err != nil {
		return nil, err
	}
	var out []lookup.HourlyUV
	if err := c.do(ctx, http.MethodPost, EndpointUVData, nil, q, &out); err != nil {
		return nil, err
	}
	return nonNil(out), nil
}

// SkinToneRecommendation fetches the advice text for a skin tone.
func (c *Client) SkinToneRecommendation(ctx context.Context, q SkinToneQuery) (string, error) {
	if err := c.check(q); err != nil {
		return "", err
	}
	var out lookup.RecommendationResponse
	if err := c.do(ctx, http.MethodPost, EndpointSkinToneRecommendation, nil, q, &out); err != nil {
		return "", err
	}
	return out.Recommendation, nil
}

// ClothingRecommendation asks the API what to wear for the given conditions.
func (c *Client) ClothingRecommendation(ctx context.Context, q ClothingQuery) (lookup.ClothingResponse, error) {
	if err := c.check(q); err != nil {
		return lookup.ClothingResponse{}, err
	}
	params := url.Values{}
	params.Set("uvIndex", formatFloat(*q.UVIndex))
	params.Set("temperature", formatFloat(*q.Temperature))

	var out lookup.ClothingResponse
	if err := c.do(ctx, http.MethodGet, EndpointClothingRecommendation, params, nil, &out); err != nil {
		return lookup.ClothingResponse{}, err
	}
	return out, nil
}

// SunscreenRecommendation asks the API for sunscreen advice.
func (c *Client) SunscreenRecommendation(ctx context.Context, q SunscreenQuery) (lookup.SunscreenResponse, error) {
	if err := c.check(q); err != nil {
		return lookup.SunscreenResponse{}, err
	}
	params := url.Values{}
	params.Set("skinType", strconv.Itoa(q.SkinType))
	params.Set("uvIndex", formatFloat(*q.UVIndex))

	var out lookup.SunscreenResponse
	if err := c.do(ctx, http.MethodGet, EndpointSunscreenRecommendation, params, nil, &out); err != nil {
		return lookup.SunscreenResponse{}, err
	}
	return out, nil
}

// Recommendation asks for sunscreen advice sized to the postcode's peak UV.
func (c *Client) Recommendation(ctx context.Context, q RecommendationQuery) (lookup.PersonalRecommendation, error) {
	q.Postcode = lookup.Postcode(strings.TrimSpace(string(q.Postcode)))
	if err := c.check(q); err != nil {
		return lookup.PersonalRecommendation{}, err
	}
	params := url.Values{}
	params.Set("skinTone", string(q.SkinTone))
	params.Set("postcode", string(q.Postcode))

	var out lookup.PersonalRecommendation
	if err := c.do(ctx, http.MethodGet, EndpointRecommendation, params, nil, &out); err != nil {
		return lookup.PersonalRecommendation{}, err
	}
	return out, nil
}

// check rejects calls that cannot succeed before any request is built.
func (c *Client) check(q any) error {
	if _, err := c.NormalizeURL("/"); err != nil {
		return err
	}
	if err := c.validate.Struct(q); err != nil {
		return apperrors.Wrap(CodeInvalidArgument, "request is missing required keys", err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, params url.Values, body any, out any) error {
	target, err := c.NormalizeURL(endpoint)
	if err != nil {
		return err
	}
	if len(params) > 0 {
		target += "?" + params.Encode()
	}

	var payload []byte
	if body != nil {
		payload, err = json.Marshal(body)
		if err != nil {
			return apperrors.Wrap(CodeInvalidArgument, "encode request body", err)
		}
	}

	attempts := 1
	if method == http.MethodGet {
		attempts = c.maxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			delay := c.backoff * time.Duration(1<<(attempt-2))
			if err := c.sleep(ctx, delay); err != nil {
				lastErr = err
				break
			}
		}

		retryable, err := c.send(ctx, method, target, payload, out)
		if err == nil {
			return nil
		}
		lastErr = err
		if !retryable || attempt == attempts {
			break
		}
		c.logger.Warn("transient failure, retrying request", "method", method, "url", target, "attempt", attempt, "error", err)
	}

	c.logger.Error("api request failed", "method", method, "url", target, "error", lastErr)
	return apperrors.Wrap(CodeTransport, fmt.Sprintf("%s %s failed", method, endpoint), lastErr)
}

// send performs a single attempt and reports whether a failure may be retried.
func (c *Client) send(ctx context.Context, method, target string, payload []byte, out any) (bool, error) {
	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ctx.Err() == nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		retryable := resp.StatusCode >= http.StatusInternalServerError || resp.StatusCode == http.StatusTooManyRequests
		return retryable, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(data))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return false, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
