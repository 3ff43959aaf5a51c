package leagueapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/preston-bernstein/league-fixtures-service/internal/logging"
	"github.com/preston-bernstein/league-fixtures-service/internal/metrics"
)

// Config controls how the client reaches the league API.
type Config struct {
	BaseURL           string
	Token             string
	HTTPClient        *http.Client
	Timeout           time.Duration
	RequestsPerSecond int
	IdempotencyKeys   bool
	Logger            *slog.Logger
	Recorder          *metrics.Recorder
}

// Client is the authenticated transport to the league REST API. It attaches
// credentials, paces requests and classifies failures into *APIError.
type Client struct {
	baseURL    string
	token      string
	httpClient httpDoer
	limiter    *rate.Limiter
	logger     *slog.Logger
	recorder   *metrics.Recorder
	newKey     func() string
}

// NewClient constructs a league API client with the provided configuration.
func NewClient(cfg Config) *Client {
	c := &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		token:      strings.TrimSpace(cfg.Token),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		limiter:    resolveLimiter(cfg.RequestsPerSecond),
		logger:     cfg.Logger,
		recorder:   cfg.Recorder,
	}
	if cfg.IdempotencyKeys {
		c.newKey = uuid.NewString
	}
	return c
}

type call struct {
	op      string
	method  string
	path    string
	query   url.Values
	body    any
	headers map[string]string
}

// do runs one call, records it, and decodes a 2xx body into out.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	start := time.Now()
	err := c.roundTrip(ctx, cl, out)
	c.recorder.RecordBackendCall(cl.op, time.Since(start), err)
	if err != nil {
		logger := logging.FromContext(ctx, c.logger)
		args := []any{slog.String(logging.FieldOperation, cl.op), "error", err}
		if apiErr, ok := AsAPIError(err); ok && apiErr.StatusCode > 0 {
			args = append(args, slog.Int(logging.FieldStatusCode, apiErr.StatusCode))
		}
		logging.Warn(logger, "league api call failed", args...)
	}
	return err
}

func (c *Client) roundTrip(ctx context.Context, cl call, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &APIError{Op: cl.op, Kind: KindNetwork, Message: "rate limit wait", Err: err}
	}

	req, err := c.buildRequest(ctx, cl)
	if err != nil {
		return &APIError{Op: cl.op, Kind: KindClient, Message: "build request", Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Op: cl.op, Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{
			Op:         cl.op,
			Kind:       kindForStatus(resp.StatusCode),
			StatusCode: resp.StatusCode,
			Message:    errorMessage(body, resp.StatusCode),
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			err = io.ErrUnexpectedEOF
		}
		return &APIError{Op: cl.op, Kind: KindDecode, StatusCode: resp.StatusCode, Message: "decode response", Err: err}
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, cl call) (*http.Request, error) {
	var body io.Reader
	if cl.body != nil {
		raw, err := json.Marshal(cl.body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.baseURL+cl.path, body)
	if err != nil {
		return nil, err
	}
	if len(cl.query) > 0 {
		req.URL.RawQuery = cl.query.Encode()
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.resolveToken(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for k, v := range cl.headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

func (c *Client) resolveToken(ctx context.Context) string {
	if token := tokenFromContext(ctx); token != "" {
		return token
	}
	return c.token
}

func errorMessage(body []byte, status int) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		if parsed.Error != "" {
			return parsed.Error
		}
		if parsed.Message != "" {
			return parsed.Message
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return http.StatusText(status)
}
