package fpl

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fpl-livesync/internal/domain/fixture"
	"github.com/riskibarqy/fpl-livesync/internal/platform/logging"
	"github.com/riskibarqy/fpl-livesync/internal/usecase"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const (
	defaultBaseURL   = "https://fantasy.premierleague.com/api"
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "fpl-livesync/1.0"

	// bootstrap-static is a few MB during the season.
	maxBodyBytes = 16 << 20

	endpointBootstrap = "/bootstrap-static/"
	endpointFixtures  = "/fixtures/"
)

// Strings are copied out of the pooled read buffer before it is reused.
var payloadAPI = sonic.Config{
	UseNumber:  true,
	CopyString: true,
}.Froze()

type ClientConfig struct {
	HTTPClient *http.Client
	BaseURL    string
	Timeout    time.Duration
	UserAgent  string
	Logger     *logging.Logger
}

// Client reads the public FPL API. It performs exactly one request per call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *logging.Logger
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = timeout
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		logger:     logger,
	}
}

func (c *Client) FetchReferenceSnapshot(ctx context.Context) (usecase.ReferenceSnapshot, error) {
	var payload bootstrapEnvelope
	if err := c.getJSON(ctx, endpointBootstrap, nil, &payload); err != nil {
		return usecase.ReferenceSnapshot{}, err
	}
	if missing := payload.missingFields(); len(missing) > 0 {
		return usecase.ReferenceSnapshot{}, malformed(endpointBootstrap,
			crerr.Newf("missing top-level field(s): %s", strings.Join(missing, ", ")))
	}

	return payload.toSnapshot(), nil
}

func (c *Client) FetchFixtures(ctx context.Context, gameweekID *int64) ([]fixture.Fixture, error) {
	var query url.Values
	if gameweekID != nil {
		query = url.Values{"event": []string{strconv.FormatInt(*gameweekID, 10)}}
	}

	var payload *[]fixtureItem
	if err := c.getJSON(ctx, endpointFixtures, query, &payload); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, malformed(endpointFixtures, crerr.New("expected a fixture list, got null"))
	}

	out := make([]fixture.Fixture, 0, len(*payload))
	for _, item := range *payload {
		out = append(out, item.toDomain())
	}
	return out, nil
}

func (c *Client) FetchLiveStats(ctx context.Context, gameweekID int64) (usecase.LiveSnapshot, error) {
	endpoint := fmt.Sprintf("/event/%d/live/", gameweekID)
	if gameweekID <= 0 {
		return usecase.LiveSnapshot{}, &usecase.SourceError{
			Kind:     usecase.ErrSourceUnavailable,
			Endpoint: endpoint,
			Err:      crerr.Newf("gameweek id must be greater than zero, got %d", gameweekID),
		}
	}

	var payload liveEnvelope
	if err := c.getJSON(ctx, endpoint, nil, &payload); err != nil {
		return usecase.LiveSnapshot{}, err
	}
	if payload.Elements == nil {
		return usecase.LiveSnapshot{}, malformed(endpoint, crerr.New("missing top-level field(s): elements"))
	}

	out := usecase.LiveSnapshot{
		GameweekID:  gameweekID,
		PlayerStats: make([]usecase.ExternalLiveElement, 0, len(*payload.Elements)),
	}
	for _, item := range *payload.Elements {
		out.PlayerStats = append(out.PlayerStats, usecase.ExternalLiveElement{
			ID:    item.ID,
			Stats: item.Stats,
		})
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, query url.Values, target any) error {
	fullURL := c.baseURL + endpoint
	if encoded := query.Encode(); encoded != "" {
		fullURL += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return unavailable(endpoint, 0, crerr.Wrap(err, "build request"))
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("user-agent", c.userAgent)

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WarnContext(ctx, "fpl request failed", "endpoint", endpoint, "error", err)
		return unavailable(endpoint, 0, crerr.Wrap(err, "send request"))
	}
	defer resp.Body.Close()

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	if _, err := buf.ReadFrom(io.LimitReader(resp.Body, maxBodyBytes+1)); err != nil {
		return unavailable(endpoint, resp.StatusCode, crerr.Wrap(err, "read response body"))
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.WarnContext(ctx, "fpl request returned unexpected status",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"body", abbreviateBody(buf.B),
		)
		return unavailable(endpoint, resp.StatusCode, crerr.Newf("unexpected status %d", resp.StatusCode))
	}
	if buf.Len() > maxBodyBytes {
		return malformed(endpoint, crerr.Newf("response body exceeds %d bytes", maxBodyBytes))
	}

	if err := payloadAPI.Unmarshal(buf.B, target); err != nil {
		return malformed(endpoint, crerr.Wrap(err, "decode payload"))
	}

	c.logger.DebugContext(ctx, "fpl request finished",
		"endpoint", endpoint,
		"bytes", buf.Len(),
		"duration_ms", time.Since(started).Milliseconds(),
	)
	return nil
}

func unavailable(endpoint string, status int, err error) error {
	return &usecase.SourceError{Kind: usecase.ErrSourceUnavailable, Endpoint: endpoint, Status: status, Err: err}
}

func malformed(endpoint string, err error) error {
	return &usecase.SourceError{Kind: usecase.ErrMalformedResponse, Endpoint: endpoint, Status: http.StatusOK, Err: err}
}

func abbreviateBody(raw []byte) string {
	const limit = 256
	body := strings.TrimSpace(string(raw))
	if len(body) <= limit {
		return body
	}
	return body[:limit] + "..."
}
